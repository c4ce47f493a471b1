package model

// This module defines the color values and the read-only table of named colors
// that the command line tools resolve user supplied names against

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is a single RGB pixel value, one byte per DMX channel
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0x00, 0x00, 0x00}
	White = Color{0xff, 0xff, 0xff}
)

// NewColor builds a color from integer components, each of which must lie
// within [0,255]
func NewColor(r, g, b int) (c Color, err error) {
	for i, v := range []int{r, g, b} {
		if v < 0 || v > 255 {
			return Black, &RangeError{Field: "rgb"[i : i+1], Value: v, Min: 0, Max: 255}
		}
	}
	return Color{uint8(r), uint8(g), uint8(b)}, nil
}

// RGB is a color as supplied by a caller before its components have been
// range checked
type RGB struct {
	R, G, B int
}

func (c RGB) Color() (Color, error) {
	return NewColor(c.R, c.G, c.B)
}

// RGB widens a validated color back into caller form
func (c Color) RGB() RGB {
	return RGB{int(c.R), int(c.G), int(c.B)}
}

// ParseHex accepts "#rrggbb" or the short "#rgb" form
func ParseHex(hex string) (c Color, err error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	cf, errGo := colorful.Hex(hex)
	if errGo != nil {
		return Black, errors.Wrapf(errGo, "color %q", hex)
	}
	r, g, b := cf.RGB255()
	return Color{r, g, b}, nil
}

// Hex renders the color in the same form ParseHex accepts
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

// RangeError reports an integer value that fell outside its permitted range
type RangeError struct {
	Field    string
	Value    int
	Min, Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %d is outside of [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// ColorTable maps color names to values.  A table is never modified after
// NewColorTable returns, so it can be shared freely.
type ColorTable struct {
	colors map[string]Color
}

// NewColorTable copies the supplied map, names are matched case insensitively
func NewColorTable(colors map[string]Color) (table *ColorTable) {
	table = &ColorTable{colors: make(map[string]Color, len(colors))}
	for name, c := range colors {
		table.colors[strings.ToLower(name)] = c
	}
	return table
}

// DefaultColors is the table used when no configuration file supplies one
func DefaultColors() (table *ColorTable) {
	return NewColorTable(map[string]Color{
		"black":    Black,
		"red":      {0xff, 0x00, 0x00},
		"green":    {0x00, 0xff, 0x00},
		"blue":     {0x00, 0x00, 0xff},
		"white":    {0xc8, 0xc8, 0xc8},
		"maxlight": White,
		"yellow":   {0xff, 0xc8, 0x00},
		"orange":   {0xff, 0x64, 0x00},
		"cyan":     {0x00, 0xff, 0xff},
		"magenta":  {0xff, 0x00, 0xff},
		"purple":   {0x80, 0x00, 0xff},
		"warm":     {0xff, 0x96, 0x3c},
	})
}

func (table *ColorTable) Lookup(name string) (c Color, isPresent bool) {
	if table == nil {
		return Black, false
	}
	c, isPresent = table.colors[strings.ToLower(name)]
	return c, isPresent
}

// Resolve returns the named color, or the color named by fallback when name
// is unknown.  found is false when the fallback was used so that callers can
// warn the user.
func (table *ColorTable) Resolve(name string, fallback string) (c Color, found bool) {
	if c, found = table.Lookup(name); found {
		return c, true
	}
	c, _ = table.Lookup(fallback)
	return c, false
}

// Names lists the known colors in sorted order
func (table *ColorTable) Names() (names []string) {
	if table == nil {
		return []string{}
	}
	names = make([]string, 0, len(table.colors))
	for name := range table.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (table *ColorTable) Len() int {
	if table == nil {
		return 0
	}
	return len(table.colors)
}
