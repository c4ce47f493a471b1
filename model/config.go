package model

// This module defines the controller configuration, that being the address of
// the Art-Net node, the geometry of the strip attached to it and the named
// colors available to the command line tools

import (
	"io/ioutil"
	"net"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultPort  = 6454
	BroadcastIP  = "255.255.255.255"
	MaxUniverse  = 32767
	MaxChannels  = 512
	MaxPixels    = MaxChannels / 3
	DefaultSteps = 200
)

type Config struct {
	IP       string
	Port     int
	Universe int
	Pixels   int
	Colors   *ColorTable
}

// DefaultConfig broadcasts to every node on the local segment and drives as
// many pixels as a single universe can hold
func DefaultConfig() (cfg *Config) {
	return &Config{
		IP:       "",
		Port:     DefaultPort,
		Universe: 0,
		Pixels:   MaxPixels,
		Colors:   DefaultColors(),
	}
}

// Addr is the destination for frames, the limited broadcast address is used
// when no controller IP is configured
func (cfg *Config) Addr() (ip string) {
	if len(cfg.IP) == 0 {
		return BroadcastIP
	}
	return cfg.IP
}

func (cfg *Config) Validate() (err error) {
	if len(cfg.IP) != 0 && net.ParseIP(cfg.IP) == nil {
		return errors.Errorf("controller address %q is not an IP address", cfg.IP)
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return &RangeError{Field: "port", Value: cfg.Port, Min: 1, Max: 65535}
	}
	if cfg.Universe < 0 || cfg.Universe > MaxUniverse {
		return &RangeError{Field: "universe", Value: cfg.Universe, Min: 0, Max: MaxUniverse}
	}
	if cfg.Pixels < 1 || cfg.Pixels > MaxPixels {
		return &RangeError{Field: "pixels", Value: cfg.Pixels, Min: 1, Max: MaxPixels}
	}
	return nil
}

// colorValue accepts either a "#rrggbb" string or an [r, g, b] list
type colorValue Color

func (cv *colorValue) UnmarshalYAML(unmarshal func(interface{}) error) error {
	hex := ""
	if errGo := unmarshal(&hex); errGo == nil {
		c, err := ParseHex(hex)
		if err != nil {
			return err
		}
		*cv = colorValue(c)
		return nil
	}

	rgb := []int{}
	if errGo := unmarshal(&rgb); errGo != nil {
		return errors.Wrap(errGo, "colors must be a hex string or an [r, g, b] list")
	}
	if len(rgb) != 3 {
		return errors.Errorf("color %v does not have exactly three components", rgb)
	}
	c, err := NewColor(rgb[0], rgb[1], rgb[2])
	if err != nil {
		return err
	}
	*cv = colorValue(c)
	return nil
}

type configFile struct {
	IP       string                `yaml:"ip"`
	Port     int                   `yaml:"port"`
	Universe int                   `yaml:"universe"`
	Pixels   int                   `yaml:"pixels"`
	Colors   map[string]colorValue `yaml:"colors"`
}

// ParseConfig reads a YAML document, any field that is absent keeps its
// default and named colors are added to, or replace, the default table
func ParseConfig(data []byte) (cfg *Config, err error) {
	cfg = DefaultConfig()

	file := &configFile{
		IP:       cfg.IP,
		Port:     cfg.Port,
		Universe: cfg.Universe,
		Pixels:   cfg.Pixels,
	}
	if errGo := yaml.UnmarshalStrict(data, file); errGo != nil {
		return nil, errors.Wrap(errGo, "invalid configuration")
	}

	colors := map[string]Color{}
	for _, name := range cfg.Colors.Names() {
		colors[name], _ = cfg.Colors.Lookup(name)
	}
	for name, c := range file.Colors {
		colors[name] = Color(c)
	}

	cfg.IP = file.IP
	cfg.Port = file.Port
	cfg.Universe = file.Universe
	cfg.Pixels = file.Pixels
	cfg.Colors = NewColorTable(colors)

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func LoadConfig(fn string) (cfg *Config, err error) {
	data, errGo := ioutil.ReadFile(fn)
	if errGo != nil {
		return nil, errors.Wrap(errGo, fn)
	}
	if cfg, err = ParseConfig(data); err != nil {
		return nil, errors.Wrap(err, fn)
	}
	return cfg, nil
}
