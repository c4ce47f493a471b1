package planetarium

import (
	"github.com/gvard/planetarium-led/model"
)

// Frame is one universe worth of DMX channel values.  Pixels occupy three
// consecutive channels in R, G, B order starting from channel 0.
type Frame [model.MaxChannels]byte

// SetPixel writes the color of a single pixel, indexes beyond the universe are
// ignored
func (frame *Frame) SetPixel(i int, c model.Color) {
	if i < 0 || i >= model.MaxPixels {
		return
	}
	frame[3*i] = c.R
	frame[3*i+1] = c.G
	frame[3*i+2] = c.B
}

// Pixel reads back a single pixel
func (frame *Frame) Pixel(i int) (c model.Color) {
	if i < 0 || i >= model.MaxPixels {
		return model.Black
	}
	return model.Color{R: frame[3*i], G: frame[3*i+1], B: frame[3*i+2]}
}

// solidFrame fills the first pixels entries with the same color, the
// remaining channels stay at zero
func solidFrame(c model.Color, pixels int) (frame *Frame) {
	frame = &Frame{}
	for i := 0; i < pixels; i++ {
		frame.SetPixel(i, c)
	}
	return frame
}
