package tterm

import (
	"errors"
	"image/color"
	"testing"
)

func TestPixelChannels(t *testing.T) {
	p := RGB(0x12, 0x34, 0x56)
	if uint32(p) != 0x00123456 {
		t.Fatalf("RGB() = %#08x, want 0x00123456", uint32(p))
	}
	if p.R() != 0x12 || p.G() != 0x34 || p.B() != 0x56 {
		t.Errorf("channels = %#x %#x %#x", p.R(), p.G(), p.B())
	}
	if p.String() != "#123456" {
		t.Errorf("String() = %q, want #123456", p.String())
	}
}

func TestGray(t *testing.T) {
	tests := []struct {
		v    uint8
		want Pixel
	}{
		{0, 0x00000000},
		{0x18, Background},
		{0xab, 0x00ababab},
		{0xff, 0x00ffffff},
	}
	for _, tt := range tests {
		if got := Gray(tt.v); got != tt.want {
			t.Errorf("Gray(%#x) = %#08x, want %#08x", tt.v, uint32(got), uint32(tt.want))
		}
	}
}

func TestPixelRGBA(t *testing.T) {
	r, g, b, a := RGB(0xff, 0x80, 0x00).RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Pixel
		wantErr bool
	}{
		{"#181818", Background, false},
		{"181818", Background, false},
		{"  #FF0080 ", RGB(0xff, 0x00, 0x80), false},
		{"#fff", RGB(0xff, 0xff, 0xff), false},
		{"", 0, true},
		{"#12345", 0, true},
		{"#gggggg", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Pixel
	}{
		{"pixel", RGB(1, 2, 3), RGB(1, 2, 3)},
		{"opaque rgba", color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}, RGB(0x10, 0x20, 0x30)},
		{"gray", color.Gray{Y: 0x40}, Gray(0x40)},
		{"transparent", color.RGBA{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor() = %v, want %v", got, tt.want)
			}
		})
	}
}
