package text

import (
	"testing"

	"golang.org/x/image/font"
)

func TestHintingString(t *testing.T) {
	tests := []struct {
		h    Hinting
		want string
	}{
		{HintingNone, "None"},
		{HintingVertical, "Vertical"},
		{HintingFull, "Full"},
		{Hinting(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Hinting(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestHintingFontHinting(t *testing.T) {
	tests := []struct {
		h    Hinting
		want font.Hinting
	}{
		{HintingNone, font.HintingNone},
		{HintingVertical, font.HintingVertical},
		{HintingFull, font.HintingFull},
		{Hinting(-1), font.HintingNone},
	}
	for _, tt := range tests {
		if got := tt.h.fontHinting(); got != tt.want {
			t.Errorf("%v.fontHinting() = %v, want %v", tt.h, got, tt.want)
		}
	}
}
