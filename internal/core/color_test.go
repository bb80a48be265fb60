package core

import "testing"

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		want string
	}{
		{ColorDefault, ""},
		{ColorRed, "1"},
		{ColorBrightWhite, "15"},
		{ColorOrange, "208"},
		{Color(200), ""},
	}
	for _, tt := range tests {
		if got := tt.c.ANSI(); got != tt.want {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tt.c, got, tt.want)
		}
	}
}

func TestColorsCoverPalette(t *testing.T) {
	for _, c := range Colors() {
		if c == ColorDefault {
			t.Fatal("Colors() must not include the default color")
		}
		if c.ANSI() == "" {
			t.Errorf("Color(%d) has no ANSI code", c)
		}
	}
	if n := len(Colors()); n != int(ColorGray) {
		t.Errorf("Colors() has %d entries, expected %d", n, ColorGray)
	}
}
