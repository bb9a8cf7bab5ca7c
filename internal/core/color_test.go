package core

import "testing"

func TestPaletteCodes(t *testing.T) {
	if ColorDefault.ANSI() != "" {
		t.Errorf("ColorDefault.ANSI() = %q, expected empty", ColorDefault.ANSI())
	}
	for _, c := range Palette()[1:] {
		if c.ANSI() == "" {
			t.Errorf("Color(%d).ANSI() is empty", c)
		}
	}
	if Color(200).ANSI() != "" {
		t.Error("unknown color should have no code")
	}
}
