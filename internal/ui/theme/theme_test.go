package theme

import "testing"

func TestApply(t *testing.T) {
	t.Cleanup(func() { Apply(false) })

	Apply(true)
	if !IsDark() || Text != darkPalette.Text || Bg != darkPalette.Bg {
		t.Fatal("dark palette not applied")
	}

	Apply(false)
	if IsDark() || Text != lightPalette.Text || Primary != lightPalette.Primary {
		t.Fatal("light palette not applied")
	}
}
