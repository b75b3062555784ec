package style

import (
	"strings"
	"testing"
)

func TestNoColorPassesTextThrough(t *testing.T) {
	old := NoColor
	NoColor = true
	t.Cleanup(func() { NoColor = old })

	if got := C(Green, "ok"); got != "ok" {
		t.Errorf("C() = %q, want plain text", got)
	}
	if got := B("bold"); got != "bold" {
		t.Errorf("B() = %q, want plain text", got)
	}
	if got := Row("template", "", "not set"); got != "  template        (not set)" {
		t.Errorf("Row() = %q", got)
	}
}

func TestColorWraps(t *testing.T) {
	old := NoColor
	NoColor = false
	t.Cleanup(func() { NoColor = old })

	got := C(Cyan, "x")
	if !strings.HasPrefix(got, Cyan) || !strings.HasSuffix(got, Reset) {
		t.Errorf("C() = %q, want colour codes", got)
	}
	if got := rpadStyled("ab", 5); !strings.HasSuffix(got, Reset+"   ") {
		t.Errorf("rpadStyled() = %q", got)
	}
}

func TestDetectColorHonoursEnv(t *testing.T) {
	old := NoColor
	t.Cleanup(func() { NoColor = old })

	t.Setenv("CVB_NO_COLOR", "1")
	DetectColor()
	if !NoColor {
		t.Error("CVB_NO_COLOR should disable colour")
	}
}
