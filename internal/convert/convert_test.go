package convert

import (
	"testing"

	"retype/internal/types"
)

var usRussian = []string{
	"com.apple.keylayout.US",
	"com.apple.keylayout.Russian",
}

func TestDetectScript(t *testing.T) {
	checks := []struct {
		text   string
		script types.Script
	}{
		{"ghbdtn", types.ScriptLatin},
		{"привет", types.ScriptCyrillic},
		{"", types.ScriptUnknown},
		{"12345", types.ScriptUnknown},
		{"!@#$%", types.ScriptUnknown},
		{"abcпр", types.ScriptLatin},
		{"abпрв", types.ScriptCyrillic},
		{"abпр", types.ScriptUnknown},
		{"ab12прЁ", types.ScriptCyrillic},
	}
	for _, c := range checks {
		if got := DetectScript(c.text); got != c.script {
			t.Fatalf("DetectScript(%q) = %v, want %v", c.text, got, c.script)
		}
	}
}

func TestAutoConvertLatinToCyrillic(t *testing.T) {
	out := AutoConvert("ghbdtn", usRussian)
	if out.Text != "привет" {
		t.Fatalf("expected привет, got %q", out.Text)
	}
	if out.TargetID != "com.apple.keylayout.Russian" {
		t.Fatalf("unexpected target %q", out.TargetID)
	}
}

func TestAutoConvertPreservesCase(t *testing.T) {
	out := AutoConvert("GHBDTN", usRussian)
	if out.Text != "ПРИВЕТ" {
		t.Fatalf("expected ПРИВЕТ, got %q", out.Text)
	}
	if out.TargetID != "com.apple.keylayout.Russian" {
		t.Fatalf("unexpected target %q", out.TargetID)
	}
}

func TestAutoConvertCyrillicToLatin(t *testing.T) {
	out := AutoConvert("руддщ", usRussian)
	if out.Text != "hello" {
		t.Fatalf("expected hello, got %q", out.Text)
	}
	if out.TargetID != "com.apple.keylayout.US" {
		t.Fatalf("unexpected target %q", out.TargetID)
	}
}

func TestAutoConvertPunctuation(t *testing.T) {
	out := AutoConvert("ghbdtn/", usRussian)
	if out.Text != "привет." {
		t.Fatalf("expected привет., got %q", out.Text)
	}
	if out.TargetID != "com.apple.keylayout.Russian" {
		t.Fatalf("unexpected target %q", out.TargetID)
	}
}

func TestAutoConvertUnknownScript(t *testing.T) {
	out := AutoConvert("12345", usRussian)
	if out.Text != "12345" {
		t.Fatalf("expected unchanged text, got %q", out.Text)
	}
	if out.TargetID != "" {
		t.Fatalf("expected no target, got %q", out.TargetID)
	}
}

func TestAutoConvertNoLayouts(t *testing.T) {
	out := AutoConvert("hello", nil)
	if out.Text != "hello" {
		t.Fatalf("expected unchanged text, got %q", out.Text)
	}
	if out.TargetID != "" {
		t.Fatalf("expected no target, got %q", out.TargetID)
	}
}

func TestAutoConvertLatinWithoutCyrillicLayout(t *testing.T) {
	out := AutoConvert("ghbdtn", []string{"com.apple.keylayout.US", "com.apple.keylayout.German"})
	if out.Text != "ghbdtn" {
		t.Fatalf("expected unchanged text, got %q", out.Text)
	}
	if out.TargetID != "" {
		t.Fatalf("expected no target, got %q", out.TargetID)
	}
}

func TestAutoConvertCyrillicWithoutCyrillicLayout(t *testing.T) {
	// Absence of an available Cyrillic layout is terminal: no guessed default.
	out := AutoConvert("привет", []string{"com.apple.keylayout.US"})
	if out.Text != "привет" {
		t.Fatalf("expected unchanged text, got %q", out.Text)
	}
	if out.TargetID != "" {
		t.Fatalf("expected no target, got %q", out.TargetID)
	}
}

func TestAutoConvertCyrillicWithoutLatinTarget(t *testing.T) {
	// Conversion still happens; only the target is absent.
	out := AutoConvert("привет", []string{"com.apple.keylayout.Russian"})
	if out.Text != "ghbdtn" {
		t.Fatalf("expected ghbdtn, got %q", out.Text)
	}
	if out.TargetID != "" {
		t.Fatalf("expected no target, got %q", out.TargetID)
	}
}

func TestAutoConvertLayoutPriorityOrder(t *testing.T) {
	ids := []string{
		"com.apple.keylayout.Ukrainian",
		"com.apple.keylayout.Russian",
		"com.apple.keylayout.US",
	}
	out := AutoConvert("cskj", ids)
	if out.TargetID != "com.apple.keylayout.Ukrainian" {
		t.Fatalf("expected the first Cyrillic layout to win, got %q", out.TargetID)
	}
	if out.Text != "сіло" {
		t.Fatalf("expected сіло, got %q", out.Text)
	}
}

func TestAutoConvertRoundTripReportsTarget(t *testing.T) {
	// A conversion that happens to round-trip still reports the target;
	// treating it as a no-op is the caller's call.
	out := AutoConvert("привет", usRussian)
	back := AutoConvert(out.Text, usRussian)
	if back.Text != "привет" {
		t.Fatalf("round trip broke: %q", back.Text)
	}
	if back.TargetID != "com.apple.keylayout.Russian" {
		t.Fatalf("expected target on round trip, got %q", back.TargetID)
	}
}

func TestAutoConvertEmptyInput(t *testing.T) {
	out := AutoConvert("", usRussian)
	if out.Text != "" || out.TargetID != "" {
		t.Fatalf("expected empty no-op outcome, got %+v", out)
	}
	if out.Script != types.ScriptUnknown {
		t.Fatalf("expected unknown script, got %v", out.Script)
	}
}
