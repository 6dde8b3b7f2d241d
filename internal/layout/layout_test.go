package layout

import "testing"

func TestVariantsOrder(t *testing.T) {
	expected := []Variant{Russian, RussianPC, Ukrainian, UkrainianPC, Belarusian}
	got := Variants()
	if len(got) != len(expected) {
		t.Fatalf("expected %d variants, got %d", len(expected), len(got))
	}
	for i, v := range expected {
		if got[i] != v {
			t.Fatalf("expected variant %d to be %v, got %v", i, v, got[i])
		}
	}
}

func TestForwardRussianLetters(t *testing.T) {
	table := For(Russian)
	checks := []struct {
		latin  rune
		native rune
	}{
		{'g', 'п'},
		{'h', 'р'},
		{'b', 'и'},
		{'d', 'в'},
		{'t', 'е'},
		{'n', 'т'},
		{'G', 'П'},
		{'/', '.'},
		{'?', ','},
		{'`', 'ё'},
	}
	for _, c := range checks {
		if got := table.Forward(c.latin); got != c.native {
			t.Fatalf("Forward(%q) = %q, want %q", c.latin, got, c.native)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, v := range Variants() {
		table := For(v)
		for latin, native := range table.forward {
			if v == Belarusian && native == '\'' {
				continue // known lossy collision, checked separately
			}
			if got := table.Reverse(native); got != latin {
				t.Fatalf("%v: Reverse(Forward(%q)) = %q, want %q", v, latin, got, latin)
			}
		}
	}
}

func TestPassthrough(t *testing.T) {
	for _, v := range Variants() {
		table := For(v)
		for _, r := range "0123456789 \t\n" {
			if got := table.Forward(r); got != r {
				t.Fatalf("%v: Forward(%q) = %q, want passthrough", v, r, got)
			}
			if got := table.Reverse(r); got != r {
				t.Fatalf("%v: Reverse(%q) = %q, want passthrough", v, r, got)
			}
		}
	}
}

func TestBelarusianApostropheCollision(t *testing.T) {
	table := For(Belarusian)
	if got := table.Forward(']'); got != '\'' {
		t.Fatalf("Forward(']') = %q, want apostrophe", got)
	}
	if got := table.Forward('}'); got != '\'' {
		t.Fatalf("Forward('}') = %q, want apostrophe", got)
	}
	// Inversion keeps the last-defined pair, which is ']'.
	if got := table.Reverse('\''); got != ']' {
		t.Fatalf("Reverse(apostrophe) = %q, want ']'", got)
	}
}

func TestVariantDifferences(t *testing.T) {
	if got := For(Ukrainian).Forward('s'); got != 'і' {
		t.Fatalf("ukrainian Forward('s') = %q, want 'і'", got)
	}
	if got := For(Russian).Forward('s'); got != 'ы' {
		t.Fatalf("russian Forward('s') = %q, want 'ы'", got)
	}
	if got := For(Belarusian).Forward('o'); got != 'ў' {
		t.Fatalf("belarusian Forward('o') = %q, want 'ў'", got)
	}
	if got := For(Belarusian).Forward('b'); got != 'і' {
		t.Fatalf("belarusian Forward('b') = %q, want 'і'", got)
	}
	if got := For(Ukrainian).Forward(']'); got != 'ї' {
		t.Fatalf("ukrainian Forward(']') = %q, want 'ї'", got)
	}
}

func TestPCVariantsShareLetterPositions(t *testing.T) {
	stdByPC := map[Variant]Variant{Russian: RussianPC, Ukrainian: UkrainianPC}
	for std, pc := range stdByPC {
		for _, r := range "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ" {
			if For(std).Forward(r) != For(pc).Forward(r) {
				t.Fatalf("%v and %v disagree on letter %q", std, pc, r)
			}
		}
	}
}

func TestPCVariantShiftNumerals(t *testing.T) {
	table := For(RussianPC)
	checks := []struct {
		latin  rune
		native rune
	}{
		{'@', '"'},
		{'#', '№'},
		{'$', ';'},
		{'^', ':'},
		{'&', '?'},
	}
	for _, c := range checks {
		if got := table.Forward(c.latin); got != c.native {
			t.Fatalf("Forward(%q) = %q, want %q", c.latin, got, c.native)
		}
	}
	// The standard table leaves the shift-numeral row untouched.
	if got := For(Russian).Forward('#'); got != '#' {
		t.Fatalf("russian Forward('#') = %q, want passthrough", got)
	}
}
