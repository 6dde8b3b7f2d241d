package layout

import "strings"

// Layout identifiers are opaque strings supplied by the host environment
// (e.g. "com.apple.keylayout.RussianWin"). They are never parsed, only
// pattern-matched, so unknown identifiers degrade to Latin instead of
// failing.

type variantPattern struct {
	variant Variant
	pattern string
}

// variantPatterns is checked in order. PC patterns precede their standard
// counterparts so an identifier like "com.apple.keylayout.RussianWin" does
// not fall through to the standard Russian table.
var variantPatterns = []variantPattern{
	{RussianPC, "RussianWin"},
	{RussianPC, "Russian-PC"},
	{UkrainianPC, "Ukrainian-PC"},
	{UkrainianPC, "UkrainianWin"},
	{Belarusian, "Byelorussian"},
	{Belarusian, "Belarusian"},
	{Russian, "Russian"},
	{Ukrainian, "Ukrainian"},
}

// latinCodes maps known Latin layout identifier fragments to display codes.
// Used for display purposes only; conversion always goes through the single
// shared QWERTY reference, so no Latin variant carries its own table.
var latinCodes = []struct {
	pattern string
	code    string
}{
	{"ABC", "EN"},
	{"US", "EN"},
	{"British", "EN"},
	{"Australian", "EN"},
	{"Canadian", "EN"},
	{"Irish", "EN"},
	{"Polish", "PL"},
	{"German", "DE"},
	{"French", "FR"},
	{"Spanish", "ES"},
	{"Italian", "IT"},
	{"Portuguese", "PT"},
	{"Dutch", "NL"},
	{"Swedish", "SV"},
	{"Norwegian", "NO"},
	{"Danish", "DA"},
	{"Finnish", "FI"},
	{"Czech", "CS"},
	{"Turkish", "TR"},
}

// Classify matches an identifier against the closed Cyrillic catalog. A
// variant matches when the identifier contains the canonical pattern or the
// pattern contains the identifier. No match means "treat as Latin".
func Classify(id string) (Variant, bool) {
	if id == "" {
		return 0, false
	}
	for _, vp := range variantPatterns {
		if strings.Contains(id, vp.pattern) || strings.Contains(vp.pattern, id) {
			return vp.variant, true
		}
	}
	return 0, false
}

// IsLatin reports whether the identifier should be treated as a Latin
// layout. Everything not classified as Cyrillic is Latin.
func IsLatin(id string) bool {
	_, ok := Classify(id)
	return !ok
}

// DisplayCode returns a two-letter abbreviation for the identifier: the
// variant code for Cyrillic layouts, a catalog match for known Latin
// layouts, and otherwise the upper-cased first two runes of the
// identifier's last dot-separated segment.
func DisplayCode(id string) string {
	if v, ok := Classify(id); ok {
		return v.Code()
	}
	for _, lc := range latinCodes {
		if strings.Contains(id, lc.pattern) {
			return lc.code
		}
	}
	segment := id
	if dot := strings.LastIndexByte(id, '.'); dot >= 0 {
		segment = id[dot+1:]
	}
	runes := []rune(strings.ToUpper(segment))
	switch {
	case len(runes) >= 2:
		return string(runes[:2])
	case len(runes) == 1:
		return string(runes)
	default:
		return "??"
	}
}
