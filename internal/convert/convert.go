// Package convert decides conversion direction and remaps text typed under
// the wrong keyboard layout. Both entry points are total: every input,
// including empty text and empty layout lists, yields an ordinary outcome.
package convert

import (
	"strings"

	"retype/internal/layout"
	"retype/internal/types"
)

// Outcome is the result of an auto-conversion. TargetID is the layout the
// host should switch to, or empty when no usable target exists. Text equals
// the input whenever no conversion was possible.
type Outcome struct {
	Text     string
	TargetID string
	Script   types.Script
}

// DetectScript classifies the dominant script of text. Runes in the Cyrillic
// block (U+0400–U+04FF) and ASCII letters are counted separately; everything
// else is ignored. The strictly larger count wins; ties and all-ignored
// input are unknown.
func DetectScript(text string) types.Script {
	var cyrillic, latin int
	for _, r := range text {
		switch {
		case r >= 0x0400 && r <= 0x04FF:
			cyrillic++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}
	switch {
	case cyrillic > latin:
		return types.ScriptCyrillic
	case latin > cyrillic:
		return types.ScriptLatin
	default:
		return types.ScriptUnknown
	}
}

// AutoConvert remaps text through the first matching layout in layoutIDs.
// The list order is the caller's priority order.
//
// Latin text converts through the first Cyrillic-classified identifier's
// forward map, targeting that identifier. Cyrillic text converts through the
// first Cyrillic-classified identifier's reverse map, targeting the first
// Latin identifier; without any available Cyrillic layout the text is left
// untouched — there is no guessed default variant.
func AutoConvert(text string, layoutIDs []string) Outcome {
	out := Outcome{Text: text, Script: DetectScript(text)}
	switch out.Script {
	case types.ScriptLatin:
		for _, id := range layoutIDs {
			if v, ok := layout.Classify(id); ok {
				out.Text = mapString(text, layout.For(v).Forward)
				out.TargetID = id
				break
			}
		}
	case types.ScriptCyrillic:
		var table *layout.Table
		for _, id := range layoutIDs {
			if v, ok := layout.Classify(id); ok {
				table = layout.For(v)
				break
			}
		}
		if table == nil {
			return out
		}
		out.Text = mapString(text, table.Reverse)
		for _, id := range layoutIDs {
			if layout.IsLatin(id) {
				out.TargetID = id
				break
			}
		}
	}
	return out
}

func mapString(text string, lookup func(rune) rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteRune(lookup(r))
	}
	return b.String()
}
