package layout

// Variant identifies one tabulated Cyrillic keyboard layout. Latin layouts
// are not tabulated individually; every identifier that does not classify as
// a Cyrillic variant is treated as the shared reference QWERTY layout.
type Variant int

const (
	Russian Variant = iota
	RussianPC
	Ukrainian
	UkrainianPC
	Belarusian
)

func (v Variant) String() string {
	switch v {
	case Russian:
		return "russian"
	case RussianPC:
		return "russian-pc"
	case Ukrainian:
		return "ukrainian"
	case UkrainianPC:
		return "ukrainian-pc"
	case Belarusian:
		return "belarusian"
	default:
		return "unknown"
	}
}

// Code returns the two-letter display abbreviation for the variant.
func (v Variant) Code() string {
	switch v {
	case Russian, RussianPC:
		return "RU"
	case Ukrainian, UkrainianPC:
		return "UA"
	case Belarusian:
		return "BY"
	default:
		return "??"
	}
}

// Variants lists the tabulated variants in their fixed enumeration order.
func Variants() []Variant {
	return []Variant{Russian, RussianPC, Ukrainian, UkrainianPC, Belarusian}
}

type pair struct {
	latin  rune
	native rune
}

// Table holds one variant's bidirectional character mapping. The forward map
// carries Latin(QWERTY)→native entries; the reverse map is derived from the
// same ordered pair list. Runes absent from a map pass through unchanged.
type Table struct {
	variant Variant
	forward map[rune]rune
	reverse map[rune]rune
}

func (t *Table) Variant() Variant { return t.variant }

func (t *Table) Forward(r rune) rune {
	if mapped, ok := t.forward[r]; ok {
		return mapped
	}
	return r
}

func (t *Table) Reverse(r rune) rune {
	if mapped, ok := t.reverse[r]; ok {
		return mapped
	}
	return r
}

// buildTable derives both maps from an ordered pair list. A later pair wins
// on either side: it replaces an earlier forward entry for the same Latin
// rune, and an earlier reverse entry for the same native rune. Belarusian
// relies on the latter — ']' and '}' both produce the apostrophe, and only
// the last-defined pair survives inversion.
func buildTable(v Variant, pairs []pair) *Table {
	forward := make(map[rune]rune, len(pairs))
	for _, p := range pairs {
		forward[p.latin] = p.native
	}
	reverse := make(map[rune]rune, len(pairs))
	for _, p := range pairs {
		if forward[p.latin] != p.native {
			continue
		}
		reverse[p.native] = p.latin
	}
	return &Table{variant: v, forward: forward, reverse: reverse}
}

var tables = map[Variant]*Table{
	Russian:     buildTable(Russian, russianPairs()),
	RussianPC:   buildTable(RussianPC, russianPCPairs()),
	Ukrainian:   buildTable(Ukrainian, ukrainianPairs()),
	UkrainianPC: buildTable(UkrainianPC, ukrainianPCPairs()),
	Belarusian:  buildTable(Belarusian, belarusianPairs()),
}

// For returns the immutable table for a tabulated variant.
func For(v Variant) *Table {
	return tables[v]
}

// commonPairs covers the key positions shared by every tabulated variant:
// the bulk of the letter rows plus the comma, dot, and slash keys.
func commonPairs() []pair {
	return []pair{
		{'q', 'й'}, {'Q', 'Й'},
		{'w', 'ц'}, {'W', 'Ц'},
		{'e', 'у'}, {'E', 'У'},
		{'r', 'к'}, {'R', 'К'},
		{'t', 'е'}, {'T', 'Е'},
		{'y', 'н'}, {'Y', 'Н'},
		{'u', 'г'}, {'U', 'Г'},
		{'i', 'ш'}, {'I', 'Ш'},
		{'p', 'з'}, {'P', 'З'},
		{'[', 'х'}, {'{', 'Х'},
		{'a', 'ф'}, {'A', 'Ф'},
		{'d', 'в'}, {'D', 'В'},
		{'f', 'а'}, {'F', 'А'},
		{'g', 'п'}, {'G', 'П'},
		{'h', 'р'}, {'H', 'Р'},
		{'j', 'о'}, {'J', 'О'},
		{'k', 'л'}, {'K', 'Л'},
		{'l', 'д'}, {'L', 'Д'},
		{';', 'ж'}, {':', 'Ж'},
		{'z', 'я'}, {'Z', 'Я'},
		{'x', 'ч'}, {'X', 'Ч'},
		{'c', 'с'}, {'C', 'С'},
		{'v', 'м'}, {'V', 'М'},
		{'n', 'т'}, {'N', 'Т'},
		{'m', 'ь'}, {'M', 'Ь'},
		{',', 'б'}, {'<', 'Б'},
		{'.', 'ю'}, {'>', 'Ю'},
		{'/', '.'}, {'?', ','},
	}
}

func russianLetterPairs() []pair {
	return append(commonPairs(),
		pair{'s', 'ы'}, pair{'S', 'Ы'},
		pair{'o', 'щ'}, pair{'O', 'Щ'},
		pair{'b', 'и'}, pair{'B', 'И'},
		pair{']', 'ъ'}, pair{'}', 'Ъ'},
		pair{'\'', 'э'}, pair{'"', 'Э'},
		pair{'`', 'ё'}, pair{'~', 'Ё'},
	)
}

func russianPairs() []pair {
	return russianLetterPairs()
}

// PC variants share their standard counterpart's letter positions and differ
// only in punctuation and Shift-numeral-row symbols.
func russianPCPairs() []pair {
	return append(russianLetterPairs(),
		pair{'@', '"'}, pair{'#', '№'}, pair{'$', ';'},
		pair{'^', ':'}, pair{'&', '?'},
		pair{'|', '/'},
	)
}

func ukrainianLetterPairs() []pair {
	return append(commonPairs(),
		pair{'s', 'і'}, pair{'S', 'І'},
		pair{'o', 'щ'}, pair{'O', 'Щ'},
		pair{'b', 'и'}, pair{'B', 'И'},
		pair{']', 'ї'}, pair{'}', 'Ї'},
		pair{'\'', 'є'}, pair{'"', 'Є'},
	)
}

func ukrainianPairs() []pair {
	return append(ukrainianLetterPairs(),
		pair{'`', 'ґ'}, pair{'~', 'Ґ'},
	)
}

func ukrainianPCPairs() []pair {
	return append(ukrainianLetterPairs(),
		pair{'\\', 'ґ'}, pair{'|', 'Ґ'},
		pair{'@', '"'}, pair{'#', '№'}, pair{'$', ';'},
		pair{'^', ':'}, pair{'&', '?'},
	)
}

// belarusianPairs maps both bracket keys to the apostrophe. The '}' pair is
// listed first so inversion settles on ']' for the reverse direction.
func belarusianPairs() []pair {
	return append(commonPairs(),
		pair{'s', 'ы'}, pair{'S', 'Ы'},
		pair{'o', 'ў'}, pair{'O', 'Ў'},
		pair{'b', 'і'}, pair{'B', 'І'},
		pair{'\'', 'э'}, pair{'"', 'Э'},
		pair{'`', 'ё'}, pair{'~', 'Ё'},
		pair{'}', '\''}, pair{']', '\''},
	)
}
