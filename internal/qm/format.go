package qm

import (
	"fmt"
	"strconv"
	"strings"
)

// overline is U+0305 COMBINING OVERLINE. Combining marks follow the
// character they decorate, so it is written after every rune of a name.
const overline = '\u0305'

// Glyph returns the display character for d.
func (d Digit) Glyph() byte {
	switch d {
	case False:
		return '0'
	case True:
		return '1'
	case Reduced:
		return '-'
	}
	return '?'
}

func (d Digit) String() string { return string(d.Glyph()) }

// BinaryString renders bits as 0, 1, - and ?.
func BinaryString(bits []Digit) string {
	b := make([]byte, len(bits))
	for i, d := range bits {
		b[i] = d.Glyph()
	}
	return string(b)
}

// ParseBinary is the inverse of BinaryString.
func ParseBinary(s string) ([]Digit, error) {
	bits := make([]Digit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			bits[i] = False
		case '1':
			bits[i] = True
		case '-':
			bits[i] = Reduced
		case '?':
			bits[i] = Ignored
		default:
			return nil, fmt.Errorf("qm: invalid digit %q at %d in %q", s[i], i, s)
		}
	}
	return bits, nil
}

// DefaultName names variable i: A through Z, then X26, X27 and so on.
func DefaultName(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return "X" + strconv.Itoa(i)
}

// VariableString renders bits as a product of variables. True positions
// print the name, False positions print the name with an overline on every
// character, and Reduced or Ignored positions are left out. A missing or
// empty entry in names falls back to DefaultName.
func VariableString(bits []Digit, names []string) string {
	var sb strings.Builder
	for i, d := range bits {
		if d != True && d != False {
			continue
		}
		name := DefaultName(i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		for _, r := range name {
			sb.WriteRune(r)
			if d == False {
				sb.WriteRune(overline)
			}
		}
	}
	return sb.String()
}

// Expression renders terms as a sum of products joined by "+".
func Expression(terms []*Term, names []string) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		parts[i] = VariableString(t.bits, names)
	}
	return strings.Join(parts, "+")
}
