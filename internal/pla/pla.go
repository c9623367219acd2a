// Package pla writes single-output covers and truth tables in the Berkeley
// PLA format read by espresso and most logic tools.
package pla

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/pborges/qm/internal/qm"
)

// Config controls the header of a generated file.
type Config struct {
	// Header lines are written as # comments before the directives.
	Header []string
	// Inputs names the input columns; missing names use qm.DefaultName.
	Inputs []string
	// Output names the output column; empty means "F".
	Output string
}

// MakePLA generates a type f PLA with one row per cube of the cover.
func MakePLA(cfg Config, vars int, cubes [][]qm.Digit) string {
	b := newBuilder(cfg, vars, "f", len(cubes))
	for _, c := range cubes {
		b.row(c, '1')
	}
	return b.end()
}

// MakeTruthTable generates a type fd PLA listing every required minterm
// with output 1 and every other don't-care with output -.
func MakeTruthTable(cfg Config, vars int, matches, ignored []uint64) string {
	required := mapset.NewThreadUnsafeSet(matches...)
	dc := make([]uint64, 0, len(ignored))
	for _, m := range ignored {
		if !required.Contains(m) {
			dc = append(dc, m)
		}
	}

	b := newBuilder(cfg, vars, "fd", len(matches)+len(dc))
	for _, m := range matches {
		b.minterm(m, '1')
	}
	for _, m := range dc {
		b.minterm(m, '-')
	}
	return b.end()
}

type builder struct {
	buf  strings.Builder
	vars int
}

func newBuilder(cfg Config, vars int, typ string, rows int) *builder {
	b := &builder{vars: vars}
	for _, line := range cfg.Header {
		for _, l := range strings.Split(strings.TrimRight(line, "\n"), "\n") {
			b.buf.WriteString("# ")
			b.buf.WriteString(l)
			b.buf.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b.buf, ".i %d\n", vars)
	b.buf.WriteString(".o 1\n")
	b.buf.WriteString(".ilb")
	for i := 0; i < vars; i++ {
		name := qm.DefaultName(i)
		if i < len(cfg.Inputs) && cfg.Inputs[i] != "" {
			name = cfg.Inputs[i]
		}
		b.buf.WriteByte(' ')
		b.buf.WriteString(name)
	}
	b.buf.WriteByte('\n')
	out := cfg.Output
	if out == "" {
		out = "F"
	}
	fmt.Fprintf(&b.buf, ".ob %s\n", out)
	fmt.Fprintf(&b.buf, ".type %s\n", typ)
	fmt.Fprintf(&b.buf, ".p %d\n", rows)
	return b
}

func (b *builder) row(bits []qm.Digit, out byte) {
	for _, d := range bits {
		b.buf.WriteByte(d.Glyph())
	}
	b.buf.WriteByte(' ')
	b.buf.WriteByte(out)
	b.buf.WriteByte('\n')
}

func (b *builder) minterm(m uint64, out byte) {
	for i := b.vars - 1; i >= 0; i-- {
		b.buf.WriteByte(byte('0' + (m>>i)&1))
	}
	b.buf.WriteByte(' ')
	b.buf.WriteByte(out)
	b.buf.WriteByte('\n')
}

func (b *builder) end() string {
	b.buf.WriteString(".e\n")
	return b.buf.String()
}
