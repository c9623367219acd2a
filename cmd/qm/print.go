package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/pborges/qm/internal/qm"
)

var (
	essentialStyle = color.New(color.FgGreen, color.Bold)
	headerStyle    = color.New(color.FgCyan, color.Bold)
	okStyle        = color.New(color.FgGreen)
	warnStyle      = color.New(color.FgYellow, color.Bold)
)

// expression renders the cover, spelling out the constant functions.
func expression(res *qm.Result, names []string) string {
	if len(res.Essentials) == 0 {
		return "0"
	}
	if s := res.Expression(names); s != "" {
		return s
	}
	return "1"
}

func printResult(w io.Writer, res *qm.Result, names []string) {
	selected := make(map[*qm.Term]bool, len(res.Essentials))
	for _, t := range res.Essentials {
		selected[t] = true
	}

	fmt.Fprintln(w, headerStyle.Sprint("prime implicants"))
	for _, t := range res.Primes {
		line := fmt.Sprintf("%s  %v  %s", qm.BinaryString(t.Bits()), t.Minterms(), literal(t, names))
		if selected[t] {
			fmt.Fprintln(w, "* "+essentialStyle.Sprint(line))
		} else {
			fmt.Fprintln(w, "  "+line)
		}
	}
	fmt.Fprintf(w, "%s %s\n", headerStyle.Sprint("F ="), expression(res, names))
	fmt.Fprintf(w, "compares: %d\n", res.Compares)
}

func literal(t *qm.Term, names []string) string {
	if s := qm.VariableString(t.Bits(), names); s != "" {
		return s
	}
	return "1"
}

// printTrace lists each round by ones count. Terms that never combined are
// starred.
func printTrace(w io.Writer, trace *qm.Trace) {
	for i, round := range trace.Rounds {
		fmt.Fprintln(w, headerStyle.Sprintf("round %d", i))
		for _, g := range qm.GroupByOnes(round) {
			terms := make([]string, len(g.Terms))
			for j, t := range g.Terms {
				terms[j] = qm.BinaryString(t.Bits())
				if !t.Combined() {
					terms[j] += "*"
				}
			}
			fmt.Fprintf(w, "  %d: %s\n", g.Ones, strings.Join(terms, " "))
		}
	}
}
