package testutil

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

type PLA struct {
	Inputs  int
	Outputs int
	Labels  []string
	Output  string
	Type    string
	P       int
	Rows    []Row
}

type Row struct {
	In  string
	Out string
}

func ParsePLA(data []byte) (PLA, error) {
	var p PLA
	p.P = -1
	scanner := bufio.NewScanner(bytes.NewReader(data))
	ended := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if ended {
			return p, fmt.Errorf("content after .e: %q", line)
		}
		if strings.HasPrefix(line, ".") {
			fields := strings.Fields(line)
			switch fields[0] {
			case ".i", ".o", ".p":
				if len(fields) != 2 {
					return p, fmt.Errorf("invalid directive: %q", line)
				}
				n, err := strconv.Atoi(fields[1])
				if err != nil {
					return p, err
				}
				switch fields[0] {
				case ".i":
					p.Inputs = n
				case ".o":
					p.Outputs = n
				case ".p":
					p.P = n
				}
			case ".ilb":
				p.Labels = fields[1:]
			case ".ob":
				p.Output = strings.Join(fields[1:], " ")
			case ".type":
				if len(fields) == 2 {
					p.Type = fields[1]
				}
			case ".e", ".end":
				ended = true
			default:
				return p, fmt.Errorf("unknown directive: %q", line)
			}
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			return p, fmt.Errorf("invalid row: %q", line)
		}
		if len(parts[0]) != p.Inputs || len(parts[1]) != p.Outputs {
			return p, fmt.Errorf("row width mismatch: %q", line)
		}
		for _, ch := range parts[0] {
			if ch != '0' && ch != '1' && ch != '-' {
				return p, fmt.Errorf("invalid input %q in %q", ch, line)
			}
		}
		p.Rows = append(p.Rows, Row{In: parts[0], Out: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return p, err
	}
	if !ended {
		return p, fmt.Errorf("missing .e")
	}
	if p.P >= 0 && p.P != len(p.Rows) {
		return p, fmt.Errorf(".p %d but %d rows", p.P, len(p.Rows))
	}
	return p, nil
}

// ComparePLA compares the rows of two parsed PLAs, ignoring order, and
// returns a human-readable diff.
func ComparePLA(got, want PLA) string {
	if got.Inputs != want.Inputs || got.Outputs != want.Outputs {
		return fmt.Sprintf("shape mismatch: got %d/%d want %d/%d", got.Inputs, got.Outputs, want.Inputs, want.Outputs)
	}
	count := func(rows []Row) map[Row]int {
		m := make(map[Row]int)
		for _, r := range rows {
			m[r]++
		}
		return m
	}
	g, w := count(got.Rows), count(want.Rows)
	var lines []string
	for r, n := range w {
		if g[r] < n {
			lines = append(lines, fmt.Sprintf("  missing %s %s", r.In, r.Out))
		}
	}
	for r, n := range g {
		if w[r] < n {
			lines = append(lines, fmt.Sprintf("  unexpected %s %s", r.In, r.Out))
		}
	}
	if len(lines) == 0 {
		return ""
	}
	sort.Strings(lines)
	return fmt.Sprintf("%d row mismatches:\n%s\n", len(lines), strings.Join(lines, "\n"))
}
