// Package diff renders line-oriented unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// ContextLines is the number of unchanged lines kept around each change.
	ContextLines = 3

	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type diffLine struct {
	op        byte
	text      string
	oldBefore int
	newBefore int
}

// Unified returns a unified diff from before to after, or "" when they are
// identical. Output longer than 10,000 lines is truncated with a marker.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	lines := lineOps(string(before), string(after))

	var buf strings.Builder
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	for _, h := range hunks(lines, ContextLines) {
		writeHunk(&buf, lines[h[0]:h[1]])
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

// lineOps diffs at line granularity and numbers every resulting line.
func lineOps(before, after string) []diffLine {
	dmp := diffmatchpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), table)

	var (
		lines      []diffLine
		oldN, newN int
	)
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			l := diffLine{text: text, oldBefore: oldN, newBefore: newN}
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				l.op = ' '
				oldN++
				newN++
			case diffmatchpatch.DiffDelete:
				l.op = '-'
				oldN++
			case diffmatchpatch.DiffInsert:
				l.op = '+'
				newN++
			}
			lines = append(lines, l)
		}
	}
	return lines
}

// hunks groups changed lines with up to context unchanged lines on either
// side. Changes separated by more than 2*context equal lines split hunks.
func hunks(lines []diffLine, context int) [][2]int {
	var out [][2]int

	i := 0
	for i < len(lines) {
		for i < len(lines) && lines[i].op == ' ' {
			i++
		}
		if i == len(lines) {
			break
		}

		start := max(i-context, 0)
		if len(out) > 0 {
			start = max(start, out[len(out)-1][1])
		}

		lastChange := i
		j := i
		for j < len(lines) {
			if lines[j].op != ' ' {
				lastChange = j
				j++
				continue
			}
			k := j
			for k < len(lines) && lines[k].op == ' ' {
				k++
			}
			if k == len(lines) || k-j > 2*context {
				break
			}
			j = k
		}

		end := min(lastChange+1+context, len(lines))
		out = append(out, [2]int{start, end})
		i = end
	}

	return out
}

func writeHunk(buf *strings.Builder, lines []diffLine) {
	oldCount, newCount := 0, 0
	for _, l := range lines {
		if l.op != '+' {
			oldCount++
		}
		if l.op != '-' {
			newCount++
		}
	}

	oldStart := lines[0].oldBefore
	if oldCount > 0 {
		oldStart++
	}
	newStart := lines[0].newBefore
	if newCount > 0 {
		newStart++
	}

	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", oldStart, oldCount, newStart, newCount)
	for _, l := range lines {
		buf.WriteByte(l.op)
		buf.WriteString(l.text)
		buf.WriteByte('\n')
	}
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
