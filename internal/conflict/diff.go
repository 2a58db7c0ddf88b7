// Package conflict detects differences between freshly generated content
// and pre-existing files, and resolves them with skip, overwrite, or merge
// strategies. Detection never mutates anything; resolution performs the
// actual writes and backups.
package conflict

import "strings"

// FileDiff summarizes line-level changes between old and new content.
// TotalChanges is always Added + Removed + Modified.
type FileDiff struct {
	AddedLines    int
	RemovedLines  int
	ModifiedLines int
	TotalChanges  int
}

type lineOp int

const (
	opEqual lineOp = iota
	opAdd
	opRemove
)

// editLine is one entry in the shortest edit script between two files.
type editLine struct {
	op   lineOp
	text string
}

// Diff computes the line-level change summary between two contents.
func Diff(old, newer string) FileDiff {
	script := computeEditScript(splitLines(old), splitLines(newer))
	return summarize(script)
}

// summarize folds an edit script into counts. Within each run of
// consecutive changes, removed and added lines pair up as modifications;
// the surplus counts as pure additions or removals.
func summarize(script []editLine) FileDiff {
	var diff FileDiff
	var adds, removes int

	flush := func() {
		modified := min(adds, removes)
		diff.ModifiedLines += modified
		diff.AddedLines += adds - modified
		diff.RemovedLines += removes - modified
		adds, removes = 0, 0
	}

	for _, line := range script {
		switch line.op {
		case opAdd:
			adds++
		case opRemove:
			removes++
		default:
			flush()
		}
	}
	flush()

	diff.TotalChanges = diff.AddedLines + diff.RemovedLines + diff.ModifiedLines
	return diff
}

// computeEditScript implements the Myers shortest-edit-script algorithm
// ("An O(ND) Difference Algorithm and Its Variations", Myers 1986) over
// lines, preserving input order.
func computeEditScript(old, newer []string) []editLine {
	n := len(old)
	m := len(newer)
	maxD := n + m

	v := map[int]int{1: 0}
	trace := make([]map[int]int, 0, maxD+1)

	for d := 0; d <= maxD; d++ {
		snapshot := make(map[int]int, len(v))
		for k, x := range v {
			snapshot[k] = x
		}
		trace = append(trace, snapshot)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1] // move down: deletion from old
			} else {
				x = v[k-1] + 1 // move right: insertion from new
			}
			y := x - k

			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}
			v[k] = x

			if x >= n && y >= m {
				return backtrack(trace, old, newer, n, m)
			}
		}
	}

	return backtrack(trace, old, newer, n, m)
}

// backtrack walks the trace backwards to recover the edit script in
// forward order.
func backtrack(trace []map[int]int, old, newer []string, n, m int) []editLine {
	var reversed []editLine
	x, y := n, m

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1] < v[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := v[prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			reversed = append(reversed, editLine{op: opEqual, text: old[x]})
		}

		if d > 0 {
			if x == prevX {
				y--
				reversed = append(reversed, editLine{op: opAdd, text: newer[y]})
			} else {
				x--
				reversed = append(reversed, editLine{op: opRemove, text: old[x]})
			}
		}
	}

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}
	return reversed
}

// splitLines splits content into lines, dropping the empty trailing line a
// final newline produces.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
