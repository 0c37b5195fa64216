package report

import (
	"fmt"
	"strings"
)

// ExplainDifference describes why the DFS and BFS paths between the same
// pair of cities differ. It compares hop counts and names the vertex after
// which the two routes split.
func ExplainDifference(dfsPath, bfsPath []string) string {
	switch {
	case len(dfsPath) == 0 && len(bfsPath) == 0:
		return "Neither search found a path between the given cities."
	case len(dfsPath) == 0:
		return "DFS found no path, while BFS found one by expanding the search level by level."
	case len(bfsPath) == 0:
		return "BFS found no path, while DFS found one through deep traversal."
	}

	dfsHops, bfsHops := len(dfsPath)-1, len(bfsPath)-1
	lines := []string{
		fmt.Sprintf("DFS took %s (%s), committing to the first branch it met.", FormatPath(dfsPath), hops(dfsHops)),
		fmt.Sprintf("BFS returned %s (%s), expanding the frontier level by level, so no route has fewer edges.",
			FormatPath(bfsPath), hops(bfsHops)),
	}

	split := divergence(dfsPath, bfsPath)
	switch {
	case bfsHops < dfsHops:
		line := fmt.Sprintf("BFS found the shorter route, by %s.", hops(dfsHops-bfsHops))
		if at, ok := splitAt(dfsPath, bfsPath, split); ok {
			line += " " + at
		}
		lines = append(lines, line)
	case bfsHops > dfsHops:
		lines = append(lines, "DFS happened to find the shorter route because its first branch already led to the goal.")
	case split < 0:
		lines = append(lines, "Both searches returned the same route.")
	default:
		line := "Both routes have the same number of edges."
		if at, ok := splitAt(dfsPath, bfsPath, split); ok {
			line += " " + at
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

// divergence returns the first index at which a and b differ, or -1 if they
// are equal. Paths sharing a start always differ at index 1 or later.
func divergence(a, b []string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) == len(b) {
		return -1
	}

	return n
}

// splitAt names the fork at index split, if both paths have a vertex there
// and share the one before it.
func splitAt(dfsPath, bfsPath []string, split int) (string, bool) {
	if split < 1 || split >= len(dfsPath) || split >= len(bfsPath) {
		return "", false
	}

	return fmt.Sprintf("After %s BFS continued to %s while DFS went on to %s.",
		dfsPath[split-1], bfsPath[split], dfsPath[split]), true
}

func hops(n int) string {
	if n == 1 {
		return "1 hop"
	}

	return fmt.Sprintf("%d hops", n)
}
