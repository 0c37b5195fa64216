package dfs

// Reverse returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func Reverse(s []string) []string {
	out := make([]string, len(s)) // allocate new slice of same length
	for i := range s {            // iterate indices
		out[i] = s[len(s)-1-i] // assign from opposite end
	}

	return out
}
