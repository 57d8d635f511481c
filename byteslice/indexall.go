// Package byteslice contains the scan-and-replace functions used to censor byte slices.
package byteslice

// matchAt reports whether needle occurs in haystack at offset i. Needle
// exhaustion is checked before the haystack bound, and the bound before the
// byte, so a candidate running past the end of haystack is never dereferenced.
func matchAt(haystack, needle []byte, i int) bool {
	j := 0
	for j < len(needle) && i+j < len(haystack) && haystack[i+j] == needle[j] {
		j++
	}
	return j == len(needle)
}

// IndexAll returns the offsets of all non-overlapping matches of needle in
// haystack, scanning left to right. It returns nil for an empty needle or when
// there are no matches.
func IndexAll(haystack, needle []byte) []int {
	if len(needle) == 0 || len(haystack) < len(needle) {
		return nil
	}

	var indexes []int

	for i := 0; i < len(haystack); {
		if !matchAt(haystack, needle, i) {
			i++
			continue
		}
		indexes = append(indexes, i)
		i += len(needle) // Start next search after this match
	}

	return indexes
}
