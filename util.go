package ethunit

import "strings"

// StringContains returns true if needle is empty or occurs in haystack.
func StringContains(haystack, needle string) bool {
	return needle == "" || strings.Contains(haystack, needle)
}
