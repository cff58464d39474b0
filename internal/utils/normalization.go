package utils

import "strings"

// NormalizeJobTitle lowercases and trims a job title so catalogue lookups
// and generated questions agree on the key.
func NormalizeJobTitle(jobTitle string) string {
	return strings.ToLower(strings.TrimSpace(jobTitle))
}
