package utils

import "strings"

// Slugify lowercases a name and collapses whitespace runs into single
// hyphens, matching the directory layout of the scene store.
func Slugify(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}

// Unslugify turns a stored directory name back into a human-readable
// title-cased location name.
func Unslugify(slug string) string {
	parts := strings.Split(slug, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
