package utils

import "strings"

// NormalizeName trims surrounding whitespace and lower-cases s.
// Applied to author names and book titles before uniqueness checks and storage.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeNamePtr applies NormalizeName to an optional field.
func NormalizeNamePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := NormalizeName(*s)
	return &v
}

// TrimPtr trims an optional field.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// LikePattern builds a case-insensitive substring pattern for ILIKE,
// escaping the LIKE wildcards in the user input.
func LikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(NormalizeName(s)) + "%"
}
