package helpers

// StringOrEmpty dereferences a nullable text column value.
func StringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NullableString converts a string to a pointer, mapping "" to NULL.
func NullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
