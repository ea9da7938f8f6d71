package output

// Translator exposes a minimal i18n contract for user-facing strings.
// Implementations provide key-path lookup + placeholder substitution for a
// given locale.
type T interface {
	// T renders the string identified by the dot-delimited key path for the
	// given locale, falling back to the default locale and finally to the
	// key path itself.
	// data is an optional map of placeholder name to value (may be nil).
	T(locale, key string, data map[string]any) string
}
