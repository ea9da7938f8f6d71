package input

type LookupUseCase interface {
	// Resolve returns the string at the dot-delimited key path for the given
	// locale, with placeholder values substituted. Missing keys degrade to
	// the key path itself; Resolve never fails at the caller.
	Resolve(locale, key string, data map[string]any) string
}
