package output

import "harmonystrings/internal/domain/entities"

// CatalogSource yields the localization documents for every locale the
// catalog ships. Implementations load once and stay read-only afterwards.
type CatalogSource interface {
	// DefaultLocale is the fallback locale; it must be present in Locales.
	DefaultLocale() string

	// Locales lists every locale the catalog carries, default first.
	Locales() []string

	// Component returns the component document as authored, indirection
	// references included.
	Component(locale string) (entities.Tree, bool)

	// Common returns the shared-strings document as authored.
	Common(locale string) (entities.Tree, bool)

	// Resolved returns the combined component + common tree with every
	// indirection reference inlined.
	Resolved(locale string) (entities.Tree, bool)
}
