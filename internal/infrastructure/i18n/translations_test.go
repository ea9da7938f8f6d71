package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonystrings/internal/domain/entities"
	"harmonystrings/internal/infrastructure/catalog"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	source, err := catalog.Load("en")
	require.NoError(t, err)
	translator, err := NewTranslator(source)
	require.NoError(t, err)
	return translator
}

func TestTranslator_LiteralLookup(t *testing.T) {
	translator := newTranslator(t)

	got := translator.T("en", "services.change_channel.fields.channel.description", nil)
	assert.Equal(t, "Channel number to change to.", got)
}

func TestTranslator_PlaceholderSubstitution(t *testing.T) {
	translator := newTranslator(t)

	got := translator.T("en", "config.step.link.description", map[string]any{
		"name": "Living Room Hub",
		"host": "192.168.1.20",
	})
	assert.Equal(t, "Do you want to set up Living Room Hub (192.168.1.20)?", got)
}

func TestTranslator_RepeatedPlaceholders(t *testing.T) {
	translator := newTranslator(t)

	got := translator.T("en", "issues.deprecated_switches_entity.description", map[string]any{
		"entity": "switch.harmony_hub_watch_tv",
		"info":   "automation.movie_night",
	})
	assert.Contains(t, got, "switch.harmony_hub_watch_tv")
	assert.Contains(t, got, "automation.movie_night")
	assert.NotContains(t, got, "{entity}")
	assert.NotContains(t, got, "{info}")
}

func TestTranslator_ResolvedIndirection(t *testing.T) {
	translator := newTranslator(t)

	assert.Equal(t, "Failed to connect", translator.T("en", "config.error.cannot_connect", nil))
	assert.Equal(t, "Échec de la connexion", translator.T("fr", "config.error.cannot_connect", nil))
}

func TestTranslator_FallsBackToDefaultLocale(t *testing.T) {
	translator := newTranslator(t)

	// No German catalog ships; lookups land on the default locale.
	got := translator.T("de", "services.sync.name", nil)
	assert.Equal(t, "Sync", got)
}

func TestTranslator_MissingKeyReturnsKey(t *testing.T) {
	translator := newTranslator(t)

	got := translator.T("en", "config.step.does_not_exist", nil)
	assert.Equal(t, "config.step.does_not_exist", got)
}

func TestTranslator_EmptyKey(t *testing.T) {
	translator := newTranslator(t)

	assert.Equal(t, "", translator.T("en", "", nil))
}

// fakeSource is a minimal CatalogSource with a partially translated locale.
type fakeSource struct {
	defaultLocale string
	resolved      map[string]entities.Tree
}

func (f *fakeSource) DefaultLocale() string { return f.defaultLocale }

func (f *fakeSource) Locales() []string {
	locales := []string{f.defaultLocale}
	for locale := range f.resolved {
		if locale != f.defaultLocale {
			locales = append(locales, locale)
		}
	}
	return locales
}

func (f *fakeSource) Component(locale string) (entities.Tree, bool) { return f.Resolved(locale) }
func (f *fakeSource) Common(locale string) (entities.Tree, bool)    { return entities.Tree{}, true }

func (f *fakeSource) Resolved(locale string) (entities.Tree, bool) {
	tree, ok := f.resolved[locale]
	return tree, ok
}

func TestTranslator_PartialLocaleFallsBackPerKey(t *testing.T) {
	en, err := entities.FromMap(map[string]any{
		"services": map[string]any{
			"sync": map[string]any{
				"name":        "Sync",
				"description": "Syncs the remote's configuration.",
			},
		},
	})
	require.NoError(t, err)
	fr, err := entities.FromMap(map[string]any{
		"services": map[string]any{
			"sync": map[string]any{
				"name": "Synchroniser",
			},
		},
	})
	require.NoError(t, err)

	translator, err := NewTranslator(&fakeSource{
		defaultLocale: "en",
		resolved:      map[string]entities.Tree{"en": en, "fr": fr},
	})
	require.NoError(t, err)

	assert.Equal(t, "Synchroniser", translator.T("fr", "services.sync.name", nil))
	assert.Equal(t, "Syncs the remote's configuration.", translator.T("fr", "services.sync.description", nil))
}
