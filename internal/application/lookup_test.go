package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"harmonystrings/internal/infrastructure/catalog"
	"harmonystrings/internal/infrastructure/i18n"
)

func TestLookupService_Resolve(t *testing.T) {
	source, err := catalog.Load("en")
	require.NoError(t, err)
	translator, err := i18n.NewTranslator(source)
	require.NoError(t, err)

	lookup := NewLookupService(translator)

	// The catalog's acceptance example: a literal leaf resolves unchanged.
	got := lookup.Resolve("en", "services.change_channel.fields.channel.description", nil)
	assert.Equal(t, "Channel number to change to.", got)

	got = lookup.Resolve("fr", "config.step.link.description", map[string]any{
		"name": "Salon",
		"host": "192.168.1.20",
	})
	assert.Equal(t, "Voulez-vous configurer Salon (192.168.1.20) ?", got)
}
