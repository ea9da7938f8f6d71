package i18n

import (
	"fmt"
	"log"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"harmonystrings/internal/domain/entities"
	"harmonystrings/internal/ports/output"
)

// Ensure Translator implements the output.T port.
var _ output.T = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer, fed from a
// resolved localization catalog: each locale's tree is flattened into
// dot-path message IDs, and `{name}` placeholder tokens are rewritten into
// go-i18n template form so the Localizer performs the substitution.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator over the catalog's resolved trees using
// the source's default locale as the fallback language.
func NewTranslator(source output.CatalogSource) (*Translator, error) {
	tag, err := language.Parse(source.DefaultLocale())
	if err != nil {
		tag = language.English
	}
	bundle := i18n.NewBundle(tag)

	for _, locale := range source.Locales() {
		localeTag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("i18n: locale %q: %w", locale, err)
		}
		tree, ok := source.Resolved(locale)
		if !ok {
			return nil, fmt.Errorf("i18n: locale %q has no resolved tree", locale)
		}
		messages := make([]*i18n.Message, 0)
		tree.Walk(func(path, value string) {
			messages = append(messages, &i18n.Message{
				ID:    path,
				Other: toTemplate(value),
			})
		})
		if err := bundle.AddMessages(localeTag, messages...); err != nil {
			return nil, fmt.Errorf("i18n: locale %q: %w", locale, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}, nil
}

// T renders the string at the given key path for the given locale.
// If the key/locale is not found, it falls back to the default locale,
// then finally to the key path itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := i18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.Printf("i18n: localize failed (key=%s, locales=%v): %v", key, languages, err)
		return key
	}
	return msg
}

// toTemplate rewrites `{name}` placeholder tokens into go-i18n's
// text/template form, `{{.name}}`. Literal strings pass through unchanged.
func toTemplate(value string) string {
	counts := entities.Placeholders(value)
	if len(counts) == 0 {
		return value
	}
	for name := range counts {
		value = strings.ReplaceAll(value, "{"+name+"}", "{{."+name+"}}")
	}
	return value
}
