package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"harmonystrings/internal/domain"
	"harmonystrings/internal/domain/entities"
	"harmonystrings/internal/ports/output"
)

// The catalog ships as embedded TOML documents: active.<locale>.toml holds
// the Harmony component strings, common.<locale>.toml the shared namespace
// that indirection references resolve against.
//
//go:embed active.*.toml common.*.toml
var localeFS embed.FS

// Ensure Catalog implements the output.CatalogSource port.
var _ output.CatalogSource = (*Catalog)(nil)

// Catalog holds the parsed localization documents for every embedded locale.
// It is built once by Load and read-only afterwards; accessors hand out
// clones so the held trees can never be mutated.
type Catalog struct {
	defaultLocale string
	locales       []string
	component     map[string]entities.Tree
	common        map[string]entities.Tree
	resolved      map[string]entities.Tree
}

// Load decodes the embedded documents, merges each component document with
// its common namespace, and inlines every indirection reference. A malformed
// document, a missing common counterpart, or a dangling reference fails the
// load: these are packaging defects, not runtime conditions.
func Load(defaultLocale string) (*Catalog, error) {
	component, err := loadDocuments("active")
	if err != nil {
		return nil, err
	}
	common, err := loadDocuments("common")
	if err != nil {
		return nil, err
	}

	if _, ok := component[defaultLocale]; !ok {
		return nil, fmt.Errorf("catalog: default locale %q has no active document", defaultLocale)
	}

	resolved := make(map[string]entities.Tree, len(component))
	locales := make([]string, 0, len(component))
	for locale, tree := range component {
		shared, ok := common[locale]
		if !ok {
			return nil, fmt.Errorf("catalog: locale %q has no common document", locale)
		}
		combined, err := tree.Merge(shared)
		if err != nil {
			return nil, fmt.Errorf("catalog: locale %q: %w", locale, err)
		}
		if err := resolveNode(combined, combined, ""); err != nil {
			return nil, fmt.Errorf("catalog: locale %q: %w", locale, err)
		}
		resolved[locale] = combined
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}
	sort.Strings(locales)
	locales = append([]string{defaultLocale}, locales...)

	return &Catalog{
		defaultLocale: defaultLocale,
		locales:       locales,
		component:     component,
		common:        common,
		resolved:      resolved,
	}, nil
}

func (c *Catalog) DefaultLocale() string { return c.defaultLocale }

func (c *Catalog) Locales() []string {
	out := make([]string, len(c.locales))
	copy(out, c.locales)
	return out
}

func (c *Catalog) Component(locale string) (entities.Tree, bool) {
	tree, ok := c.component[locale]
	if !ok {
		return nil, false
	}
	return tree.Clone(), true
}

func (c *Catalog) Common(locale string) (entities.Tree, bool) {
	tree, ok := c.common[locale]
	if !ok {
		return nil, false
	}
	return tree.Clone(), true
}

func (c *Catalog) Resolved(locale string) (entities.Tree, bool) {
	tree, ok := c.resolved[locale]
	if !ok {
		return nil, false
	}
	return tree.Clone(), true
}

// loadDocuments decodes every embedded "<prefix>.<locale>.toml" document
// into a Tree keyed by locale.
func loadDocuments(prefix string) (map[string]entities.Tree, error) {
	files, err := fs.Glob(localeFS, prefix+".*.toml")
	if err != nil {
		return nil, err
	}

	docs := make(map[string]entities.Tree, len(files))
	for _, file := range files {
		data, err := localeFS.ReadFile(file)
		if err != nil {
			return nil, err
		}
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("catalog: %s: %w: %v", file, domain.ErrMalformedDocument, err)
		}
		tree, err := entities.FromMap(raw)
		if err != nil {
			return nil, fmt.Errorf("catalog: %s: %w", file, err)
		}
		locale := strings.TrimSuffix(strings.TrimPrefix(file, prefix+"."), ".toml")
		docs[locale] = tree
	}
	return docs, nil
}

// resolveNode inlines every indirection reference under node, looking
// targets up in root (the combined component + common tree).
func resolveNode(root, node entities.Tree, prefix string) error {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case entities.Tree:
			if err := resolveNode(root, v, path); err != nil {
				return err
			}
		case string:
			ref, ok := entities.IndirectionRef(v)
			if !ok {
				continue
			}
			text, err := resolveRef(root, ref, map[string]bool{})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			node[key] = text
		}
	}
	return nil
}

// resolveRef follows a reference path to its literal text. References may
// chain through further references; a chain that loops or that lands on a
// missing or empty key is a defect.
func resolveRef(root entities.Tree, ref string, seen map[string]bool) (string, error) {
	if seen[ref] {
		return "", fmt.Errorf("%s: %w", ref, domain.ErrReferenceCycle)
	}
	seen[ref] = true

	text, err := root.LookupRef(ref)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ref, domain.ErrDanglingReference)
	}
	if next, ok := entities.IndirectionRef(text); ok {
		return resolveRef(root, next, seen)
	}
	if text == "" {
		return "", fmt.Errorf("%s resolves to empty string: %w", ref, domain.ErrDanglingReference)
	}
	return text, nil
}
