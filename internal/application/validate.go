package application

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"

	"harmonystrings/internal/domain"
	"harmonystrings/internal/domain/entities"
	"harmonystrings/internal/ports/input"
	"harmonystrings/internal/ports/output"
)

// Ensure ValidationService implements the input.ValidateUseCase port.
var _ input.ValidateUseCase = (*ValidationService)(nil)

// DefaultContracts maps a key path to the exact multiset of placeholder
// tokens the host supplies at that call site. A parameterized string whose
// tokens differ from its contract, or that has no contract at all, is a
// defect: the host would render it with holes.
var DefaultContracts = map[string]map[string]int{
	"config.flow_title":                             {"name": 1},
	"config.step.link.description":                  {"name": 1, "host": 1},
	"issues.deprecated_switches_entity.title":       {"info": 1},
	"issues.deprecated_switches_entity.description": {"entity": 2, "info": 2},
	"exceptions.invalid_channel.message":            {"channel": 1},
}

var keySegmentPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidationService checks a localization catalog against the structural
// properties its host ecosystem enforces at build time: references resolve,
// placeholders honor their call-site contracts, key names are well formed,
// and non-default locales stay consistent with the default one.
//
// Validation runs over the documents as authored (references still in
// place), so it catches the defects a load would otherwise fail on.
type ValidationService struct {
	source    output.CatalogSource
	contracts map[string]map[string]int
}

func NewValidationService(source output.CatalogSource) *ValidationService {
	return &ValidationService{source: source, contracts: DefaultContracts}
}

// Validate checks every locale and returns the full defect list rather than
// stopping at the first problem.
func (s *ValidationService) Validate() []domain.Defect {
	var defects []domain.Defect

	defaultLocale := s.source.DefaultLocale()
	base, ok := s.combined(defaultLocale)
	if !ok {
		return []domain.Defect{{
			Locale: defaultLocale,
			Detail: "default locale documents missing or colliding",
		}}
	}
	baseFlat := base.Flatten()

	for _, locale := range s.source.Locales() {
		combined, ok := s.combined(locale)
		if !ok {
			defects = append(defects, domain.Defect{
				Locale: locale,
				Detail: "component and common documents missing or colliding",
			})
			continue
		}
		defects = append(defects, s.validateLocale(locale, combined, baseFlat, locale == defaultLocale)...)
	}

	// Every declared call site must have text to render.
	contractKeys := make([]string, 0, len(s.contracts))
	for key := range s.contracts {
		contractKeys = append(contractKeys, key)
	}
	sort.Strings(contractKeys)
	for _, key := range contractKeys {
		if _, ok := baseFlat[key]; !ok {
			defects = append(defects, domain.Defect{
				Locale: defaultLocale,
				Key:    key,
				Detail: "call-site contract declared but key is missing",
			})
		}
	}

	return defects
}

// MissingTranslations lists keys the default locale defines but a given
// locale does not. Untranslated keys are not defects (lookup falls back to
// the default locale); strict builds treat them as failures anyway.
func (s *ValidationService) MissingTranslations() []domain.Defect {
	var missing []domain.Defect

	defaultLocale := s.source.DefaultLocale()
	base, ok := s.combined(defaultLocale)
	if !ok {
		return nil
	}
	baseFlat := base.Flatten()

	basePaths := make([]string, 0, len(baseFlat))
	for path := range baseFlat {
		basePaths = append(basePaths, path)
	}
	sort.Strings(basePaths)

	for _, locale := range s.source.Locales() {
		if locale == defaultLocale {
			continue
		}
		combined, ok := s.combined(locale)
		if !ok {
			continue
		}
		flat := combined.Flatten()
		for _, path := range basePaths {
			if _, ok := flat[path]; !ok {
				missing = append(missing, domain.Defect{
					Locale: locale,
					Key:    path,
					Detail: "not translated, falls back to default locale",
				})
			}
		}
	}

	return missing
}

// combined merges a locale's component document with its common namespace.
func (s *ValidationService) combined(locale string) (entities.Tree, bool) {
	component, ok := s.source.Component(locale)
	if !ok {
		return nil, false
	}
	common, ok := s.source.Common(locale)
	if !ok {
		return nil, false
	}
	merged, err := component.Merge(common)
	if err != nil {
		return nil, false
	}
	return merged, true
}

func (s *ValidationService) validateLocale(locale string, combined entities.Tree, baseFlat map[string]string, isDefault bool) []domain.Defect {
	var defects []domain.Defect

	combined.Walk(func(path, value string) {
		if d := checkKeyPath(locale, path); d != nil {
			defects = append(defects, *d)
		}
		if value == "" {
			defects = append(defects, domain.Defect{Locale: locale, Key: path, Detail: "empty string"})
			return
		}

		if ref, ok := entities.IndirectionRef(value); ok {
			if d := checkReference(locale, path, ref, combined); d != nil {
				defects = append(defects, *d)
			}
			return
		}
		if strings.Contains(value, "[%key:") {
			defects = append(defects, domain.Defect{
				Locale: locale,
				Key:    path,
				Detail: "malformed indirection reference",
			})
			return
		}

		counts := entities.Placeholders(value)
		if isDefault {
			defects = append(defects, s.checkContract(locale, path, counts)...)
			return
		}

		baseValue, ok := baseFlat[path]
		if !ok {
			defects = append(defects, domain.Defect{
				Locale: locale,
				Key:    path,
				Detail: "key not present in default locale",
			})
			return
		}
		if _, isRef := entities.IndirectionRef(baseValue); isRef {
			return
		}
		if !cmp.Equal(counts, entities.Placeholders(baseValue)) {
			defects = append(defects, domain.Defect{
				Locale: locale,
				Key:    path,
				Detail: fmt.Sprintf("placeholders %v differ from default locale %v", tokens(counts), tokens(entities.Placeholders(baseValue))),
			})
		}
	})

	return defects
}

// checkContract verifies a default-locale string against its call-site
// contract: exact token set, exact occurrence counts.
func (s *ValidationService) checkContract(locale, path string, counts map[string]int) []domain.Defect {
	contract, ok := s.contracts[path]
	if !ok {
		if len(counts) == 0 {
			return nil
		}
		return []domain.Defect{{
			Locale: locale,
			Key:    path,
			Detail: fmt.Sprintf("placeholders %v: %v", tokens(counts), domain.ErrUnknownPlaceholder),
		}}
	}
	if !cmp.Equal(counts, contract) {
		return []domain.Defect{{
			Locale: locale,
			Key:    path,
			Detail: fmt.Sprintf("placeholders %v do not match call-site contract %v", tokens(counts), tokens(contract)),
		}}
	}
	return nil
}

func checkKeyPath(locale, path string) *domain.Defect {
	for _, segment := range strings.Split(path, ".") {
		if !keySegmentPattern.MatchString(segment) {
			return &domain.Defect{
				Locale: locale,
				Key:    path,
				Detail: fmt.Sprintf("key segment %q is not lower snake case", segment),
			}
		}
	}
	return nil
}

// checkReference follows an indirection reference through the combined key
// space, flagging dangling targets, cycles, and empty text.
func checkReference(locale, path, ref string, combined entities.Tree) *domain.Defect {
	seen := map[string]bool{}
	for {
		if seen[ref] {
			return &domain.Defect{Locale: locale, Key: path, Detail: fmt.Sprintf("%s: %v", ref, domain.ErrReferenceCycle)}
		}
		seen[ref] = true

		text, err := combined.LookupRef(ref)
		if err != nil {
			return &domain.Defect{Locale: locale, Key: path, Detail: fmt.Sprintf("%s: %v", ref, domain.ErrDanglingReference)}
		}
		next, ok := entities.IndirectionRef(text)
		if !ok {
			if text == "" {
				return &domain.Defect{Locale: locale, Key: path, Detail: fmt.Sprintf("%s resolves to empty string", ref)}
			}
			return nil
		}
		ref = next
	}
}

// tokens renders a placeholder multiset in a stable, readable form.
func tokens(counts map[string]int) []string {
	out := make([]string, 0, len(counts))
	for name, n := range counts {
		if n == 1 {
			out = append(out, name)
			continue
		}
		out = append(out, fmt.Sprintf("%s x%d", name, n))
	}
	sort.Strings(out)
	return out
}
