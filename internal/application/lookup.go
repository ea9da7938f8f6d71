package application

import (
	"harmonystrings/internal/ports/input"
	"harmonystrings/internal/ports/output"
)

// Ensure LookupService implements the input.LookupUseCase port.
var _ input.LookupUseCase = (*LookupService)(nil)

// LookupService is the host-facing string lookup: key path + locale +
// optional placeholder data in, resolved text out. Pure, no side effects.
type LookupService struct {
	translator output.T
}

func NewLookupService(translator output.T) *LookupService {
	return &LookupService{translator: translator}
}

func (s *LookupService) Resolve(locale, key string, data map[string]any) string {
	return s.translator.T(locale, key, data)
}
