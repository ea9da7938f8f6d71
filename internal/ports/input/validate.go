package input

import "harmonystrings/internal/domain"

type ValidateUseCase interface {
	// Validate checks the whole catalog and returns every structural defect
	// found. An empty slice means the catalog is sound.
	Validate() []domain.Defect
}
