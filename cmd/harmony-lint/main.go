package main

import (
	"log"
	"os"

	"harmonystrings/internal/application"
	"harmonystrings/internal/config"
	"harmonystrings/internal/infrastructure/catalog"
)

// harmony-lint validates the embedded localization catalog the way the host
// ecosystem's translation tooling would at build time: load every locale,
// run the structural checks, exit non-zero on any defect.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	source, err := catalog.Load(cfg.DefaultLocale)
	if err != nil {
		log.Fatalf("catalog failed to load: %v", err)
	}

	validator := application.NewValidationService(source)

	defects := validator.Validate()
	for _, defect := range defects {
		log.Printf("defect: %s", defect)
	}

	missing := validator.MissingTranslations()
	for _, m := range missing {
		log.Printf("warning: %s", m)
	}

	if len(defects) > 0 || (cfg.Strict && len(missing) > 0) {
		os.Exit(1)
	}

	log.Printf("catalog OK: %d locales, default %q", len(source.Locales()), source.DefaultLocale())
}
