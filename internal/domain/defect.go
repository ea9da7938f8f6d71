package domain

import "fmt"

// Defect describes a single structural problem found while validating a
// localization catalog. Defects are reporting values, not errors: a
// validation run collects every defect instead of stopping at the first.
type Defect struct {
	Locale string
	Key    string
	Detail string
}

func (d Defect) String() string {
	if d.Key == "" {
		return fmt.Sprintf("[%s] %s", d.Locale, d.Detail)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Locale, d.Key, d.Detail)
}
