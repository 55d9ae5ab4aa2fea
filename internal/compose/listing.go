package compose

import (
	"fmt"
	"strings"
)

// PropertyListing holds the structured fields the agent fills in before a
// description is assembled. Construct it through NewPropertyListing so the
// field invariants are checked once, at the boundary.
type PropertyListing struct {
	Code         string
	Price        string // pt-BR formatted, e.g. "350.000,00"
	Neighborhood string
	City         string
	TotalArea    *float64 // m², nil when the agent left it blank
	PrivateArea  *float64
	Extra        string // optional free text inserted after the code line
	Features     string // raw feature text sent to the formatting adapter
}

// ValidationError reports a single malformed or missing field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo %q: %s", e.Field, e.Reason)
}

// ValidationErrors aggregates per-field failures so the UI can highlight each
// offending input at once.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return strings.Join(msgs, "; ")
}

// NewPropertyListing validates and builds a PropertyListing. It returns
// ValidationErrors listing every failed field, or the listing with all string
// fields trimmed.
func NewPropertyListing(code, price, neighborhood, city string, totalArea, privateArea *float64, extra, features string) (*PropertyListing, error) {
	var errs ValidationErrors

	required := []struct {
		field, value string
	}{
		{"codigo", code},
		{"preco", price},
		{"bairro", neighborhood},
		{"cidade", city},
		{"caracteristicas", features},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, &ValidationError{Field: r.field, Reason: "obrigatório"})
		}
	}

	if totalArea != nil && *totalArea <= 0 {
		errs = append(errs, &ValidationError{Field: "areaTotal", Reason: "deve ser um número positivo"})
	}
	if privateArea != nil && *privateArea <= 0 {
		errs = append(errs, &ValidationError{Field: "areaPrivada", Reason: "deve ser um número positivo"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &PropertyListing{
		Code:         strings.TrimSpace(code),
		Price:        strings.TrimSpace(price),
		Neighborhood: strings.TrimSpace(neighborhood),
		City:         strings.TrimSpace(city),
		TotalArea:    totalArea,
		PrivateArea:  privateArea,
		Extra:        strings.TrimSpace(extra),
		Features:     strings.TrimSpace(features),
	}, nil
}
