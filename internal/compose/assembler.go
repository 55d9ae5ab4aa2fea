package compose

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFeatureBlock is returned when assembly is attempted without a usable
// formatted feature block. No partial description is ever produced.
var ErrEmptyFeatureBlock = errors.New("bloco de características vazio")

// DefaultContactLines close every description. They mirror the agency's
// standing footer and can be overridden through configuration.
var DefaultContactLines = []string{
	"📞 (31) 99641-2208",
	"📸 Instagram: @gustavopk.imoveis",
	"📍 Av. Afonso Pena, 1500 - Centro, Belo Horizonte",
}

// Assembler builds the final multi-line listing description from a validated
// PropertyListing and an AI-formatted feature block. It is a pure value with
// no side effects; the zero value is not usable, call NewAssembler.
type Assembler struct {
	stateAbbrev  string
	contactLines []string
}

// NewAssembler returns an Assembler for the given state abbreviation (e.g.
// "MG") and closing contact lines. Empty arguments fall back to the defaults.
func NewAssembler(stateAbbrev string, contactLines []string) *Assembler {
	if stateAbbrev == "" {
		stateAbbrev = "MG"
	}
	if len(contactLines) == 0 {
		contactLines = DefaultContactLines
	}
	return &Assembler{stateAbbrev: stateAbbrev, contactLines: contactLines}
}

// Assemble produces the description text. The line layout is fixed; blank
// entries are deliberate paragraph separators. The feature block is inserted
// verbatim apart from leading whitespace stripped off its first line. The
// result carries no trailing newline.
func (a *Assembler) Assemble(l *PropertyListing, featureBlock string) (string, error) {
	if strings.TrimSpace(featureBlock) == "" {
		return "", ErrEmptyFeatureBlock
	}

	lines := []string{
		fmt.Sprintf("%s - %s/%s", strings.ToUpper(l.Neighborhood), strings.ToUpper(l.City), a.stateAbbrev),
		"",
		"Código do imóvel: " + l.Code,
	}

	if extra := strings.TrimSpace(l.Extra); extra != "" {
		lines = append(lines, "", extra)
	}

	lines = append(lines,
		"",
		"CARACTERÍSTICAS PRINCIPAIS:",
		strings.TrimLeft(featureBlock, " \t"),
		"",
	)

	if l.TotalArea != nil {
		lines = append(lines, fmt.Sprintf("Área Total: %s m²", FormatArea(*l.TotalArea)))
	}
	if l.PrivateArea != nil {
		lines = append(lines, fmt.Sprintf("Área Privada: %s m²", FormatArea(*l.PrivateArea)))
	}

	lines = append(lines, "💰VALOR: "+FormatPrice(l.Price), "")
	lines = append(lines, a.contactLines...)

	return strings.Join(lines, "\n"), nil
}
