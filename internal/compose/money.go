package compose

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// currencyMarker matches an optional leading "R$" (and surrounding whitespace)
// that agents often paste along with the price.
var currencyMarker = regexp.MustCompile(`^\s*R\$\s*`)

// ParsePrice converts a pt-BR formatted price string ("350.000,00", optionally
// prefixed with "R$") into a float. The boolean reports whether parsing
// succeeded.
func ParsePrice(raw string) (float64, bool) {
	s := currencyMarker.ReplaceAllString(strings.TrimSpace(raw), "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// FormatPrice renders a raw price string as grouped BRL currency
// ("R$ 350.000,00"). When the input does not parse as a number the original
// string is returned unchanged; callers that care can detect this by comparing
// against the input.
func FormatPrice(raw string) string {
	v, ok := ParsePrice(raw)
	if !ok {
		return raw
	}
	return "R$ " + ptBR.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2)))
}

// FormatArea renders a square-meter measure with pt-BR thousands grouping and
// no forced decimal places (120 -> "120", 1250.5 -> "1.250,5").
func FormatArea(v float64) string {
	return ptBR.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(2)))
}
