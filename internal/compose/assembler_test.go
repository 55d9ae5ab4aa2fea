package compose

import (
	"errors"
	"strings"
	"testing"
)

func newFloat(v float64) *float64 { return &v }

var testContactLines = []string{
	"📞 (31) 3333-0000",
	"📸 Instagram: @exemplo.imoveis",
	"📍 Rua das Acácias, 10 - Savassi",
}

func testListing(t *testing.T) *PropertyListing {
	t.Helper()
	l, err := NewPropertyListing(
		"AP0123", "350.000,00", "Centro", "Belo Horizonte",
		newFloat(120), newFloat(90), "", "3 quartos, 2 vagas",
	)
	if err != nil {
		t.Fatalf("NewPropertyListing failed: %v", err)
	}
	return l
}

func TestAssemble(t *testing.T) {
	a := NewAssembler("MG", testContactLines)
	block := "✅ 3 quartos;\n✅ 2 vagas;"

	got, err := a.Assemble(testListing(t), block)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	want := strings.Join([]string{
		"CENTRO - BELO HORIZONTE/MG",
		"",
		"Código do imóvel: AP0123",
		"",
		"CARACTERÍSTICAS PRINCIPAIS:",
		"✅ 3 quartos;\n✅ 2 vagas;",
		"",
		"Área Total: 120 m²",
		"Área Privada: 90 m²",
		"💰VALOR: R$ 350.000,00",
		"",
		"📞 (31) 3333-0000",
		"📸 Instagram: @exemplo.imoveis",
		"📍 Rua das Acácias, 10 - Savassi",
	}, "\n")

	if got != want {
		t.Errorf("Assemble mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("Assemble output must not end with a newline")
	}
}

func TestAssembleWithExtraText(t *testing.T) {
	a := NewAssembler("MG", testContactLines)
	l := testListing(t)
	l.Extra = "  Aceita financiamento e FGTS.  "

	got, err := a.Assemble(l, "✅ Piscina;")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if !strings.Contains(got, "Código do imóvel: AP0123\n\nAceita financiamento e FGTS.\n") {
		t.Errorf("extra text paragraph missing or untrimmed:\n%s", got)
	}
}

func TestAssembleStripsFeatureBlockIndent(t *testing.T) {
	a := NewAssembler("MG", testContactLines)

	got, err := a.Assemble(testListing(t), "   ✅ 3 quartos;\n   ✅ 2 vagas;")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if !strings.Contains(got, "CARACTERÍSTICAS PRINCIPAIS:\n✅ 3 quartos;\n   ✅ 2 vagas;") {
		t.Errorf("only the first line's leading whitespace should be stripped:\n%s", got)
	}
}

func TestAssembleOmitsUnsetAreas(t *testing.T) {
	a := NewAssembler("MG", testContactLines)
	l := testListing(t)
	l.TotalArea = nil
	l.PrivateArea = nil

	got, err := a.Assemble(l, "✅ Piscina;")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if strings.Contains(got, "Área Total") || strings.Contains(got, "Área Privada") {
		t.Errorf("area lines should be omitted when unset:\n%s", got)
	}
}

func TestAssembleRefusesEmptyFeatureBlock(t *testing.T) {
	a := NewAssembler("MG", testContactLines)

	for _, block := range []string{"", "   ", "\n\n"} {
		if _, err := a.Assemble(testListing(t), block); !errors.Is(err, ErrEmptyFeatureBlock) {
			t.Errorf("Assemble(%q) error = %v, want ErrEmptyFeatureBlock", block, err)
		}
	}
}

func TestAssemblePriceFallback(t *testing.T) {
	a := NewAssembler("MG", testContactLines)
	l := testListing(t)
	l.Price = "consulte"

	got, err := a.Assemble(l, "✅ Piscina;")
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if !strings.Contains(got, "💰VALOR: consulte") {
		t.Errorf("unparsable price should pass through unchanged:\n%s", got)
	}
}
