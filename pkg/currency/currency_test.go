package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMinorUnits_BRL(t *testing.T) {
	f, err := NewFormatter("pt-BR", "BRL")
	assert.NoError(t, err)

	tests := []struct {
		name     string
		total    int64
		expected string
	}{
		{name: "total cero", total: 0, expected: "R$0,00"},
		{name: "total con decimales", total: 2000, expected: "R$20,00"},
		{name: "total con centavos sueltos", total: 1999, expected: "R$19,99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.FormatMinorUnits(tt.total))
		})
	}
}

func TestNewFormatter_InvalidInputs(t *testing.T) {
	_, err := NewFormatter("???", "BRL")
	assert.Error(t, err)

	_, err = NewFormatter("pt-BR", "NOPE")
	assert.Error(t, err)
}
