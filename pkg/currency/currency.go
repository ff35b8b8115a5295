package currency

import (
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter convierte totales en unidades menores (centavos) a un texto de
// moneda según el locale configurado. El locale es una constante de
// configuración del servicio, no un parámetro por petición.
type Formatter struct {
	printer *message.Printer
	symbol  string
	scale   int
}

// NewFormatter crea un formateador para un locale BCP 47 (ej. "pt-BR")
// y un código de moneda ISO 4217 (ej. "BRL").
func NewFormatter(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return nil, err
	}

	printer := message.NewPrinter(tag)
	scale, _ := currency.Cash.Rounding(unit) // dígitos decimales de la moneda

	return &Formatter{
		printer: printer,
		symbol:  printer.Sprint(currency.Symbol(unit)),
		scale:   scale,
	}, nil
}

// FormatMinorUnits formatea un total en unidades menores,
// ej. 2000 -> "R$20,00" con pt-BR/BRL.
func (f *Formatter) FormatMinorUnits(total int64) string {
	major := float64(total) / math.Pow10(f.scale)
	return f.printer.Sprintf("%s%v", f.symbol,
		number.Decimal(major,
			number.MinFractionDigits(f.scale),
			number.MaxFractionDigits(f.scale)))
}
