// Package units converts between the canonical stored mass (kg) and the
// user's display unit.
package units

import (
	"math"

	"github.com/alexanderramin/gymtrack/internal/domain"
)

// KgToLbs is the fixed conversion factor.
const KgToLbs = 2.20462

// Converter converts weights for one unit system.
type Converter struct {
	System domain.UnitSystem
}

func New(system domain.UnitSystem) Converter {
	return Converter{System: system}
}

func (c Converter) imperial() bool {
	return c.System == domain.UnitImperial
}

// Display converts kg to the display unit rounded to one decimal. NaN and
// infinite input yield the empty Number.
func (c Converter) Display(kg float64) domain.Number {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return domain.Empty()
	}
	if c.imperial() {
		return domain.Num(Round1(kg * KgToLbs))
	}
	return domain.Num(Round1(kg))
}

// DisplayValue is Display without the empty case (empty reads as 0).
func (c Converter) DisplayValue(kg float64) float64 {
	return c.Display(kg).Float()
}

// Store parses a display-unit input and returns kg. Unparseable input is 0.
func (c Converter) Store(input string) float64 {
	return c.StoreNumber(domain.ParseNumber(input))
}

// StoreNumber converts a display-unit Number to kg. Empty is 0.
func (c Converter) StoreNumber(n domain.Number) float64 {
	if !n.Valid() {
		return 0
	}
	return c.StoreValue(n.Float())
}

func (c Converter) StoreValue(display float64) float64 {
	if c.imperial() {
		return display / KgToLbs
	}
	return display
}

// Label is the short unit name shown next to weights.
func (c Converter) Label() string {
	if c.imperial() {
		return "lbs"
	}
	return "kg"
}

// Round1 rounds half away from zero to one decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}
