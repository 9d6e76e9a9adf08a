// Package varga maps longitudes into divisional (varga) charts.
//
// Each supported division factor has its own mapping rule, registered in a
// table keyed by factor. Every rule receives the D1 sign and the degrees
// already traversed inside it, and returns a sign index that is reduced
// modulo 12. Factors without a rule fall back to the D1 sign.
package varga

import (
	"sort"
	"strconv"

	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/pkg/formulas"
)

// Mapper maps a sign index and the degrees inside it (in [0, 30)) to a sign offset.
type Mapper func(sign int, rem float64) int

// Division describes one supported divisional chart
type Division struct {
	Factor int    `json:"factor"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	mapper Mapper
}

var registry = map[int]Division{}

func register(factor int, name string, m Mapper) {
	registry[factor] = Division{
		Factor: factor,
		Code:   "D" + strconv.Itoa(factor),
		Name:   name,
		mapper: m,
	}
}

func init() {
	register(2, "Hora", hora)
	register(3, "Drekkana", drekkana)
	register(4, "Chaturthamsha", chaturthamsha)
	register(7, "Saptamsha", saptamsha)
	register(9, "Navamsha", navamsha)
	register(10, "Dashamsha", dashamsha)
	register(12, "Dwadashamsha", dwadashamsha)
	register(16, "Shodashamsha", shodashamsha)
	register(20, "Vimshamsha", vimshamsha)
	register(24, "Chaturvimshamsha", chaturvimshamsha)
	register(27, "Bhamsha", bhamsha)
	register(30, "Trimshamsha", trimshamsha)
	register(40, "Khavedamsha", khavedamsha)
	register(45, "Akshavedamsha", akshavedamsha)
	register(60, "Shashtiamsha", shashtiamsha)
}

// Map places a longitude into the sign of the given division.
// Unsupported factors (including 1) return the plain D1 sign.
func Map(lon float64, factor int) domain.Sign {
	lon = formulas.Normalize(lon)
	sign := formulas.SignIndex(lon)

	d, ok := registry[factor]
	if !ok {
		return domain.Sign(sign)
	}
	return domain.Sign(formulas.Mod12(d.mapper(sign, formulas.InSign(lon))))
}

// Lookup returns the division registered for factor.
func Lookup(factor int) (Division, bool) {
	d, ok := registry[factor]
	return d, ok
}

// IsSupported reports whether factor has a dedicated mapping rule.
func IsSupported(factor int) bool {
	_, ok := registry[factor]
	return ok
}

// Supported lists all registered divisions ordered by factor.
func Supported() []Division {
	out := make([]Division, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Factor < out[j].Factor })
	return out
}

// Name returns the display name for a factor, "Rashi" for D1 and unknown factors.
func Name(factor int) string {
	if d, ok := registry[factor]; ok {
		return d.Name
	}
	return "Rashi"
}
