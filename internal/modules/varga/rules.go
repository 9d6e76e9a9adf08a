package varga

import (
	"github.com/aristath/jyotish/internal/domain"
	"github.com/aristath/jyotish/pkg/formulas"
)

func isEven(sign int) bool { return sign%2 == 0 }

// hora: even-indexed signs give Leo then Cancer, odd-indexed signs the reverse.
func hora(sign int, rem float64) int {
	firstHalf := rem < 15
	if isEven(sign) == firstHalf {
		return int(domain.Leo)
	}
	return int(domain.Cancer)
}

func drekkana(sign int, rem float64) int {
	return sign + formulas.FloorDiv(rem, 10)*4
}

func chaturthamsha(sign int, rem float64) int {
	return sign + formulas.FloorDiv(rem, 7.5)*3
}

func saptamsha(sign int, rem float64) int {
	start := sign
	if !isEven(sign) {
		start = sign + 6
	}
	return start + formulas.FloorDiv(rem, 30.0/7)
}

// navamsha counts ninths of a sign continuously from Aries, so it works on the
// whole longitude rather than the sign offset.
func navamsha(sign int, rem float64) int {
	lon := float64(sign)*formulas.SignWidth + rem
	return formulas.FloorDiv(lon*9, formulas.SignWidth)
}

func dashamsha(sign int, rem float64) int {
	start := sign
	if !isEven(sign) {
		start = sign + 8
	}
	return start + formulas.FloorDiv(rem, 3)
}

func dwadashamsha(sign int, rem float64) int {
	return sign + formulas.FloorDiv(rem, 2.5)
}

func shodashamsha(sign int, rem float64) int {
	return (sign%3)*4 + formulas.FloorDiv(rem, 30.0/16)
}

var vimshamshaStart = [3]int{0, 8, 4}

func vimshamsha(sign int, rem float64) int {
	return vimshamshaStart[sign%3] + formulas.FloorDiv(rem, 1.5)
}

func chaturvimshamsha(sign int, rem float64) int {
	start := 3
	if isEven(sign) {
		start = 4
	}
	return start + formulas.FloorDiv(rem, 1.25)
}

func bhamsha(sign int, rem float64) int {
	return (sign%4)*3 + formulas.FloorDiv(rem, 30.0/27)
}

// trimshaBand is an upper-exclusive degree bound and the sign it maps to.
type trimshaBand struct {
	upTo float64
	sign domain.Sign
}

var (
	trimshaEven = []trimshaBand{
		{5, domain.Aries},
		{10, domain.Aquarius},
		{18, domain.Sagittarius},
		{25, domain.Gemini},
		{30, domain.Libra},
	}
	trimshaOdd = []trimshaBand{
		{5, domain.Taurus},
		{12, domain.Virgo},
		{20, domain.Pisces},
		{25, domain.Capricorn},
		{30, domain.Scorpio},
	}
)

func trimshamsha(sign int, rem float64) int {
	bands := trimshaOdd
	if isEven(sign) {
		bands = trimshaEven
	}
	for _, b := range bands {
		if rem < b.upTo {
			return int(b.sign)
		}
	}
	return int(bands[len(bands)-1].sign)
}

func khavedamsha(sign int, rem float64) int {
	start := 6
	if isEven(sign) {
		start = 0
	}
	return start + formulas.FloorDiv(rem, 0.75)
}

func akshavedamsha(sign int, rem float64) int {
	return (sign%3)*4 + formulas.FloorDiv(rem, 30.0/45)
}

func shashtiamsha(sign int, rem float64) int {
	return sign + formulas.FloorDiv(rem*2, 1)
}
