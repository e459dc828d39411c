package services

import "errors"

// Quote outcomes that are not plain errors: the category needs a manual
// quote, or it isn't priced at all.
var (
	ErrCustomQuote     = errors.New("Custom Quote")
	ErrInvalidCategory = errors.New("Invalid category")
)

// Base cost per property category, one column per area band.
var costTable = map[string][4]int{
	"Retail Store / Showroom":      {5999, 9999, 15999, 20999},
	"Restaurants & Cafes":          {7999, 11999, 19999, 25999},
	"Fitness & Sports Arenas":      {9999, 13999, 22999, 31999},
	"Resorts & Farmstays / Hotels": {11999, 17999, 29999, 39999},
	"Real Estate Property":         {13999, 23999, 37999, 49999},
	"Shopping Mall / Complex":      {15999, 29999, 47999, 63999},
	"Adventure / Water Parks":      {12999, 23999, 39999, 55999},
	"Gaming & Entertainment Zones": {10999, 19999, 33999, 45999},
}

// Upper bound of each area band in sq ft.
var areaBands = [4]float64{1000, 5000, 10000, 50000}

// CalculateCost prices a booking from its property category, area and floor
// count. Each floor past the first adds 10%, truncated to a whole rupee.
// Anything above 50000 sq ft is quoted manually.
func CalculateCost(category string, areaSqft float64, numFloors int) (base, final int, err error) {
	bands, ok := costTable[category]
	if !ok {
		return 0, 0, ErrInvalidCategory
	}
	if areaSqft > areaBands[3] {
		return 0, 0, ErrCustomQuote
	}

	idx := len(areaBands)
	for i, max := range areaBands {
		if areaSqft <= max {
			idx = i
			break
		}
	}
	if idx >= len(bands) {
		return 0, 0, ErrCustomQuote
	}
	base = bands[idx]

	if numFloors < 1 {
		numFloors = 1
	}
	final = int(float64(base) * (1 + 0.1*float64(numFloors-1)))
	return base, final, nil
}
