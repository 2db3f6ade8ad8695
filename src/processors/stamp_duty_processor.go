package processors

import (
	"github.com/username/propfolio/src/rates"
	"github.com/username/propfolio/src/utils"
)

// stampDutyCalculatorImpl implements the StampDutyCalculator interface.
type stampDutyCalculatorImpl struct {
	table *rates.Table
}

// NewStampDutyCalculator creates a StampDutyCalculator over the given rate
// tables.
func NewStampDutyCalculator(table *rates.Table) StampDutyCalculator {
	return &stampDutyCalculatorImpl{table: table}
}

// Calculate walks the jurisdiction's bracket schedule and returns the duty
// for the price. It never fails: a negative or zero price lands in the
// lowest bracket and an unknown jurisdiction pays the flat fallback rate.
func (c *stampDutyCalculatorImpl) Calculate(price float64, jurisdiction string) float64 {
	if price < 0 {
		price = 0
	}

	j, ok := c.table.Lookup(jurisdiction)
	if !ok {
		return utils.RoundFloat(price*c.table.Fallback.FlatStampRate, 2)
	}

	schedule := j.StampDuty
	bracket, prevBound := matchBracket(schedule.Brackets, price)

	var duty float64
	switch schedule.Style {
	case rates.StylePercentOfTotal:
		// Approximated schedules charge the band rate on the whole price,
		// not on the excess over the band floor.
		duty = price * bracket.Rate
	case rates.StylePer100:
		duty = bracket.Base + (price-prevBound)/100*bracket.Rate
	default:
		duty = bracket.Base + (price-prevBound)*bracket.Rate
	}

	if duty < schedule.Minimum {
		duty = schedule.Minimum
	}
	return utils.RoundFloat(duty, 2)
}

// matchBracket finds the first bracket whose upper bound covers the price,
// along with the previous bracket's bound (the excess baseline). The last
// bracket is open-ended and catches everything.
func matchBracket(brackets []rates.Bracket, price float64) (rates.Bracket, float64) {
	prev := 0.0
	for i, b := range brackets {
		last := i == len(brackets)-1
		if last || price <= b.UpperBound {
			return b, prev
		}
		prev = b.UpperBound
	}
	// Unreachable: schedules are validated non-empty at load time.
	return rates.Bracket{}, 0
}
