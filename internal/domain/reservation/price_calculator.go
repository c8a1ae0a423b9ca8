package reservation

import "math"

// PriceCalculator bills whole started hours; there is no proration.
type PriceCalculator interface {
	InitialCost(base Money, durationHours float64) Money
	ExtensionCost(base Money, additionalHours float64) Money
}

type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) InitialCost(base Money, durationHours float64) Money {
	return base.Times(BillableHours(durationHours))
}

func (pc *HourlyPriceCalculator) ExtensionCost(base Money, additionalHours float64) Money {
	return base.Times(BillableHours(additionalHours))
}

const minBilledHours int64 = 1

func BillableHours(hours float64) int64 {
	if hours <= 0 || math.IsNaN(hours) {
		return 0
	}
	return int64(math.Ceil(hours))
}
