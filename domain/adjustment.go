package domain

import "math"

// AdjustmentType selects whether an adjustment value is an amount or a percentage.
type AdjustmentType string

const (
	AdjustmentFixed   AdjustmentType = "Fixed"
	AdjustmentDynamic AdjustmentType = "Dynamic"
)

// AdjustmentIncrement selects the direction of an adjustment.
type AdjustmentIncrement string

const (
	IncrementIncrease AdjustmentIncrement = "Increase"
	IncrementDecrease AdjustmentIncrement = "Decrease"
)

// PricingAdjustment describes how to move a price up or down.
// It is a value object: construction never fails, Validate reports illegal values.
type PricingAdjustment struct {
	AdjustmentType      AdjustmentType      `json:"adjustmentType"`
	AdjustmentIncrement AdjustmentIncrement `json:"adjustmentIncrement"`
	Value               float64             `json:"value"`
}

// Validate checks the adjustment on its own, independent of any base price.
func (a PricingAdjustment) Validate() error {
	switch a.AdjustmentType {
	case AdjustmentFixed, AdjustmentDynamic:
	default:
		return ErrInvalidAdjustment
	}
	switch a.AdjustmentIncrement {
	case IncrementIncrease, IncrementDecrease:
	default:
		return ErrInvalidAdjustment
	}
	if a.Value < 0 {
		return ErrInvalidAdjustmentValue
	}
	if a.AdjustmentType == AdjustmentDynamic && a.Value > 100 {
		return ErrPercentageOutOfRange
	}
	return nil
}

func (a PricingAdjustment) delta(basedOnPrice float64) float64 {
	if a.AdjustmentType == AdjustmentFixed {
		return a.Value
	}
	return (a.Value / 100) * basedOnPrice
}

func (a PricingAdjustment) apply(basedOnPrice float64) float64 {
	if a.AdjustmentIncrement == IncrementIncrease {
		return basedOnPrice + a.delta(basedOnPrice)
	}
	return basedOnPrice - a.delta(basedOnPrice)
}

// CalculatePrice applies the adjustment to basedOnPrice.
// The result is rounded to cents and never below zero.
func CalculatePrice(basedOnPrice float64, adjustment PricingAdjustment) float64 {
	return math.Max(0, roundCents(adjustment.apply(basedOnPrice)))
}

// ValidateAdjustment reports the first rule the pair violates, or nil.
// The negative-result rule is evaluated on the unclamped price.
func ValidateAdjustment(basedOnPrice float64, adjustment PricingAdjustment) error {
	if basedOnPrice < 0 {
		return ErrInvalidBasePrice
	}
	if err := adjustment.Validate(); err != nil {
		return err
	}
	if roundCents(adjustment.apply(basedOnPrice)) < 0 {
		return ErrResultWouldBeNegative
	}
	return nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
