// Package schedule works out the minimum payment of a fixed-rate mortgage
// and how long it takes to pay it off at a chosen payment.
package schedule

import (
	"errors"
	"fmt"
	"math"

	"github.com/aybabtme/mortgage/pkg/payoff"
	"github.com/aybabtme/mortgage/pkg/utilmath"
	"github.com/shopspring/decimal"
)

const (
	DefaultYears           = 30
	DefaultPaymentsPerYear = 12
)

// ErrInvalidInput matches every *InputError.
var ErrInvalidInput = errors.New("invalid input")

// InputError is the human-readable reason an Input was rejected.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }
func (e *InputError) Unwrap() error { return ErrInvalidInput }

func invalid(reason string) error { return &InputError{Reason: reason} }

// Input describes a mortgage. A nil TargetPayment means paying the minimum.
type Input struct {
	Principal       float64
	AnnualRate      float64
	Years           int
	PaymentsPerYear int
	TargetPayment   *float64
}

// Validate reports the first thing wrong with the input, if any.
func (in Input) Validate() error {
	if !(in.Principal > 0) || math.IsInf(in.Principal, 1) {
		return invalid("mortgage amount must be positive")
	}
	if !(in.AnnualRate >= 0 && in.AnnualRate <= 1) {
		return invalid("annual interest rate must be between 0 and 1")
	}
	if in.Years < 1 {
		return invalid("years must be positive")
	}
	if in.PaymentsPerYear < 1 {
		return invalid("number of payments per year must be positive")
	}
	if in.TargetPayment != nil {
		target := *in.TargetPayment
		if !(target >= 0) || math.IsInf(target, 1) {
			return invalid("target payment must be positive")
		}
	}
	return nil
}

// Result of a calculation. Payments is only set when the target payment is
// enough to amortize the mortgage.
type Result struct {
	MinimumPayment int
	TargetPayment  float64
	Payments       int
	Insufficient   bool
}

// Message describes the outcome for the target payment.
func (res Result) Message() string {
	if res.Insufficient {
		return "Your target payment is less than the minimum payment for this mortgage."
	}
	return fmt.Sprintf("If you make payments of $%s, you will pay off the mortgage in %d payments.",
		decimal.NewFromFloat(res.TargetPayment).String(), res.Payments)
}

// Compute finds the minimum payment for the input and, unless the target
// payment falls short of it, the number of payments needed at the target.
func Compute(in Input, opts ...payoff.Option) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}
	minimum, err := utilmath.MinimumPayment(in.Principal, in.AnnualRate, in.Years, in.PaymentsPerYear)
	if err != nil {
		return Result{}, err
	}
	res := Result{MinimumPayment: minimum, TargetPayment: float64(minimum)}
	if in.TargetPayment != nil {
		res.TargetPayment = *in.TargetPayment
	}
	if res.TargetPayment < float64(minimum) {
		res.Insufficient = true
		return res, nil
	}
	res.Payments, err = payoff.RemainingPayments(in.Principal, in.AnnualRate, payoff.Target(res.TargetPayment), in.PaymentsPerYear, opts...)
	if err != nil {
		return res, fmt.Errorf("paying %v per period: %w", res.TargetPayment, err)
	}
	return res, nil
}
