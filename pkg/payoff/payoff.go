// Package payoff simulates the repayment of a fixed-rate loan, one period at
// a time, and counts how many payments it takes to clear the balance.
package payoff

import (
	"errors"
	"fmt"

	"github.com/aybabtme/mortgage/pkg/kvlog"
	"github.com/aybabtme/mortgage/pkg/utilmath"
)

const (
	// DefaultYears is the term assumed by RemainingPayments when no
	// payment policy is given.
	DefaultYears = 30

	// DefaultMaxPayments bounds a simulation.
	DefaultMaxPayments = 100_000
)

var (
	// ErrPaymentTooLow is returned when a payment doesn't cover the interest
	// due, so the balance would never go down.
	ErrPaymentTooLow = errors.New("payment too low to amortize")

	// ErrTooManyPayments is returned when the balance is still not paid off
	// after the maximum number of payments.
	ErrTooManyPayments = errors.New("too many payments")

	// ErrInvalidMaxPayments is returned when the maximum number of payments
	// is below 1.
	ErrInvalidMaxPayments = errors.New("max payments must be positive")
)

// StallError describes the period at which a loan stopped amortizing.
// It matches ErrPaymentTooLow.
type StallError struct {
	Period   int
	Balance  float64
	Interest float64
	Payment  float64
}

func (e *StallError) Error() string {
	return fmt.Sprintf("%v: period %d pays %.2f against %.2f of interest on a balance of %.2f",
		ErrPaymentTooLow, e.Period, e.Payment, e.Interest, e.Balance)
}

func (e *StallError) Unwrap() error { return ErrPaymentTooLow }

type Option func(*options)

type options struct {
	log         kvlog.Logger
	maxPayments int
}

// WithLogger logs every simulated period.
func WithLogger(log kvlog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithMaxPayments stops a simulation after n payments. n must be at least 1.
func WithMaxPayments(n int) Option {
	return func(o *options) { o.maxPayments = n }
}

// RemainingPayments counts the payments needed to bring balance to zero.
// A nil payment is Amortizing over a fixed term of DefaultYears, whatever
// the term of the loan the balance comes from; pass Amortizing explicitly to
// use the loan's own term.
func RemainingPayments(balance, annualRate float64, payment Payment, paymentsPerYear int, opts ...Option) (int, error) {
	o := options{log: kvlog.LogMute(), maxPayments: DefaultMaxPayments}
	for _, opt := range opts {
		opt(&o)
	}
	if paymentsPerYear < 1 {
		return 0, fmt.Errorf("%w: %d payments per year", utilmath.ErrInvalidTerm, paymentsPerYear)
	}
	if o.maxPayments < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidMaxPayments, o.maxPayments)
	}
	if payment == nil {
		payment = Amortizing(annualRate, DefaultYears, paymentsPerYear)
	}

	payments := 0
	for balance > 0 {
		if payments >= o.maxPayments {
			return payments, fmt.Errorf("%w: %.2f still owed after %d payments", ErrTooManyPayments, balance, payments)
		}
		interest := utilmath.InterestDue(balance, annualRate, paymentsPerYear)
		amount, err := payment.Next(balance, interest, payments)
		if err != nil {
			return payments, fmt.Errorf("period %d: %w", payments+1, err)
		}
		if amount <= interest {
			return payments, &StallError{
				Period:   payments + 1,
				Balance:  balance,
				Interest: interest,
				Payment:  amount,
			}
		}
		if amount >= balance+interest {
			// last payment, don't leave a rounding residue behind
			balance = 0
		} else {
			balance -= amount - interest
		}
		payments++

		o.log.KVi("period", payments).
			KVf("payment", amount).
			KVf("interest", interest).
			KVf("balance", balance).
			Event("payment made")
	}
	o.log.KVi("payments", payments).Event("loan paid off")
	return payments, nil
}
