package payoff

import (
	"math"

	"github.com/aybabtme/mortgage/pkg/utilmath"
)

// Payment decides how much is paid in a period, given the balance owed at
// the start of the period, the interest due for it and the number of
// payments already made.
type Payment interface {
	Next(balance, interest float64, paid int) (float64, error)
}

// PaymentFunc decides payments by invoking a given function.
type PaymentFunc func(balance, interest float64, paid int) (float64, error)

// Next decides a payment.
func (fn PaymentFunc) Next(balance, interest float64, paid int) (float64, error) {
	return fn(balance, interest, paid)
}

// Target pays the same amount every period, except the last one which only
// pays what is left.
func Target(amount float64) Payment {
	return PaymentFunc(func(balance, interest float64, _ int) (float64, error) {
		return math.Min(amount, balance+interest), nil
	})
}

// Amortizing pays, every period, the minimum payment that retires the
// current balance within what is left of a term of the given years.
// Once the term is over, the whole balance is due.
func Amortizing(annualRate float64, years, paymentsPerYear int) Payment {
	periodicRate := annualRate / float64(paymentsPerYear)
	periods := years * paymentsPerYear
	return PaymentFunc(func(balance, interest float64, paid int) (float64, error) {
		left := periods - paid
		if left < 1 {
			left = 1
		}
		minimum, err := utilmath.MinimumPaymentOver(balance, periodicRate, left)
		if err != nil {
			return 0, err
		}
		return math.Min(float64(minimum), balance+interest), nil
	})
}
