package utilmath

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidTerm is returned when a loan would be repaid over less than one period.
	ErrInvalidTerm = errors.New("loan must be repaid over at least one period")

	// ErrPaymentOutOfRange is returned when a payment can't be counted in
	// whole currency units.
	ErrPaymentOutOfRange = errors.New("payment out of range")
)

func FixedPeriodicPayment(loanAmount, annualRateOfInterest float64, loanTenureInYears, paymentPerYear int) float64 {
	// Fixed Periodic Payment = P *[(r/n) * (1 + r/n)n*t] / [(1 + r/n)n*t – 1]
	// P = Outstanding Loan Amount
	// r = Rate of interest (Annual)
	// t = Tenure of Loan in Years
	// n = Number of Periodic Payments Per Year
	return periodicPayment(loanAmount, annualRateOfInterest/float64(paymentPerYear), loanTenureInYears*paymentPerYear)
}

func OutstandingLoanBalance(loanAmount, annualRateOfInterest float64, loanTenureInYears, paymentPerYear, afterYears int) float64 {
	// Outstanding Loan Balance = P * [(1 + r/n)n*t – (1 + r/n)n*m] / [(1 + r/n)n*t – 1]
	// P = Outstanding Loan Amount
	// r = Rate of interest (Annual)
	// t = Tenure of Loan in Years
	// n = Number of Periodic Payments Per Year
	// m = Years already paid
	p := loanAmount
	r := annualRateOfInterest
	t := float64(loanTenureInYears)
	n := float64(paymentPerYear)
	m := float64(afterYears)
	if r == 0 {
		return p * (t - m) / t
	}
	return p * (math.Pow(1+r/n, n*t) - math.Pow(1+r/n, n*m)) / (math.Pow(1+r/n, n*t) - 1)
}

// MinimumPayment is the smallest whole-unit payment that retires loanAmount
// within loanTenureInYears when paying paymentPerYear times a year. The exact
// payment is always rounded up.
func MinimumPayment(loanAmount, annualRateOfInterest float64, loanTenureInYears, paymentPerYear int) (int, error) {
	periods := loanTenureInYears * paymentPerYear
	if paymentPerYear < 1 || periods < 1 {
		return 0, fmt.Errorf("%w: %d years at %d payments per year", ErrInvalidTerm, loanTenureInYears, paymentPerYear)
	}
	return MinimumPaymentOver(loanAmount, annualRateOfInterest/float64(paymentPerYear), periods)
}

// MinimumPaymentOver is MinimumPayment for a periodic rate and a raw count of
// periods.
func MinimumPaymentOver(loanAmount, periodicRate float64, periods int) (int, error) {
	if periods < 1 {
		return 0, fmt.Errorf("%w: %d periods", ErrInvalidTerm, periods)
	}
	payment := math.Ceil(periodicPayment(loanAmount, periodicRate, periods))
	// over very long terms the payment tends to the interest alone, it must
	// still pay some principal
	if interest := loanAmount * periodicRate; periodicRate > 0 && payment <= interest {
		payment = math.Floor(interest) + 1
	}
	if !(payment < -math.MinInt) {
		return 0, fmt.Errorf("%w: %v per period", ErrPaymentOutOfRange, payment)
	}
	return int(payment), nil
}

// InterestDue is the interest accrued on balance over one payment period.
func InterestDue(balance, annualRateOfInterest float64, paymentPerYear int) float64 {
	return balance * (annualRateOfInterest / float64(paymentPerYear))
}

func periodicPayment(p, r float64, periods int) float64 {
	// with no interest the formula is 0/0, the loan is just split evenly
	if r == 0 || 1+r == 1 {
		return p / float64(periods)
	}
	return p * r / (1 - math.Pow(1+r, -float64(periods)))
}
