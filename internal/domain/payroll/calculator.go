package payroll

import "github.com/shopspring/decimal"

var (
	taxRate             = decimal.NewFromFloat(0.18)
	uifRate             = decimal.NewFromFloat(0.01)
	workingDaysPerMonth = decimal.NewFromInt(22)
)

// Breakdown holds the deduction components derived from a salary.
type Breakdown struct {
	Tax             decimal.Decimal
	UIF             decimal.Decimal
	LeavePenalty    decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// Calculate derives the deduction breakdown for one pay period:
//
//	tax            = round(salary * 0.18)
//	uif            = round(salary * 0.01)
//	leave_penalty  = round(salary / 22 * leave_days)
//	net_salary     = salary - (tax + uif + leave_penalty)
//
// Each component is rounded half-up to a whole currency unit before summing.
// A large leave penalty can push net below zero; that result is returned
// as-is, not rejected.
func Calculate(salary decimal.Decimal, leaveDays int) Breakdown {
	tax := salary.Mul(taxRate).Round(0)
	uif := salary.Mul(uifRate).Round(0)
	leavePenalty := salary.Div(workingDaysPerMonth).Mul(decimal.NewFromInt(int64(leaveDays))).Round(0)
	totalDeductions := tax.Add(uif).Add(leavePenalty)

	return Breakdown{
		Tax:             tax,
		UIF:             uif,
		LeavePenalty:    leavePenalty,
		TotalDeductions: totalDeductions,
		NetSalary:       salary.Sub(totalDeductions),
	}
}
