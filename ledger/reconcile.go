package ledger

import "math"

// Reconciliation combines a tab's own consumption with the balance the
// client carried in. TotalDebt follows the convention used across the
// system: owed amounts are negative.
type Reconciliation struct {
	DailyConsumption float64 `json:"daily_consumption"`
	PreviousDebt     float64 `json:"previous_debt"`
	TotalDebt        float64 `json:"total_debt"`
	TotalToPay       float64 `json:"total_to_pay"`
}

// Reconcile folds the carried balance, the current tab's subtotal and its
// payments into the single figure the operator charges. A positive carried
// balance (prepaid credit) is surfaced to the operator elsewhere but never
// auto-applied as a discount here, so it is clamped to zero before the debt
// math. Stateless and idempotent.
func Reconcile(previousBalance, subtotal, paid float64) Reconciliation {
	previousDebt := math.Min(previousBalance, 0)
	totalDebt := previousDebt - subtotal

	return Reconciliation{
		DailyConsumption: subtotal,
		PreviousDebt:     previousDebt,
		TotalDebt:        totalDebt,
		TotalToPay:       math.Abs(totalDebt) - paid,
	}
}
