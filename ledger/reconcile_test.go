package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReconcileDebtPlusConsumption(t *testing.T) {
	// Owes 20 from before, drinks 30 today, paid nothing: charge 50.
	rec := Reconcile(-20, 30, 0)

	assert.InDelta(t, 30.0, rec.DailyConsumption, 1e-9)
	assert.InDelta(t, -20.0, rec.PreviousDebt, 1e-9)
	assert.InDelta(t, -50.0, rec.TotalDebt, 1e-9)
	assert.InDelta(t, 50.0, rec.TotalToPay, 1e-9)
}

func TestReconcilePureCreditIsNotADiscount(t *testing.T) {
	// Prepaid credit with an empty tab must not show a negative bill.
	rec := Reconcile(15, 0, 0)

	assert.Zero(t, rec.PreviousDebt)
	assert.Zero(t, rec.TotalToPay)
}

func TestReconcileCreditIgnoredAgainstConsumption(t *testing.T) {
	rec := Reconcile(15, 30, 0)

	// The credit is surfaced separately, never deducted here.
	assert.InDelta(t, 30.0, rec.TotalToPay, 1e-9)
}

func TestReconcilePartialPayment(t *testing.T) {
	rec := Reconcile(-20, 30, 35)

	assert.InDelta(t, 15.0, rec.TotalToPay, 1e-9)
}

func TestReconcileIdempotent(t *testing.T) {
	assert.Equal(t, Reconcile(-12.5, 41.5, 10), Reconcile(-12.5, 41.5, 10))
}
