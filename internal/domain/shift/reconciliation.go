package shift

import (
	"github.com/shopspring/decimal"
)

// Reconciliation arithmetic for shift close. These are pure
// functions so the figures can be recomputed and verified against
// the stored shift at any time.

// TotalLiters sums the dispensed volume across readings
func TotalLiters(readings []Reading) decimal.Decimal {
	total := decimal.Zero
	for i := range readings {
		total = total.Add(readings[i].Liters())
	}
	return total
}

// MeterSales sums the meter sales value across readings
func MeterSales(readings []Reading) decimal.Decimal {
	total := decimal.Zero
	for i := range readings {
		total = total.Add(readings[i].SaleAmount())
	}
	return total
}

// PaymentTotal sums the payment modes collected during a shift.
// Indent sales settle against customer credit, not shift cash, so
// they are tracked separately and excluded here.
func PaymentTotal(cash, card, upi decimal.Decimal) decimal.Decimal {
	return cash.Add(card).Add(upi)
}

// CashDifference reconciles the cash drawer at shift end. The
// attendant should hand in the cash sales minus any expenses paid
// from the drawer, so the difference is what was handed in minus
// cash sales plus expenses. Zero means balanced, negative means
// short, positive means excess.
func CashDifference(cashRemaining, cashSales, expenses decimal.Decimal) decimal.Decimal {
	return cashRemaining.Sub(cashSales).Add(expenses)
}

// ConsumableExpenses sums the value of unreturned consumables
func ConsumableExpenses(allocations []ConsumableAllocation) decimal.Decimal {
	total := decimal.Zero
	for i := range allocations {
		total = total.Add(allocations[i].Expense())
	}
	return total
}
