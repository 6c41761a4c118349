package orders

import "github.com/shopspring/decimal"

// QuantizeToStep floors qty to the nearest multiple of step. The exchange
// rejects quantities off the symbol's lot grid, so the result is always
// floor(qty/step)*step; a quantity already on the grid comes back
// unchanged. QuoRem keeps the arithmetic exact, Div would round the
// quotient at a fixed precision. step must be positive.
func QuantizeToStep(qty, step decimal.Decimal) decimal.Decimal {
	q, _ := qty.QuoRem(step, 0)
	return q.Mul(step)
}
