package pettycash

// OnHand returns the remaining petty-cash balance: the configured target float
// minus the active cycle's running total. Callers with no active cycle should
// report 0 rather than the configured amount.
func OnHand(configAmount, activeCycleTotal int64) int64 {
	return configAmount - activeCycleTotal
}

// IsLow reports whether the on-hand balance has fallen to or below the
// configured warning threshold. There is no hysteresis: the flag clears as
// soon as the balance rises above the threshold again.
func IsLow(onHand, warningAmount int64) bool {
	return onHand <= warningAmount
}
