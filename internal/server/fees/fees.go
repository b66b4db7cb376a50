// Package fees contains the pure fee-split arithmetic shared by the match
// submission, timeout-refund, and force-refund paths.
package fees

// PlatformShare returns the platform's cut of fee, computed in basis points.
// Integer division truncates toward zero, so the share never exceeds
// fee*bps/10000 and the participant keeps the rounding remainder.
func PlatformShare(fee, shareBps int64) int64 {
	if fee <= 0 || shareBps <= 0 {
		return 0
	}
	return fee * shareBps / 10000
}

// Refund returns the amount credited back to the requester when a match
// times out or is force-refunded: the fee actually paid minus the platform
// share already retained.
func Refund(feePaid, shareBps int64) int64 {
	return feePaid - PlatformShare(feePaid, shareBps)
}

// Overpayment returns the excess above the minimum fee, credited to the
// requester's ledger at match creation. Zero when feePaid <= minFee.
func Overpayment(feePaid, minFee int64) int64 {
	if feePaid <= minFee {
		return 0
	}
	return feePaid - minFee
}
