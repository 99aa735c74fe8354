package domain

import "fmt"

// MsatPerSat is the number of millisatoshis in one satoshi. Amounts are kept
// in millisatoshis internally so fractional-sat fee reserves stay exact.
const MsatPerSat = 1000

// FormatSats renders a millisatoshi amount in whole satoshis for user-facing
// messages, e.g. 21000 -> "21 sats".
func FormatSats(msat int64) string {
	return fmt.Sprintf("%d sats", msat/MsatPerSat)
}
