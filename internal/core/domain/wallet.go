package domain

import (
	"time"
)

// Wallet is a custodial sub-balance of the shared Lightning node. Its balance
// is never stored; it is always the sum of settled transaction amounts.
type Wallet struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"` // soft delete, history preserved

	// Loaded on demand via query filters.
	Transactions []Transaction `json:"transactions,omitempty"`
	AccessKeys   []AccessKey   `json:"access_keys,omitempty"`
}

// Balance sums AmountSettled over the loaded transactions, in millisatoshis.
// The authoritative balance for admission checks comes from the store.
func (w *Wallet) Balance() int64 {
	var total int64
	for _, t := range w.Transactions {
		if t.AmountSettled != nil {
			total += *t.AmountSettled
		}
	}
	return total
}

// IsDeleted reports whether the wallet has been soft-deleted.
func (w *Wallet) IsDeleted() bool {
	return w.DeletedAt != nil
}

// AccessLevel scopes what an access key is allowed to do.
type AccessLevel string

const (
	AccessLevelReadOnly AccessLevel = "read-only"
	AccessLevelInvoice  AccessLevel = "invoice"
	AccessLevelSend     AccessLevel = "send"
	AccessLevelAdmin    AccessLevel = "admin"
)

// AccessKey is a capability token scoped to one wallet. The key string itself
// is the credential; authorization is enforced by the host application.
type AccessKey struct {
	Key       string      `json:"key"`
	WalletID  string      `json:"wallet_id"`
	UserID    string      `json:"user_id"`
	Level     AccessLevel `json:"level"`
	CreatedAt time.Time   `json:"created_at"`
}
