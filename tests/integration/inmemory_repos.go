package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
	"lnledger/pkg/apperror"

	"github.com/google/uuid"
)

// inMemoryStore is the shared backing state for the in-memory repositories.
// One mutex guards all three tables so cross-table reads (balance, wallet
// emptiness) observe a consistent snapshot.
type inMemoryStore struct {
	mu           sync.RWMutex
	wallets      map[string]*domain.Wallet
	transactions map[string]*domain.Transaction
	accessKeys   map[string]*domain.AccessKey
}

func newInMemoryStore() *inMemoryStore {
	return &inMemoryStore{
		wallets:      make(map[string]*domain.Wallet),
		transactions: make(map[string]*domain.Transaction),
		accessKeys:   make(map[string]*domain.AccessKey),
	}
}

func copyTransaction(t *domain.Transaction) *domain.Transaction {
	c := *t
	if t.AmountSettled != nil {
		v := *t.AmountSettled
		c.AmountSettled = &v
	}
	if t.RoutingFee != nil {
		v := *t.RoutingFee
		c.RoutingFee = &v
	}
	if t.ExplicitStatus != nil {
		v := *t.ExplicitStatus
		c.ExplicitStatus = &v
	}
	if t.PaidAt != nil {
		v := *t.PaidAt
		c.PaidAt = &v
	}
	return &c
}

func copyWallet(w *domain.Wallet) *domain.Wallet {
	c := *w
	if w.DeletedAt != nil {
		v := *w.DeletedAt
		c.DeletedAt = &v
	}
	c.Transactions = nil
	c.AccessKeys = nil
	return &c
}

// --- In-Memory Wallet Repo ---

type inMemoryWalletRepo struct {
	store *inMemoryStore
}

func newInMemoryWalletRepo(store *inMemoryStore) *inMemoryWalletRepo {
	return &inMemoryWalletRepo{store: store}
}

func (r *inMemoryWalletRepo) GetWallet(ctx context.Context, q ports.Querier, f ports.WalletFilter) (*domain.Wallet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	for _, w := range r.store.wallets {
		if !r.matches(w, f) {
			continue
		}
		result := copyWallet(w)
		if f.IncludeTransactions {
			for _, t := range r.store.transactions {
				if t.WalletID == w.ID {
					result.Transactions = append(result.Transactions, *copyTransaction(t))
				}
			}
		}
		if f.IncludeAccessKeys {
			for _, k := range r.store.accessKeys {
				if k.WalletID == w.ID {
					result.AccessKeys = append(result.AccessKeys, *k)
				}
			}
		}
		return result, nil
	}
	return nil, nil
}

func (r *inMemoryWalletRepo) matches(w *domain.Wallet, f ports.WalletFilter) bool {
	if w.DeletedAt != nil && !f.IncludeDeleted {
		return false
	}
	if f.ID != "" && w.ID != f.ID {
		return false
	}
	if f.UserID != "" && w.UserID != f.UserID {
		return false
	}
	if f.AccessKey != "" {
		k, ok := r.store.accessKeys[f.AccessKey]
		if !ok || k.WalletID != w.ID {
			return false
		}
	}
	return true
}

func (r *inMemoryWalletRepo) GetWallets(ctx context.Context, q ports.Querier, f ports.WalletsFilter) ([]domain.Wallet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var result []domain.Wallet
	for _, w := range r.store.wallets {
		if w.DeletedAt != nil && !f.IncludeDeleted {
			continue
		}
		if f.UserID != "" && w.UserID != f.UserID {
			continue
		}
		result = append(result, *copyWallet(w))
	}
	return result, nil
}

func (r *inMemoryWalletRepo) AddOrUpdateWallet(ctx context.Context, q ports.Querier, w *domain.Wallet) (*domain.Wallet, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	r.store.wallets[w.ID] = copyWallet(w)
	return w, nil
}

func (r *inMemoryWalletRepo) RemoveWallet(ctx context.Context, q ports.Querier, w *domain.Wallet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, t := range r.store.transactions {
		if t.WalletID == w.ID {
			return apperror.ErrNotEmpty()
		}
	}
	for key, k := range r.store.accessKeys {
		if k.WalletID == w.ID {
			delete(r.store.accessKeys, key)
		}
	}
	delete(r.store.wallets, w.ID)
	return nil
}

func (r *inMemoryWalletRepo) GetBalance(ctx context.Context, q ports.Querier, walletID string) (int64, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var total int64
	for _, t := range r.store.transactions {
		if t.WalletID == walletID && t.AmountSettled != nil {
			total += *t.AmountSettled
		}
	}
	return total, nil
}

// --- In-Memory Transaction Repo ---

type inMemoryTransactionRepo struct {
	store *inMemoryStore
}

func newInMemoryTransactionRepo(store *inMemoryStore) *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{store: store}
}

func (r *inMemoryTransactionRepo) matches(t *domain.Transaction, f ports.TransactionFilter) bool {
	if f.ID != "" && t.ID != f.ID {
		return false
	}
	if f.WalletID != "" && t.WalletID != f.WalletID {
		return false
	}
	if f.InvoiceID != "" && t.InvoiceID != f.InvoiceID {
		return false
	}
	if f.PaymentRequest != "" && t.PaymentRequest != f.PaymentRequest {
		return false
	}
	if f.PaymentHash != "" && t.PaymentHash != f.PaymentHash {
		return false
	}
	if f.HasInvoice && t.InvoiceID == "" {
		return false
	}
	if f.UserID != "" {
		w, ok := r.store.wallets[t.WalletID]
		if !ok || w.UserID != f.UserID {
			return false
		}
	}
	return true
}

func (r *inMemoryTransactionRepo) GetTransaction(ctx context.Context, q ports.Querier, f ports.TransactionFilter) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var newest *domain.Transaction
	for _, t := range r.store.transactions {
		if !r.matches(t, f) {
			continue
		}
		if newest == nil || t.CreatedAt.After(newest.CreatedAt) {
			newest = t
		}
	}
	if newest == nil {
		return nil, nil
	}
	return copyTransaction(newest), nil
}

func (r *inMemoryTransactionRepo) GetTransactions(ctx context.Context, q ports.Querier, f ports.TransactionsFilter) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	now := time.Now().UTC()
	var result []domain.Transaction
	for _, t := range r.store.transactions {
		if f.WalletID != "" && t.WalletID != f.WalletID {
			continue
		}
		if f.UserID != "" {
			w, ok := r.store.wallets[t.WalletID]
			if !ok || w.UserID != f.UserID {
				continue
			}
		}
		if f.NonTerminal {
			pending := t.ExplicitStatus != nil && *t.ExplicitStatus == domain.StatusPending
			live := t.ExplicitStatus == nil && t.AmountSettled == nil && t.ExpiresAt.After(now)
			if !pending && !live {
				continue
			}
		}
		result = append(result, *copyTransaction(t))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *inMemoryTransactionRepo) AddOrUpdateTransaction(ctx context.Context, q ports.Querier, t *domain.Transaction) (*domain.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	r.store.transactions[t.ID] = copyTransaction(t)
	return t, nil
}

func (r *inMemoryTransactionRepo) UpdateTransaction(ctx context.Context, q ports.Querier, t *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.transactions[t.ID]; !ok {
		return fmt.Errorf("transaction %s not found", t.ID)
	}
	r.store.transactions[t.ID] = copyTransaction(t)
	return nil
}

func (r *inMemoryTransactionRepo) RemoveTransaction(ctx context.Context, q ports.Querier, t *domain.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.transactions, t.ID)
	return nil
}

// --- In-Memory Access Key Repo ---

type inMemoryAccessKeyRepo struct {
	store *inMemoryStore
}

func newInMemoryAccessKeyRepo(store *inMemoryStore) *inMemoryAccessKeyRepo {
	return &inMemoryAccessKeyRepo{store: store}
}

func (r *inMemoryAccessKeyRepo) AddAccessKey(ctx context.Context, q ports.Querier, k *domain.AccessKey) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c := *k
	r.store.accessKeys[k.Key] = &c
	return nil
}

func (r *inMemoryAccessKeyRepo) RemoveAccessKey(ctx context.Context, q ports.Querier, key string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.accessKeys[key]; !ok {
		return fmt.Errorf("access key not found")
	}
	delete(r.store.accessKeys, key)
	return nil
}

func (r *inMemoryAccessKeyRepo) GetAccessKey(ctx context.Context, q ports.Querier, key string) (*domain.AccessKey, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	k, ok := r.store.accessKeys[key]
	if !ok {
		return nil, nil
	}
	c := *k
	return &c, nil
}

// --- In-Memory Transactor ---

// inMemoryTransactor serializes every unit of work behind one mutex, which
// gives the same observable guarantee as a serializable database transaction:
// balance checks and the writes that depend on them execute indivisibly.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) RunAtomic(ctx context.Context, fn func(ctx context.Context, q ports.Querier) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(ctx, nil)
}

// --- Recording Publisher ---

type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.TransactionEvent
}

func newRecordingPublisher() *recordingPublisher {
	return &recordingPublisher{}
}

func (p *recordingPublisher) Publish(ctx context.Context, event domain.TransactionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) published() []domain.TransactionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.TransactionEvent(nil), p.events...)
}
