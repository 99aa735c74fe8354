package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"lnledger/internal/core/domain"
	"lnledger/internal/core/ports"
	"lnledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// accessKeyBytes is the entropy of a generated access key credential.
const accessKeyBytes = 20

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	txRepo     ports.TransactionRepository
	keyRepo    ports.AccessKeyRepository
	transactor ports.Transactor
	db         ports.Querier
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	txRepo ports.TransactionRepository,
	keyRepo ports.AccessKeyRepository,
	transactor ports.Transactor,
	db ports.Querier,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		txRepo:     txRepo,
		keyRepo:    keyRepo,
		transactor: transactor,
		db:         db,
		log:        log,
	}
}

// CreateWallet creates a wallet for a user.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, userID, name string) (*domain.Wallet, error) {
	if userID == "" {
		return nil, apperror.ErrValidation("user id is required")
	}
	if name == "" {
		return nil, apperror.ErrValidation("wallet name is required")
	}

	w := &domain.Wallet{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	w, err := s.walletRepo.AddOrUpdateWallet(ctx, s.db, w)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", w.ID).
		Str("user_id", userID).
		Msg("wallet created")

	return w, nil
}

// GetWallet fetches a single wallet matching the filter, or nil.
func (s *WalletServiceImpl) GetWallet(ctx context.Context, f ports.WalletFilter) (*domain.Wallet, error) {
	w, err := s.walletRepo.GetWallet(ctx, s.db, f)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	return w, nil
}

// GetWallets fetches all wallets matching the filter.
func (s *WalletServiceImpl) GetWallets(ctx context.Context, f ports.WalletsFilter) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.GetWallets(ctx, s.db, f)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallets: %w", err))
	}
	return wallets, nil
}

// UpdateWallet persists changes to an existing wallet.
func (s *WalletServiceImpl) UpdateWallet(ctx context.Context, w *domain.Wallet) (*domain.Wallet, error) {
	if w.ID == "" {
		return nil, apperror.ErrValidation("wallet id is required")
	}
	w, err := s.walletRepo.AddOrUpdateWallet(ctx, s.db, w)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update wallet: %w", err))
	}
	return w, nil
}

// DeleteWallet removes a wallet. A wallet with transaction history is
// soft-deleted so the ledger stays intact; an empty wallet is removed
// physically, taking its access keys with it.
func (s *WalletServiceImpl) DeleteWallet(ctx context.Context, w *domain.Wallet) error {
	err := s.transactor.RunAtomic(ctx, func(ctx context.Context, q ports.Querier) error {
		transactions, err := s.txRepo.GetTransactions(ctx, q, ports.TransactionsFilter{WalletID: w.ID})
		if err != nil {
			return err
		}
		if len(transactions) == 0 {
			return s.walletRepo.RemoveWallet(ctx, q, w)
		}

		now := time.Now().UTC()
		w.DeletedAt = &now
		_, err = s.walletRepo.AddOrUpdateWallet(ctx, q, w)
		return err
	})
	if err != nil {
		return asAppError(err)
	}

	s.log.Info().
		Str("wallet_id", w.ID).
		Bool("soft_deleted", w.DeletedAt != nil).
		Msg("wallet deleted")

	return nil
}

// GetBalance returns the wallet balance in millisatoshis.
func (s *WalletServiceImpl) GetBalance(ctx context.Context, walletID string) (int64, error) {
	balance, err := s.walletRepo.GetBalance(ctx, s.db, walletID)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("get balance: %w", err))
	}
	return balance, nil
}

// CreateAccessKey issues a new capability token scoped to a wallet.
func (s *WalletServiceImpl) CreateAccessKey(ctx context.Context, walletID, userID string, level domain.AccessLevel) (*domain.AccessKey, error) {
	if walletID == "" {
		return nil, apperror.ErrValidation("wallet id is required")
	}

	raw := make([]byte, accessKeyBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate access key: %w", err))
	}

	k := &domain.AccessKey{
		Key:       hex.EncodeToString(raw),
		WalletID:  walletID,
		UserID:    userID,
		Level:     level,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.keyRepo.AddAccessKey(ctx, s.db, k); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create access key: %w", err))
	}

	s.log.Info().
		Str("wallet_id", walletID).
		Str("level", string(level)).
		Msg("access key created")

	return k, nil
}

// RevokeAccessKey removes an access key.
func (s *WalletServiceImpl) RevokeAccessKey(ctx context.Context, key string) error {
	if err := s.keyRepo.RemoveAccessKey(ctx, s.db, key); err != nil {
		return apperror.InternalError(fmt.Errorf("revoke access key: %w", err))
	}
	return nil
}

// asAppError passes structured errors through untouched and wraps the rest.
func asAppError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.InternalError(err)
}
