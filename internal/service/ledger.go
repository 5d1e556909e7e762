package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/pkg/idgen"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
)

var (
	ErrStockNotFound          = repository.ErrStockNotFound
	ErrInvalidQuantity        = errors.New("quantity must be positive")
	ErrZeroAdjustment         = errors.New("adjustment quantity cannot be zero")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrNegativeStock          = errors.New("resulting stock quantity would be negative")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
)

// InsufficientStockError reports how far an issue overshoots the on-hand quantity.
type InsufficientStockError struct {
	ItemID    string
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: available %d, requested %d",
		e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

type LedgerStockRepository interface {
	GetStockLevel(ctx context.Context, itemID string) (domain.StockLevel, error)
	CommitStockChange(ctx context.Context, tx domain.Transaction, newQuantity int) (domain.Transaction, error)
}

// CommitRequest describes one ledger commit. Quantity is a positive magnitude
// for receipts and issues, and a signed delta for adjustments.
type CommitRequest struct {
	Type       domain.TransactionType
	ItemID     string
	Quantity   int
	Reference  string
	ActingUser domain.User
}

// LedgerService is the sole authority for mutating stock quantities. Every
// change goes through Commit, which validates first and then persists the
// new quantity together with an immutable ledger entry. There is no update
// or reversal operation; mistakes are corrected with a counter-transaction.
type LedgerService struct {
	repo LedgerStockRepository
	ids  idgen.Generator
	now  func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLedgerService wires the engine. The clock may be nil, in which case
// time.Now is used; tests pass a fixed clock.
func NewLedgerService(repo LedgerStockRepository, ids idgen.Generator, now func() time.Time) *LedgerService {
	if now == nil {
		now = time.Now
	}

	return &LedgerService{
		repo:  repo,
		ids:   ids,
		now:   now,
		locks: make(map[string]*sync.Mutex),
	}
}

// Commit validates and applies one stock transaction.
//
// Validation happens before any write: a failed commit leaves the stock level
// untouched and records nothing. Commits against the same item serialize on a
// per-item mutex so the read-compute-persist sequence never interleaves;
// commits against different items proceed independently.
func (s *LedgerService) Commit(ctx context.Context, req CommitRequest) (domain.Transaction, error) {
	lock := s.itemLock(req.ItemID)
	lock.Lock()
	defer lock.Unlock()

	level, err := s.repo.GetStockLevel(ctx, req.ItemID)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.GetStockLevel -> %w", err)
	}

	delta, err := transactionDelta(req.Type, req.Quantity, level.Quantity, req.ItemID)
	if err != nil {
		return domain.Transaction{}, err
	}

	newQuantity := level.Quantity + delta
	if newQuantity < 0 {
		return domain.Transaction{}, ErrNegativeStock
	}

	tx := domain.Transaction{
		ID:        s.ids.NewID(),
		ItemID:    req.ItemID,
		Type:      req.Type,
		Delta:     delta,
		Reference: req.Reference,
		CreatedAt: s.now(),
		UserID:    req.ActingUser.ID,
		UserName:  req.ActingUser.Name,
	}

	committed, err := s.repo.CommitStockChange(ctx, tx, newQuantity)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("s.repo.CommitStockChange -> %w", err)
	}

	return committed, nil
}

// transactionDelta converts the request quantity into the signed change to
// apply. Receipts and issues take a positive magnitude; adjustments are
// already signed and must not be zero.
func transactionDelta(txType domain.TransactionType, quantity, current int, itemID string) (int, error) {
	switch txType {
	case domain.TransactionReceipt:
		if quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		return quantity, nil

	case domain.TransactionIssue:
		if quantity <= 0 {
			return 0, ErrInvalidQuantity
		}
		if quantity > current {
			return 0, &InsufficientStockError{
				ItemID:    itemID,
				Available: current,
				Requested: quantity,
			}
		}
		return -quantity, nil

	case domain.TransactionAdjustment:
		if quantity == 0 {
			return 0, ErrZeroAdjustment
		}
		return quantity, nil

	default:
		return 0, ErrInvalidTransactionType
	}
}

func (s *LedgerService) itemLock(itemID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[itemID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[itemID] = lock
	}

	return lock
}
