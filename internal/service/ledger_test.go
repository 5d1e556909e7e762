package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invtrack/inventory-ledger-api/internal/domain"
	"github.com/invtrack/inventory-ledger-api/internal/repository"
	"github.com/invtrack/inventory-ledger-api/internal/service"
)

// fakeStockRepo is an in-memory stand-in for the stock slice of the entity
// store. It records every committed transaction so tests can check the
// ledger invariants.
type fakeStockRepo struct {
	mu     sync.Mutex
	levels map[string]int
	txs    []domain.Transaction
}

func newFakeStockRepo(levels map[string]int) *fakeStockRepo {
	if levels == nil {
		levels = make(map[string]int)
	}

	return &fakeStockRepo{levels: levels}
}

func (f *fakeStockRepo) GetStockLevel(_ context.Context, itemID string) (domain.StockLevel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	quantity, ok := f.levels[itemID]
	if !ok {
		return domain.StockLevel{}, repository.ErrStockNotFound
	}

	return domain.StockLevel{ItemID: itemID, Quantity: quantity}, nil
}

func (f *fakeStockRepo) CommitStockChange(_ context.Context, tx domain.Transaction, newQuantity int) (domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.levels[tx.ItemID]; !ok {
		return domain.Transaction{}, repository.ErrStockNotFound
	}

	f.levels[tx.ItemID] = newQuantity
	f.txs = append(f.txs, tx)

	return tx, nil
}

func (f *fakeStockRepo) quantity(itemID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.levels[itemID]
}

func (f *fakeStockRepo) transactions() []domain.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()

	txs := make([]domain.Transaction, len(f.txs))
	copy(txs, f.txs)

	return txs
}

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (s *seqIDs) NewID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.n++

	return fmt.Sprintf("tx-%d", s.n)
}

var testClock = func() time.Time {
	return time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newTestLedger(levels map[string]int) (*service.LedgerService, *fakeStockRepo) {
	repo := newFakeStockRepo(levels)
	svc := service.NewLedgerService(repo, &seqIDs{}, testClock)

	return svc, repo
}

func staffUser() domain.User {
	return domain.User{ID: "user-1", Username: "staff", Role: domain.RoleStaff, Name: "Demo Staff"}
}

func TestLedgerService_Commit_Receipt(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 0})

	tx, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionReceipt,
		ItemID:     "item-1",
		Quantity:   10,
		Reference:  "INV-001",
		ActingUser: staffUser(),
	})

	require.NoError(t, err)
	assert.Equal(t, 10, repo.quantity("item-1"))
	assert.Equal(t, 10, tx.Delta)
	assert.Equal(t, domain.TransactionReceipt, tx.Type)
	assert.Equal(t, "tx-1", tx.ID)
	assert.Equal(t, testClock(), tx.CreatedAt)
	assert.Equal(t, "user-1", tx.UserID)
	assert.Equal(t, "Demo Staff", tx.UserName)
	assert.Len(t, repo.transactions(), 1)
}

func TestLedgerService_Commit_Receipt_NonPositiveQuantity(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 3})

	for _, quantity := range []int{0, -5} {
		_, err := svc.Commit(context.Background(), service.CommitRequest{
			Type:       domain.TransactionReceipt,
			ItemID:     "item-1",
			Quantity:   quantity,
			Reference:  "bad",
			ActingUser: staffUser(),
		})

		assert.ErrorIs(t, err, service.ErrInvalidQuantity)
	}

	assert.Equal(t, 3, repo.quantity("item-1"))
	assert.Empty(t, repo.transactions(), "failed commits must record nothing")
}

func TestLedgerService_Commit_Issue_RecordsNegativeDelta(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 10})

	tx, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionIssue,
		ItemID:     "item-1",
		Quantity:   4,
		Reference:  "SO-42",
		ActingUser: staffUser(),
	})

	require.NoError(t, err)
	assert.Equal(t, 6, repo.quantity("item-1"))
	assert.Equal(t, -4, tx.Delta, "issue stores the signed delta, not the magnitude")
}

func TestLedgerService_Commit_Issue_InsufficientStock(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 10})

	_, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionIssue,
		ItemID:     "item-1",
		Quantity:   15,
		Reference:  "SO-43",
		ActingUser: staffUser(),
	})

	require.ErrorIs(t, err, service.ErrInsufficientStock)

	var insufficientErr *service.InsufficientStockError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, 10, insufficientErr.Available)
	assert.Equal(t, 15, insufficientErr.Requested)

	assert.Equal(t, 10, repo.quantity("item-1"), "quantity must be unchanged")
	assert.Empty(t, repo.transactions(), "no transaction may be recorded")
}

func TestLedgerService_Commit_Issue_NonPositiveQuantity(t *testing.T) {
	svc, _ := newTestLedger(map[string]int{"item-1": 10})

	_, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionIssue,
		ItemID:     "item-1",
		Quantity:   -1,
		Reference:  "SO-44",
		ActingUser: staffUser(),
	})

	assert.ErrorIs(t, err, service.ErrInvalidQuantity)
}

func TestLedgerService_Commit_Adjustment_Negative(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 5})

	tx, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionAdjustment,
		ItemID:     "item-1",
		Quantity:   -3,
		Reference:  "damaged in transit",
		ActingUser: staffUser(),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, repo.quantity("item-1"))
	assert.Equal(t, -3, tx.Delta)
}

func TestLedgerService_Commit_Adjustment_WouldGoNegative(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 5})

	_, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionAdjustment,
		ItemID:     "item-1",
		Quantity:   -10,
		Reference:  "stocktake",
		ActingUser: staffUser(),
	})

	assert.ErrorIs(t, err, service.ErrNegativeStock)
	assert.Equal(t, 5, repo.quantity("item-1"))
	assert.Empty(t, repo.transactions())
}

func TestLedgerService_Commit_Adjustment_Zero(t *testing.T) {
	svc, _ := newTestLedger(map[string]int{"item-1": 5})

	_, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionAdjustment,
		ItemID:     "item-1",
		Quantity:   0,
		Reference:  "noop",
		ActingUser: staffUser(),
	})

	assert.ErrorIs(t, err, service.ErrZeroAdjustment)
}

func TestLedgerService_Commit_UnknownItem(t *testing.T) {
	svc, _ := newTestLedger(nil)

	_, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionReceipt,
		ItemID:     "ghost",
		Quantity:   1,
		Reference:  "INV-002",
		ActingUser: staffUser(),
	})

	assert.ErrorIs(t, err, service.ErrStockNotFound)
}

func TestLedgerService_Commit_UnknownType(t *testing.T) {
	svc, _ := newTestLedger(map[string]int{"item-1": 5})

	_, err := svc.Commit(context.Background(), service.CommitRequest{
		Type:       domain.TransactionType("TRANSFER"),
		ItemID:     "item-1",
		Quantity:   1,
		Reference:  "x",
		ActingUser: staffUser(),
	})

	assert.ErrorIs(t, err, service.ErrInvalidTransactionType)
}

func TestLedgerService_QuantityEqualsSumOfDeltas(t *testing.T) {
	svc, repo := newTestLedger(map[string]int{"item-1": 0})
	ctx := context.Background()

	commits := []service.CommitRequest{
		{Type: domain.TransactionReceipt, ItemID: "item-1", Quantity: 20, Reference: "INV-1"},
		{Type: domain.TransactionIssue, ItemID: "item-1", Quantity: 7, Reference: "SO-1"},
		{Type: domain.TransactionAdjustment, ItemID: "item-1", Quantity: -3, Reference: "stocktake"},
		{Type: domain.TransactionIssue, ItemID: "item-1", Quantity: 25, Reference: "SO-2"}, // fails
		{Type: domain.TransactionAdjustment, ItemID: "item-1", Quantity: 2, Reference: "found"},
		{Type: domain.TransactionReceipt, ItemID: "item-1", Quantity: -1, Reference: "bad"}, // fails
	}

	for _, req := range commits {
		req.ActingUser = staffUser()
		_, _ = svc.Commit(ctx, req)
	}

	sum := 0
	for _, tx := range repo.transactions() {
		sum += tx.Delta
	}

	assert.Equal(t, sum, repo.quantity("item-1"), "quantity must equal the sum of recorded deltas")
	assert.GreaterOrEqual(t, repo.quantity("item-1"), 0)
	assert.Equal(t, 12, repo.quantity("item-1"))
	assert.Len(t, repo.transactions(), 4, "only successful commits are recorded")
}

func TestLedgerService_ConcurrentIssues_NeverOversell(t *testing.T) {
	const initial = 50

	svc, repo := newTestLedger(map[string]int{"item-1": initial})
	ctx := context.Background()

	var (
		wg        sync.WaitGroup
		successMu sync.Mutex
		successes int
	)

	// Twice as many single-unit issues as there is stock. Per-item
	// serialization must let exactly `initial` of them through.
	for i := 0; i < 2*initial; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := svc.Commit(ctx, service.CommitRequest{
				Type:       domain.TransactionIssue,
				ItemID:     "item-1",
				Quantity:   1,
				Reference:  "SO-concurrent",
				ActingUser: staffUser(),
			})
			if err == nil {
				successMu.Lock()
				successes++
				successMu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, initial, successes)
	assert.Equal(t, 0, repo.quantity("item-1"))
	assert.Len(t, repo.transactions(), initial)
}
