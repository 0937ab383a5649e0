package features

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// stubBudgetService serves scripted responses. Each call optionally waits
// for a gate, letting tests hold fetches in flight.
type stubBudgetService struct {
	mu      sync.Mutex
	results []budgetResult
	calls   int
}

type budgetResult struct {
	budgets []spendings.Budget
	err     error
	gate    <-chan struct{}
}

func (s *stubBudgetService) List(ctx context.Context) ([]spendings.Budget, error) {
	s.mu.Lock()
	index := s.calls
	s.calls++
	if index >= len(s.results) {
		index = len(s.results) - 1
	}
	result := s.results[index]
	s.mu.Unlock()

	if result.gate != nil {
		<-result.gate
	}
	return result.budgets, result.err
}

func TestBudgets_LoadSuccess(t *testing.T) {
	budgets := []spendings.Budget{
		{ID: "1", Name: "Food", SpentSum: -150, AutoBudgetAmount: 1000},
		{ID: "2", Name: "Rent", SpentSum: -500, AutoBudgetAmount: 800},
	}
	gate := make(chan struct{})
	service := &stubBudgetService{results: []budgetResult{{budgets: budgets, gate: gate}}}

	shared := NewSharedBudgets()
	store := NewBudgetsStore(shared, service)
	defer store.Close()

	// Another feature holding the same handle
	reader := NewAddTransactionStore(shared, nil)
	defer reader.Close()

	store.Dispatch(LoadBudgets{})
	assert.True(t, store.State().IsLoading)

	close(gate)
	store.Wait()

	state := store.State()
	assert.False(t, state.IsLoading)
	assert.Equal(t, budgets, shared.Snapshot())

	// The edit is visible to every holder without any message passing
	assert.Equal(t, budgets, reader.State().Budgets.Snapshot())
}

func TestBudgets_LoadFailure(t *testing.T) {
	service := &stubBudgetService{results: []budgetResult{{err: assert.AnError}}}

	shared := NewSharedBudgets()
	shared.Replace([]spendings.Budget{{ID: "stale"}})

	store := NewBudgetsStore(shared, service)
	defer store.Close()

	store.Dispatch(LoadBudgets{})
	store.Wait()

	assert.False(t, store.State().IsLoading)
	assert.Empty(t, shared.Snapshot())
}

func TestBudgets_DoubleDispatch_LastCompletionWins(t *testing.T) {
	firstGate := make(chan struct{})
	secondGate := make(chan struct{})
	service := &stubBudgetService{results: []budgetResult{
		{budgets: []spendings.Budget{{ID: "first"}}, gate: firstGate},
		{budgets: []spendings.Budget{{ID: "second"}}, gate: secondGate},
	}}

	shared := NewSharedBudgets()
	store := NewBudgetsStore(shared, service)
	defer store.Close()

	store.Dispatch(LoadBudgets{})
	store.Dispatch(LoadBudgets{})

	// No response has been applied, loading holds
	assert.True(t, store.State().IsLoading)

	// Complete out of dispatch order; the first dispatch finishes last
	// and its payload is what every reader ends up seeing.
	close(secondGate)
	require.Eventually(t, func() bool {
		snapshot := shared.Snapshot()
		return len(snapshot) == 1 && snapshot[0].ID == "second"
	}, time.Second, time.Millisecond)

	close(firstGate)
	store.Wait()

	assert.False(t, store.State().IsLoading)
	snapshot := shared.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, "first", snapshot[0].ID)
}
