package features

import (
	"sync"

	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// SharedBudgets is the single owned budgets collection, created once at
// the root and handed to every feature that needs it. Budgets and Root are
// the only writers; everything else reads.
type SharedBudgets struct {
	mu      sync.RWMutex
	budgets []spendings.Budget
}

// NewSharedBudgets creates an empty container
func NewSharedBudgets() *SharedBudgets {
	return &SharedBudgets{}
}

// Replace swaps the whole list atomically. Readers observe either the
// fully-old or fully-new list, never an intermediate state.
func (s *SharedBudgets) Replace(budgets []spendings.Budget) {
	copied := make([]spendings.Budget, len(budgets))
	copy(copied, budgets)

	s.mu.Lock()
	s.budgets = copied
	s.mu.Unlock()
}

// Snapshot returns the current list. The returned slice is a copy; the
// caller may hold it across later writes.
func (s *SharedBudgets) Snapshot() []spendings.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	copied := make([]spendings.Budget, len(s.budgets))
	copy(copied, s.budgets)
	return copied
}

// Len reports the current number of budgets
func (s *SharedBudgets) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.budgets)
}
