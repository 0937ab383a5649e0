// Package features contains the screen-level state machines of the
// spendings client: Budgets, Accounts, Transactions, AddTransaction and
// Root. Each feature is a reducer over a closed action union, run inside a
// feature.Store; network work happens in effects that always come back as
// response actions.
package features

import (
	"context"

	"github.com/hung-m-dao/spendings-app/pkg/feature"
	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// BudgetsState is the state of the budgets list screen
type BudgetsState struct {
	IsLoading bool

	// Budgets is the shared collection; this feature writes it
	Budgets *SharedBudgets
}

// BudgetsAction is the closed action set of the budgets feature. Root
// reuses the same set over its own state.
type BudgetsAction interface {
	budgetsAction()
}

// LoadBudgets triggers a fetch of the current month's budgets
type LoadBudgets struct{}

func (LoadBudgets) budgetsAction() {}

// BudgetsResponse closes a LoadBudgets effect
type BudgetsResponse struct {
	Budgets []spendings.Budget
	Err     error
}

func (BudgetsResponse) budgetsAction() {}

// BudgetsReducer drives the budgets feature
type BudgetsReducer struct {
	Client spendings.BudgetService
}

// Reduce implements feature.Reducer
func (r BudgetsReducer) Reduce(state BudgetsState, action BudgetsAction) (BudgetsState, feature.Effect[BudgetsAction]) {
	switch action := action.(type) {
	case LoadBudgets:
		state.IsLoading = true
		return state, r.fetch()

	case BudgetsResponse:
		state.IsLoading = false
		if action.Err != nil {
			state.Budgets.Replace(nil)
			return state, nil
		}
		state.Budgets.Replace(action.Budgets)
		return state, nil
	}
	return state, nil
}

func (r BudgetsReducer) fetch() feature.Effect[BudgetsAction] {
	return func(ctx context.Context) BudgetsAction {
		budgets, err := r.Client.List(ctx)
		return BudgetsResponse{Budgets: budgets, Err: err}
	}
}

// NewBudgetsStore creates a budgets feature store over the shared
// collection
func NewBudgetsStore(shared *SharedBudgets, client spendings.BudgetService) *feature.Store[BudgetsState, BudgetsAction] {
	return feature.NewStore[BudgetsState, BudgetsAction](
		BudgetsState{Budgets: shared},
		BudgetsReducer{Client: client},
	)
}
