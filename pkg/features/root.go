package features

import (
	"context"

	"github.com/hung-m-dao/spendings-app/pkg/feature"
	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// RootState owns the shared budgets collection for the process lifetime
type RootState struct {
	Budgets *SharedBudgets
}

// RootReducer drives the root feature. It shares the budgets action set:
// the transitions are the same as the Budgets feature minus the loading
// flag, which the root never shows.
type RootReducer struct {
	Client spendings.BudgetService
}

// Reduce implements feature.Reducer
func (r RootReducer) Reduce(state RootState, action BudgetsAction) (RootState, feature.Effect[BudgetsAction]) {
	switch action := action.(type) {
	case LoadBudgets:
		return state, func(ctx context.Context) BudgetsAction {
			budgets, err := r.Client.List(ctx)
			return BudgetsResponse{Budgets: budgets, Err: err}
		}

	case BudgetsResponse:
		if action.Err != nil {
			state.Budgets.Replace(nil)
			return state, nil
		}
		state.Budgets.Replace(action.Budgets)
		return state, nil
	}
	return state, nil
}

// Root wires the whole feature tree together: it creates the shared
// budgets collection and hands out child stores holding a reference to it.
type Root struct {
	Store  *feature.Store[RootState, BudgetsAction]
	client *spendings.Client
	shared *SharedBudgets
}

// NewRoot creates the root feature over a configured client
func NewRoot(client *spendings.Client) *Root {
	shared := NewSharedBudgets()
	return &Root{
		Store: feature.NewStore[RootState, BudgetsAction](
			RootState{Budgets: shared},
			RootReducer{Client: client.Budgets},
		),
		client: client,
		shared: shared,
	}
}

// SharedBudgets returns the owned budgets collection
func (r *Root) SharedBudgets() *SharedBudgets {
	return r.shared
}

// NewBudgetsStore creates the budgets child feature sharing the collection
func (r *Root) NewBudgetsStore() *feature.Store[BudgetsState, BudgetsAction] {
	return NewBudgetsStore(r.shared, r.client.Budgets)
}

// NewAccountsStore creates the accounts child feature
func (r *Root) NewAccountsStore() *feature.Store[AccountsState, AccountsAction] {
	return NewAccountsStore(r.client.Accounts)
}

// NewTransactionsStore creates a transactions child feature for one budget
// or account
func (r *Root) NewTransactionsStore(sourceID string, sourceType SourceType) *feature.Store[TransactionsState, TransactionsAction] {
	return NewTransactionsStore(sourceID, sourceType, r.client.Transactions)
}

// NewAddTransactionStore creates the add-transaction child feature sharing
// the collection read-only
func (r *Root) NewAddTransactionStore() *feature.Store[AddTransactionState, AddTransactionAction] {
	return NewAddTransactionStore(r.shared, r.client.Transactions)
}
