package features

import (
	"context"

	"github.com/hung-m-dao/spendings-app/pkg/feature"
	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// SourceType says which kind of entity a transactions screen was opened
// from
type SourceType int

// The two possible transaction sources
const (
	SourceTypeBudgets SourceType = iota
	SourceTypeAccounts
)

// TransactionsState is the state of one transactions list screen. SourceID
// and SourceType are fixed at construction.
type TransactionsState struct {
	IsLoading  bool
	SourceID   string
	SourceType SourceType

	// Transactions is nil until the first response arrives
	Transactions []spendings.Transaction
}

// Loaded reports whether a response has been applied yet
func (s TransactionsState) Loaded() bool {
	return s.Transactions != nil
}

// TransactionsAction is the closed action set of the transactions feature
type TransactionsAction interface {
	transactionsAction()
}

// LoadTransactions triggers a fetch for the screen's source
type LoadTransactions struct{}

func (LoadTransactions) transactionsAction() {}

// TransactionsResponse closes a LoadTransactions effect
type TransactionsResponse struct {
	Transactions []spendings.Transaction
	Err          error
}

func (TransactionsResponse) transactionsAction() {}

// TransactionsReducer drives the transactions feature
type TransactionsReducer struct {
	Client spendings.TransactionService
}

// Reduce implements feature.Reducer
func (r TransactionsReducer) Reduce(state TransactionsState, action TransactionsAction) (TransactionsState, feature.Effect[TransactionsAction]) {
	switch action := action.(type) {
	case LoadTransactions:
		state.IsLoading = true

		sourceID := state.SourceID
		sourceType := state.SourceType
		return state, func(ctx context.Context) TransactionsAction {
			var transactions []spendings.Transaction
			var err error
			if sourceType == SourceTypeAccounts {
				transactions, err = r.Client.ListByAccount(ctx, sourceID)
			} else {
				transactions, err = r.Client.ListByBudget(ctx, sourceID)
			}
			return TransactionsResponse{Transactions: transactions, Err: err}
		}

	case TransactionsResponse:
		state.IsLoading = false
		if action.Err != nil {
			state.Transactions = []spendings.Transaction{}
			return state, nil
		}
		state.Transactions = action.Transactions
		if state.Transactions == nil {
			state.Transactions = []spendings.Transaction{}
		}
		return state, nil
	}
	return state, nil
}

// NewTransactionsStore creates a transactions feature store for one budget
// or account
func NewTransactionsStore(sourceID string, sourceType SourceType, client spendings.TransactionService) *feature.Store[TransactionsState, TransactionsAction] {
	return feature.NewStore[TransactionsState, TransactionsAction](
		TransactionsState{SourceID: sourceID, SourceType: sourceType},
		TransactionsReducer{Client: client},
	)
}
