package features

import (
	"context"

	"github.com/hung-m-dao/spendings-app/pkg/feature"
	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// AccountsState is the state of the accounts list screen
type AccountsState struct {
	IsLoading bool

	// Accounts is nil until the first response arrives; after a failure
	// it is a non-nil empty list.
	Accounts []spendings.Account
}

// Loaded reports whether a response has been applied yet
func (s AccountsState) Loaded() bool {
	return s.Accounts != nil
}

// AccountsAction is the closed action set of the accounts feature
type AccountsAction interface {
	accountsAction()
}

// LoadAccounts triggers a fetch of all asset accounts
type LoadAccounts struct{}

func (LoadAccounts) accountsAction() {}

// AccountsResponse closes a LoadAccounts effect
type AccountsResponse struct {
	Accounts []spendings.Account
	Err      error
}

func (AccountsResponse) accountsAction() {}

// AccountsReducer drives the accounts feature
type AccountsReducer struct {
	Client spendings.AccountService
}

// Reduce implements feature.Reducer
func (r AccountsReducer) Reduce(state AccountsState, action AccountsAction) (AccountsState, feature.Effect[AccountsAction]) {
	switch action := action.(type) {
	case LoadAccounts:
		state.IsLoading = true
		return state, func(ctx context.Context) AccountsAction {
			accounts, err := r.Client.List(ctx)
			return AccountsResponse{Accounts: accounts, Err: err}
		}

	case AccountsResponse:
		state.IsLoading = false
		if action.Err != nil {
			state.Accounts = []spendings.Account{}
			return state, nil
		}
		state.Accounts = action.Accounts
		if state.Accounts == nil {
			state.Accounts = []spendings.Account{}
		}
		return state, nil
	}
	return state, nil
}

// NewAccountsStore creates an accounts feature store
func NewAccountsStore(client spendings.AccountService) *feature.Store[AccountsState, AccountsAction] {
	return feature.NewStore[AccountsState, AccountsAction](
		AccountsState{},
		AccountsReducer{Client: client},
	)
}
