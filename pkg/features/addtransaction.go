package features

import (
	"context"

	"github.com/hung-m-dao/spendings-app/pkg/feature"
	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

// Alert is a one-shot notification for the host to present
type Alert struct {
	Message string
	Success bool
}

// AddTransactionState is the state of the add-transaction form. The
// reducer performs no validation; the host is expected to disable
// submission until every field is non-empty.
type AddTransactionState struct {
	IsLoading bool

	// Budgets is the shared collection, read-only here; it feeds the
	// budget picker.
	Budgets *SharedBudgets

	Description      string
	Amount           string
	SelectedBudgetID string
	SelectedSourceID string

	Alert *Alert
}

// AddTransactionAction is the closed action set of the add-transaction
// feature
type AddTransactionAction interface {
	addTransactionAction()
}

// Form field bindings
type (
	// SetDescription updates the description field
	SetDescription struct{ Value string }
	// SetAmount updates the amount field
	SetAmount struct{ Value string }
	// SetBudgetID updates the budget selection
	SetBudgetID struct{ Value string }
	// SetSourceID updates the source selection
	SetSourceID struct{ Value string }
)

func (SetDescription) addTransactionAction() {}
func (SetAmount) addTransactionAction()      {}
func (SetBudgetID) addTransactionAction()    {}
func (SetSourceID) addTransactionAction()    {}

// SubmitForm submits whatever is currently in the form
type SubmitForm struct{}

func (SubmitForm) addTransactionAction() {}

// FormResponse closes a SubmitForm effect
type FormResponse struct {
	Err error
}

func (FormResponse) addTransactionAction() {}

// DismissAlert clears the presented alert
type DismissAlert struct{}

func (DismissAlert) addTransactionAction() {}

// AddTransactionReducer drives the add-transaction feature
type AddTransactionReducer struct {
	Client spendings.TransactionService
}

// Reduce implements feature.Reducer
func (r AddTransactionReducer) Reduce(state AddTransactionState, action AddTransactionAction) (AddTransactionState, feature.Effect[AddTransactionAction]) {
	switch action := action.(type) {
	case SetDescription:
		state.Description = action.Value
		return state, nil
	case SetAmount:
		state.Amount = action.Value
		return state, nil
	case SetBudgetID:
		state.SelectedBudgetID = action.Value
		return state, nil
	case SetSourceID:
		state.SelectedSourceID = action.Value
		return state, nil

	case SubmitForm:
		state.IsLoading = true
		params := &spendings.CreateWithdrawalParams{
			Description: state.Description,
			Amount:      state.Amount,
			BudgetID:    state.SelectedBudgetID,
			SourceID:    state.SelectedSourceID,
		}
		return state, func(ctx context.Context) AddTransactionAction {
			return FormResponse{Err: r.Client.Create(ctx, params)}
		}

	case FormResponse:
		state = resetForm(state)
		if action.Err != nil {
			state.Alert = &Alert{Message: "Failed to create transaction!"}
			return state, nil
		}
		state.Alert = &Alert{Message: "Successfully added transaction!", Success: true}
		return state, nil

	case DismissAlert:
		state.Alert = nil
		return state, nil
	}
	return state, nil
}

// resetForm clears every form field and the loading flag
func resetForm(state AddTransactionState) AddTransactionState {
	state.Description = ""
	state.Amount = ""
	state.SelectedBudgetID = ""
	state.SelectedSourceID = ""
	state.IsLoading = false
	return state
}

// NewAddTransactionStore creates an add-transaction feature store over the
// shared budgets collection
func NewAddTransactionStore(shared *SharedBudgets, client spendings.TransactionService) *feature.Store[AddTransactionState, AddTransactionAction] {
	return feature.NewStore[AddTransactionState, AddTransactionAction](
		AddTransactionState{Budgets: shared},
		AddTransactionReducer{Client: client},
	)
}
