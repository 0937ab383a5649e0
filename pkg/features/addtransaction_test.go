package features

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hung-m-dao/spendings-app/pkg/spendings"
)

func TestAddTransaction_FieldBindings(t *testing.T) {
	store := NewAddTransactionStore(NewSharedBudgets(), &stubTransactionService{})
	defer store.Close()

	store.Dispatch(SetDescription{Value: "Groceries"})
	store.Dispatch(SetAmount{Value: "12.5"})
	store.Dispatch(SetBudgetID{Value: "4"})
	store.Dispatch(SetSourceID{Value: "2"})

	state := store.State()
	assert.Equal(t, "Groceries", state.Description)
	assert.Equal(t, "12.5", state.Amount)
	assert.Equal(t, "4", state.SelectedBudgetID)
	assert.Equal(t, "2", state.SelectedSourceID)
	assert.False(t, state.IsLoading)
	assert.Nil(t, state.Alert)
}

func TestAddTransaction_SubmitSuccess(t *testing.T) {
	svc := &stubTransactionService{}
	store := NewAddTransactionStore(NewSharedBudgets(), svc)
	defer store.Close()

	store.Dispatch(SetDescription{Value: "Groceries"})
	store.Dispatch(SetAmount{Value: "12.5"})
	store.Dispatch(SetBudgetID{Value: "4"})
	store.Dispatch(SetSourceID{Value: "1"})
	store.Dispatch(SubmitForm{})
	store.Wait()

	require.Len(t, svc.created, 1)
	assert.Equal(t, &spendings.CreateWithdrawalParams{
		Description: "Groceries",
		Amount:      "12.5",
		BudgetID:    "4",
		SourceID:    "1",
	}, svc.created[0])

	state := store.State()
	assert.False(t, state.IsLoading)
	assert.Empty(t, state.Description)
	assert.Empty(t, state.Amount)
	assert.Empty(t, state.SelectedBudgetID)
	assert.Empty(t, state.SelectedSourceID)
	require.NotNil(t, state.Alert)
	assert.True(t, state.Alert.Success)
	assert.Equal(t, "Successfully added transaction!", state.Alert.Message)
}

func TestAddTransaction_SubmitFailure(t *testing.T) {
	svc := &stubTransactionService{
		err: &spendings.Error{Code: "HTTP_STATUS", StatusCode: 422},
	}
	store := NewAddTransactionStore(NewSharedBudgets(), svc)
	defer store.Close()

	store.Dispatch(SetDescription{Value: "Rent"})
	store.Dispatch(SetAmount{Value: "900"})
	store.Dispatch(SubmitForm{})
	store.Wait()

	state := store.State()
	// The form resets on failure too
	assert.Empty(t, state.Description)
	assert.Empty(t, state.Amount)
	require.NotNil(t, state.Alert)
	assert.False(t, state.Alert.Success)
	assert.Equal(t, "Failed to create transaction!", state.Alert.Message)
}

func TestAddTransaction_SubmitWithoutValidation(t *testing.T) {
	svc := &stubTransactionService{}
	store := NewAddTransactionStore(NewSharedBudgets(), svc)
	defer store.Close()

	// An entirely empty form still submits; gating belongs to the host
	store.Dispatch(SubmitForm{})
	store.Wait()

	require.Len(t, svc.created, 1)
	assert.Equal(t, &spendings.CreateWithdrawalParams{}, svc.created[0])
}

func TestAddTransaction_DismissAlert(t *testing.T) {
	store := NewAddTransactionStore(NewSharedBudgets(), &stubTransactionService{})
	defer store.Close()

	store.Dispatch(SubmitForm{})
	store.Wait()
	require.NotNil(t, store.State().Alert)

	store.Dispatch(DismissAlert{})
	assert.Nil(t, store.State().Alert)
}

func TestAddTransaction_ReadsSharedBudgets(t *testing.T) {
	shared := NewSharedBudgets()
	store := NewAddTransactionStore(shared, &stubTransactionService{})
	defer store.Close()

	shared.Replace([]spendings.Budget{{ID: "1", Name: "Food"}})

	picker := store.State().Budgets.Snapshot()
	require.Len(t, picker, 1)
	assert.Equal(t, "Food", picker[0].Name)
}
