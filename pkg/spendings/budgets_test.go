package spendings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hung-m-dao/spendings-app/internal/transport"
)

func TestBudgetService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"data": [
			{
				"id": "1",
				"attributes": {
					"name": "Food",
					"auto_budget_amount": "1000",
					"spent": [{"sum": "-150"}]
				}
			}
		]
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(ep transport.Endpoint) bool {
			// Every budget list call spans the current calendar month
			// with the fixed page size. testNow is mid-March 2025.
			return ep.Path == "/v1/budgets" &&
				ep.Query.Get("start") == "2025-03-01" &&
				ep.Query.Get("end") == "2025-03-31" &&
				ep.Query.Get("limit") == "10"
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	budgets, err := client.Budgets.List(context.Background())

	require.NoError(t, err)
	require.Len(t, budgets, 1)
	assert.Equal(t, "1", budgets[0].ID)
	assert.Equal(t, "Food", budgets[0].Name)
	assert.Equal(t, -150, budgets[0].SpentSum)
	assert.Equal(t, 1000, budgets[0].AutoBudgetAmount)
	assert.Equal(t, 850, budgets[0].Remaining())
	assert.InDelta(t, 0.15, budgets[0].SpentRatio(), 1e-9)

	mockTransport.AssertExpectations(t)
}

func TestBudgetService_List_Error(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, assert.AnError)

	budgets, err := client.Budgets.List(context.Background())

	require.Error(t, err)
	assert.Nil(t, budgets)
	assert.Contains(t, err.Error(), "failed to get budgets")
}
