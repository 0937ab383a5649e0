package spendings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hung-m-dao/spendings-app/internal/transport"
	internalTypes "github.com/hung-m-dao/spendings-app/internal/types"
)

// MockTransport is a mock implementation of the Transport interface. Like
// the real transport it classifies unmarshal failures as decode failures.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Do(ctx context.Context, ep transport.Endpoint, result interface{}) error {
	args := m.Called(ctx, ep, result)

	// If mock provides result data, unmarshal it
	if args.Get(0) != nil && result != nil {
		payload := args.Get(0).(string)
		if err := json.Unmarshal([]byte(payload), result); err != nil {
			return &internalTypes.Error{
				Code:    internalTypes.CodeDecodeFailure,
				Message: "failed to decode response: " + err.Error(),
				Err:     err,
			}
		}
	}

	return args.Error(1)
}

func (m *MockTransport) SetAuth(token string) {
	m.Called(token)
}

// testNow is the fixed clock used by service tests
var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

// newTestClient builds a client over a mock transport with a fixed clock
func newTestClient(mockTransport *MockTransport) *Client {
	c := &Client{
		transport: mockTransport,
		options:   &ClientOptions{CategoryName: "hung"},
		now:       func() time.Time { return testNow },
	}
	c.initServices()
	return c
}

func TestAccountService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockResponse := `{
		"data": [
			{
				"id": "3",
				"attributes": {
					"name": "Checking",
					"current_balance": "1500.50"
				}
			},
			{
				"id": "7",
				"attributes": {
					"name": "Savings",
					"current_balance": "5000"
				}
			}
		]
	}`

	mockTransport.On("Do",
		mock.Anything,
		mock.MatchedBy(func(ep transport.Endpoint) bool {
			// The account list filters on asset accounts and carries no
			// date range.
			return ep.Path == "/v1/accounts" &&
				ep.Query.Get("type") == "asset" &&
				ep.Query.Get("start") == "" &&
				ep.Query.Get("limit") == ""
		}),
		mock.Anything,
	).Return(mockResponse, nil)

	accounts, err := client.Accounts.List(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "3", accounts[0].ID)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, 1500, accounts[0].CurrentBalance)
	assert.Equal(t, 5000, accounts[1].CurrentBalance)

	mockTransport.AssertExpectations(t)
}

func TestAccountService_List_Error(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	mockTransport.On("Do", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &internalTypes.Error{
			Code:       internalTypes.CodeHTTPStatus,
			Message:    "unexpected HTTP status 500 Internal Server Error",
			StatusCode: 500,
		})

	accounts, err := client.Accounts.List(context.Background())

	require.Error(t, err)
	assert.Nil(t, accounts)

	code, ok := HTTPStatus(err)
	require.True(t, ok)
	assert.Equal(t, 500, code)
}
