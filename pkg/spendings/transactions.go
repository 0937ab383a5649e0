package spendings

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hung-m-dao/spendings-app/internal/transport"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client *Client
}

// createTransactionRequest is the envelope expected by the store endpoint
type createTransactionRequest struct {
	Transactions []WithdrawalTransaction `json:"transactions"`
}

// ListByBudget retrieves this month's transactions for one budget
func (s *transactionService) ListByBudget(ctx context.Context, budgetID string) ([]Transaction, error) {
	ep := transport.BudgetTransactionsEndpoint(budgetID, s.client.now())
	return s.list(ctx, ep)
}

// ListByAccount retrieves this month's transactions for one account
func (s *transactionService) ListByAccount(ctx context.Context, accountID string) ([]Transaction, error) {
	ep := transport.AccountTransactionsEndpoint(accountID, s.client.now())
	return s.list(ctx, ep)
}

func (s *transactionService) list(ctx context.Context, ep transport.Endpoint) ([]Transaction, error) {
	var result struct {
		Data []transactionGroup `json:"data"`
	}

	if err := s.client.do(ctx, ep, &result); err != nil {
		// The budget_id attribute varies in shape between deployments.
		// When decoding trips over it the response is degraded to an
		// empty list instead of failing the whole operation.
		if isBudgetIDMismatch(err) {
			if logger := s.client.logger(); logger != nil {
				logger.Warn("transaction list degraded to empty result", "endpoint", ep.Name, "error", err)
			}
			return []Transaction{}, nil
		}
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	// A group can list a journal entry more than once; only the first is
	// canonical.
	transactions := make([]Transaction, 0, len(result.Data))
	for _, group := range result.Data {
		if group.First != nil {
			transactions = append(transactions, *group.First)
		}
	}

	return transactions, nil
}

// Create stores a new withdrawal
func (s *transactionService) Create(ctx context.Context, params *CreateWithdrawalParams) error {
	withdrawal := NewWithdrawalTransaction(
		params.Description,
		params.Amount,
		params.BudgetID,
		params.SourceID,
		s.client.options.CategoryName,
		s.client.now(),
	)

	body := createTransactionRequest{
		Transactions: []WithdrawalTransaction{withdrawal},
	}

	if err := s.client.do(ctx, transport.CreateTransactionEndpoint(body), nil); err != nil {
		return errors.Wrap(err, "failed to create transaction")
	}

	return nil
}

// isBudgetIDMismatch reports whether err is a decode failure caused by the
// budget_id field arriving in an unexpected shape.
func isBudgetIDMismatch(err error) bool {
	return IsDecodeFailure(err) && errors.Is(err, errBudgetIDShape)
}
