package spendings

import "context"

// BudgetService handles budget-related operations
type BudgetService interface {
	// List retrieves budgets for the current calendar month
	List(ctx context.Context) ([]Budget, error)
}

// AccountService handles account-related operations
type AccountService interface {
	// List retrieves all asset accounts
	List(ctx context.Context) ([]Account, error)
}

// TransactionService handles transaction-related operations
type TransactionService interface {
	// ListByBudget retrieves this month's transactions for one budget
	ListByBudget(ctx context.Context, budgetID string) ([]Transaction, error)

	// ListByAccount retrieves this month's transactions for one account
	ListByAccount(ctx context.Context, accountID string) ([]Transaction, error)

	// Create stores a new withdrawal
	Create(ctx context.Context, params *CreateWithdrawalParams) error
}

// CreateWithdrawalParams holds the user-supplied fields of a new
// withdrawal. The service fills in the fixed type, the configured category
// name and the submission timestamp.
type CreateWithdrawalParams struct {
	Description string
	Amount      string
	BudgetID    string
	SourceID    string
}
