package spendings

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hung-m-dao/spendings-app/internal/transport"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves budgets for the current calendar month
func (s *budgetService) List(ctx context.Context) ([]Budget, error) {
	var result struct {
		Data []Budget `json:"data"`
	}

	ep := transport.BudgetsEndpoint(s.client.now())
	if err := s.client.do(ctx, ep, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	return result.Data, nil
}
