package spendings

import (
	"context"

	"github.com/pkg/errors"

	"github.com/hung-m-dao/spendings-app/internal/transport"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all asset accounts
func (s *accountService) List(ctx context.Context) ([]Account, error) {
	var result struct {
		Data []Account `json:"data"`
	}

	if err := s.client.do(ctx, transport.AccountsEndpoint(), &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	return result.Data, nil
}
