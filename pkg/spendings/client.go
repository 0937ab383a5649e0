package spendings

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/hung-m-dao/spendings-app/internal/transport"
	internalTypes "github.com/hung-m-dao/spendings-app/internal/types"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Client is the main Firefly III spendings client
type Client struct {
	// Service interfaces
	Budgets      BudgetService
	Accounts     AccountService
	Transactions TransactionService

	// Internal fields
	baseURL   string
	transport Transport
	options   *ClientOptions
	now       func() time.Time
}

// ClientOptions configures the client
type ClientOptions struct {
	// BaseURL is the API base URL, e.g. https://firefly.example.com/api
	BaseURL string

	// Token is sent verbatim in the Authorization header
	Token string

	// CategoryName is the current-user identity bound to the
	// category_name of created transactions
	CategoryName string

	// HTTPClient allows using a custom HTTP client
	HTTPClient *http.Client

	// Timeout sets the HTTP client timeout
	Timeout time.Duration

	// Logger for debug logging
	Logger Logger

	// RetryConfig configures retry behavior. Left nil, every call is
	// made exactly once.
	RetryConfig *internalTypes.RetryConfig

	// Hooks for observability
	Hooks *internalTypes.Hooks

	// SentryDSN enables Sentry error tracking when set
	SentryDSN string

	// SentryOptions allows custom Sentry configuration
	SentryOptions *sentry.ClientOptions
}

// Logger interface for logging
type Logger = internalTypes.Logger

// Transport executes endpoint descriptions against the remote API
type Transport interface {
	Do(ctx context.Context, ep transport.Endpoint, result interface{}) error
	SetAuth(token string)
}

// NewClient creates a new spendings client
func NewClient(opts *ClientOptions) (*Client, error) {
	if opts == nil {
		opts = &ClientOptions{}
	}

	// Initialize Sentry if DSN is provided
	if opts.SentryDSN != "" || opts.SentryOptions != nil {
		sentryOpts := sentry.ClientOptions{}

		if opts.SentryOptions != nil {
			sentryOpts = *opts.SentryOptions
		}

		if opts.SentryDSN != "" {
			sentryOpts.Dsn = opts.SentryDSN
		}

		if sentryOpts.Environment == "" {
			sentryOpts.Environment = "production"
		}

		if err := sentry.Init(sentryOpts); err != nil {
			// Log error but don't fail client creation
			if opts.Logger != nil {
				opts.Logger.Error("Failed to initialize Sentry", "error", err)
			}
		}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	if opts.Timeout > 0 {
		opts.HTTPClient.Timeout = opts.Timeout
	}

	trans := transport.NewRESTTransport(&transport.Options{
		BaseURL:     opts.BaseURL,
		HTTPClient:  opts.HTTPClient,
		RetryConfig: opts.RetryConfig,
		Logger:      opts.Logger,
		Hooks:       opts.Hooks,
	})

	if opts.Token != "" {
		trans.SetAuth(opts.Token)
	}

	c := &Client{
		baseURL:   opts.BaseURL,
		transport: trans,
		options:   opts,
		now:       time.Now,
	}

	c.initServices()

	return c, nil
}

// NewClientWithToken creates a client with an auth token
func NewClientWithToken(baseURL, token string) (*Client, error) {
	return NewClient(&ClientOptions{
		BaseURL: baseURL,
		Token:   token,
	})
}

// initServices initializes all service implementations
func (c *Client) initServices() {
	c.Budgets = &budgetService{client: c}
	c.Accounts = &accountService{client: c}
	c.Transactions = &transactionService{client: c}
}

// SetToken sets the authentication token
func (c *Client) SetToken(token string) {
	c.transport.SetAuth(token)
}

// do executes an endpoint and captures failures in Sentry when enabled
func (c *Client) do(ctx context.Context, ep transport.Endpoint, result interface{}) error {
	err := c.transport.Do(ctx, ep, result)

	if err != nil {
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("api.endpoint", ep.Name)
				hub.CaptureException(err)
			})
		} else {
			sentry.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("api.endpoint", ep.Name)
				sentry.CaptureException(err)
			})
		}
	}

	return err
}

// logger returns the configured logger, which may be nil
func (c *Client) logger() Logger {
	return c.options.Logger
}

// Close flushes any pending Sentry events and performs cleanup
func (c *Client) Close() {
	sentry.Flush(2 * time.Second)
}
