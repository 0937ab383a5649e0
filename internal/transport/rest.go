package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/hung-m-dao/spendings-app/internal/types"
)

const (
	authHeaderKey   = "Authorization"
	requestIDHeader = "X-Request-Id"

	contentType  = "application/json"
	vendorAccept = "application/vnd.api+json"
)

// RESTTransport executes Endpoint descriptions against a Firefly III base
// URL and classifies the outcome.
type RESTTransport struct {
	baseURL     string
	httpClient  *http.Client
	retryClient *retryablehttp.Client
	headers     map[string]string
	token       string
	logger      types.Logger
	hooks       *types.Hooks
}

// Options for the REST transport
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
	RetryConfig *types.RetryConfig
	Logger      types.Logger
	Hooks       *types.Hooks
}

// NewRESTTransport creates a new REST transport
func NewRESTTransport(opts *Options) *RESTTransport {
	if opts == nil {
		opts = &Options{}
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{
			Timeout: types.DefaultTimeout,
		}
	}

	// Create retry client if configured. Without one, every call is made
	// exactly once and a failure fails the whole operation.
	var retryClient *retryablehttp.Client
	if opts.RetryConfig != nil {
		retryClient = retryablehttp.NewClient()
		retryClient.HTTPClient = opts.HTTPClient
		retryClient.RetryMax = opts.RetryConfig.MaxRetries
		retryClient.RetryWaitMin = opts.RetryConfig.RetryWait
		retryClient.RetryWaitMax = opts.RetryConfig.MaxWait

		if opts.Logger != nil {
			retryClient.Logger = &retryLogger{logger: opts.Logger}
		}
	}

	headers := map[string]string{
		"User-Agent": types.UserAgent,
	}
	for k, v := range opts.Headers {
		headers[k] = v
	}

	return &RESTTransport{
		baseURL:     opts.BaseURL,
		httpClient:  opts.HTTPClient,
		retryClient: retryClient,
		headers:     headers,
		logger:      opts.Logger,
		hooks:       opts.Hooks,
	}
}

// Do executes the endpoint and unmarshals the response body into result
// when result is non-nil.
func (t *RESTTransport) Do(ctx context.Context, ep Endpoint, result interface{}) error {
	httpReq, err := t.buildRequest(ctx, ep)
	if err != nil {
		return err
	}

	if t.hooks != nil && t.hooks.OnRequest != nil {
		t.hooks.OnRequest(ctx, httpReq)
	}

	if t.logger != nil {
		t.logger.Debug("API request", "endpoint", ep.Name, "method", ep.Method, "path", ep.Path)
	}

	start := time.Now()
	resp, err := t.doRequest(httpReq)
	duration := time.Since(start)

	if err != nil {
		if t.hooks != nil && t.hooks.OnError != nil {
			t.hooks.OnError(ctx, err)
		}
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if t.hooks != nil && t.hooks.OnResponse != nil {
		t.hooks.OnResponse(ctx, resp, duration)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}

	if t.logger != nil {
		t.logger.Debug("API response", "endpoint", ep.Name, "status", resp.StatusCode, "duration", duration, "size", len(respBody))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &types.Error{
			Code:       types.CodeHTTPStatus,
			Message:    "unexpected HTTP status " + resp.Status,
			StatusCode: resp.StatusCode,
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return &types.Error{
				Code:    types.CodeDecodeFailure,
				Message: "failed to decode response: " + err.Error(),
				Err:     err,
			}
		}
	}

	return nil
}

// SetAuth sets the authorization token sent with every request
func (t *RESTTransport) SetAuth(token string) {
	t.token = token
}

// buildRequest turns an endpoint description into an HTTP request.
// Construction failures are classified as invalid-request errors.
func (t *RESTTransport) buildRequest(ctx context.Context, ep Endpoint) (*http.Request, error) {
	target := t.baseURL + ep.Path
	if len(ep.Query) > 0 {
		target += "?" + ep.Query.Encode()
	}

	var body io.Reader
	if ep.Body != nil {
		encoded, err := json.Marshal(ep.Body)
		if err != nil {
			return nil, &types.Error{
				Code:    types.CodeInvalidRequest,
				Message: "failed to encode request body: " + err.Error(),
				Err:     types.ErrInvalidRequest,
			}
		}
		body = bytes.NewReader(encoded)
	}

	httpReq, err := http.NewRequestWithContext(ctx, ep.Method, target, body)
	if err != nil {
		return nil, &types.Error{
			Code:    types.CodeInvalidRequest,
			Message: "failed to build request for " + ep.Name + ": " + err.Error(),
			Err:     types.ErrInvalidRequest,
		}
	}

	for k, v := range t.headers {
		httpReq.Header.Set(k, v)
	}

	if t.token != "" {
		httpReq.Header.Set(authHeaderKey, t.token)
	}

	httpReq.Header.Set(requestIDHeader, uuid.NewString())

	if ep.Body != nil {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if ep.VendorAccept {
		httpReq.Header.Set("Accept", vendorAccept)
	}

	return httpReq, nil
}

// doRequest executes the HTTP request with retry if configured
func (t *RESTTransport) doRequest(req *http.Request) (*http.Response, error) {
	if t.retryClient != nil {
		retryReq, err := retryablehttp.FromRequest(req)
		if err != nil {
			return nil, err
		}
		return t.retryClient.Do(retryReq)
	}
	return t.httpClient.Do(req)
}

// retryLogger adapts our logger to retryablehttp
type retryLogger struct {
	logger types.Logger
}

func (l *retryLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, keysAndValues...)
}

func (l *retryLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, keysAndValues...)
}

func (l *retryLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l *retryLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, keysAndValues...)
}
