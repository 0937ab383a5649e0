package transport

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// pageLimit is the fixed page size attached to every list endpoint.
const pageLimit = "10"

// Endpoint describes one call of the closed Firefly III API surface.
// Values are only created through the constructor functions below, so an
// unhandled endpoint cannot exist.
type Endpoint struct {
	Name   string
	Method string
	Path   string
	Query  url.Values
	Body   interface{}

	// VendorAccept requests the versioned JSON:API media type. Only the
	// create-transaction endpoint sets it.
	VendorAccept bool
}

// BudgetsEndpoint lists budgets for the calendar month containing now.
func BudgetsEndpoint(now time.Time) Endpoint {
	return Endpoint{
		Name:   "budgets.list",
		Method: http.MethodGet,
		Path:   "/v1/budgets",
		Query:  monthRangeQuery(now),
	}
}

// BudgetTransactionsEndpoint lists transactions charged against one budget.
func BudgetTransactionsEndpoint(budgetID string, now time.Time) Endpoint {
	return Endpoint{
		Name:   "budgets.transactions",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/budgets/%s/transactions", budgetID),
		Query:  monthRangeQuery(now),
	}
}

// AccountTransactionsEndpoint lists transactions booked on one account.
func AccountTransactionsEndpoint(accountID string, now time.Time) Endpoint {
	return Endpoint{
		Name:   "accounts.transactions",
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/v1/accounts/%s/transactions", accountID),
		Query:  monthRangeQuery(now),
	}
}

// AccountsEndpoint lists asset accounts. No date range applies.
func AccountsEndpoint() Endpoint {
	query := url.Values{}
	query.Set("type", "asset")
	return Endpoint{
		Name:   "accounts.list",
		Method: http.MethodGet,
		Path:   "/v1/accounts",
		Query:  query,
	}
}

// CreateTransactionEndpoint stores a new transaction. The body is the
// request envelope built by the transaction service.
func CreateTransactionEndpoint(body interface{}) Endpoint {
	return Endpoint{
		Name:         "transactions.create",
		Method:       http.MethodPost,
		Path:         "/v1/transactions",
		Body:         body,
		VendorAccept: true,
	}
}

// MonthRange returns the first and last day of the calendar month
// containing now, formatted as YYYY-MM-DD. The computation is done in UTC
// so the range does not drift across timezones.
func MonthRange(now time.Time) (start, end string) {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

func monthRangeQuery(now time.Time) url.Values {
	start, end := MonthRange(now)
	query := url.Values{}
	query.Set("start", start)
	query.Set("end", end)
	query.Set("limit", pageLimit)
	return query
}
