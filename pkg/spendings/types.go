package spendings

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Budget represents one Firefly III budget for the current period
type Budget struct {
	ID   string
	Name string

	// SpentSum is the cumulative spent amount this period. The feed
	// reports it as a negative magnitude; use Spent for the absolute
	// value.
	SpentSum int

	// AutoBudgetAmount is the allocated amount for the period
	AutoBudgetAmount int
}

// budgetResource mirrors the wire shape: attributes nested under the id,
// numbers encoded as strings, spent wrapped in a one-element array.
type budgetResource struct {
	ID         string `json:"id"`
	Attributes *struct {
		Name             string `json:"name"`
		AutoBudgetAmount string `json:"auto_budget_amount"`
		Spent            []struct {
			Sum string `json:"sum"`
		} `json:"spent"`
	} `json:"attributes"`
}

// UnmarshalJSON implements json.Unmarshaler for Budget
func (b *Budget) UnmarshalJSON(data []byte) error {
	var res budgetResource
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	if res.Attributes == nil {
		return errors.New("budget resource missing attributes")
	}

	b.ID = res.ID
	b.Name = res.Attributes.Name
	b.AutoBudgetAmount = amountToInt(res.Attributes.AutoBudgetAmount)
	if len(res.Attributes.Spent) > 0 {
		b.SpentSum = amountToInt(res.Attributes.Spent[0].Sum)
	} else {
		b.SpentSum = 0
	}
	return nil
}

// Spent returns the absolute spent amount for the period
func (b Budget) Spent() int {
	if b.SpentSum < 0 {
		return -b.SpentSum
	}
	return b.SpentSum
}

// Remaining returns the amount left in the budget for the period
func (b Budget) Remaining() int {
	return b.AutoBudgetAmount - b.Spent()
}

// SpentRatio returns spent over allocated. A budget with no allocation is
// reported as fully spent.
func (b Budget) SpentRatio() float64 {
	if b.AutoBudgetAmount == 0 {
		return 1.0
	}
	return float64(b.Spent()) / float64(b.AutoBudgetAmount)
}

// Account represents one asset account
type Account struct {
	ID             string
	Name           string
	CurrentBalance int
}

type accountResource struct {
	ID         string `json:"id"`
	Attributes *struct {
		Name           string `json:"name"`
		CurrentBalance string `json:"current_balance"`
	} `json:"attributes"`
}

// UnmarshalJSON implements json.Unmarshaler for Account
func (a *Account) UnmarshalJSON(data []byte) error {
	var res accountResource
	if err := json.Unmarshal(data, &res); err != nil {
		return err
	}
	if res.Attributes == nil {
		return errors.New("account resource missing attributes")
	}

	a.ID = res.ID
	a.Name = res.Attributes.Name
	a.CurrentBalance = amountToInt(res.Attributes.CurrentBalance)
	return nil
}

// Transaction represents one journal entry
type Transaction struct {
	ID          string `json:"transaction_journal_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`

	// BudgetID is only present on budget-sourced queries
	BudgetID string `json:"budget_id"`
}

// AmountValue parses the amount string, falling back to zero when the feed
// supplies something unparseable.
func (t Transaction) AmountValue() decimal.Decimal {
	value, err := decimal.NewFromString(t.Amount)
	if err != nil {
		return decimal.Zero
	}
	return value
}

// FormattedAmount renders the amount with one fractional digit
func (t Transaction) FormattedAmount() string {
	return t.AmountValue().StringFixed(1)
}

// transactionGroup is the wire representation of a transaction group
// resource. A group may list the same journal entry more than once; only
// the first entry is canonical and survives decoding.
type transactionGroup struct {
	First *Transaction
}

// errBudgetIDShape marks a transaction group whose budget_id attribute
// arrived in an unexpected shape.
var errBudgetIDShape = errors.New("budget_id attribute has unexpected shape")

func (g *transactionGroup) UnmarshalJSON(data []byte) error {
	var res struct {
		Attributes *struct {
			Transactions []Transaction `json:"transactions"`
		} `json:"attributes"`
	}
	if err := json.Unmarshal(data, &res); err != nil {
		// Detect the mismatch here: once this error propagates out of a
		// nested decode the field path no longer names budget_id.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && strings.Contains(typeErr.Field, "budget_id") {
			return errBudgetIDShape
		}
		return err
	}
	if res.Attributes == nil {
		return errors.New("transaction group resource missing attributes")
	}

	if len(res.Attributes.Transactions) > 0 {
		first := res.Attributes.Transactions[0]
		g.First = &first
	}
	return nil
}

// WithdrawalTransaction is the create-request payload for a new withdrawal
type WithdrawalTransaction struct {
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Amount       string    `json:"amount"`
	BudgetID     string    `json:"budget_id"`
	SourceID     string    `json:"source_id"`
	CategoryName string    `json:"category_name"`
	Date         time.Time `json:"date"`
}

// withdrawalType is the only transaction type this client creates
const withdrawalType = "withdrawal"

// NewWithdrawalTransaction builds a withdrawal payload. The category name
// is bound to the configured current-user identity by the transaction
// service; date is the submission timestamp.
func NewWithdrawalTransaction(description, amount, budgetID, sourceID, categoryName string, date time.Time) WithdrawalTransaction {
	return WithdrawalTransaction{
		Type:         withdrawalType,
		Description:  description,
		Amount:       amount,
		BudgetID:     budgetID,
		SourceID:     sourceID,
		CategoryName: categoryName,
		Date:         date,
	}
}

// amountToInt converts a decimal string from the feed into an integer by
// truncation. The API is not contractually guaranteed to supply clean
// numbers, so an unparseable value becomes 0 rather than an error.
func amountToInt(s string) int {
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int(value)
}
