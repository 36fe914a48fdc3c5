// transactions-check/internal/transaction/transaction.go
package transaction

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeDebit  Type = "Debit"
	TypeCredit Type = "Credit"
)

func (t Type) Valid() bool { return t == TypeDebit || t == TypeCredit }

type Status string

const (
	StatusPending Status = "Pending"
	StatusBooked  Status = "Booked"
)

func (s Status) Valid() bool { return s == StatusPending || s == StatusBooked }

// Transaction mirrors one record of the transactions-by-customer
// endpoint. Timestamp is kept as the raw wire string: whether it is
// well-formed ISO8601 is itself one of the properties under test.
type Transaction struct {
	TransactionID string          `json:"transactionId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	MerchantName  *string         `json:"merchantName"`
	Timestamp     string          `json:"timestamp"`
	Type          Type            `json:"type"`
	SubType       string          `json:"subType"`
	Status        Status          `json:"status"`
	CategoryID    int             `json:"categoryId"`
	Description   string          `json:"description"`
}

const (
	CategoryMin = 1
	CategoryMax = 20
)

// iso8601Re pins the accepted shape before time.Parse checks calendar
// validity: date-T-time with optional fractional seconds and a mandatory
// zone designator. Day-first strings like "01-03-2024" never match.
var iso8601Re = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{1,6})?(Z|[+-]\d{2}:\d{2})$`)

// IsISO8601 reports whether s is a fully qualified ISO8601 timestamp.
func IsISO8601(s string) bool {
	if !iso8601Re.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// ParseTimestamp parses s under the same grammar IsISO8601 accepts.
func ParseTimestamp(s string) (time.Time, error) {
	if !iso8601Re.MatchString(s) {
		return time.Time{}, fmt.Errorf("timestamp %q is not ISO8601", s)
	}
	return time.Parse(time.RFC3339, s)
}

// ValidCustomerID reports whether id is a well-formed GUID. The API
// rejects anything else with a 400 before touching transaction data.
func ValidCustomerID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
