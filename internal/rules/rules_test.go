// transactions-check/internal/rules/rules_test.go
package rules

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/example/transactions-check/internal/transaction"
)

const testCustomer = "746c51bc-bdb9-44d2-9a3e-c4715bc91ee4"

func tx(id, ts string, typ transaction.Type, status transaction.Status, amount, currency string, category int) transaction.Transaction {
	return transaction.Transaction{
		TransactionID: id,
		Amount:        decimal.RequireFromString(amount),
		Currency:      currency,
		Timestamp:     ts,
		Type:          typ,
		SubType:       "CardPayment",
		Status:        status,
		CategoryID:    category,
		Description:   "test",
	}
}

func debit(id, ts, amount string) transaction.Transaction {
	return tx(id, ts, transaction.TypeDebit, transaction.StatusBooked, amount, "EUR", 7)
}

func credit(id, ts, amount string) transaction.Transaction {
	return tx(id, ts, transaction.TypeCredit, transaction.StatusBooked, amount, "EUR", 3)
}

func TestCurrencyPresence(t *testing.T) {
	assert.True(t, CurrencyPresence(testCustomer, nil).Passed, "empty list is vacuously valid")

	ok := []transaction.Transaction{credit("t1", "2024-03-01T10:00:00Z", "10")}
	assert.True(t, CurrencyPresence(testCustomer, ok).Passed)

	bad := tx("t2", "2024-03-01T10:00:00Z", transaction.TypeCredit, transaction.StatusBooked, "10", "", 3)
	res := CurrencyPresence(testCustomer, []transaction.Transaction{ok[0], bad})
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t2")
	assert.Contains(t, res.Detail, testCustomer)
}

func TestDescendingDateOrder(t *testing.T) {
	assert.True(t, DescendingDateOrder(testCustomer, nil).Passed)

	sorted := []transaction.Transaction{
		credit("t1", "2024-03-01T10:00:00Z", "10"),
		debit("t2", "2024-02-01T10:00:00Z", "-5"),
		debit("t3", "2024-01-01T10:00:00Z", "-5"),
	}
	assert.True(t, DescendingDateOrder(testCustomer, sorted).Passed)

	// duplicate timestamps are allowed, the comparison is non-strict
	dup := []transaction.Transaction{
		credit("t1", "2024-03-01T10:00:00Z", "10"),
		debit("t2", "2024-03-01T10:00:00Z", "-5"),
	}
	assert.True(t, DescendingDateOrder(testCustomer, dup).Passed)

	// the documented Customer3 shape: ascending pair at the head
	unsorted := []transaction.Transaction{
		debit("t1", "2024-02-01T10:00:00Z", "-5"),
		credit("t2", "2024-03-01T10:00:00Z", "10"),
		debit("t3", "2024-01-01T10:00:00Z", "-5"),
	}
	res := DescendingDateOrder(testCustomer, unsorted)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "pair 0-1")
	assert.Contains(t, res.Detail, "2024-02-01T10:00:00Z")
	assert.Contains(t, res.Detail, "2024-03-01T10:00:00Z")

	// malformed timestamps belong to the format rule, not this one
	mixed := []transaction.Transaction{
		credit("t1", "2024-03-05T10:00:00Z", "10"),
		debit("t2", "01-03-2024", "-5"),
		debit("t3", "2024-03-01T10:00:00Z", "-5"),
	}
	assert.True(t, DescendingDateOrder(testCustomer, mixed).Passed)
}

func TestISO8601DateFormat(t *testing.T) {
	assert.True(t, ISO8601DateFormat(testCustomer, nil).Passed)

	ok := []transaction.Transaction{credit("t1", "2024-03-01T10:00:00Z", "10")}
	assert.True(t, ISO8601DateFormat(testCustomer, ok).Passed)

	bad := []transaction.Transaction{ok[0], debit("t2", "01-03-2024", "-5")}
	res := ISO8601DateFormat(testCustomer, bad)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t2")
	assert.Contains(t, res.Detail, `"01-03-2024"`)
}

func TestDebitSignConvention(t *testing.T) {
	assert.True(t, DebitSignConvention(testCustomer, nil).Passed)

	ok := []transaction.Transaction{
		debit("t1", "2024-03-01T10:00:00Z", "-50"),
		credit("t2", "2024-02-01T10:00:00Z", "50"),
	}
	assert.True(t, DebitSignConvention(testCustomer, ok).Passed)

	// the documented Customer5 defect: a debit of +50
	res := DebitSignConvention(testCustomer, []transaction.Transaction{
		debit("t3", "2024-03-01T10:00:00Z", "50"),
	})
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t3")
	assert.Contains(t, res.Detail, "50")
	assert.Contains(t, res.Detail, "Debit")

	// zero is not a valid debit amount either
	zero := DebitSignConvention(testCustomer, []transaction.Transaction{
		debit("t4", "2024-03-01T10:00:00Z", "0"),
	})
	assert.False(t, zero.Passed)
}

func TestCreditSignConvention(t *testing.T) {
	ok := []transaction.Transaction{credit("t1", "2024-03-01T10:00:00Z", "0.01")}
	assert.True(t, CreditSignConvention(testCustomer, ok).Passed)

	res := CreditSignConvention(testCustomer, []transaction.Transaction{
		credit("t2", "2024-03-01T10:00:00Z", "-15.25"),
	})
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t2")
}

func TestSchemaConformance(t *testing.T) {
	assert.True(t, SchemaConformance(testCustomer, nil).Passed)

	ok := []transaction.Transaction{credit("t1", "2024-03-01T10:00:00Z", "10")}
	assert.True(t, SchemaConformance(testCustomer, ok).Passed)

	cases := []struct {
		name   string
		mutate func(*transaction.Transaction)
		want   string
	}{
		{"missing id", func(tx *transaction.Transaction) { tx.TransactionID = "" }, "transactionId"},
		{"bad type", func(tx *transaction.Transaction) { tx.Type = "Withdrawal" }, "type"},
		{"bad status", func(tx *transaction.Transaction) { tx.Status = "Settled" }, "status"},
		{"category too low", func(tx *transaction.Transaction) { tx.CategoryID = 0 }, "categoryId"},
		{"category too high", func(tx *transaction.Transaction) { tx.CategoryID = 21 }, "categoryId"},
		{"missing timestamp", func(tx *transaction.Transaction) { tx.Timestamp = "" }, "timestamp"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bad := ok[0]
			tc.mutate(&bad)
			res := SchemaConformance(testCustomer, []transaction.Transaction{bad})
			assert.False(t, res.Passed)
			assert.Contains(t, res.Detail, tc.want)
		})
	}
}

func TestStatusGroupOrder(t *testing.T) {
	pending := func(id, ts string) transaction.Transaction {
		return tx(id, ts, transaction.TypeCredit, transaction.StatusPending, "10", "EUR", 3)
	}

	good := []transaction.Transaction{
		pending("t1", "2025-06-05T14:30:00Z"),
		pending("t2", "2025-06-05T09:15:00Z"),
		debit("t3", "2025-06-04T18:45:00Z", "-10"),
		debit("t4", "2025-06-04T08:00:00Z", "-10"),
	}
	assert.True(t, StatusGroupOrder(testCustomer, good).Passed)

	// Pending after Booked
	grouped := StatusGroupOrder(testCustomer, []transaction.Transaction{
		debit("t1", "2025-06-05T14:30:00Z", "-10"),
		pending("t2", "2025-06-05T09:15:00Z"),
	})
	assert.False(t, grouped.Passed)
	assert.Contains(t, grouped.Detail, "t2")
	assert.Contains(t, grouped.Detail, "index 1")

	// groups ordered, but Booked timestamps ascending
	within := StatusGroupOrder(testCustomer, []transaction.Transaction{
		pending("t1", "2025-06-05T14:30:00Z"),
		debit("t2", "2025-06-03T10:00:00Z", "-10"),
		debit("t3", "2025-06-04T10:00:00Z", "-10"),
	})
	assert.False(t, within.Passed)
	assert.Contains(t, within.Detail, "Booked")
}

func TestCategoryFilter(t *testing.T) {
	rule := CategoryFilter(11)
	assert.True(t, rule(testCustomer, nil).Passed)

	ok := []transaction.Transaction{
		tx("t1", "2024-03-01T10:00:00Z", transaction.TypeDebit, transaction.StatusBooked, "-5", "EUR", 11),
	}
	assert.True(t, rule(testCustomer, ok).Passed)

	res := rule(testCustomer, []transaction.Transaction{ok[0], debit("t2", "2024-02-01T10:00:00Z", "-5")})
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t2")
}

func TestExcludesPending(t *testing.T) {
	booked := []transaction.Transaction{debit("t1", "2024-03-01T10:00:00Z", "-5")}
	assert.True(t, ExcludesPending(testCustomer, booked).Passed)

	res := ExcludesPending(testCustomer, []transaction.Transaction{
		tx("t2", "2024-03-01T10:00:00Z", transaction.TypeCredit, transaction.StatusPending, "10", "EUR", 3),
	})
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t2")
}

func TestDateRange(t *testing.T) {
	from := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	rule := DateRange(from, to)

	inside := []transaction.Transaction{
		debit("t1", "2025-06-05T23:59:59Z", "-5"),
		debit("t2", "2025-06-04T00:00:00Z", "-5"),
	}
	assert.True(t, rule(testCustomer, inside).Passed)

	res := rule(testCustomer, []transaction.Transaction{debit("t3", "2025-06-06T00:00:00Z", "-5")})
	assert.False(t, res.Passed)
	assert.Contains(t, res.Detail, "t3")
}
