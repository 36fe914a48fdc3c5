// transactions-check/internal/rules/rules_prop_test.go
package rules

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/example/transactions-check/internal/transaction"
)

// descendingList builds a strictly descending, well-formed list of n
// booked transactions.
func descendingList(t *rapid.T, n int) []transaction.Transaction {
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	txs := make([]transaction.Transaction, n)
	offset := 0
	for i := 0; i < n; i++ {
		// strictly increasing gaps keep timestamps distinct
		offset += rapid.IntRange(1, 86400).Draw(t, fmt.Sprintf("gap%d", i))
		txs[i] = debit(fmt.Sprintf("t%d", i), base.Add(-time.Duration(offset)*time.Second).Format(time.RFC3339), "-5")
	}
	return txs
}

func TestDescendingDateOrderHoldsOnSortedLists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 12).Draw(t, "n")
		txs := descendingList(t, n)
		res := DescendingDateOrder(testCustomer, txs)
		if !res.Passed {
			t.Fatalf("sorted list rejected: %s", res.Detail)
		}
	})
}

func TestDescendingDateOrderNamesTheInvertedPair(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 12).Draw(t, "n")
		txs := descendingList(t, n)
		i := rapid.IntRange(0, n-2).Draw(t, "pair")
		txs[i], txs[i+1] = txs[i+1], txs[i]

		res := DescendingDateOrder(testCustomer, txs)
		if res.Passed {
			t.Fatalf("inverted pair at %d not detected", i)
		}
		want := fmt.Sprintf("pair %d-%d", i, i+1)
		if !strings.Contains(res.Detail, want) {
			t.Fatalf("detail %q does not name %q", res.Detail, want)
		}
	})
}

func TestDebitSignFailsIffAmountNonNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		cents := rapid.Int64Range(-1_000_000, 1_000_000).Draw(t, "cents")
		amount := decimal.New(cents, -2)
		tx := transaction.Transaction{
			TransactionID: "t0",
			Amount:        amount,
			Currency:      "EUR",
			Timestamp:     "2025-01-01T12:00:00Z",
			Type:          transaction.TypeDebit,
			SubType:       "CardPayment",
			Status:        transaction.StatusBooked,
			CategoryID:    7,
			Description:   "prop",
		}
		res := DebitSignConvention(testCustomer, []transaction.Transaction{tx})
		if res.Passed == (cents >= 0) {
			t.Fatalf("amount %s: passed=%v", amount, res.Passed)
		}
	})
}

func TestISO8601RejectsDayFirstDates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		day := rapid.IntRange(1, 28).Draw(t, "day")
		month := rapid.IntRange(1, 12).Draw(t, "month")
		year := rapid.IntRange(2000, 2030).Draw(t, "year")
		s := fmt.Sprintf("%02d-%02d-%04d", day, month, year)
		if transaction.IsISO8601(s) {
			t.Fatalf("day-first date %q accepted", s)
		}
	})
}
