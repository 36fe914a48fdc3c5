// transactions-check/internal/rules/rules.go

// Package rules holds the business-rule checks applied to a customer's
// transaction list. Every rule is a pure function: it takes the customer
// id for context plus the fetched list, and returns a single Result. An
// empty list passes every rule; distinguishing "empty" from "could not
// fetch" is the caller's job.
package rules

import (
	"fmt"
	"time"

	"github.com/example/transactions-check/internal/transaction"
)

const (
	RuleCurrencyPresence    = "CurrencyPresence"
	RuleDescendingDateOrder = "DescendingDateOrder"
	RuleISO8601DateFormat   = "ISO8601DateFormat"
	RuleDebitSign           = "DebitSignConvention"
	RuleCreditSign          = "CreditSignConvention"
	RuleSchemaConformance   = "SchemaConformance"
	RuleStatusGroupOrder    = "StatusGroupOrder"
	RuleCategoryFilter      = "CategoryFilter"
	RuleExcludesPending     = "ExcludesPending"
	RuleDateRange           = "DateRange"
)

type Result struct {
	Rule   string
	Passed bool
	// Detail names the offending record(s) when the rule fails.
	Detail string
}

func pass(rule string) Result { return Result{Rule: rule, Passed: true} }

func fail(rule, format string, args ...any) Result {
	return Result{Rule: rule, Detail: fmt.Sprintf(format, args...)}
}

// Rule is the common shape of the list checks a scenario composes.
type Rule func(customerID string, txs []transaction.Transaction) Result

// CurrencyPresence: every transaction carries a non-empty currency code.
func CurrencyPresence(customerID string, txs []transaction.Transaction) Result {
	for _, tx := range txs {
		if tx.Currency == "" {
			return fail(RuleCurrencyPresence,
				"transaction %s of customer %s has no currency", tx.TransactionID, customerID)
		}
	}
	return pass(RuleCurrencyPresence)
}

// DescendingDateOrder: adjacent timestamps are non-increasing. The
// comparison is non-strict so same-instant transactions never fail the
// check. Pairs where either side does not parse are skipped here:
// malformed timestamps belong to ISO8601DateFormat.
func DescendingDateOrder(customerID string, txs []transaction.Transaction) Result {
	for i := 0; i+1 < len(txs); i++ {
		a, errA := transaction.ParseTimestamp(txs[i].Timestamp)
		b, errB := transaction.ParseTimestamp(txs[i+1].Timestamp)
		if errA != nil || errB != nil {
			continue
		}
		if a.Before(b) {
			return fail(RuleDescendingDateOrder,
				"customer %s: transactions out of order at pair %d-%d: %s < %s",
				customerID, i, i+1, txs[i].Timestamp, txs[i+1].Timestamp)
		}
	}
	return pass(RuleDescendingDateOrder)
}

// ISO8601DateFormat: every timestamp matches the full ISO8601 grammar.
func ISO8601DateFormat(customerID string, txs []transaction.Transaction) Result {
	for _, tx := range txs {
		if !transaction.IsISO8601(tx.Timestamp) {
			return fail(RuleISO8601DateFormat,
				"transaction %s of customer %s has malformed timestamp %q",
				tx.TransactionID, customerID, tx.Timestamp)
		}
	}
	return pass(RuleISO8601DateFormat)
}

// DebitSignConvention: debits are strictly negative.
func DebitSignConvention(customerID string, txs []transaction.Transaction) Result {
	for _, tx := range txs {
		if tx.Type == transaction.TypeDebit && tx.Amount.Sign() >= 0 {
			return fail(RuleDebitSign,
				"transaction %s of customer %s declared %s but amount is %s",
				tx.TransactionID, customerID, tx.Type, tx.Amount)
		}
	}
	return pass(RuleDebitSign)
}

// CreditSignConvention: credits are strictly positive.
func CreditSignConvention(customerID string, txs []transaction.Transaction) Result {
	for _, tx := range txs {
		if tx.Type == transaction.TypeCredit && tx.Amount.Sign() <= 0 {
			return fail(RuleCreditSign,
				"transaction %s of customer %s declared %s but amount is %s",
				tx.TransactionID, customerID, tx.Type, tx.Amount)
		}
	}
	return pass(RuleCreditSign)
}

// SchemaConformance: required identifiers present, enums valid,
// categoryId within range. Currency emptiness and timestamp format have
// their own rules and are not double-reported here.
func SchemaConformance(customerID string, txs []transaction.Transaction) Result {
	for i, tx := range txs {
		switch {
		case tx.TransactionID == "":
			return fail(RuleSchemaConformance,
				"customer %s: transaction at index %d has no transactionId", customerID, i)
		case !tx.Type.Valid():
			return fail(RuleSchemaConformance,
				"transaction %s of customer %s has unknown type %q", tx.TransactionID, customerID, tx.Type)
		case !tx.Status.Valid():
			return fail(RuleSchemaConformance,
				"transaction %s of customer %s has unknown status %q", tx.TransactionID, customerID, tx.Status)
		case tx.CategoryID < transaction.CategoryMin || tx.CategoryID > transaction.CategoryMax:
			return fail(RuleSchemaConformance,
				"transaction %s of customer %s has categoryId %d outside %d..%d",
				tx.TransactionID, customerID, tx.CategoryID, transaction.CategoryMin, transaction.CategoryMax)
		case tx.Timestamp == "":
			return fail(RuleSchemaConformance,
				"transaction %s of customer %s has no timestamp", tx.TransactionID, customerID)
		}
	}
	return pass(RuleSchemaConformance)
}

// StatusGroupOrder: the upstream ordering contract in full. All Pending
// transactions come before any Booked one, and timestamps are
// non-increasing within each status group. Unparseable timestamps are
// skipped as in DescendingDateOrder.
func StatusGroupOrder(customerID string, txs []transaction.Transaction) Result {
	bookedSeen := false
	for i, tx := range txs {
		if tx.Status == transaction.StatusBooked {
			bookedSeen = true
		} else if tx.Status == transaction.StatusPending && bookedSeen {
			return fail(RuleStatusGroupOrder,
				"customer %s: Pending transaction %s at index %d appears after a Booked one",
				customerID, tx.TransactionID, i)
		}
	}
	for _, status := range []transaction.Status{transaction.StatusPending, transaction.StatusBooked} {
		var prev time.Time
		var prevID string
		have := false
		for _, tx := range txs {
			if tx.Status != status {
				continue
			}
			ts, err := transaction.ParseTimestamp(tx.Timestamp)
			if err != nil {
				continue
			}
			if have && prev.Before(ts) {
				return fail(RuleStatusGroupOrder,
					"customer %s: %s group out of order: %s (%s) before %s (%s)",
					customerID, status, prevID, prev.Format(time.RFC3339), tx.TransactionID, tx.Timestamp)
			}
			prev, prevID, have = ts, tx.TransactionID, true
		}
	}
	return pass(RuleStatusGroupOrder)
}

// CategoryFilter checks a categoryId-filtered response: every record
// carries the requested category.
func CategoryFilter(want int) Rule {
	return func(customerID string, txs []transaction.Transaction) Result {
		for _, tx := range txs {
			if tx.CategoryID != want {
				return fail(RuleCategoryFilter,
					"transaction %s of customer %s has categoryId %d, want %d",
					tx.TransactionID, customerID, tx.CategoryID, want)
			}
		}
		return pass(RuleCategoryFilter)
	}
}

// ExcludesPending checks an includePending=false response.
func ExcludesPending(customerID string, txs []transaction.Transaction) Result {
	for _, tx := range txs {
		if tx.Status == transaction.StatusPending {
			return fail(RuleExcludesPending,
				"transaction %s of customer %s is Pending despite includePending=false",
				tx.TransactionID, customerID)
		}
	}
	return pass(RuleExcludesPending)
}

// DateRange checks a fromDate/toDate-filtered response: every parseable
// timestamp's calendar date falls within [from, to] inclusive.
func DateRange(from, to time.Time) Rule {
	return func(customerID string, txs []transaction.Transaction) Result {
		for _, tx := range txs {
			ts, err := transaction.ParseTimestamp(tx.Timestamp)
			if err != nil {
				continue
			}
			day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
			if day.Before(from) || day.After(to) {
				return fail(RuleDateRange,
					"transaction %s of customer %s dated %s is outside %s..%s",
					tx.TransactionID, customerID, tx.Timestamp,
					from.Format("2006-01-02"), to.Format("2006-01-02"))
			}
		}
		return pass(RuleDateRange)
	}
}
