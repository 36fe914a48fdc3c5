// transactions-check/internal/runner/runner.go

// Package runner executes the functional scenarios against the
// transactions API and collects one outcome per check. Scenarios never
// abort on the first violation: every applicable rule runs so a single
// pass surfaces every defect.
package runner

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/transactions-check/internal/api"
	"github.com/example/transactions-check/internal/rules"
	"github.com/example/transactions-check/internal/transaction"
	apperrors "github.com/example/transactions-check/pkg/errors"
)

type OutcomeStatus string

const (
	// StatusPass / StatusFail are rule verdicts; StatusError marks
	// transport or parse trouble, a different category from a
	// business-rule violation.
	StatusPass  OutcomeStatus = "pass"
	StatusFail  OutcomeStatus = "fail"
	StatusError OutcomeStatus = "error"
)

type Outcome struct {
	Scenario string
	Customer string
	Rule     string
	Status   OutcomeStatus
	Detail   string
}

type Customer struct {
	Name string
	ID   string
}

// DefaultCustomers are the documented test customers. Customer1 has no
// transactions, Customer2 behaves, Customer3-5 are known to misbehave.
func DefaultCustomers() []Customer {
	return []Customer{
		{Name: "Customer1", ID: "b3c8f5d2-4a6e-4c0b-9f7d-8f1c2e3a4b5c"},
		{Name: "Customer2", ID: "746c51bc-bdb9-44d2-9a3e-c4715bc91ee4"},
		{Name: "Customer3", ID: "5723a60b-b7f5-4259-b670-43bd3be1cf90"},
		{Name: "Customer4", ID: "13ef28a8-9488-4d19-ba2f-3ff44912c5e8"},
		{Name: "Customer5", ID: "0828a547-f4bf-433a-b3ef-0dc70d6bad8a"},
	}
}

// listRules is the full rule set applied to every customer's list.
var listRules = []rules.Rule{
	rules.SchemaConformance,
	rules.CurrencyPresence,
	rules.ISO8601DateFormat,
	rules.DescendingDateOrder,
	rules.StatusGroupOrder,
	rules.DebitSignConvention,
	rules.CreditSignConvention,
}

type Runner struct {
	client    *api.Client
	log       zerolog.Logger
	customers []Customer
	outcomes  []Outcome
}

func New(client *api.Client, log zerolog.Logger) *Runner {
	return &Runner{client: client, log: log, customers: DefaultCustomers()}
}

// Run executes every scenario and returns the collected outcomes.
func (r *Runner) Run(ctx context.Context) []Outcome {
	r.outcomes = nil

	r.emptyCustomer(ctx)
	r.normalCustomer(ctx)
	r.missingCustomerID(ctx)
	r.invalidCustomerID(ctx)
	r.filterByCategory(ctx)
	r.filterExcludePending(ctx)
	r.filterByDateRange(ctx)
	r.filterConsistency(ctx)
	r.ruleConsistency(ctx)

	return r.outcomes
}

// fetch applies the uniform retry policy: at most one retry, transport
// failures only.
func (r *Runner) fetch(ctx context.Context, customerID string, q api.Query) ([]transaction.Transaction, error) {
	txs, err := r.client.FetchTransactions(ctx, customerID, q)
	if err != nil && apperrors.HasCode(err, apperrors.CodeTransport) {
		r.log.Warn().Err(err).Str("customer", customerID).Msg("transport failure, retrying once")
		txs, err = r.client.FetchTransactions(ctx, customerID, q)
	}
	return txs, err
}

func (r *Runner) record(scenario, customer, rule string, status OutcomeStatus, detail string) {
	r.outcomes = append(r.outcomes, Outcome{
		Scenario: scenario,
		Customer: customer,
		Rule:     rule,
		Status:   status,
		Detail:   detail,
	})

	ev := r.log.Info()
	switch status {
	case StatusFail:
		ev = r.log.Warn()
	case StatusError:
		ev = r.log.Error()
	}
	ev.Str("scenario", scenario).
		Str("customer", customer).
		Str("rule", rule).
		Str("status", string(status)).
		Str("detail", detail).
		Msg("outcome")
}

func (r *Runner) recordErr(scenario, customer string, err error) {
	rule := "Fetch"
	if code := apperrors.Code(err); code != "" {
		rule = code
	}
	r.record(scenario, customer, rule, StatusError, err.Error())
}

func (r *Runner) check(scenario, customer, rule string, ok bool, detail string) {
	if ok {
		r.record(scenario, customer, rule, StatusPass, "")
		return
	}
	r.record(scenario, customer, rule, StatusFail, detail)
}

func (r *Runner) applyRules(scenario string, cust Customer, txs []transaction.Transaction, rs ...rules.Rule) {
	for _, rule := range rs {
		res := rule(cust.ID, txs)
		status := StatusPass
		if !res.Passed {
			status = StatusFail
		}
		r.record(scenario, cust.Name, res.Rule, status, res.Detail)
	}
}

// ---- scenarios ----

// A customer with no history returns 200 and an empty JSON list.
func (r *Runner) emptyCustomer(ctx context.Context) {
	const scenario = "EmptyCustomer"
	cust := r.customers[0]

	resp, err := r.client.FetchRaw(ctx, cust.ID, api.Query{})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.check(scenario, cust.Name, "HTTPStatus", resp.StatusCode == 200,
		statusDetail(200, resp.StatusCode))
	r.check(scenario, cust.Name, "ContentType", resp.ContentType == "application/json",
		"got content type "+resp.ContentType)

	txs, err := r.fetch(ctx, cust.ID, api.Query{})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.check(scenario, cust.Name, "EmptyList", len(txs) == 0,
		"expected no transactions, got "+strconv.Itoa(len(txs)))
}

// The well-behaved customer: at most five transactions, full rule set.
func (r *Runner) normalCustomer(ctx context.Context) {
	const scenario = "NormalCustomer"
	cust := r.customers[1]

	resp, err := r.client.FetchRaw(ctx, cust.ID, api.Query{})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.check(scenario, cust.Name, "HTTPStatus", resp.StatusCode == 200,
		statusDetail(200, resp.StatusCode))
	r.check(scenario, cust.Name, "ContentType", resp.ContentType == "application/json",
		"got content type "+resp.ContentType)

	txs, err := r.fetch(ctx, cust.ID, api.Query{})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.check(scenario, cust.Name, "MaxCount", len(txs) <= 5,
		"expected at most 5 transactions, got "+strconv.Itoa(len(txs)))
	r.applyRules(scenario, cust, txs, listRules...)
}

// Omitting customerId entirely is a 400 with the documented body.
func (r *Runner) missingCustomerID(ctx context.Context) {
	const scenario = "MissingCustomerID"

	resp, err := r.client.FetchRaw(ctx, "", api.Query{})
	if err != nil {
		r.recordErr(scenario, "-", err)
		return
	}
	r.check(scenario, "-", "HTTPStatus", resp.StatusCode == 400,
		statusDetail(400, resp.StatusCode))
	r.check(scenario, "-", "ErrorBody", string(resp.Body) == `"Missing customerId query parameter"`,
		"got body "+string(resp.Body))
	r.check(scenario, "-", "ContentType", resp.ContentType == "application/json",
		"got content type "+resp.ContentType)
}

// A non-GUID customerId is a 400 with the documented body.
func (r *Runner) invalidCustomerID(ctx context.Context) {
	const scenario = "InvalidCustomerID"

	resp, err := r.client.FetchRaw(ctx, "invalid-customer-id", api.Query{})
	if err != nil {
		r.recordErr(scenario, "-", err)
		return
	}
	r.check(scenario, "-", "HTTPStatus", resp.StatusCode == 400,
		statusDetail(400, resp.StatusCode))
	r.check(scenario, "-", "ErrorBody", string(resp.Body) == `"Invalid customerId guid format"`,
		"got body "+string(resp.Body))
	r.check(scenario, "-", "ContentType", resp.ContentType == "application/json",
		"got content type "+resp.ContentType)
}

func (r *Runner) filterByCategory(ctx context.Context) {
	const scenario = "FilterByCategory"
	cust := r.customers[1]
	category := 11

	txs, err := r.fetch(ctx, cust.ID, api.Query{CategoryID: &category})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.applyRules(scenario, cust, txs, rules.CategoryFilter(category))
}

func (r *Runner) filterExcludePending(ctx context.Context) {
	const scenario = "FilterExcludePending"
	cust := r.customers[1]
	include := false

	txs, err := r.fetch(ctx, cust.ID, api.Query{IncludePending: &include})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.applyRules(scenario, cust, txs, rules.ExcludesPending)
}

func (r *Runner) filterByDateRange(ctx context.Context) {
	const scenario = "FilterByDateRange"
	cust := r.customers[1]
	from := time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

	txs, err := r.fetch(ctx, cust.ID, api.Query{FromDate: "2025-06-04", ToDate: "2025-06-05"})
	if err != nil {
		r.recordErr(scenario, cust.Name, err)
		return
	}
	r.applyRules(scenario, cust, txs, rules.DateRange(from, to))
}

// includePending=true returns a superset of includePending=false, and
// the filtered list really has no Pending records. Checked for every
// customer with history.
func (r *Runner) filterConsistency(ctx context.Context) {
	const scenario = "FilterConsistency"

	for _, cust := range r.customers[1:] {
		incl, excl := true, false

		all, err := r.fetch(ctx, cust.ID, api.Query{IncludePending: &incl})
		if err != nil {
			r.recordErr(scenario, cust.Name, err)
			continue
		}
		booked, err := r.fetch(ctx, cust.ID, api.Query{IncludePending: &excl})
		if err != nil {
			r.recordErr(scenario, cust.Name, err)
			continue
		}

		r.check(scenario, cust.Name, "FilteredSubset", len(booked) <= len(all),
			"includePending=false returned "+strconv.Itoa(len(booked))+" > "+strconv.Itoa(len(all)))
		r.applyRules(scenario, cust, booked, rules.ExcludesPending)
	}
}

// The full rule set against every customer with history. Defects in the
// misbehaving customers show up here as fail outcomes.
func (r *Runner) ruleConsistency(ctx context.Context) {
	const scenario = "RuleConsistency"

	for _, cust := range r.customers[1:] {
		txs, err := r.fetch(ctx, cust.ID, api.Query{})
		if err != nil {
			r.recordErr(scenario, cust.Name, err)
			continue
		}
		r.applyRules(scenario, cust, txs, listRules...)
	}
}

// ---- summary helpers ----

// AnyFailed reports whether any outcome is a failure or an error; the
// process exit code hangs on it.
func AnyFailed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status != StatusPass {
			return true
		}
	}
	return false
}

// Tally counts outcomes per status.
func Tally(outcomes []Outcome) (passed, failed, errored int) {
	for _, o := range outcomes {
		switch o.Status {
		case StatusPass:
			passed++
		case StatusFail:
			failed++
		case StatusError:
			errored++
		}
	}
	return
}

func statusDetail(want, got int) string {
	return "expected status " + strconv.Itoa(want) + ", got " + strconv.Itoa(got)
}
