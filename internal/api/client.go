// transactions-check/internal/api/client.go
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/transactions-check/internal/config"
	"github.com/example/transactions-check/internal/transaction"
	apperrors "github.com/example/transactions-check/pkg/errors"
)

// Query carries the optional filter parameters of the transactions
// endpoint. Nil/zero fields are omitted from the request.
type Query struct {
	CategoryID     *int
	IncludePending *bool
	FromDate       string
	ToDate         string
}

func (q Query) values(customerID string) url.Values {
	v := url.Values{}
	if customerID != "" {
		v.Set("customerId", customerID)
	}
	if q.CategoryID != nil {
		v.Set("categoryId", strconv.Itoa(*q.CategoryID))
	}
	if q.IncludePending != nil {
		// the API expects lowercase booleans
		v.Set("includePending", strconv.FormatBool(*q.IncludePending))
	}
	if q.FromDate != "" {
		v.Set("fromDate", q.FromDate)
	}
	if q.ToDate != "" {
		v.Set("toDate", q.ToDate)
	}
	return v
}

// Response is the undecoded result of one exchange, for scenarios that
// assert on status codes and raw bodies.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client wraps the transactions endpoint. One synchronous call per
// fetch, bounded by the configured timeout; no retries at this layer.
type Client struct {
	baseURL string
	host    string
	httpc   *http.Client
	log     zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		host:    cfg.Host,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// FetchRaw performs one GET against the transactions endpoint. An empty
// customerID omits the customerId parameter entirely. Only failures to
// complete the exchange are errors here; non-2xx statuses are returned
// to the caller, some scenarios assert on them.
func (c *Client) FetchRaw(ctx context.Context, customerID string, q Query) (*Response, error) {
	target := c.baseURL
	if enc := q.values(customerID).Encode(); enc != "" {
		target += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.CodeTransport, err, "build request for customer %q", customerID)
	}
	if c.host != "" {
		req.Host = c.host
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("customer", customerID).Msg("request failed")
		return nil, apperrors.Wrapf(apperrors.CodeTransport, err, "GET %s", target)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.CodeTransport, err, "read response for customer %q", customerID)
	}

	c.log.Info().
		Str("customer", customerID).
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched transactions")

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// FetchTransactions fetches and decodes the transaction list for one
// customer. Non-2xx statuses are transport errors at this level; decode
// failures are parse errors. Content is returned verbatim, validation
// belongs to the rules.
func (c *Client) FetchTransactions(ctx context.Context, customerID string, q Query) ([]transaction.Transaction, error) {
	resp, err := c.FetchRaw(ctx, customerID, q)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.Wrapf(apperrors.CodeTransport, nil,
			"customer %q: unexpected status %d: %s", customerID, resp.StatusCode, resp.Body)
	}

	var txs []transaction.Transaction
	if err := json.Unmarshal(resp.Body, &txs); err != nil {
		return nil, apperrors.Wrapf(apperrors.CodeParse, err, "customer %q: response is not a transaction list", customerID)
	}
	return txs, nil
}

// Close releases idle connections.
func (c *Client) Close() { c.httpc.CloseIdleConnections() }
