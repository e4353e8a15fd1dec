// Package hypotheken is a client for the ABN AMRO hypotheken APIs:
// the interest-rate calculation service and the mortgage orientation
// (quick calculation) service.
package hypotheken

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

const (
	// DefaultBaseURL hosts both upstream services.
	DefaultBaseURL = "https://hypotheken.abnamro.nl"

	interestRatePath = "/mortgage-customer-interest-rate-calculation/v1/interest-rates/calculate"
	orientationPath  = "/hypotheekorientatie/api/v1.0/snelle-hypotheek-berekening"
)

// Doer performs a HTTP request.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the hypotheken APIs. It holds only immutable configuration
// and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient Doer
}

// NewClient returns a client for the production hosts.
func NewClient() *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

func (c *Client) WithHTTPClient(httpClient Doer) *Client {
	c.httpClient = httpClient
	return c
}

// CalculateInterestRate posts a calculation request. The request body
// carries exactly product, repaymentType and discounts; includeInactive is
// expressed only through the `inactive=true` query parameter, and the
// parameter is absent entirely when false.
func (c *Client) CalculateInterestRate(ctx context.Context, req *CalculationRequest, includeInactive bool) (*InterestRateResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to marshal request")
	}

	u := c.baseURL + interestRatePath
	if includeInactive {
		u += "?inactive=true"
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var res InterestRateResponse
	if err := c.do(httpReq, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// QuickMortgageCalculation estimates the maximum mortgage for the given
// incomes. partnerIncome is omitted from the query entirely when nil.
func (c *Client) QuickMortgageCalculation(ctx context.Context, mainIncome float64, partnerIncome *float64) (*OrientationResponse, error) {
	q := url.Values{}
	q.Set("mainIncome", formatAmount(mainIncome))
	if partnerIncome != nil {
		q.Set("partnerIncome", formatAmount(*partnerIncome))
	}

	u := c.baseURL + orientationPath + "?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create request")
	}
	httpReq.Header.Set("Accept", "application/json")

	var res OrientationResponse
	if err := c.do(httpReq, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.WithMessage(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithMessage(err, "failed to read response body")
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WithMessage(err, "failed to decode response")
	}
	return nil
}

// formatAmount serializes incomes in their literal numeric form,
// without exponent notation or trailing zeros.
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
