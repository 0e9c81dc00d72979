// internal/provider/exchangerate/client.go
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"unit-converter-service/internal/domain"
	"unit-converter-service/internal/metrics"

	"go.uber.org/zap"
)

// Client talks to an exchangerate.host-style rate service. It is the
// only component with network side effects; everything it returns is
// classified per the service's error taxonomy before it leaves this
// package.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// convertResponse mirrors the provider's /convert payload. Success is a
// pointer so "field absent" and "success": false stay distinguishable.
type convertResponse struct {
	Success *bool `json:"success"`
	Info    *struct {
		Rate *float64 `json:"rate"`
	} `json:"info"`
	Result *float64 `json:"result"`
	Error  *struct {
		Info string `json:"info"`
		Type string `json:"type"`
	} `json:"error"`
}

type symbolsResponse struct {
	Success *bool                      `json:"success"`
	Symbols map[string]json.RawMessage `json:"symbols"`
}

// Convert resolves a single conversion through GET {base}/convert.
func (c *Client) Convert(ctx context.Context, fromCurrency, toCurrency string, amount float64) (domain.Conversion, error) {
	params := url.Values{}
	params.Set("from", fromCurrency)
	params.Set("to", toCurrency)
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	var res convertResponse
	if err := c.getJSON(ctx, "/convert", params, &res); err != nil {
		return domain.Conversion{}, err
	}

	if res.Success != nil && !*res.Success {
		msg := "Unknown error"
		if res.Error != nil && res.Error.Info != "" {
			msg = res.Error.Info
		}
		c.logger.Warn("provider reported conversion failure",
			zap.String("from", fromCurrency),
			zap.String("to", toCurrency),
			zap.String("provider_error", msg))
		return domain.Conversion{}, &domain.UpstreamFailure{Message: msg}
	}

	if res.Result == nil || res.Info == nil || res.Info.Rate == nil {
		return domain.Conversion{}, &domain.UpstreamError{
			Op:  "convert",
			Err: fmt.Errorf("incomplete response: missing result or rate"),
		}
	}

	return domain.Conversion{
		FromCurrency: fromCurrency,
		ToCurrency:   toCurrency,
		Amount:       amount,
		Converted:    *res.Result,
		Rate:         *res.Info.Rate,
	}, nil
}

// Symbols lists the provider's supported currency codes, sorted.
func (c *Client) Symbols(ctx context.Context) ([]string, error) {
	var res symbolsResponse
	if err := c.getJSON(ctx, "/symbols", nil, &res); err != nil {
		return nil, err
	}

	if res.Success != nil && !*res.Success {
		return nil, &domain.UpstreamFailure{Message: "symbols request rejected"}
	}
	if res.Symbols == nil {
		return nil, &domain.UpstreamError{
			Op:  "symbols",
			Err: fmt.Errorf("incomplete response: missing symbols"),
		}
	}

	codes := make([]string, 0, len(res.Symbols))
	for code := range res.Symbols {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &domain.UpstreamError{Op: path, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("exchange rate request failed",
			zap.String("path", path),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		metrics.ObserveUpstream(path, "error")
		return &domain.UpstreamError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Error("exchange rate provider returned non-2xx",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("response", string(body)))
		metrics.ObserveUpstream(path, "error")
		return &domain.UpstreamError{Op: path, Err: fmt.Errorf("status %d: %s", resp.StatusCode, body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.ObserveUpstream(path, "error")
		return &domain.UpstreamError{Op: path, Err: fmt.Errorf("decode response: %w", err)}
	}

	metrics.ObserveUpstream(path, "success")
	c.logger.Debug("exchange rate request completed",
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
