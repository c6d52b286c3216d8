// Package splitapi is the HTTP client for the external balance service.
// The service owns every non-trivial computation: the client submits
// groups and expenses and fetches the recomputed sheet.
package splitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"splitsnap/internal/model"
)

const (
	requestTimeout = 15 * time.Second
	maxBodySize    = 4 << 20 // OCR responses carry the full scanned text
)

// ServerError is a structured error body ({"error": "..."}) from the
// service, surfaced verbatim to the user.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error: %s", e.Message)
	}
	return fmt.Sprintf("server error: status %d", e.Status)
}

// Client talks to one balance service instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// CreateGroup registers the group and roster. Only the status matters;
// the server resets its ledger as a side effect.
func (c *Client) CreateGroup(ctx context.Context, name string, members []string) error {
	body := map[string]any{"name": name, "members": members}
	_, err := c.postJSON(ctx, "/create-group", body)
	return err
}

// AddExpense submits one expense. The response body is ignored beyond
// error extraction; callers refetch balances to see the effect.
func (c *Client) AddExpense(ctx context.Context, p ExpensePayload) error {
	_, err := c.postJSON(ctx, "/add-expense", p)
	return err
}

// FetchBalances retrieves the wholesale balance sheet: cached expenses,
// suggested settlements, and per-member net balances.
func (c *Client) FetchBalances(ctx context.Context) (model.BalanceSheet, error) {
	body, err := c.get(ctx, "/calculate-balance")
	if err != nil {
		return model.BalanceSheet{}, err
	}

	var raw balanceResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return model.BalanceSheet{}, fmt.Errorf("splitapi: parsing balances: %w", err)
	}

	sheet := model.BalanceSheet{
		Expenses:    make([]model.Expense, 0, len(raw.Expenses)),
		Settlements: make([]model.Settlement, 0, len(raw.Transactions)),
		Balances:    raw.Balances,
	}
	for _, e := range raw.Expenses {
		sheet.Expenses = append(sheet.Expenses, e.toModel())
	}
	for _, tx := range raw.Transactions {
		sheet.Settlements = append(sheet.Settlements, tx.Settlement)
	}
	return sheet, nil
}

// ScanReceipt uploads a receipt image as multipart form data and returns
// the OCR result.
func (c *Client) ScanReceipt(ctx context.Context, imagePath string) (ScanResult, error) {
	f, err := os.Open(imagePath)
	if err != nil {
		return ScanResult{}, fmt.Errorf("splitapi: opening receipt: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(imagePath))
	if err != nil {
		return ScanResult{}, fmt.Errorf("splitapi: building upload: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return ScanResult{}, fmt.Errorf("splitapi: reading receipt: %w", err)
	}
	if err := mw.Close(); err != nil {
		return ScanResult{}, fmt.Errorf("splitapi: building upload: %w", err)
	}

	body, err := c.do(ctx, http.MethodPost, "/scan-bill", &buf, mw.FormDataContentType())
	if err != nil {
		return ScanResult{}, err
	}

	var result ScanResult
	if err := json.Unmarshal(body, &result); err != nil {
		return ScanResult{}, fmt.Errorf("splitapi: parsing scan result: %w", err)
	}
	return result, nil
}

// DownloadReport streams the CSV report into w.
func (c *Client) DownloadReport(ctx context.Context, w io.Writer) error {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/download-report", nil)
	if err != nil {
		return fmt.Errorf("splitapi: creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("splitapi: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &ServerError{Status: resp.StatusCode}
	}

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("splitapi: reading report: %w", err)
	}
	return nil
}

// ReportURL returns the browser-facing report location.
func (c *Client) ReportURL() string {
	return c.baseURL + "/download-report"
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil, "")
}

func (c *Client) postJSON(ctx context.Context, path string, body any) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("splitapi: encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, bytes.NewReader(data), "application/json")
}

// do performs one request and returns the response body. Non-2xx responses
// become a ServerError carrying the structured message when one is present.
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("splitapi: creating request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("splitapi: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("splitapi: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ServerError{Status: resp.StatusCode, Message: extractErrorMessage(data)}
	}
	return data, nil
}

// extractErrorMessage pulls the "error" field out of a structured error
// body, returning "" when the body isn't one.
func extractErrorMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
