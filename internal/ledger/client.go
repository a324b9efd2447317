package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mmynk/tripboard/internal/models"
	"github.com/mmynk/tripboard/internal/remote"
)

// Client is a Remote that talks to a ledger endpoint over HTTP: either the
// spreadsheet script or another server's Handler.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client. An empty endpoint yields remote.ErrNotConfigured
// from every call.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Load fetches the whole ledger with GET ?action=getData.
func (c *Client) Load(ctx context.Context) (State, error) {
	if !c.Configured() {
		return State{}, remote.ErrNotConfigured
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return State{}, fmt.Errorf("invalid ledger url: %w", err)
	}
	q := u.Query()
	q.Set("action", ActionGetData)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return State{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := remote.Do(c.httpClient, req)
	if err != nil {
		return State{}, err
	}

	var r response
	if err := json.Unmarshal(resp.Body, &r); err != nil {
		return State{}, fmt.Errorf("failed to decode ledger response: %w", err)
	}
	if r.Status != statusSuccess {
		return State{}, logicError(r)
	}

	return r.state(), nil
}

func (c *Client) AddMember(ctx context.Context, name string) error {
	return c.post(ctx, request{Action: ActionAddMember, Name: name})
}

func (c *Client) DeleteMember(ctx context.Context, name string) error {
	return c.post(ctx, request{Action: ActionDeleteMember, Name: name})
}

// AddExpense sends the expense JSON-encoded inside the data field.
func (c *Client) AddExpense(ctx context.Context, e models.Expense) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode expense: %w", err)
	}
	return c.post(ctx, request{Action: ActionAddExpense, Data: string(data)})
}

func (c *Client) DeleteExpense(ctx context.Context, id string) error {
	return c.post(ctx, request{Action: ActionDeleteExpense, ID: id})
}

// post sends a mutation. The body is JSON but labelled text/plain so browsers
// talking to the same endpoint skip the CORS preflight the script cannot answer.
func (c *Client) post(ctx context.Context, body request) error {
	if !c.Configured() {
		return remote.ErrNotConfigured
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := remote.Do(c.httpClient, req)
	if err != nil {
		return err
	}

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return nil
	}
	var r response
	if err := json.Unmarshal(resp.Body, &r); err != nil {
		return fmt.Errorf("failed to decode ledger response: %w", err)
	}
	if r.Status == statusError {
		return logicError(r)
	}
	return nil
}

func logicError(r response) error {
	msg := r.Message
	if msg == "" {
		msg = fmt.Sprintf("unexpected status %q", r.Status)
	}
	return &remote.LogicError{Message: msg}
}
