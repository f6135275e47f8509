package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// Remote models this client talks to.
const (
	ModelLead    = "crm.lead"
	ModelPartner = "res.partner"
)

const (
	defaultTimeout = 10 * time.Second
	rpcPath        = "/jsonrpc"
)

// API is the surface services program against; *Client is the live
// implementation, mocks stand in for it in tests.
type API interface {
	Authenticate(ctx context.Context) (int, error)
	Create(ctx context.Context, model string, values map[string]any) (int, error)
	Search(ctx context.Context, model string, domain []any, opts SearchOptions) ([]int, error)
	Read(ctx context.Context, model string, ids []int, fields []string) ([]map[string]any, error)
	Write(ctx context.Context, model string, ids []int, values map[string]any) (bool, error)
	Unlink(ctx context.Context, model string, ids []int) (bool, error)
}

// Config holds the connection settings for the CRM endpoint. APIKey is
// recognized for forward compatibility but the JSON-RPC call path
// authenticates with username/password.
type Config struct {
	BaseURL  string
	Database string
	Username string
	Password string
	APIKey   string
	Timeout  time.Duration
}

// SearchOptions narrows and orders a Search call. Zero values are omitted
// from the remote kwargs.
type SearchOptions struct {
	Offset int
	Limit  int
	Order  string
}

// Client is a JSON-RPC client for the CRM. The authenticated session id is
// cached for the client's lifetime; concurrent callers may race to
// authenticate, which costs a redundant login and nothing else, since every
// execute call re-sends the credentials anyway.
type Client struct {
	cfg  Config
	http *http.Client

	mu  sync.Mutex
	uid int

	reqID int64
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: timeout},
	}
}

type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      int64     `json:"id"`
}

type rpcParams struct {
	Service string         `json:"service"`
	Method  string         `json:"method"`
	Args    []any          `json:"args"`
	Kwargs  map[string]any `json:"kwargs,omitempty"`
}

type rpcError struct {
	Message string `json:"message"`
	Data    struct {
		Message string `json:"message"`
	} `json:"data"`
}

func (e *rpcError) text() string {
	if e.Data.Message != "" {
		return e.Data.Message
	}
	if e.Message != "" {
		return e.Message
	}
	return "unknown CRM error"
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *rpcError       `json:"error"`
}

func (c *Client) rpc(ctx context.Context, params rpcParams) (json.RawMessage, *rpcError, error) {
	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  "call",
		Params:  params,
		ID:      atomic.AddInt64(&c.reqID, 1),
	})
	if err != nil {
		return nil, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+rpcPath, bytes.NewReader(body))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	var rpcResp rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return nil, nil, fmt.Errorf("malformed CRM response: %w", err)
	}
	return rpcResp.Result, rpcResp.Error, nil
}

// Authenticate exchanges the configured credentials for a session id and
// caches it. The CRM answers a bad login with result=false rather than an
// error payload, so both shapes reject here.
func (c *Client) Authenticate(ctx context.Context) (int, error) {
	result, rpcErr, err := c.rpc(ctx, rpcParams{
		Service: "common",
		Method:  "authenticate",
		Args:    []any{c.cfg.Database, c.cfg.Username, c.cfg.Password, map[string]any{}},
	})
	if err != nil {
		return 0, &AuthError{message: "transport failure", cause: err}
	}
	if rpcErr != nil {
		return 0, &AuthError{message: rpcErr.text()}
	}

	var uid int
	if err := json.Unmarshal(result, &uid); err != nil {
		return 0, &AuthError{message: "invalid credentials"}
	}

	c.mu.Lock()
	c.uid = uid
	c.mu.Unlock()

	logrus.Infof("crm authentication successful, uid=%d", uid)
	return uid, nil
}

// call performs an authenticated execute on a named model, logging in first
// if no session is cached. A remote error drops the cached session so the
// next call re-authenticates; the failing call itself is not retried.
func (c *Client) call(ctx context.Context, model, method string, args []any, kwargs map[string]any) (json.RawMessage, error) {
	c.mu.Lock()
	uid := c.uid
	c.mu.Unlock()

	if uid == 0 {
		var err error
		if uid, err = c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	execArgs := append([]any{c.cfg.Database, uid, c.cfg.Password, model, method}, args...)
	result, rpcErr, err := c.rpc(ctx, rpcParams{
		Service: "object",
		Method:  "execute",
		Args:    execArgs,
		Kwargs:  kwargs,
	})
	if err != nil {
		return nil, &CallError{Model: model, Method: method, Message: err.Error(), cause: err}
	}
	if rpcErr != nil {
		c.invalidateSession()
		return nil, &CallError{Model: model, Method: method, Message: rpcErr.text()}
	}
	return result, nil
}

func (c *Client) invalidateSession() {
	c.mu.Lock()
	c.uid = 0
	c.mu.Unlock()
}

// Create inserts a record and returns its id.
func (c *Client) Create(ctx context.Context, model string, values map[string]any) (int, error) {
	result, err := c.call(ctx, model, "create", []any{values}, nil)
	if err != nil {
		return 0, err
	}

	var id int
	if err := json.Unmarshal(result, &id); err != nil {
		return 0, &CallError{Model: model, Method: "create", Message: "unexpected result shape", cause: err}
	}
	return id, nil
}

// Search returns the ids of records matching the domain filter.
func (c *Client) Search(ctx context.Context, model string, domain []any, opts SearchOptions) ([]int, error) {
	kwargs := map[string]any{}
	if opts.Offset > 0 {
		kwargs["offset"] = opts.Offset
	}
	if opts.Limit > 0 {
		kwargs["limit"] = opts.Limit
	}
	if opts.Order != "" {
		kwargs["order"] = opts.Order
	}
	if len(kwargs) == 0 {
		kwargs = nil
	}

	if domain == nil {
		domain = []any{}
	}

	result, err := c.call(ctx, model, "search", []any{domain}, kwargs)
	if err != nil {
		return nil, err
	}

	ids := make([]int, 0)
	if err := json.Unmarshal(result, &ids); err != nil {
		return nil, &CallError{Model: model, Method: "search", Message: "unexpected result shape", cause: err}
	}
	return ids, nil
}

// Read fetches the named fields of the given records.
func (c *Client) Read(ctx context.Context, model string, ids []int, fields []string) ([]map[string]any, error) {
	if fields == nil {
		fields = []string{}
	}

	result, err := c.call(ctx, model, "read", []any{ids, fields}, nil)
	if err != nil {
		return nil, err
	}

	records := make([]map[string]any, 0)
	if err := json.Unmarshal(result, &records); err != nil {
		return nil, &CallError{Model: model, Method: "read", Message: "unexpected result shape", cause: err}
	}
	return records, nil
}

// Write updates the given records with values.
func (c *Client) Write(ctx context.Context, model string, ids []int, values map[string]any) (bool, error) {
	result, err := c.call(ctx, model, "write", []any{ids, values}, nil)
	if err != nil {
		return false, err
	}
	return decodeBool(model, "write", result)
}

// Unlink deletes the given records.
func (c *Client) Unlink(ctx context.Context, model string, ids []int) (bool, error) {
	result, err := c.call(ctx, model, "unlink", []any{ids}, nil)
	if err != nil {
		return false, err
	}
	return decodeBool(model, "unlink", result)
}

func decodeBool(model, method string, raw json.RawMessage) (bool, error) {
	var ok bool
	if err := json.Unmarshal(raw, &ok); err != nil {
		return false, &CallError{Model: model, Method: method, Message: "unexpected result shape", cause: err}
	}
	return ok, nil
}
