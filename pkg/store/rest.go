package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTable is the remote collection wallets live in.
const DefaultTable = "wallets"

// RESTConfig points the REST backend at a PostgREST-compatible endpoint
// (for example a Supabase project).
type RESTConfig struct {
	URL     string
	APIKey  string
	Table   string
	Timeout time.Duration
}

// REST is a RecordStore speaking the PostgREST wire protocol.
type REST struct {
	base   string
	apiKey string
	client *http.Client
}

type restRecord struct {
	ID        json.RawMessage `json:"id,omitempty"`
	Name      string          `json:"name"`
	Words     []string        `json:"words"`
	DeviceID  string          `json:"device_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

type restInsert struct {
	DeviceID string   `json:"device_id"`
	Name     string   `json:"name"`
	Words    []string `json:"words"`
}

type restPatch struct {
	Words []string `json:"words"`
}

// NewREST validates cfg and returns a REST store.
func NewREST(cfg RESTConfig) (*REST, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, fmt.Errorf("rest backend requires both url and api_key")
	}
	u, err := url.Parse(cfg.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid rest url %q", cfg.URL)
	}
	table := cfg.Table
	if table == "" {
		table = DefaultTable
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	return &REST{
		base:   strings.TrimRight(cfg.URL, "/") + "/rest/v1/" + url.PathEscape(table),
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}, nil
}

func (r *REST) List(ctx context.Context) ([]WalletRecord, error) {
	q := url.Values{}
	q.Set("select", "id,name,words,device_id,created_at")
	q.Set("order", "created_at.desc")

	var rows []restRecord
	if err := r.do(ctx, http.MethodGet, q, nil, "", &rows); err != nil {
		return nil, err
	}

	out := make([]WalletRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, WalletRecord{
			ID:        decodeID(row.ID),
			Name:      row.Name,
			Words:     row.Words,
			DeviceID:  row.DeviceID,
			CreatedAt: row.CreatedAt,
		})
	}
	// The server already orders; re-sort so ties are stable across backends
	sortNewestFirst(out)
	return out, nil
}

func (r *REST) Insert(ctx context.Context, deviceID, name string, words []string) error {
	if err := validateWords(words); err != nil {
		return err
	}
	body := []restInsert{{DeviceID: deviceID, Name: name, Words: words}}
	return r.do(ctx, http.MethodPost, nil, body, "return=minimal", nil)
}

func (r *REST) Update(ctx context.Context, id string, words []string) error {
	if err := validateID(id); err != nil {
		return err
	}
	if err := validateWords(words); err != nil {
		return err
	}

	var rows []restRecord
	if err := r.do(ctx, http.MethodPatch, idFilter(id), restPatch{Words: words}, "return=representation", &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return NewNotFound(id)
	}
	return nil
}

func (r *REST) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	var rows []restRecord
	if err := r.do(ctx, http.MethodDelete, idFilter(id), nil, "return=representation", &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return NewNotFound(id)
	}
	return nil
}

func (r *REST) Close() error {
	r.client.CloseIdleConnections()
	return nil
}

func (r *REST) do(ctx context.Context, method string, query url.Values, body any, prefer string, out any) error {
	endpoint := r.base
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return NewInternal(err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return NewInternal(err)
	}
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return NewUnavailable(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return NewUnavailable(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewUnavailable(fmt.Errorf("%s %s: status %d: %s", method, req.URL.Path, resp.StatusCode, snippet(data)))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return NewInternal(fmt.Errorf("decode %s response: %w", method, err))
	}
	return nil
}

func idFilter(id string) url.Values {
	q := url.Values{}
	q.Set("id", "eq."+id)
	return q
}

// decodeID accepts string and numeric primary keys alike.
func decodeID(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

func snippet(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 200 {
		s = s[:200] + "..."
	}
	return s
}
