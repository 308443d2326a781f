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

	log "github.com/sirupsen/logrus"

	"github.com/tazman887/rork-organizator-nunta/internal/domain"
)

// RemoteConfig holds the connection parameters for the key-value service.
// All three of Endpoint, Namespace and Token must be present for the
// store to attempt network I/O.
type RemoteConfig struct {
	Endpoint  string
	Namespace string
	Token     string
	Key       string
}

func (c RemoteConfig) configured() bool {
	return c.Endpoint != "" && c.Namespace != "" && c.Token != ""
}

// RemoteStore talks to the key-value service over HTTP. It carries no
// retry policy; that lives in the synchronizer.
type RemoteStore struct {
	cfg    RemoteConfig
	client *http.Client
}

func NewRemoteStore(cfg RemoteConfig) *RemoteStore {
	if cfg.Key == "" {
		cfg.Key = "main"
	}
	return &RemoteStore{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *RemoteStore) url() string {
	return fmt.Sprintf("%s/kv/%s/%s",
		strings.TrimRight(s.cfg.Endpoint, "/"),
		url.PathEscape(s.cfg.Namespace),
		url.PathEscape(s.cfg.Key),
	)
}

// Fetch returns the remote snapshot, or (nil, nil) when none exists or
// the store is not configured.
func (s *RemoteStore) Fetch(ctx context.Context) (*domain.Document, error) {
	if !s.cfg.configured() {
		log.Debug("kv store not configured, skipping fetch")
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url(), nil)
	if err != nil {
		return nil, fmt.Errorf("building kv fetch request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: readBody(resp.Body)}
	}

	var doc domain.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &RemoteError{StatusCode: resp.StatusCode, Body: "malformed document: " + err.Error()}
	}
	doc.Normalize()
	return &doc, nil
}

// Put rewrites the remote snapshot. Fails fast with ErrNotConfigured when
// connection parameters are absent.
func (s *RemoteStore) Put(ctx context.Context, doc *domain.Document) error {
	if !s.cfg.configured() {
		return ErrNotConfigured
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, s.url(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building kv put request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{StatusCode: resp.StatusCode, Body: readBody(resp.Body)}
	}
	return nil
}

func readBody(r io.Reader) string {
	b, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
