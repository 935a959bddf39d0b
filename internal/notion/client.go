package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dvloznov/finance-dashboard-proxy/internal/logger"
	"github.com/jomei/notionapi"
)

const (
	// DefaultBaseURL is the public Notion API root.
	DefaultBaseURL = "https://api.notion.com/v1"
	// DefaultVersion is the Notion-Version header sent with every request.
	DefaultVersion = "2022-06-28"
	// PageSize is the maximum page size the query endpoint accepts.
	PageSize = 100
	// SortProperty is the database property results are ordered by.
	SortProperty = "Date"
)

// Client queries a single Notion database over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
	version    string
	token      string
	databaseID string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(n *Client) {
		if c != nil {
			n.httpClient = c
		}
	}
}

// WithBaseURL overrides the API root, e.g. for a local fake.
func WithBaseURL(u string) Option {
	return func(n *Client) {
		if u != "" {
			n.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithVersion overrides the Notion-Version header.
func WithVersion(v string) Option {
	return func(n *Client) {
		if v != "" {
			n.version = v
		}
	}
}

// NewClient creates a Client for the given integration token and database.
func NewClient(token, databaseID string, opts ...Option) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		baseURL:    DefaultBaseURL,
		version:    DefaultVersion,
		token:      token,
		databaseID: databaseID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DatabaseID returns the configured database id.
func (c *Client) DatabaseID() string {
	return c.databaseID
}

// QueryDatabase runs one query page against the configured database.
func (c *Client) QueryDatabase(ctx context.Context, req *notionapi.DatabaseQueryRequest) (*QueryResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("QueryDatabase: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.databaseID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("QueryDatabase: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("Notion-Version", c.version)
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("QueryDatabase: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(res.Body)
		return nil, &UpstreamError{Status: res.StatusCode, Body: string(raw)}
	}

	var page QueryResponse
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("QueryDatabase: decoding response: %w", err)
	}
	return &page, nil
}

// FetchAllRecords queries the database newest first and follows the cursor
// until the upstream reports no more pages. Any failed page discards the
// pages collected so far.
func (c *Client) FetchAllRecords(ctx context.Context) ([]Record, error) {
	return fetchAll(ctx, c)
}

func fetchAll(ctx context.Context, svc QueryService) ([]Record, error) {
	log := logger.FromContext(ctx)

	var records []Record
	var cursor notionapi.Cursor
	pages := 0

	for {
		req := &notionapi.DatabaseQueryRequest{
			PageSize: PageSize,
			Sorts: []notionapi.SortObject{
				{Property: SortProperty, Direction: notionapi.SortOrderDESC},
			},
		}
		if cursor != "" {
			req.StartCursor = cursor
		}

		resp, err := svc.QueryDatabase(ctx, req)
		if err != nil {
			return nil, err
		}
		pages++
		records = append(records, resp.Results...)

		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}

	log.Debug().Int("pages", pages).Int("records", len(records)).Msg("Fetched Notion records")
	return records, nil
}
