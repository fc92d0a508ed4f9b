package flicks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"flickdeck/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the catalog operations surface consumed by the pages.
type Service interface {
	Genres(ctx context.Context) ([]GenreCount, error)
	Stats(ctx context.Context) (*Stats, error)
	StructuralSearch(ctx context.Context, req *StructuralRequest) (*SearchPage, error)
	MovieByID(ctx context.Context, id int) (*Movie, error)
	SemanticSearch(ctx context.Context, req *SemanticRequest) (*SemanticPage, error)
	HybridSearch(ctx context.Context, req *HybridRequest) (*SemanticPage, error)
}

// Client talks HTTP to the catalog service. One request per call: no
// retries, no caching, no deduplication.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: timeout},
		log:     log.With(zap.String("client", "flicks")),
	}, nil
}

func (c *Client) Genres(ctx context.Context) ([]GenreCount, error) {
	const op = "genres"

	var genres []GenreCount
	if err := c.get(ctx, op, "/search/genres", &genres); err != nil {
		return nil, err
	}
	return genres, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	const op = "stats"

	var stats Stats
	if err := c.get(ctx, op, "/search/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) StructuralSearch(ctx context.Context, req *StructuralRequest) (*SearchPage, error) {
	const op = "structural search"

	if req == nil {
		req = &StructuralRequest{}
	}
	// Copy before normalizing so the caller's request is never mutated.
	body := *req
	body.Normalize()

	if errs := utils.ValidateStruct(body); len(errs) > 0 {
		return nil, &Error{Op: op, Reason: ReasonInvalid, Err: errors.New(utils.FormatValidationErrors(errs))}
	}

	var page SearchPage
	if err := c.post(ctx, op, "/search/structural", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) MovieByID(ctx context.Context, id int) (*Movie, error) {
	const op = "movie by id"

	if id <= 0 {
		return nil, &Error{Op: op, Reason: ReasonInvalid, Err: fmt.Errorf("invalid movie id: %d", id)}
	}

	var movie Movie
	if err := c.get(ctx, op, fmt.Sprintf("/flicks/movie/%d", id), &movie); err != nil {
		return nil, err
	}
	return &movie, nil
}

func (c *Client) SemanticSearch(ctx context.Context, req *SemanticRequest) (*SemanticPage, error) {
	const op = "semantic search"

	if req == nil {
		req = &SemanticRequest{}
	}
	body := *req
	body.Normalize()

	if errs := utils.ValidateStruct(body); len(errs) > 0 {
		return nil, &Error{Op: op, Reason: ReasonInvalid, Err: errors.New(utils.FormatValidationErrors(errs))}
	}

	var page SemanticPage
	if err := c.post(ctx, op, "/search/semantic", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) HybridSearch(ctx context.Context, req *HybridRequest) (*SemanticPage, error) {
	const op = "hybrid search"

	if req == nil {
		req = &HybridRequest{}
	}
	body := *req
	body.Normalize()

	if errs := utils.ValidateStruct(body); len(errs) > 0 {
		return nil, &Error{Op: op, Reason: ReasonInvalid, Err: errors.New(utils.FormatValidationErrors(errs))}
	}

	var page SemanticPage
	if err := c.post(ctx, op, "/search/hybrid", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, op, path string, out any) error {
	return c.do(ctx, op, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, body, out any) error {
	return c.do(ctx, op, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Reason: ReasonInvalid, Err: fmt.Errorf("encode request: %w", err)}
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reqBody)
	if err != nil {
		return &Error{Op: op, Reason: ReasonInvalid, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("Catalog request failed",
			zap.String("op", op),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return &Error{Op: op, Reason: ReasonNetwork, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.log.Warn("Catalog returned not found",
			zap.String("op", op),
			zap.String("path", path),
			zap.String("request_id", requestID),
		)
		return &Error{Op: op, Reason: ReasonNotFound, Status: resp.StatusCode, Err: ErrNotFound}

	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		snippet := readSnippet(resp.Body)
		c.log.Warn("Catalog returned error status",
			zap.String("op", op),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", snippet),
			zap.String("request_id", requestID),
		)
		return &Error{Op: op, Reason: ReasonRemote, Status: resp.StatusCode, Err: fmt.Errorf("remote error: %s", snippet)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Op: op, Reason: ReasonDecode, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.log.Debug("Catalog request completed",
		zap.String("op", op),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	return nil
}

// readSnippet pulls a bounded prefix of an error body for messages.
func readSnippet(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 512))
	if err != nil || len(data) == 0 {
		return "(empty body)"
	}
	return strings.TrimSpace(string(data))
}
