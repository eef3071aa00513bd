// gateway/gateway.go
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	logger "github.com/medicore-hms/hmsctl/logging"
	"github.com/medicore-hms/hmsctl/store"
	"github.com/medicore-hms/hmsctl/util"
)

// expiredTokenMsg is the backend's expiry signal, matched verbatim. The
// backend does not use HTTP status codes for this; a reworded message would
// silently disable expiry detection, so the string must track the backend.
const expiredTokenMsg = "Token has expired"

// Options lets a caller extend or override request headers. Caller-supplied
// headers win over the defaults, including the automatic bearer token.
type Options struct {
	Headers map[string]string
}

// Response wraps a parsed JSON object returned by the backend.
type Response struct {
	Body []byte
	Msg  string
}

// Decode unmarshals the response body into v.
func (r *Response) Decode(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// Gateway issues authenticated requests against the hospital backend. Every
// screen-level client goes through here so requests are built identically
// and expiry is handled identically.
type Gateway struct {
	baseURL string
	rootURL string
	client  *http.Client
	store   store.Store
	bus     *util.EventBus
}

// New builds a Gateway. rootURL is the bare API root; the tenant-scoped base
// is rootURL/tenant/<tenantID>, or the root itself for single-tenant
// deployments. No client-side timeout is set: a call lives as long as its
// caller's context.
func New(rootURL, tenantID string, st store.Store, bus *util.EventBus) *Gateway {
	root := strings.TrimRight(rootURL, "/")
	base := root
	if tenantID != "" {
		base = fmt.Sprintf("%s/tenant/%s", root, tenantID)
	}
	return &Gateway{
		baseURL: base,
		rootURL: root,
		client:  &http.Client{},
		store:   st,
		bus:     bus,
	}
}

func (g *Gateway) Get(ctx context.Context, path string, opts *Options) (*Response, error) {
	return g.do(ctx, http.MethodGet, g.baseURL+path, nil, "application/json", opts)
}

// GetRoot targets the bare API root instead of the tenant-scoped base. The
// account-info endpoint lives outside the tenant path prefix.
func (g *Gateway) GetRoot(ctx context.Context, path string, opts *Options) (*Response, error) {
	return g.do(ctx, http.MethodGet, g.rootURL+path, nil, "application/json", opts)
}

func (g *Gateway) Post(ctx context.Context, path string, body interface{}, opts *Options) (*Response, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return g.do(ctx, http.MethodPost, g.baseURL+path, reader, "application/json", opts)
}

func (g *Gateway) PostRoot(ctx context.Context, path string, body interface{}, opts *Options) (*Response, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return g.do(ctx, http.MethodPost, g.rootURL+path, reader, "application/json", opts)
}

func (g *Gateway) Put(ctx context.Context, path string, body interface{}, opts *Options) (*Response, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return g.do(ctx, http.MethodPut, g.baseURL+path, reader, "application/json", opts)
}

func (g *Gateway) PutRoot(ctx context.Context, path string, body interface{}, opts *Options) (*Response, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return g.do(ctx, http.MethodPut, g.rootURL+path, reader, "application/json", opts)
}

func (g *Gateway) Patch(ctx context.Context, path string, body interface{}, opts *Options) (*Response, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return g.do(ctx, http.MethodPatch, g.baseURL+path, reader, "application/json", opts)
}

func (g *Gateway) Delete(ctx context.Context, path string, body interface{}, opts *Options) (*Response, error) {
	reader, err := jsonBody(body)
	if err != nil {
		return nil, err
	}
	return g.do(ctx, http.MethodDelete, g.baseURL+path, reader, "application/json", opts)
}

// PostForm sends a multipart body. The content type (with its boundary)
// comes from the caller's multipart writer; no JSON header is attached.
func (g *Gateway) PostForm(ctx context.Context, path string, form io.Reader, contentType string, opts *Options) (*Response, error) {
	return g.do(ctx, http.MethodPost, g.baseURL+path, form, contentType, opts)
}

func (g *Gateway) PutForm(ctx context.Context, path string, form io.Reader, contentType string, opts *Options) (*Response, error) {
	return g.do(ctx, http.MethodPut, g.baseURL+path, form, contentType, opts)
}

func (g *Gateway) PostFormRoot(ctx context.Context, path string, form io.Reader, contentType string, opts *Options) (*Response, error) {
	return g.do(ctx, http.MethodPost, g.rootURL+path, form, contentType, opts)
}

func (g *Gateway) PutFormRoot(ctx context.Context, path string, form io.Reader, contentType string, opts *Options) (*Response, error) {
	return g.do(ctx, http.MethodPut, g.rootURL+path, form, contentType, opts)
}

func (g *Gateway) do(ctx context.Context, method, url string, body io.Reader, contentType string, opts *Options) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", method, url, err)
	}
	g.applyHeaders(ctx, req, contentType, opts)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", hms_errors.ErrRequestFailed, method, url, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", hms_errors.ErrRequestFailed, err)
	}

	var probe struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrInvalidResponse, err)
	}

	if probe.Msg == expiredTokenMsg {
		// Purge the whole persisted record before handing the payload back.
		// The caller still receives the body it asked for.
		if err := g.store.Clear(ctx); err != nil {
			logger.Error("Failed to purge expired session", zap.Error(err))
		}
		logger.Warn("Backend signaled token expiry, session purged",
			zap.String("method", method), zap.String("url", url))
		if g.bus != nil {
			g.bus.Publish(ctx, util.EventSessionExpired, url)
		}
	}

	return &Response{Body: data, Msg: probe.Msg}, nil
}

// applyHeaders attaches the default content type and bearer token, then lets
// caller-supplied headers overwrite both.
func (g *Gateway) applyHeaders(ctx context.Context, req *http.Request, contentType string, opts *Options) {
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if rec, ok, err := g.store.Load(ctx); err == nil && ok {
		req.Header.Set("Authorization", "Bearer "+rec.AuthToken)
	} else if err != nil {
		logger.Warn("Could not read session store, sending unauthenticated request", zap.Error(err))
	}
	if opts != nil {
		for k, v := range opts.Headers {
			req.Header.Set(k, v)
		}
	}
}

func jsonBody(body interface{}) (io.Reader, error) {
	if body == nil {
		return strings.NewReader("{}"), nil
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrUnsupportedPayload, err)
	}
	return bytes.NewReader(data), nil
}
