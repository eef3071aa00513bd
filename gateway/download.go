// gateway/download.go
package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
)

// Download fetches a binary export and writes it next to the caller under
// stem plus the extension implied by format: "excel" means .xlsx, anything
// else .csv. Returns the written path.
func (g *Gateway) Download(ctx context.Context, path, format, stem, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path, nil)
	if err != nil {
		return "", fmt.Errorf("building download request: %w", err)
	}
	// Bearer token only; no JSON content type on a binary fetch.
	g.applyHeaders(ctx, req, "", nil)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", hms_errors.ErrDownloadFailed, err)
	}
	defer resp.Body.Close()

	ext := ".csv"
	if format == "excel" {
		ext = ".xlsx"
	}
	target := filepath.Join(dir, stem+ext)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", fmt.Errorf("%w: writing %s: %v", hms_errors.ErrDownloadFailed, target, err)
	}
	return target, nil
}
