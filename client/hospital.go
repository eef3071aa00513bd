// client/hospital.go
package client

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	"github.com/medicore-hms/hmsctl/model"
)

// HospitalClient covers the tenant-wide endpoints: queue tokens, dashboard
// stats, the account profile, and data export.
type HospitalClient struct {
	gw *gateway.Gateway
}

func NewHospitalClient(gw *gateway.Gateway) *HospitalClient {
	return &HospitalClient{gw: gw}
}

func (c *HospitalClient) ListTokens(ctx context.Context) ([]model.HospitalToken, error) {
	resp, err := c.gw.Get(ctx, "/tokens", nil)
	if err != nil {
		return nil, err
	}
	var tokens []model.HospitalToken
	if err := unwrap(resp, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func (c *HospitalClient) IssueToken(ctx context.Context, token model.HospitalToken) (*model.HospitalToken, error) {
	resp, err := c.gw.Post(ctx, "/tokens", token, nil)
	if err != nil {
		return nil, err
	}
	var issued model.HospitalToken
	if err := unwrap(resp, &issued); err != nil {
		return nil, err
	}
	return &issued, nil
}

func (c *HospitalClient) CloseToken(ctx context.Context, id string) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Patch(ctx, "/tokens/"+id, map[string]string{"status": "closed"}, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}

func (c *HospitalClient) Stats(ctx context.Context) (*model.DashboardStats, error) {
	resp, err := c.gw.Get(ctx, "/stats", nil)
	if err != nil {
		return nil, err
	}
	var stats model.DashboardStats
	if err := unwrap(resp, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// AccountInfo lives above the tenant prefix, so these go through the
// root-base gateway verbs.
func (c *HospitalClient) AccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	resp, err := c.gw.GetRoot(ctx, "/account-info", nil)
	if err != nil {
		return nil, err
	}
	var info model.AccountInfo
	if err := unwrap(resp, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// UpdateAccountInfo sends the profile fields plus an optional logo file as
// one multipart form.
func (c *HospitalClient) UpdateAccountInfo(ctx context.Context, info model.AccountInfo, logoPath string) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":    info.Name,
		"address": info.Address,
		"phone":   info.Phone,
		"email":   info.Email,
	}
	for key, val := range fields {
		if val == "" {
			continue
		}
		if err := w.WriteField(key, val); err != nil {
			return err
		}
	}

	if logoPath != "" {
		f, err := os.Open(logoPath)
		if err != nil {
			return err
		}
		defer f.Close()

		part, err := w.CreateFormFile("logo", filepath.Base(logoPath))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, f); err != nil {
			return err
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	resp, err := c.gw.PutFormRoot(ctx, "/account-info", &buf, w.FormDataContentType(), nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}

// Export downloads a dataset dump and returns the path it was saved to.
// The backend emits .xlsx for "excel" and comma-separated text otherwise.
func (c *HospitalClient) Export(ctx context.Context, dataset, format, dir string) (string, error) {
	if dataset == "" {
		return "", hms_errors.ErrInvalidResourceRef
	}
	path := "/export?type=" + dataset + "&format=" + format
	return c.gw.Download(ctx, path, format, dataset, dir)
}
