// client/auth.go
package client

import (
	"context"
	"fmt"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/util"
)

// AuthClient speaks the authentication endpoints. It satisfies the session
// manager's AuthAPI so the manager never touches HTTP directly.
type AuthClient struct {
	gw        *gateway.Gateway
	validator *util.ValidationUtil
}

func NewAuthClient(gw *gateway.Gateway, validator *util.ValidationUtil) *AuthClient {
	return &AuthClient{gw: gw, validator: validator}
}

// Login posts the credentials and returns the raw login payload. The
// backend wants the email under the "username" key.
func (c *AuthClient) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	input := model.LoginInput{Email: username, Password: password}
	if err := c.validator.ValidateLogin(input); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrInvalidLoginData, err)
	}

	resp, err := c.gw.Post(ctx, "/login", input, nil)
	if err != nil {
		return nil, err
	}

	var out model.LoginResponse
	if err := resp.Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrInvalidResponse, err)
	}
	return &out, nil
}

// ValidateToken checks a persisted token against the backend with an
// explicit Authorization header, so it works before the token is adopted
// into storage-backed requests.
func (c *AuthClient) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	opts := &gateway.Options{Headers: map[string]string{
		"Authorization": "Bearer " + token,
	}}
	resp, err := c.gw.Get(ctx, "/validate-token", opts)
	if err != nil {
		return nil, err
	}

	var user model.User
	if err := unwrap(resp, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, hms_errors.ErrNotAuthenticated
	}
	return &user, nil
}
