// test/mock/auth.go
package mock

import (
	"context"
	"sync/atomic"

	"github.com/medicore-hms/hmsctl/model"
)

// AuthAPI is a hand-rolled stub of the backend's auth endpoints.
type AuthAPI struct {
	LoginResp    *model.LoginResponse
	LoginErr     error
	ValidateUser *model.User
	ValidateErr  error

	loginCalls    int64
	validateCalls int64
}

func (a *AuthAPI) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	atomic.AddInt64(&a.loginCalls, 1)
	if a.LoginErr != nil {
		return nil, a.LoginErr
	}
	return a.LoginResp, nil
}

func (a *AuthAPI) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	atomic.AddInt64(&a.validateCalls, 1)
	if a.ValidateErr != nil {
		return nil, a.ValidateErr
	}
	return a.ValidateUser, nil
}

func (a *AuthAPI) LoginCalls() int    { return int(atomic.LoadInt64(&a.loginCalls)) }
func (a *AuthAPI) ValidateCalls() int { return int(atomic.LoadInt64(&a.validateCalls)) }
