// client/users.go
package client

import (
	"context"
	"fmt"
	"net/url"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
	"github.com/medicore-hms/hmsctl/model"
	"github.com/medicore-hms/hmsctl/util"
)

// UserClient manages staff accounts. The backend keeps doctors, nurses,
// receptionists and the rest behind one /users endpoint discriminated by
// the user_type query parameter.
type UserClient struct {
	gw        *gateway.Gateway
	validator *util.ValidationUtil
}

func NewUserClient(gw *gateway.Gateway, validator *util.ValidationUtil) *UserClient {
	return &UserClient{gw: gw, validator: validator}
}

func (c *UserClient) List(ctx context.Context, userType string) ([]model.User, error) {
	path := "/users"
	if userType != "" {
		path += "?user_type=" + url.QueryEscape(userType)
	}
	resp, err := c.gw.Get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	var users []model.User
	if err := unwrap(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *UserClient) Get(ctx context.Context, id string) (*model.User, error) {
	if id == "" {
		return nil, hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Get(ctx, "/users/"+id, nil)
	if err != nil {
		return nil, err
	}
	var user model.User
	if err := unwrap(resp, &user); err != nil {
		return nil, err
	}
	if user.ID == "" {
		return nil, hms_errors.ErrResourceNotFound
	}
	return &user, nil
}

func (c *UserClient) Create(ctx context.Context, user model.User) (*model.User, error) {
	if err := c.validator.ValidateStruct(user); err != nil {
		return nil, fmt.Errorf("%w: %v", hms_errors.ErrValidationFailure, err)
	}
	resp, err := c.gw.Post(ctx, "/users", user, nil)
	if err != nil {
		return nil, err
	}
	var created model.User
	if err := unwrap(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *UserClient) Update(ctx context.Context, user model.User) (*model.User, error) {
	if user.ID == "" {
		return nil, hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Put(ctx, "/users/"+user.ID, user, nil)
	if err != nil {
		return nil, err
	}
	var updated model.User
	if err := unwrap(resp, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *UserClient) Delete(ctx context.Context, id string) error {
	if id == "" {
		return hms_errors.ErrInvalidResourceRef
	}
	resp, err := c.gw.Delete(ctx, "/users/"+id, nil, nil)
	if err != nil {
		return err
	}
	return unwrap(resp, nil)
}
