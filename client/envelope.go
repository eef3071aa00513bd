// client/envelope.go
package client

import (
	"encoding/json"
	"fmt"

	hms_errors "github.com/medicore-hms/hmsctl/errors"
	"github.com/medicore-hms/hmsctl/gateway"
)

// envelope is the backend's uniform response shape: a success flag, a data
// payload of whatever the endpoint returns, and a human-readable message.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Msg     string          `json:"msg"`
}

// unwrap decodes the envelope and, when out is non-nil, the data payload
// into out. A success:false response becomes ErrBackendRejected carrying
// the backend's message.
func unwrap(resp *gateway.Response, out interface{}) error {
	var env envelope
	if err := resp.Decode(&env); err != nil {
		return fmt.Errorf("%w: %v", hms_errors.ErrInvalidResponse, err)
	}
	if !env.Success {
		if env.Msg != "" {
			return fmt.Errorf("%w: %s", hms_errors.ErrBackendRejected, env.Msg)
		}
		return hms_errors.ErrBackendRejected
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", hms_errors.ErrInvalidResponse, err)
	}
	return nil
}
