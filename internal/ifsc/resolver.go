package ifsc

import (
	"context"
	"errors"
	"fmt"

	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

// Resolver validates codes locally and fetches details for valid ones.
type Resolver struct {
	validator *Validator
	client    *Client
}

// NewResolver combines a Validator and a Client.
func NewResolver(v *Validator, c *Client) *Resolver {
	return &Resolver{validator: v, client: c}
}

// Validate reports whether code is a structurally valid IFSC.
func (r *Resolver) Validate(code string) bool {
	return r.validator.Validate(code)
}

// FetchDetails fetches the bank and branch for a valid code. When the service
// does not know the code, the error names the bank the code points at.
func (r *Resolver) FetchDetails(ctx context.Context, code string) (types.Details, error) {
	d, err := r.client.FetchDetails(ctx, code)
	if err == nil {
		return d, nil
	}

	var le *types.LookupError
	if errors.As(err, &le) && le.NotFound() {
		if name, ok := r.validator.BankName(code); ok {
			return d, fmt.Errorf("%w (no such branch of %s)", err, name)
		}
	}
	return d, err
}
