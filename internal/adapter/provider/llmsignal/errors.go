package llmsignal

import (
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/formcheck-backend/internal/provider"
)

// ErrRateLimit indicates the backend returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string { return fmt.Sprintf("llmsignal: rate limited: %v", e.Err) }

func (e *ErrRateLimit) Unwrap() []error { return []error{e.Err, provider.ErrUnavailable} }

// ErrInvalidResponse indicates the model returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llmsignal: invalid response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() []error { return []error{e.Err, provider.ErrUnavailable} }

// ErrProviderUnavailable indicates the backend is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llmsignal: backend unavailable: %v", e.Err)
	}
	return "llmsignal: backend unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() []error { return []error{e.Err, provider.ErrUnavailable} }
