package gateway

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v62/github"
)

// TransportError reports a request that never produced an HTTP response.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError reports a response whose status is outside the 2xx range.
type HTTPStatusError struct {
	Op         string
	StatusCode int
	Status     string // status text, e.g. "Not Found"
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.Op, e.StatusCode, e.Status)
}

// classifyError maps a go-github call failure onto TransportError or
// HTTPStatusError. resp is nil when the request did not complete.
func classifyError(op string, resp *github.Response, err error) error {
	if err == nil {
		return nil
	}

	var errResp *github.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return newHTTPStatusError(op, errResp.Response)
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return newHTTPStatusError(op, rateErr.Response)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return newHTTPStatusError(op, abuseErr.Response)
	}
	if resp != nil && resp.Response != nil && !isSuccess(resp.StatusCode) {
		return newHTTPStatusError(op, resp.Response)
	}

	return &TransportError{Op: op, Err: err}
}

func newHTTPStatusError(op string, r *http.Response) *HTTPStatusError {
	return &HTTPStatusError{
		Op:         op,
		StatusCode: r.StatusCode,
		Status:     statusText(r),
	}
}

// statusText returns the reason phrase of r, falling back to the standard
// text for its code when the server sent none.
func statusText(r *http.Response) string {
	if text := strings.TrimSpace(strings.TrimPrefix(r.Status, fmt.Sprint(r.StatusCode))); text != "" {
		return text
	}
	return http.StatusText(r.StatusCode)
}

func isSuccess(code int) bool {
	return code >= 200 && code <= 299
}
