package api

import (
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Error taxonomy of the backend gateway. Callers match with errors.Is;
// every one of these is recoverable by retrying the triggering action.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrValidation   = errors.New("request rejected by backend")
	ErrUnauthorized = errors.New("not authorized")
	ErrNetwork      = errors.New("backend unreachable")
)

// apiError holds the backend's error body alongside the HTTP status so the
// presentation layer can show something useful.
type apiError struct {
	sentinel error
	status   int
	body     string
}

func (e *apiError) Error() string {
	if e.body != "" {
		return fmt.Sprintf("%v (status %d): %s", e.sentinel, e.status, e.body)
	}
	return fmt.Sprintf("%v (status %d)", e.sentinel, e.status)
}

func (e *apiError) Unwrap() error { return e.sentinel }

// check folds a resty response and transport error into the gateway's
// error taxonomy. A nil return means a 2xx response.
func check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if resp.IsSuccess() {
		return nil
	}

	sentinel := ErrNetwork
	switch resp.StatusCode() {
	case 404:
		sentinel = ErrNotFound
	case 400:
		sentinel = ErrValidation
	case 401, 403:
		sentinel = ErrUnauthorized
	}
	return &apiError{sentinel: sentinel, status: resp.StatusCode(), body: string(resp.Body())}
}
