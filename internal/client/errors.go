package client

import "fmt"

// FetchError reports a page or image GET that failed in transport or returned
// a non-2xx status
type FetchError struct {
	URL        string
	StatusCode int   // Zero when the request never got a response
	Err        error // Transport failure, nil for status failures
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %q: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %q: HTTP status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a mandatory element absent from a product page
type MissingFieldError struct {
	Field    string
	Selector string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing mandatory field %s (selector %q)", e.Field, e.Selector)
}
