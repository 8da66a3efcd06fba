package strava

import (
	"fmt"
	"net/http"
	"time"
)

// APIError is returned when Strava answers with a non-2xx status, or when the
// request never produced a response at all (Status is 0 in that case).
type APIError struct {
	Status int
	Method string
	URL    string
	Body   string
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("request failed: %s %s: %s", e.Method, e.URL, e.Body)
	}
	return fmt.Sprintf("%d %s from %s %s", e.Status, http.StatusText(e.Status), e.Method, e.URL)
}

// Message returns the upstream response body, falling back to the status
// reason phrase when the body is empty.
func (e *APIError) Message() string {
	if e.Body != "" {
		return e.Body
	}
	if e.Status == 0 {
		return "upstream request failed"
	}
	return http.StatusText(e.Status)
}

// DecodeError is returned when a 2xx response body does not match the
// expected shape. Msg carries the decoder's message plus an excerpt of the
// offending body.
type DecodeError struct {
	Msg string
}

func (e *DecodeError) Error() string {
	return "JSON decoding error: " + e.Msg
}

// TimeRangeError is returned when an activity search window is not a valid
// half-open range. It is raised before any token lookup or network call.
type TimeRangeError struct {
	After  time.Time
	Before time.Time
}

func (e *TimeRangeError) Error() string {
	return fmt.Sprintf("incorrect parameters: after %s should be earlier than before %s",
		e.After.Format(time.RFC3339), e.Before.Format(time.RFC3339))
}
