package quote

import "fmt"

type ErrorKind string

const (
	RequestError = ErrorKind("RequestError")
	HttpError    = ErrorKind("HttpError")
	DecodeError  = ErrorKind("DecodeError")
)

// maxBodySnippet bounds how much of an undecodable body is logged.
const maxBodySnippet = 500

// FetchError classifies a failed attempt. The kind only changes the log
// message; every kind is retried the same way.
type FetchError struct {
	Kind       ErrorKind
	StatusCode int    // HttpError only
	Body       string // first maxBodySnippet characters, DecodeError only
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case HttpError:
		return fmt.Sprintf("%s: status %d", e.Kind, e.StatusCode)
	default:
		if e.Err == nil {
			return string(e.Kind)
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func snippet(body []byte) string {
	r := []rune(string(body))
	if len(r) > maxBodySnippet {
		r = r[:maxBodySnippet]
	}
	return string(r)
}
