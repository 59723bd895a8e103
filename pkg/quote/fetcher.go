package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"volscan/pkg/types"

	log "github.com/sirupsen/logrus"
)

// Getter is the transport the fetcher drives; *http.Session satisfies it.
type Getter interface {
	Get(ctx context.Context, path string, query map[string]string) (status int, resBody []byte, err error)
}

type FetcherConfig struct {
	Path    string
	Query   map[string]string
	Backoff time.Duration // fixed wait between failed attempts
}

type Fetcher struct {
	getter  Getter
	path    string
	query   map[string]string
	backoff time.Duration
}

var (
	errTrailingData = errors.New("unexpected data after json value")
	errNotObject    = errors.New("payload is not a json object")
)

type payload struct {
	Data []types.RawRecord `json:"data"`
}

func NewFetcher(getter Getter, cfg FetcherConfig) *Fetcher {
	return &Fetcher{
		getter:  getter,
		path:    cfg.Path,
		query:   cfg.Query,
		backoff: cfg.Backoff,
	}
}

// Fetch retries until one attempt yields a parseable 2xx response or
// maxAttempts is spent. It never fails: total failure is an empty slice.
func (f *Fetcher) Fetch(ctx context.Context, maxAttempts int) []types.RawRecord {
	attempts := 0
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		attempts = attempt
		log.Infof("fetch attempt %d/%d: %s", attempt, maxAttempts, f.path)

		outcome := f.Attempt(ctx)
		if outcome.Ok() {
			if len(outcome.Records) == 0 {
				log.Warn("response parsed but contains no records")
			} else {
				log.Infof("fetched %d records", len(outcome.Records))
			}
			return outcome.Records
		}

		logFailure(attempt, outcome.Err)
		if attempt == maxAttempts {
			break
		}
		if !f.wait(ctx) {
			log.Warn("fetch cancelled during backoff")
			break
		}
	}

	log.Errorf("fetch failed after %d attempt(s), no data", attempts)
	return []types.RawRecord{}
}

// Attempt performs one request and classifies its outcome.
func (f *Fetcher) Attempt(ctx context.Context) Outcome {
	status, body, err := f.getter.Get(ctx, f.path, f.query)
	if err != nil {
		return failure(&FetchError{Kind: RequestError, Err: err})
	}
	log.Debugf("response status %d, %d bytes", status, len(body))
	if status < 200 || status > 299 {
		return failure(&FetchError{Kind: HttpError, StatusCode: status})
	}

	records, err := decodePayload(body)
	if err != nil {
		return failure(&FetchError{Kind: DecodeError, Body: snippet(body), Err: err})
	}
	return success(records)
}

// decodePayload accepts exactly one JSON object and nothing after it.
func decodePayload(body []byte) ([]types.RawRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errTrailingData
	}
	if len(raw) == 0 || raw[0] != '{' {
		return nil, errNotObject
	}

	var p payload
	dec = json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&p); err != nil {
		return nil, err
	}
	return p.Data, nil
}

func (f *Fetcher) wait(ctx context.Context) bool {
	if f.backoff <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(f.backoff)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

func logFailure(attempt int, err *FetchError) {
	switch err.Kind {
	case RequestError:
		log.Warnf("attempt %d: request failed: %v", attempt, err.Err)
	case HttpError:
		log.Warnf("attempt %d: http error, status code %d", attempt, err.StatusCode)
	case DecodeError:
		log.Warnf("attempt %d: response is not valid json: %v", attempt, err.Err)
		log.Warnf("raw response (first %d chars): %s", maxBodySnippet, err.Body)
	}
}
