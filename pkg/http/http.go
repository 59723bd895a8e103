package http

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
)

var ErrSession = errors.New("session error")

const (
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultAccept    = "application/json, text/plain, */*"
	DefaultLanguage  = "en-US,en;q=0.9"
)

type SessionConfig struct {
	BaseUrl string
	Timeout time.Duration
	Referer string            // defaults to BaseUrl
	Headers map[string]string // merged over the browser defaults
	Logger  resty.Logger      // defaults to the logrus standard logger
	Debug   bool              // dump requests and responses through Logger
}

// Session is a single cookie-carrying client shared by the priming call and
// every data request of one run.
type Session struct {
	client  *resty.Client
	logger  resty.Logger
	baseUrl string
}

func NewSession(cfg SessionConfig) *Session {
	referer := cfg.Referer
	if referer == "" {
		referer = cfg.BaseUrl
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	// resty.New installs a cookie jar
	client := resty.New()
	client.SetLogger(logger)
	client.SetDebug(cfg.Debug)
	client.SetBaseURL(cfg.BaseUrl)
	client.SetTimeout(cfg.Timeout)
	client.SetHeaders(map[string]string{
		"User-Agent":      DefaultUserAgent,
		"Accept":          DefaultAccept,
		"Accept-Language": DefaultLanguage,
		"Referer":         referer,
	})
	if len(cfg.Headers) > 0 {
		client.SetHeaders(cfg.Headers)
	}

	return &Session{
		client:  client,
		logger:  logger,
		baseUrl: cfg.BaseUrl,
	}
}

// Prime visits the origin once so the server can hand out its cookies.
func (s *Session) Prime(ctx context.Context) error {
	res, err := s.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return fmt.Errorf("%w: prime %s: %v", ErrSession, s.baseUrl, err)
	}
	if !res.IsSuccess() {
		return fmt.Errorf("%w: prime %s: status %v", ErrSession, s.baseUrl, res.Status())
	}
	log.Debugf("session primed: %v cookie(s) from %s", len(res.Cookies()), s.baseUrl)
	return nil
}

// Get issues one GET against path. err is only set for transport-level
// failures; any HTTP status is returned as-is.
func (s *Session) Get(ctx context.Context, path string, query map[string]string) (status int, resBody []byte, err error) {
	req := s.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}

	res, err := req.Get(path)
	if err != nil {
		return 0, nil, err
	}
	return res.StatusCode(), res.Body(), nil
}
