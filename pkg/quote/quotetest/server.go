// Package quotetest runs a fake quote upstream on a loopback listener.
package quotetest

import (
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	DataPath    = "/api/equity-stockIndices"
	CookieName  = "nsit"
	CookieValue = "quotetest-session"
)

// Response is served once per data request, in order; the last one repeats.
type Response struct {
	Status int
	Body   string
	Delay  time.Duration
}

// Request captures what the data endpoint saw.
type Request struct {
	Cookie    string
	UserAgent string
	Referer   string
	Accept    string
	Index     string
}

type Server struct {
	URL string

	app *fiber.App

	mu          sync.Mutex
	responses   []Response
	primeStatus int
	primeHits   int
	dataHits    int
	requests    []Request
}

func New(t testing.TB, responses ...Response) *Server {
	t.Helper()

	s := &Server{
		responses:   responses,
		primeStatus: fiber.StatusOK,
	}
	app := fiber.New(fiber.Config{
		AppName:               "quotetest",
		DisableStartupMessage: true,
	})
	app.Get("/", s.handlePrime)
	app.Get(DataPath, s.handleData)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("quotetest: listen: %v", err)
	}
	go func() {
		_ = app.Listener(ln)
	}()

	s.app = app
	s.URL = "http://" + ln.Addr().String()
	t.Cleanup(func() {
		_ = app.ShutdownWithTimeout(time.Second)
	})
	return s
}

// SetPrimeStatus changes the status returned by the origin page.
func (s *Server) SetPrimeStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primeStatus = status
}

func (s *Server) PrimeHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.primeHits
}

func (s *Server) DataHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dataHits
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) handlePrime(c *fiber.Ctx) error {
	s.mu.Lock()
	s.primeHits++
	status := s.primeStatus
	s.mu.Unlock()

	if status >= 200 && status < 300 {
		c.Cookie(&fiber.Cookie{Name: CookieName, Value: CookieValue, Path: "/"})
	}
	return c.Status(status).SendString("<html></html>")
}

func (s *Server) handleData(c *fiber.Ctx) error {
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Cookie:    c.Cookies(CookieName),
		UserAgent: c.Get(fiber.HeaderUserAgent),
		Referer:   c.Get(fiber.HeaderReferer),
		Accept:    c.Get(fiber.HeaderAccept),
		Index:     c.Query("index"),
	})
	res := Response{Status: fiber.StatusOK, Body: `{"data":[]}`}
	if len(s.responses) > 0 {
		i := s.dataHits
		if i >= len(s.responses) {
			i = len(s.responses) - 1
		}
		res = s.responses[i]
	}
	s.dataHits++
	s.mu.Unlock()

	if res.Delay > 0 {
		time.Sleep(res.Delay)
	}
	if res.Status == 0 {
		res.Status = fiber.StatusOK
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(res.Status).SendString(res.Body)
}

// Payload marshals records into the upstream's {"data": [...]} envelope.
func Payload(records ...map[string]any) string {
	if records == nil {
		records = []map[string]any{}
	}
	b, _ := json.Marshal(map[string]any{"data": records})
	return string(b)
}

// Quote builds a record with string-typed prices, as the upstream sends them.
func Quote(symbol, lastPrice, previousClose string) map[string]any {
	return map[string]any{
		"symbol":        symbol,
		"lastPrice":     lastPrice,
		"previousClose": previousClose,
		"series":        "EQ",
	}
}

// UnreachableURL returns an address nothing is listening on.
func UnreachableURL(t testing.TB) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("quotetest: listen: %v", err)
	}
	addr := ln.Addr().String()
	_ = ln.Close()
	return "http://" + addr
}
