package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dgallion1/taskbox/internal/parser"
	"golang.org/x/net/html"
)

// Outcome classifies one scrape attempt into a small fixed set of
// causes. Nothing in this package panics or propagates transport
// errors to the caller; every failure maps onto one of these.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeInvalidURL
	OutcomeTimeout
	OutcomeConnectionFailed
	OutcomeTransportError
	OutcomeBadStatus
	OutcomeNoTitle
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeInvalidURL:
		return "invalid_url"
	case OutcomeTimeout:
		return "timeout"
	case OutcomeConnectionFailed:
		return "connection_failed"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomeBadStatus:
		return "bad_status"
	case OutcomeNoTitle:
		return "no_title"
	default:
		return "unknown"
	}
}

// Result is the outcome of scraping a single URL.
type Result struct {
	URL        string
	Outcome    Outcome
	Title      string        // empty unless Outcome is OutcomeOK
	StatusCode int           // 0 when the request never completed
	ReportPath string        // empty unless a report was written
	Elapsed    time.Duration
}

// Success reports whether a title was extracted.
func (r Result) Success() bool { return r.Outcome == OutcomeOK }

// Options tune scraper behavior.
type Options struct {
	Timeout      time.Duration
	UserAgent    string
	MaxBodyBytes int64
	Now          func() time.Time // injected clock for report names
}

// Scraper fetches webpages and extracts their <title> with a
// structural HTML parser.
type Scraper struct {
	log        *slog.Logger
	httpClient *http.Client
	userAgent  string
	maxBody    int64
	now        func() time.Time
}

const (
	defaultTimeout   = 10 * time.Second
	defaultMaxBody   = 4 << 20
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

func New(log *slog.Logger, opts Options) *Scraper {
	if log == nil {
		log = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBody
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Scraper{
		log:       log,
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBodyBytes,
		now:       opts.Now,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}
}

// Title performs one blocking GET and extracts the page title. The
// returned Result always has a classified Outcome; err carries the
// underlying cause for logging only and is never fatal to the caller.
func (s *Scraper) Title(ctx context.Context, rawURL string) (Result, error) {
	res := Result{URL: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		res.Outcome = OutcomeInvalidURL
		return res, fmt.Errorf("invalid url format: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		res.Outcome = OutcomeInvalidURL
		return res, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	start := s.now()
	resp, err := s.httpClient.Do(req)
	res.Elapsed = s.now().Sub(start)
	if err != nil {
		res.Outcome = classifyTransport(err)
		return res, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	res.StatusCode = resp.StatusCode
	if resp.StatusCode != http.StatusOK {
		res.Outcome = OutcomeBadStatus
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return res, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, s.maxBody))
	if err != nil {
		res.Outcome = OutcomeTransportError
		return res, fmt.Errorf("parse html: %w", err)
	}

	title := collapseWhitespace(parser.FindTitle(doc))
	if title == "" {
		res.Outcome = OutcomeNoTitle
		return res, fmt.Errorf("no title tag found at %s", rawURL)
	}

	res.Outcome = OutcomeOK
	res.Title = title
	return res, nil
}

func classifyTransport(err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) {
		return OutcomeTimeout
	}
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return OutcomeTimeout
	}
	// Connection refused, reset, DNS failure: all surface as OpError
	// or DNSError somewhere in the chain.
	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		return OutcomeConnectionFailed
	}
	return OutcomeTransportError
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
