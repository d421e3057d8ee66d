package validation

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/lareferencia/harvester/pkg/metadata"
)

// Received values reported for the distinct URL failure modes.
const (
	receivedURLOK             = "OK"
	receivedURLError          = "ERROR"
	receivedMalformedURL      = "MalformedURL"
	receivedUnknownHost       = "UnknownHost"
	receivedConnectionError   = "ConnectionError"
	receivedURLUnknownFailure = "UnknownError"
)

// defaultURLClient follows at most one redirect, matching the historical
// checker which re-issued a single HEAD against the Location header.
var defaultURLClient = &http.Client{
	Timeout: 30 * time.Second,
	CheckRedirect: func(req *http.Request, via []*http.Request) error {
		if len(via) > 1 {
			return http.ErrUseLastResponse
		}
		return nil
	},
}

// URLExistRule validates that field content is a reachable URL: a HEAD
// request (following at most one redirect) must return HTTP 200.
//
// This rule performs network I/O per occurrence and blocks the worker for
// its duration; there is no built-in per-item timeout beyond the client's.
type URLExistRule struct {
	FieldRule

	client *http.Client
}

// NewURLExistRule builds a URL reachability rule.
func NewURLExistRule(fieldname string) *URLExistRule {
	r := &URLExistRule{}
	r.Fieldname = fieldname
	return r
}

// SetClient overrides the HTTP client, primarily for tests.
func (r *URLExistRule) SetClient(c *http.Client) { r.client = c }

func (r *URLExistRule) httpClient() *http.Client {
	if r.client != nil {
		return r.client
	}
	return defaultURLClient
}

func (r *URLExistRule) Validate(doc *metadata.Document) ValidatorRuleResult {
	return r.evaluate(r, r, doc)
}

func (r *URLExistRule) ValidateContent(content *string) ContentValidatorResult {
	if content == nil {
		return ContentValidatorResult{Valid: false, ReceivedValue: receivedNull}
	}

	u, err := url.Parse(*content)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ContentValidatorResult{Valid: false, ReceivedValue: receivedMalformedURL}
	}

	resp, err := r.httpClient().Head(u.String())
	if err != nil {
		return ContentValidatorResult{Valid: false, ReceivedValue: classifyURLError(err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return ContentValidatorResult{Valid: true, ReceivedValue: receivedURLOK}
	}
	return ContentValidatorResult{Valid: false, ReceivedValue: receivedURLError}
}

func classifyURLError(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return receivedUnknownHost
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		var netErr net.Error
		if errors.As(urlErr.Err, &netErr) {
			return receivedConnectionError
		}
		var opErr *net.OpError
		if errors.As(urlErr.Err, &opErr) {
			return receivedConnectionError
		}
		return receivedConnectionError
	}
	return receivedURLUnknownFailure
}
