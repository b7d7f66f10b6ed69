package wallpaper

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// UserAgentTransport sets the client identifying header on every request
// and paces outbound requests.
type UserAgentTransport struct {
	http.RoundTripper
	UserAgent string
	Limiter   *rate.Limiter
}

func (t *UserAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Limiter != nil {
		if err := t.Limiter.Wait(req.Context()); err != nil {
			return nil, err
		}
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.UserAgent)
	return t.RoundTripper.RoundTrip(r)
}

// NewClient builds the HTTP client shared by every stage of a cycle.
// rps <= 0 disables pacing.
func NewClient(userAgent string, timeout time.Duration, rps float64, burst int) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	base.DialContext = (&net.Dialer{Timeout: 10 * time.Second, KeepAlive: 30 * time.Second}).DialContext
	base.TLSHandshakeTimeout = 10 * time.Second
	base.ResponseHeaderTimeout = timeout

	var limiter *rate.Limiter
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &UserAgentTransport{
			RoundTripper: base,
			UserAgent:    userAgent,
			Limiter:      limiter,
		},
	}
}

// get issues a GET and turns non-2xx into *StatusError. The caller closes
// the body.
func get(client *http.Client, url string) (*http.Response, error) {
	res, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		res.Body.Close()
		return nil, &StatusError{URL: url, Code: res.StatusCode}
	}
	return res, nil
}
