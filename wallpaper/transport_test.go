package wallpaper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestUserAgentTransport(t *testing.T) {
	got := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.UserAgent()
	}))
	defer srv.Close()

	res, err := NewClient("agent/2", 0, 100, 1).Get(srv.URL)
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, "agent/2", <-got)
}

func TestUserAgentTransport_LimiterHonoursContext(t *testing.T) {
	tr := &UserAgentTransport{
		RoundTripper: http.DefaultTransport,
		UserAgent:    "agent",
		Limiter:      rate.NewLimiter(rate.Every(1<<62), 1),
	}
	tr.Limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://127.0.0.1:1/", nil)
	require.NoError(t, err)
	_, err = tr.RoundTrip(req)
	assert.Error(t, err)
}
