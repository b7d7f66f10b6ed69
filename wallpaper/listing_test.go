package wallpaper

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingHTML = `<html><body>
<div class="thing"><p class="title"><a class="title may-blank" href="https://imgur.com/a1">first</a></p></div>
<div class="thing"><a class="author may-blank" href="/user/someone">someone</a></div>
<div class="thing"><p class="title"><a class="title may-blank" href="/r/aww/comments/abc/self_post/">second</a></p></div>
<div class="thing"><p class="title"><a class="title may-blank" href="">empty</a></p></div>
<div class="thing"><p class="title"><a class="title may-blank" href="javascript:void(0)">js</a></p></div>
<div class="thing"><p class="title"><a class="title may-blank" href="https://i.imgur.com/b2.jpg">third</a></p></div>
</body></html>`

func mustURL(t *testing.T, s string) *url.URL {
	t.Helper()
	u, err := url.Parse(s)
	require.NoError(t, err)
	return u
}

func TestExtractCandidates_HTML(t *testing.T) {
	cs, err := ExtractCandidates([]byte(listingHTML), "text/html; charset=UTF-8", mustURL(t, FeedURL))
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Rank: 0, URL: "https://imgur.com/a1"},
		{Rank: 1, URL: "https://old.reddit.com/r/aww/comments/abc/self_post/"},
		{Rank: 2, URL: "https://i.imgur.com/b2.jpg"},
	}, cs)
}

func TestExtractCandidates_JSON(t *testing.T) {
	body := `{"kind":"Listing","data":{"children":[
		{"kind":"t3","data":{"url":"https://i.redd.it/one.jpg"}},
		{"kind":"t3","data":{"url":""}},
		{"kind":"t3","data":{"url":"https://imgur.com/two"}}
	]}}`
	cs, err := ExtractCandidates([]byte(body), "", mustURL(t, FeedURL))
	require.NoError(t, err)
	assert.Equal(t, []Candidate{
		{Rank: 0, URL: "https://i.redd.it/one.jpg"},
		{Rank: 1, URL: "https://imgur.com/two"},
	}, cs)
}

func TestExtractCandidates_BadJSON(t *testing.T) {
	_, err := ExtractCandidates([]byte(`{"data":`), "application/json", mustURL(t, FeedURL))
	assert.Error(t, err)
}

func TestExtractCandidates_Empty(t *testing.T) {
	cs, err := ExtractCandidates([]byte(`<html><body><p>nothing here</p></body></html>`), "text/html", mustURL(t, FeedURL))
	require.NoError(t, err)
	assert.Empty(t, cs)
}

func TestRedditTop_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	e := &redditTop{Client: NewClient("test-agent", 0, 0, 0), URL: srv.URL}
	_, err := e.GetCandidates()
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusTooManyRequests, se.Code)
}
