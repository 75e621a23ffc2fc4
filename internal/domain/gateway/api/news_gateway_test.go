package api

import (
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yatra-api/pkg/http"
)

func rssFeed(items int) string {
	feed := `<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>"mumbai travel" - Search</title>`
	for i := 0; i < items; i++ {
		feed += fmt.Sprintf(`<item><title>Mumbai story %d</title><link>https://news.example.com/%d</link><pubDate>Mon, 24 Aug 2026 08:00:00 GMT</pubDate><description>Story %d about Mumbai</description><source url="https://paper.example.com">The Daily Paper</source></item>`, i, i, i)
	}
	return feed + `</channel></rss>`
}

func TestNewsGatewaySearchParsesFeed(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		require.Equal(t, "/rss/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/rss+xml; charset=UTF-8")
		_, _ = w.Write([]byte(rssFeed(8)))
	}))
	defer server.Close()

	gateway := NewNewsGateway(server.URL, http.ClientOptions{ReadTimeout: 2 * time.Second})

	feed, err := gateway.Search("mumbai travel")
	require.NoError(t, err)
	require.NotNil(t, feed)

	assert.Equal(t, "mumbai travel", gotQuery)
	assert.Len(t, feed.Channel.Items, 8)

	first := feed.Channel.Items[0]
	assert.Equal(t, "Mumbai story 0", first.Title)
	assert.Equal(t, "https://news.example.com/0", first.Link)
	assert.Equal(t, "The Daily Paper", first.Source.Name)
	assert.Equal(t, "https://paper.example.com", first.Source.URL)
}

func TestNewsGatewaySearchDecodesWithoutContentType(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		// No explicit Content-Type; relies on the client's XML handling
		// of whatever label the server infers.
		_, _ = w.Write([]byte(rssFeed(2)))
	}))
	defer server.Close()

	gateway := NewNewsGateway(server.URL, http.ClientOptions{ReadTimeout: 2 * time.Second})

	feed, err := gateway.Search("delhi")
	require.NoError(t, err)
	assert.Len(t, feed.Channel.Items, 2)
}

func TestNewsGatewaySearchPropagatesServerError(t *testing.T) {
	server := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.WriteHeader(nethttp.StatusBadGateway)
	}))
	defer server.Close()

	gateway := NewNewsGateway(server.URL, http.ClientOptions{ReadTimeout: 2 * time.Second})

	_, err := gateway.Search("chennai")
	assert.Error(t, err)
}
