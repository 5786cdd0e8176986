package duckduckgo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/company_radar/pkg/search"
)

func TestClientSearchSendsComputedQuery(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(serpFixture))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/html/", 2)
	results, err := c.Search(context.Background(), &search.Request{
		Query:      "미래시스템 회사 소개 인재상",
		Topic:      search.TopicGeneral,
		MaxResults: 5,
	})
	require.NoError(t, err)
	require.Equal(t, "미래시스템 회사 소개 인재상", gotQuery)
	require.Len(t, results, 3)

	// relative hrefs are absolutized against the engine origin
	require.Equal(t, srv.URL+"/about", results[1].Link)
}

func TestClientSearchFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "go away", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/html/", 2)
	_, err := c.Search(context.Background(), &search.Request{
		Query:      "미래시스템",
		Topic:      search.TopicGeneral,
		MaxResults: 5,
	})
	require.Error(t, err)
}

func TestClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	require.Equal(t, defaultBaseURL, c.baseURL)
	require.Equal(t, "https://html.duckduckgo.com", c.ext.origin)
	require.Equal(t, "duckduckgo", c.Name())
}
