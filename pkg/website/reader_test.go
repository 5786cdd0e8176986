package website

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadStripsNonContentMarkup(t *testing.T) {
	page := `<html><head>
	<script>var tracker = "x";</script>
	<style>body { color: red; }</style>
	</head><body>
	<p>우리 회사는 혁신적인 소프트웨어 기업입니다.</p>
	<p>인재상: 도전하는 사람과 함께합니다.</p>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	text, ok := NewReader().Read(context.Background(), srv.URL)
	require.True(t, ok)
	require.Contains(t, text, "우리 회사는 혁신적인 소프트웨어 기업입니다.")
	require.Contains(t, text, "인재상")
	require.NotContains(t, text, "var tracker")
	require.NotContains(t, text, "color: red")
}

func TestReadCapsContentLength(t *testing.T) {
	long := strings.Repeat("가나다라마바사 아자차카타파하 ", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><p>" + long + "</p></body></html>"))
	}))
	defer srv.Close()

	text, ok := NewReader().Read(context.Background(), srv.URL)
	require.True(t, ok)
	require.LessOrEqual(t, len([]rune(text)), maxContentLength)
}

func TestReadFetchFailureReturnsNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	text, ok := NewReader().Read(context.Background(), srv.URL)
	require.False(t, ok)
	require.Empty(t, text)
}

func TestReadUnreachableHostReturnsNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, ok := NewReader().Read(context.Background(), srv.URL)
	require.False(t, ok)
}
