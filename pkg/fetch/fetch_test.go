package fetch_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yapay-ai/model-scout/pkg/fetch"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubSource struct {
	name    string
	entries []fetch.Entry
	err     error
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(context.Context) ([]fetch.Entry, error) {
	s.calls++
	return s.entries, s.err
}

func TestFetcher_FirstSourceWins(t *testing.T) {
	first := &stubSource{name: "first", entries: []fetch.Entry{{Description: "a"}}}
	second := &stubSource{name: "second", entries: []fetch.Entry{{Description: "b"}}}

	f := fetch.NewFetcher(testLogger(), first, second)
	entries, source, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", source)
	assert.Len(t, entries, 1)
	assert.Equal(t, 0, second.calls)
}

func TestFetcher_FallsThroughOnFailure(t *testing.T) {
	failing := &stubSource{name: "failing", err: fmt.Errorf("connection refused")}
	empty := &stubSource{name: "empty"}
	working := &stubSource{name: "working", entries: []fetch.Entry{{Description: "ok"}}}

	f := fetch.NewFetcher(testLogger(), failing, empty, working)
	entries, source, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "working", source)
	assert.Len(t, entries, 1)
}

func TestFetcher_AllSourcesFail(t *testing.T) {
	f := fetch.NewFetcher(testLogger(), &stubSource{name: "broken", err: fmt.Errorf("boom")})
	_, _, err := f.Fetch(context.Background())
	assert.Error(t, err)
}

func TestAPISource_Fetch(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/models", r.URL.Path)
		fmt.Fprint(w, `{"data":[
			{"id":"openai/gpt-4o","name":"OpenAI: GPT-4o","context_length":128000,"pricing":{"prompt":"2.5","completion":"10"}},
			{"id":"meta-llama/llama-3.1-8b-instruct:free","name":"Meta: Llama 3.1 8B Instruct","context_length":131072,"pricing":{"prompt":"0","completion":"0"}}
		]}`)
	}))
	defer srv.Close()

	src := fetch.NewAPISource(srv.URL, "test-key")
	entries, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "openai/gpt-4o", entries[0].ID)
	assert.Equal(t, "OpenAI: GPT-4o ($2.5/1M)", entries[0].Description)
	assert.Equal(t, 128000, entries[0].ContextLength)
	assert.Equal(t, "https://openrouter.ai/openai/gpt-4o", entries[0].ModelURL)
	assert.Equal(t, "https://openrouter.ai/openai", entries[0].ProviderURL)

	assert.Equal(t, "Meta: Llama 3.1 8B Instruct (free)", entries[1].Description)
}

func TestAPISource_NoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"data":[{"id":"x/y","name":"X: Y","pricing":{"prompt":"1"}}]}`)
	}))
	defer srv.Close()

	src := fetch.NewAPISource(srv.URL, "")
	entries, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAPISource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	src := fetch.NewAPISource(srv.URL, "")
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestSnapshotSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snapshot.txt")
	data := "# comment\n" +
		"openai/gpt-4o\tOpenAI: GPT-4o ($2.5/1M)\n" +
		"\n" +
		"Midnight Rose 70B ($0.0000008/1M)\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	src := fetch.NewSnapshotSource(path)
	entries, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "openai/gpt-4o", entries[0].ID)
	assert.Equal(t, "OpenAI: GPT-4o ($2.5/1M)", entries[0].Description)
	assert.Empty(t, entries[1].ID)
	assert.Equal(t, "Midnight Rose 70B ($0.0000008/1M)", entries[1].Description)
}

func TestSnapshotSource_Missing(t *testing.T) {
	src := fetch.NewSnapshotSource("/nonexistent/snapshot.txt")
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)
}

func TestSampleSource_Fetch(t *testing.T) {
	src := fetch.NewSampleSource()
	entries, err := src.Fetch(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
	for _, e := range entries {
		assert.NotEmpty(t, e.Description)
	}
}
