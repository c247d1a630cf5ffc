package benchmark

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderServesRequestedKeys(t *testing.T) {
	p := NewStatic()
	set, err := p.GetBenchmarks(context.Background(), "retail", "", "", []string{"currentRatio", "noSuchMetric"})
	require.NoError(t, err)

	entry, ok := set["currentRatio"]
	require.True(t, ok)
	assert.Equal(t, 2.0, entry.Average)

	_, ok = set["noSuchMetric"]
	assert.False(t, ok, "unknown keys are simply absent, not zero-filled")
}

func TestHTTPProviderParsesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "retail", r.URL.Query().Get("sector"))
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"benchmarks":{"netMargin":{"average":9.5,"median":8.0,"sampleSize":120}}}`))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "test-key", zerolog.Nop())
	set, err := p.GetBenchmarks(context.Background(), "retail", "grocery", "sa", []string{"netMargin"})
	require.NoError(t, err)

	entry, ok := set["netMargin"]
	require.True(t, ok)
	assert.Equal(t, 9.5, entry.Average)
	assert.Equal(t, 120, entry.SampleSize)
}

func TestHTTPProviderNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, "", zerolog.Nop())
	_, err := p.GetBenchmarks(context.Background(), "retail", "", "", []string{"netMargin"})
	require.Error(t, err)
}
