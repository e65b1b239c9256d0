package exchange

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interiorhq/interman-api/pkg/config"
)

func TestGetFetchesLiveRate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","rates":{"INR":83.45,"EUR":0.92}}`))
	}))
	defer srv.Close()

	c := NewClient(config.ExchangeConfig{APIURL: srv.URL, FallbackRate: "83.0"})
	rate := c.Get(context.Background())

	assert.Equal(t, SourceLive, rate.Source)
	assert.Equal(t, "83.45", rate.INRPerUSD.String())
}

func TestGetServesFromCache(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"result":"success","rates":{"INR":83.45}}`))
	}))
	defer srv.Close()

	c := NewClient(config.ExchangeConfig{APIURL: srv.URL, FallbackRate: "83.0"})
	first := c.Get(context.Background())
	second := c.Get(context.Background())

	require.Equal(t, SourceLive, first.Source)
	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.INRPerUSD, second.INRPerUSD)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetFallsBackWhenAPIFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(config.ExchangeConfig{APIURL: srv.URL, FallbackRate: "82.5"})
	rate := c.Get(context.Background())

	assert.Equal(t, SourceFallback, rate.Source)
	assert.Equal(t, "82.5", rate.INRPerUSD.String())
}

func TestGetFallsBackOnBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"error"}`))
	}))
	defer srv.Close()

	c := NewClient(config.ExchangeConfig{APIURL: srv.URL, FallbackRate: "83.0"})
	rate := c.Get(context.Background())

	assert.Equal(t, SourceFallback, rate.Source)
	assert.Equal(t, "83", rate.INRPerUSD.String())
}

func TestNewClientRejectsMalformedFallback(t *testing.T) {
	c := NewClient(config.ExchangeConfig{APIURL: "http://unused", FallbackRate: "not-a-number"})
	assert.Equal(t, "83", c.fallback.String())
}
