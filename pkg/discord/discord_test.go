package discord

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"auth-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tcs := map[string]struct {
		url     string
		wantErr bool
	}{
		"valid":         {url: "https://discord.com/api/webhooks/123/abc"},
		"empty":         {url: "", wantErr: true},
		"wrong host":    {url: "https://example.com/api/webhooks/123/abc", wantErr: true},
		"missing token": {url: "https://discord.com/api/webhooks/123/", wantErr: true},
		"missing id":    {url: "https://discord.com/api/webhooks//abc", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			d, err := New(log.NewNop(), tc.url)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, d.Close())
		})
	}
}

func TestReportBug(t *testing.T) {
	var got webhookPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	d := newImpl(log.NewNop(), srv.URL, DefaultConfig())
	require.NoError(t, d.ReportBug(context.Background(), strings.Repeat("x", 5000)))

	require.Len(t, got.Embeds, 1)
	assert.Equal(t, ReportBugTitle, got.Embeds[0].Title)
	assert.Equal(t, ColorError, got.Embeds[0].Color)
	assert.LessOrEqual(t, len(got.Embeds[0].Description), MaxDescriptionLen)
}

func TestReportBug_Retries(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	d := newImpl(log.NewNop(), srv.URL, cfg)

	require.NoError(t, d.ReportBug(context.Background(), "boom"))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestReportBug_GivesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.RetryDelay = time.Millisecond
	d := newImpl(log.NewNop(), srv.URL, cfg)

	err := d.ReportBug(context.Background(), "boom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}
