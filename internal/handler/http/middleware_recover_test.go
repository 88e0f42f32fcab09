package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-catalog-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRecover(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		panicValue any
		wantDetail string
	}{
		{name: "string panic in development", env: config.EnvDevelopment, panicValue: "kaboom", wantDetail: "kaboom"},
		{name: "error panic in development", env: config.EnvDevelopment, panicValue: errors.New("nil map"), wantDetail: "nil map"},
		{name: "detail hidden in production", env: config.EnvProduction, panicValue: "kaboom", wantDetail: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerEnv(t, tt.env, nil, nil)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(tt.panicValue)
			})

			rr := httptest.NewRecorder()
			require.NotPanics(t, func() {
				h.withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			})

			require.Equal(t, http.StatusInternalServerError, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.False(t, env.Success)
			assert.Equal(t, "Something went wrong!", env.Message)
			assert.Equal(t, tt.wantDetail, env.Error)
		})
	}
}

func TestWithRecover_AbortHandlerIsRethrown(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.withRecover(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestWithRecover_PassThrough(t *testing.T) {
	h := newTestHandler(t, nil, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	h.withRecover(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}
