package service

import (
	"testing"

	"github.com/sabeennayazu/Movie-Mind/internal/recommend"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeK(t *testing.T) {
	assert.Equal(t, DefaultK, normalizeK(0))
	assert.Equal(t, DefaultK, normalizeK(-3))
	assert.Equal(t, 7, normalizeK(7))
	assert.Equal(t, MaxK, normalizeK(MaxK))
	assert.Equal(t, MaxK, normalizeK(MaxK+1))
	assert.Equal(t, MaxK, normalizeK(10000))
}

func TestCacheKeyShape(t *testing.T) {
	key := cacheKey(RecRequest{UserID: 12, MovieID: 0, Mode: recommend.ModeCollaborative, K: 10})
	assert.Equal(t, "rec:user:12:movie:0:mode:collaborative:k:10", key)

	// requests distintos nunca comparten clave
	other := cacheKey(RecRequest{UserID: 12, MovieID: 0, Mode: recommend.ModeContent, K: 10})
	assert.NotEqual(t, key, other)

	// refresh no forma parte de la clave: fuerza recálculo del mismo slot
	withRefresh := cacheKey(RecRequest{UserID: 12, Mode: recommend.ModeCollaborative, K: 10, Refresh: true})
	assert.Equal(t, key, withRefresh)
}

func TestSourceForPriority(t *testing.T) {
	cases := []struct {
		name string
		req  RecRequest
		want string
	}{
		{"película objetivo gana siempre", RecRequest{UserID: 1, MovieID: 5, Mode: recommend.ModeContent}, "similar"},
		{"usuario con modo contenido", RecRequest{UserID: 1, Mode: recommend.ModeContent}, "content"},
		{"usuario sin modo explícito", RecRequest{UserID: 1, Mode: recommend.ModeCollaborative}, "collaborative"},
		{"sin usuario ni película", RecRequest{}, "popular"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sourceFor(tc.req))
		})
	}
}
