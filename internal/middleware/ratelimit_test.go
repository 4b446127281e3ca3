package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	rl := &RateLimiter{
		requests: map[string][]time.Time{},
		limit:    3,
		window:   time.Minute,
	}

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("1.2.3.4"), "request %d should pass", i+1)
	}
	assert.False(t, rl.Allow("1.2.3.4"), "fourth request exceeds the limit")

	// Other IPs are tracked independently.
	assert.True(t, rl.Allow("5.6.7.8"))
}

func TestRateLimiterWindowExpiry(t *testing.T) {
	rl := &RateLimiter{
		requests: map[string][]time.Time{},
		limit:    1,
		window:   50 * time.Millisecond,
	}

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"), "old requests fall out of the window")
}

func TestGetClientIP(t *testing.T) {
	r := httptest.NewRequest("POST", "/", nil)
	r.RemoteAddr = "10.0.0.1:54321"
	assert.Equal(t, "10.0.0.1", getClientIP(r))

	r.Header.Set("X-Real-IP", "9.9.9.9")
	assert.Equal(t, "9.9.9.9", getClientIP(r))

	// X-Forwarded-For wins; the first hop is the client.
	r.Header.Set("X-Forwarded-For", "1.2.3.4, 10.0.0.2")
	assert.Equal(t, "1.2.3.4", getClientIP(r))
}
