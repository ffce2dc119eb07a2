package identity

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_PicksFromCandidates(t *testing.T) {
	agents := []string{"agent-a", "agent-b"}
	referrers := []string{"https://ref.example/"}
	b := NewBuilder(agents, referrers, 0, 0, rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		rc := b.Build("https://example.com/page")

		assert.Equal(t, "https://example.com/page", rc.URL)
		assert.Contains(t, agents, rc.UserAgent)
		assert.Equal(t, "https://ref.example/", rc.Referrer)
		assert.Equal(t, time.Duration(0), rc.Delay)
	}
}

func TestBuild_HeaderBundle(t *testing.T) {
	b := NewBuilder(nil, nil, 0, 0, rand.New(rand.NewSource(7)))
	rc := b.Build("https://example.com")

	for _, key := range []string{
		"User-Agent", "Accept", "Accept-Language", "Accept-Encoding",
		"Referer", "DNT", "Upgrade-Insecure-Requests", "Connection",
	} {
		require.Contains(t, rc.Headers, key)
		assert.NotEmpty(t, rc.Headers[key], key)
	}
	assert.Equal(t, rc.UserAgent, rc.Headers["User-Agent"])
	assert.Equal(t, rc.Referrer, rc.Headers["Referer"])
	assert.Contains(t, DefaultUserAgents, rc.UserAgent)
	assert.Contains(t, DefaultReferrers, rc.Referrer)
}

func TestBuild_DelayWithinRange(t *testing.T) {
	min := 500 * time.Millisecond
	max := 1500 * time.Millisecond
	b := NewBuilder(nil, nil, min, max, rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		rc := b.Build("https://example.com")
		assert.GreaterOrEqual(t, rc.Delay, min)
		assert.LessOrEqual(t, rc.Delay, max)
	}
}

func TestBuild_SameSeedSameIdentity(t *testing.T) {
	first := NewBuilder(nil, nil, 0, time.Second, rand.New(rand.NewSource(99))).Build("https://example.com")
	second := NewBuilder(nil, nil, 0, time.Second, rand.New(rand.NewSource(99))).Build("https://example.com")

	assert.Equal(t, first, second)
}

func TestNewBuilder_InvertedRangeClamps(t *testing.T) {
	b := NewBuilder(nil, nil, time.Second, 0, nil)
	rc := b.Build("https://example.com")

	assert.Equal(t, time.Second, rc.Delay)
}
