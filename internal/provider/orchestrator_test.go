package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is a scriptable Provider for orchestration tests.
type fakeProvider struct {
	id        string
	available bool
	output    string
	err       error
	delay     time.Duration
	calls     int
}

func (f *fakeProvider) ID() string      { return f.id }
func (f *fakeProvider) Available() bool { return f.available }

func (f *fakeProvider) Invoke(ctx context.Context, _, _ string) (string, error) {
	f.calls++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestChain_FirstSuccessWins(t *testing.T) {
	first := &fakeProvider{id: "first", available: true, output: "from first"}
	second := &fakeProvider{id: "second", available: true, output: "from second"}

	chain := NewChain(time.Second, first, second)
	result, err := chain.Try(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "first", result.ProviderID)
	assert.Equal(t, "from first", result.Output)
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
}

func TestChain_SkipsUnavailable(t *testing.T) {
	unavailable := &fakeProvider{id: "unavailable", available: false}
	ready := &fakeProvider{id: "ready", available: true, output: "ok"}

	chain := NewChain(time.Second, unavailable, ready)
	result, err := chain.Try(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "ready", result.ProviderID)
	assert.Equal(t, 0, unavailable.calls)
}

func TestChain_FallsThroughOnError(t *testing.T) {
	failing := &fakeProvider{id: "failing", available: true, err: errors.New("quota exceeded")}
	backup := &fakeProvider{id: "backup", available: true, output: "recovered"}

	chain := NewChain(time.Second, failing, backup)
	result, err := chain.Try(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "backup", result.ProviderID)
	assert.Equal(t, 1, failing.calls)
}

func TestChain_NoRetryWithinProvider(t *testing.T) {
	failing := &fakeProvider{id: "failing", available: true, err: errors.New("boom")}

	chain := NewChain(time.Second, failing)
	_, err := chain.Try(context.Background(), "system", "user")

	require.Error(t, err)
	assert.Equal(t, 1, failing.calls)
}

func TestChain_ExhaustedError(t *testing.T) {
	a := &fakeProvider{id: "a", available: true, err: errors.New("down")}
	b := &fakeProvider{id: "b", available: false}
	c := &fakeProvider{id: "c", available: true, err: errors.New("also down")}

	chain := NewChain(time.Second, a, b, c)
	result, err := chain.Try(context.Background(), "system", "user")

	assert.Nil(t, result)
	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	// Only providers that were actually attempted are recorded.
	assert.Equal(t, []string{"a", "c"}, exhausted.Attempted)
}

func TestChain_EmptyChain(t *testing.T) {
	chain := NewChain(time.Second)
	_, err := chain.Try(context.Background(), "system", "user")

	var exhausted *ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.Empty(t, exhausted.Attempted)
}

func TestChain_PerAttemptTimeout(t *testing.T) {
	slow := &fakeProvider{id: "slow", available: true, output: "too late", delay: 200 * time.Millisecond}
	fast := &fakeProvider{id: "fast", available: true, output: "in time"}

	chain := NewChain(20*time.Millisecond, slow, fast)
	result, err := chain.Try(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, "fast", result.ProviderID)
}

func TestChain_RespectsOuterDeadline(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	never := &fakeProvider{id: "never", available: true, output: "unused"}
	chain := NewChain(time.Second, never)

	_, err := chain.Try(ctx, "system", "user")
	require.Error(t, err)
	assert.Equal(t, 0, never.calls)
}

func TestNewChain_DefaultTimeout(t *testing.T) {
	chain := NewChain(0)
	assert.Equal(t, DefaultAttemptTimeout, chain.timeout)
}
