package insight

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	mu      sync.Mutex
	calls   []call
	text    string
	err     error
	block   chan struct{} // when set, Complete waits until closed
	started chan struct{} // closed once Complete is entered
}

type call struct {
	prompt      string
	temperature float32
}

func (s *stubService) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	if s.started != nil {
		close(s.started)
		s.started = nil
	}
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.calls = append(s.calls, call{prompt: prompt, temperature: temperature})
	s.mu.Unlock()
	return s.text, s.err
}

func (s *stubService) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func TestBlankInputIsANoOp(t *testing.T) {
	stub := &stubService{text: "should not appear"}
	c := NewController(stub)

	for _, input := range []string{"", "   ", "\n\t"} {
		got := c.Request(context.Background(), MarketingIdeas, input)
		assert.Empty(t, got)
	}
	assert.Zero(t, stub.callCount(), "service must not be called for blank input")
	assert.False(t, c.Busy(MarketingIdeas))
}

func TestSuccessfulTextStoredVerbatim(t *testing.T) {
	stub := &stubService{text: "## Idea 1\nGolden hour sessions"}
	c := NewController(stub)

	got := c.Request(context.Background(), MarketingIdeas, "destination weddings")
	assert.Equal(t, "## Idea 1\nGolden hour sessions", got)
	assert.Equal(t, got, c.Result(MarketingIdeas))
	assert.False(t, c.Busy(MarketingIdeas))
}

func TestPromptAndTemperaturePerKind(t *testing.T) {
	stub := &stubService{text: "ok"}
	c := NewController(stub)

	c.Request(context.Background(), MarketingIdeas, "albums")
	c.Request(context.Background(), Hashtags, "sunset shoot")
	c.Request(context.Background(), PerformanceInsights, `[{"name":"Alex"}]`)

	require.Len(t, stub.calls, 3)
	assert.Contains(t, stub.calls[0].prompt, "marketing campaign ideas")
	assert.Contains(t, stub.calls[0].prompt, "albums")
	assert.Equal(t, float32(0.7), stub.calls[0].temperature)

	assert.Contains(t, stub.calls[1].prompt, "hashtags")
	assert.Equal(t, float32(0.6), stub.calls[1].temperature)

	assert.Contains(t, stub.calls[2].prompt, "staff performance data")
	assert.Equal(t, float32(0.5), stub.calls[2].temperature)
}

func TestErrorsAbsorbedIntoFallbackText(t *testing.T) {
	stub := &stubService{err: errors.New("quota exceeded")}
	c := NewController(stub)

	assert.Equal(t, "Error generating AI marketing ideas.",
		c.Request(context.Background(), MarketingIdeas, "x"))
	assert.Equal(t, "Error generating hashtags.",
		c.Request(context.Background(), Hashtags, "x"))
	assert.Equal(t, "Error generating performance insights.",
		c.Request(context.Background(), PerformanceInsights, "x"))
}

func TestEmptyOutputMapsToPlaceholder(t *testing.T) {
	stub := &stubService{text: "  \n"}
	c := NewController(stub)

	assert.Equal(t, "No ideas generated.",
		c.Request(context.Background(), MarketingIdeas, "x"))
	assert.Equal(t, "No hashtags generated.",
		c.Request(context.Background(), Hashtags, "x"))
	assert.Equal(t, "No insights available.",
		c.Request(context.Background(), PerformanceInsights, "x"))
}

func TestNilServiceFallsBack(t *testing.T) {
	c := NewController(nil)
	assert.Equal(t, "Error generating hashtags.",
		c.Request(context.Background(), Hashtags, "x"))
}

func TestBusyWhileOutstandingAndIndependentKinds(t *testing.T) {
	block := make(chan struct{})
	started := make(chan struct{})
	slow := &stubService{text: "slow result", block: block, started: started}
	c := NewController(slow)

	done := make(chan string)
	go func() {
		done <- c.Request(context.Background(), MarketingIdeas, "topic")
	}()
	<-started
	assert.True(t, c.Busy(MarketingIdeas))
	assert.False(t, c.Busy(Hashtags), "kinds are independent")

	// A second request for the busy kind is dropped, not queued.
	assert.Empty(t, c.Request(context.Background(), MarketingIdeas, "other"))

	close(block)
	assert.Equal(t, "slow result", <-done)
	assert.False(t, c.Busy(MarketingIdeas))
	assert.Equal(t, 1, slow.callCount())
}

func TestUnknownKindReturnsEmpty(t *testing.T) {
	c := NewController(&stubService{text: "x"})
	assert.Empty(t, c.Request(context.Background(), Kind("bogus"), "input"))
}
