package insight

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"marvelous/internal/logging"
)

// Kind selects one of the fixed generation recipes.
type Kind string

const (
	MarketingIdeas      Kind = "marketing-ideas"
	Hashtags            Kind = "hashtags"
	PerformanceInsights Kind = "performance-insights"
)

type recipe struct {
	template    string  // fmt template taking the user input
	temperature float32
	fallback    string // shown verbatim when the service fails
	empty       string // shown when the service returns no text
}

var recipes = map[Kind]recipe{
	MarketingIdeas: {
		template:    "Generate 3 creative marketing campaign ideas for a luxury wedding and photography business focusing on: %s. Format the output as a clear list with titles and descriptions.",
		temperature: 0.7,
		fallback:    "Error generating AI marketing ideas.",
		empty:       "No ideas generated.",
	},
	Hashtags: {
		template:    "Generate a list of 20 trending and high-conversion hashtags for a luxury wedding/photography post about: %s. Group them by category (Niche, Popular, Local).",
		temperature: 0.6,
		fallback:    "Error generating hashtags.",
		empty:       "No hashtags generated.",
	},
	PerformanceInsights: {
		template:    "Analyze the following staff performance data and provide a summary of strengths and areas for improvement: %s",
		temperature: 0.5,
		fallback:    "Error generating performance insights.",
		empty:       "No insights available.",
	},
}

// Controller tracks one in-flight request per kind and stores the
// latest result. Kinds are independent: a running hashtag request
// does not block a marketing-ideas one.
type Controller struct {
	service TextService

	mu      sync.Mutex
	busy    map[Kind]bool
	results map[Kind]string
}

// NewController wires the controller to a text service. A nil service
// is allowed; every request then lands on the fallback string, which
// keeps the pages usable without an API key.
func NewController(service TextService) *Controller {
	return &Controller{
		service: service,
		busy:    make(map[Kind]bool),
		results: make(map[Kind]string),
	}
}

// Busy reports whether a request for the kind is outstanding.
func (c *Controller) Busy(kind Kind) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy[kind]
}

// Result returns the latest stored text for the kind, empty if none.
func (c *Controller) Result(kind Kind) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results[kind]
}

// Request performs one generation call for the kind, synchronously,
// and stores the outcome. Rules:
//
//   - blank input is a no-op: nothing stored, busy untouched, the
//     service is not called
//   - a kind already in flight is left alone (no queuing, no retry)
//   - service errors are absorbed into the kind's fixed fallback text
//   - empty successful output maps to the kind's "nothing generated"
//     line, anything else is stored verbatim
//
// It returns the stored text, or the previous result when the call
// was a no-op.
func (c *Controller) Request(ctx context.Context, kind Kind, input string) string {
	rec, ok := recipes[kind]
	if !ok {
		return ""
	}
	if strings.TrimSpace(input) == "" {
		return c.Result(kind)
	}

	c.mu.Lock()
	if c.busy[kind] {
		prev := c.results[kind]
		c.mu.Unlock()
		return prev
	}
	c.busy[kind] = true
	c.mu.Unlock()

	text := c.generate(ctx, kind, rec, input)

	c.mu.Lock()
	c.busy[kind] = false
	c.results[kind] = text
	c.mu.Unlock()
	return text
}

func (c *Controller) generate(ctx context.Context, kind Kind, rec recipe, input string) string {
	if c.service == nil {
		logging.Insight("%s: no service configured", kind)
		return rec.fallback
	}

	prompt := fmt.Sprintf(rec.template, input)
	logging.InsightDebug("%s: prompt %q", kind, prompt)

	text, err := c.service.Complete(ctx, prompt, rec.temperature)
	if err != nil {
		logging.Insight("%s: generation failed: %v", kind, err)
		return rec.fallback
	}
	if strings.TrimSpace(text) == "" {
		return rec.empty
	}
	return text
}
