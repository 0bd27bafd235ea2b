package view

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"marvelous/internal/branch"
	"marvelous/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sampleProjects() []types.Project {
	return []types.Project{
		{ID: "fr-1", ClientName: "Amélie & Thomas", Branch: branch.France, Tasks: []types.Task{}},
		{ID: "cm-1", ClientName: "Marc-Aurèle Tchakounté", Branch: branch.Cameroun, Tasks: []types.Task{}},
	}
}

func ids(projects []types.Project) []string {
	out := make([]string, len(projects))
	for i, p := range projects {
		out[i] = p.ID
	}
	return out
}

func TestInitialStateIsIdle(t *testing.T) {
	c := NewRegional[types.Project]("test", nil, sampleProjects)
	snap := c.Snapshot()
	assert.Equal(t, StatusIdle, snap.Status)
	assert.Empty(t, snap.Records)
	assert.Empty(t, snap.ErrorMessage)
}

func TestRemoteSuccessServesRows(t *testing.T) {
	fetch := func(ctx context.Context, sel branch.Selector) ([]types.Project, error) {
		return []types.Project{{ID: "srv-1", Branch: branch.France}}, nil
	}
	c := NewRegional("test", fetch, sampleProjects)

	require.True(t, c.Refresh(context.Background(), branch.Global))
	snap := c.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, []string{"srv-1"}, ids(snap.Records))
	assert.Empty(t, snap.ErrorMessage)
	assert.False(t, snap.FromFallback)
}

func TestRemoteFailureServesFallbackWithBanner(t *testing.T) {
	fetch := func(ctx context.Context, sel branch.Selector) ([]types.Project, error) {
		return nil, errors.New("connection refused")
	}
	c := NewRegional("test", fetch, sampleProjects)

	require.True(t, c.Refresh(context.Background(), branch.Selector(branch.Cameroun)))
	snap := c.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, []string{"cm-1"}, ids(snap.Records), "fallback must honor the selector")
	assert.NotEmpty(t, snap.ErrorMessage)
	assert.True(t, snap.FromFallback)
}

func TestRemoteEmptyServesFallbackWithoutBanner(t *testing.T) {
	fetch := func(ctx context.Context, sel branch.Selector) ([]types.Project, error) {
		return []types.Project{}, nil
	}
	c := NewRegional("test", fetch, sampleProjects)

	require.True(t, c.Refresh(context.Background(), branch.Selector(branch.France)))
	snap := c.Snapshot()
	assert.Equal(t, []string{"fr-1"}, ids(snap.Records))
	assert.Empty(t, snap.ErrorMessage, "an empty branch is not an error")
	assert.True(t, snap.FromFallback)
}

func TestNoRemotePathAlwaysServesSamples(t *testing.T) {
	c := NewRegional[types.Project]("test", nil, sampleProjects)

	require.True(t, c.Refresh(context.Background(), branch.Global))
	snap := c.Snapshot()
	assert.Equal(t, []string{"fr-1", "cm-1"}, ids(snap.Records))
	assert.Empty(t, snap.ErrorMessage)
}

func TestStaleGenerationIsDiscarded(t *testing.T) {
	fetch := func(ctx context.Context, sel branch.Selector) ([]types.Project, error) {
		if sel == branch.Selector(branch.France) {
			return []types.Project{{ID: "slow-france"}}, nil
		}
		return []types.Project{{ID: "fast-cameroun"}}, nil
	}
	c := NewRegional("test", fetch, sampleProjects)

	// A slow France load is overtaken by a Cameroun selection.
	slowGen := c.Begin(branch.Selector(branch.France))
	slowOut := c.Resolve(context.Background(), slowGen, branch.Selector(branch.France))

	fastGen := c.Begin(branch.Selector(branch.Cameroun))
	fastOut := c.Resolve(context.Background(), fastGen, branch.Selector(branch.Cameroun))
	require.True(t, c.Commit(fastGen, fastOut))

	// The late arrival must not clobber the newer selection.
	assert.False(t, c.Commit(slowGen, slowOut))
	snap := c.Snapshot()
	assert.Equal(t, []string{"fast-cameroun"}, ids(snap.Records))
	assert.Equal(t, branch.Selector(branch.Cameroun), snap.Selector)
}

func TestBeginWhileLoadingSupersedes(t *testing.T) {
	c := NewRegional[types.Project]("test", nil, sampleProjects)

	first := c.Begin(branch.Global)
	second := c.Begin(branch.Selector(branch.France))
	assert.Greater(t, second, first)

	out := c.Resolve(context.Background(), first, branch.Global)
	assert.False(t, c.Commit(first, out))
	assert.Equal(t, StatusLoading, c.Snapshot().Status)
}

func TestRepeatedRefreshIsIdempotent(t *testing.T) {
	c := NewRegional[types.Project]("test", nil, sampleProjects)

	require.True(t, c.Refresh(context.Background(), branch.Selector(branch.France)))
	first := c.Snapshot()
	require.True(t, c.Refresh(context.Background(), branch.Selector(branch.France)))
	second := c.Snapshot()

	assert.Equal(t, ids(first.Records), ids(second.Records), "no accumulation across refreshes")
}

func TestSharedControllerIgnoresSelector(t *testing.T) {
	c := NewShared("posts", func() []types.ContentPost {
		return []types.ContentPost{{ID: "1"}, {ID: "2"}}
	})

	require.True(t, c.Refresh(context.Background(), branch.Selector(branch.Cameroun)))
	assert.Len(t, c.Snapshot().Records, 2)
	require.True(t, c.Refresh(context.Background(), branch.Global))
	assert.Len(t, c.Snapshot().Records, 2)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewRegional[types.Project]("test", nil, sampleProjects)
	require.True(t, c.Refresh(context.Background(), branch.Global))

	snap := c.Snapshot()
	snap.Records[0].ClientName = "mutated"
	assert.NotEqual(t, "mutated", c.Snapshot().Records[0].ClientName)
}

func TestConcurrentRefreshesConverge(t *testing.T) {
	fetch := func(ctx context.Context, sel branch.Selector) ([]types.Project, error) {
		return []types.Project{{ID: "srv-" + string(sel)}}, nil
	}
	c := NewRegional("test", fetch, sampleProjects)

	var wg sync.WaitGroup
	for range 32 {
		for _, sel := range branch.Selectors() {
			wg.Add(1)
			go func() {
				defer wg.Done()
				c.Refresh(context.Background(), sel)
			}()
		}
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, StatusReady, snap.Status)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "srv-"+string(snap.Selector), snap.Records[0].ID)
}
