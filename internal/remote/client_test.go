package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marvelous/internal/branch"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestProjectsNormalizesRows(t *testing.T) {
	var gotQuery map[string][]string
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, "/rest/v1/projects", r.URL.Path)
		assert.Equal(t, "anon-key", r.Header.Get("apikey"))
		assert.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"p1","client_name":"Amélie & Thomas","type":"Mariage","date":"2024-06-15",
			 "status":"In Progress","location":"Paris","budget":15000,"branch":"France",
			 "formula":"Prestige","urgency":"high",
			 "tasks":[{"id":"t1","name":"Teaser","status":"Pending","assigned_to":"Sarah J."}]},
			{"id":"p2","client_name":"Shooting Akwa","type":"Studio","date":"2024-06-10",
			 "status":"Confirmed","location":"Douala","budget":2500000,"branch":"Cameroun",
			 "formula":"VIP","urgency":"medium"}
		]`))
	})

	c := New(srv.URL, "anon-key", time.Second)
	projects, err := c.Projects(context.Background(), branch.Global)
	require.NoError(t, err)
	require.Len(t, projects, 2)

	assert.Equal(t, []string{"*,tasks(*)"}, gotQuery["select"])
	assert.Equal(t, []string{"date.desc"}, gotQuery["order"])
	assert.NotContains(t, gotQuery, "branch", "Global must not filter server side")

	first := projects[0]
	assert.Equal(t, "Amélie & Thomas", first.ClientName)
	assert.Equal(t, branch.France, first.Branch)
	require.Len(t, first.Tasks, 1)
	assert.Equal(t, "Sarah J.", first.Tasks[0].AssignedTo)

	// Missing tasks in the payload normalize to an empty slice.
	second := projects[1]
	assert.NotNil(t, second.Tasks)
	assert.Empty(t, second.Tasks)
}

func TestConcreteSelectorFiltersServerSide(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "eq.Cameroun", r.URL.Query().Get("branch"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	c := New(srv.URL, "anon-key", time.Second)
	projects, err := c.Projects(context.Background(), branch.Selector(branch.Cameroun))
	require.NoError(t, err)
	assert.NotNil(t, projects, "empty result is a slice, not nil")
	assert.Empty(t, projects)
}

func TestCustomersNormalizesRows(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/customers", r.URL.Path)
		assert.Equal(t, "name.asc", r.URL.Query().Get("order"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"c1","name":"Amélie Dubois","email":"a@d.fr","phone":"06","branch":"France",
			 "status":"Active","category":"Wedding","total_revenue":15000,
			 "portal_access_code":"AMT-2024",
			 "interactions":[{"id":"i1","type":"Email","date":"2024-05-03","summary":"Devis"}],
			 "galleries":[{"id":"g1","label":"Engagement","url":"https://x","is_private":true}]}
		]`))
	})

	c := New(srv.URL, "anon-key", time.Second)
	customers, err := c.Customers(context.Background(), branch.Global)
	require.NoError(t, err)
	require.Len(t, customers, 1)

	got := customers[0]
	assert.Equal(t, "AMT-2024", got.PortalAccessCode)
	require.Len(t, got.Interactions, 1)
	assert.Equal(t, "Devis", got.Interactions[0].Summary)
	require.Len(t, got.Galleries, 1)
	assert.True(t, got.Galleries[0].IsPrivate)
	assert.NotNil(t, got.Projects)
}

func TestServerErrorBecomesFetchError(t *testing.T) {
	srv := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	c := New(srv.URL, "anon-key", time.Second)
	_, err := c.Projects(context.Background(), branch.Global)
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "projects", fe.Collection)
}

func TestUnconfiguredClientFailsFast(t *testing.T) {
	c := New("", "", time.Second)
	assert.False(t, c.Configured())

	_, err := c.Customers(context.Background(), branch.Global)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "customers", fe.Collection)

	require.Error(t, c.Ping(context.Background()))
}
