package shell

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marvelous/internal/branch"
	"marvelous/internal/store"
)

func openPrefs(t *testing.T, dir string) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(dir, "preferences.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestDefaultsWithoutStore(t *testing.T) {
	s := New(nil)
	assert.Equal(t, ViewDashboard, s.ActiveView())
	assert.Equal(t, branch.Global, s.Selector())
	assert.Equal(t, ThemeLight, s.Theme())
	assert.Equal(t, SyncUnknown, s.SyncStatus())
}

func TestSeededNotifications(t *testing.T) {
	s := New(nil)
	notifs := s.Notifications()
	require.Len(t, notifs, 3)
	assert.Equal(t, "Retard Critique", notifs[0].Title)
	assert.Equal(t, NotifyError, notifs[0].Type)
	assert.Equal(t, 2, s.UnreadCount(), "one seeded notification starts read")
}

func TestMarkAllRead(t *testing.T) {
	s := New(nil)
	s.MarkAllRead()
	assert.Zero(t, s.UnreadCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.Read)
	}
}

func TestNotifyPrependsUnread(t *testing.T) {
	s := New(nil)
	id := s.Notify("Sync", "Connexion rétablie.", NotifySuccess, "Maintenant")
	require.NotEmpty(t, id)

	notifs := s.Notifications()
	require.Len(t, notifs, 4)
	assert.Equal(t, id, notifs[0].ID)
	assert.False(t, notifs[0].Read)
	assert.Equal(t, 3, s.UnreadCount())
}

func TestNotificationsReturnsACopy(t *testing.T) {
	s := New(nil)
	notifs := s.Notifications()
	notifs[0].Read = true
	assert.Equal(t, 2, s.UnreadCount())
}

func TestSelectorCycle(t *testing.T) {
	s := New(nil)
	assert.Equal(t, branch.Selector(branch.France), s.CycleSelector())
	assert.Equal(t, branch.Selector(branch.Cameroun), s.CycleSelector())
	assert.Equal(t, branch.Global, s.CycleSelector())
}

func TestBranchAndThemePersistAcrossRestart(t *testing.T) {
	dir := t.TempDir()

	prefs := openPrefs(t, dir)
	s := New(prefs)
	s.SetSelector(branch.Selector(branch.Cameroun))
	assert.Equal(t, ThemeDark, s.ToggleTheme())
	require.NoError(t, prefs.Close())

	prefs2, err := store.Open(filepath.Join(dir, "preferences.db"))
	require.NoError(t, err)
	defer prefs2.Close()

	restored := New(prefs2)
	assert.Equal(t, branch.Selector(branch.Cameroun), restored.Selector())
	assert.Equal(t, ThemeDark, restored.Theme())
}

func TestCorruptStoredSelectorFallsBackToGlobal(t *testing.T) {
	dir := t.TempDir()
	prefs := openPrefs(t, dir)
	require.NoError(t, prefs.Set(store.KeyBranch, "Atlantis"))

	s := New(prefs)
	assert.Equal(t, branch.Global, s.Selector())
}

func TestSettingsRoundTrip(t *testing.T) {
	prefs := openPrefs(t, t.TempDir())
	s := New(prefs)

	assert.Equal(t, "La Maison Marvelous", s.Settings().StudioName)

	require.NoError(t, s.SaveSettings(Settings{StudioName: "Studio Akwa", DefaultBranch: "Cameroun"}))
	got := s.Settings()
	assert.Equal(t, "Studio Akwa", got.StudioName)
	assert.Equal(t, "Cameroun", got.DefaultBranch)
}

func TestViewLabels(t *testing.T) {
	assert.Equal(t, "Projets & Mariages", ViewProjects.Label())
	assert.Equal(t, "Marketing AI", ViewMarketing.Label())
	assert.Len(t, Views(), 8)
}
