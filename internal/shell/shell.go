// Package shell holds the application-level UI state: which view is
// active, which branch the sidebar has selected, theme, sync status
// and the notification center. Branch and theme survive restarts
// through the preference store.
package shell

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"

	"marvelous/internal/branch"
	"marvelous/internal/logging"
	"marvelous/internal/store"
)

// View identifies one page of the dashboard.
type View string

const (
	ViewDashboard   View = "dashboard"
	ViewProjects    View = "weddings"
	ViewStudio      View = "studio"
	ViewPersonnel   View = "personnel"
	ViewCRM         View = "crm"
	ViewPerformance View = "performance"
	ViewMarketing   View = "marketing"
	ViewSettings    View = "settings"
)

// Views lists the pages in navigation order.
func Views() []View {
	return []View{
		ViewDashboard, ViewProjects, ViewStudio, ViewPersonnel,
		ViewCRM, ViewPerformance, ViewMarketing, ViewSettings,
	}
}

// Label returns the French sidebar label for a view.
func (v View) Label() string {
	switch v {
	case ViewDashboard:
		return "Tableau de Bord"
	case ViewProjects:
		return "Projets & Mariages"
	case ViewStudio:
		return "Studio & Matériel"
	case ViewPersonnel:
		return "Équipe RH"
	case ViewCRM:
		return "Relation Client"
	case ViewPerformance:
		return "Performances"
	case ViewMarketing:
		return "Marketing AI"
	case ViewSettings:
		return "Paramètres"
	default:
		return string(v)
	}
}

// Theme is the display palette.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// SyncStatus reflects the last remote fetch outcome.
type SyncStatus string

const (
	SyncUnknown SyncStatus = "unknown"
	SyncOnline  SyncStatus = "online"
	SyncOffline SyncStatus = "offline"
)

// NotificationType colors a notification row.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyError   NotificationType = "error"
)

// Notification is one row of the notification center.
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      NotificationType
	Timestamp string
	Read      bool
}

// Settings is the blob edited on the settings page, stored as JSON
// under the marvelous-config key.
type Settings struct {
	StudioName    string `json:"studioName"`
	DefaultBranch string `json:"defaultBranch"`
}

func seedNotifications() []Notification {
	return []Notification{
		{
			ID: "1", Title: "Retard Critique", Type: NotifyError,
			Message:   `Le teaser de "Amélie & Thomas" a 3 jours de retard.`,
			Timestamp: "14:30",
		},
		{
			ID: "2", Title: "Matériel Prêt", Type: NotifySuccess,
			Message:   "La Red Komodo est revenue de maintenance.",
			Timestamp: "Hier", Read: true,
		},
		{
			ID: "3", Title: "Nouveau Lead", Type: NotifyInfo,
			Message:   "Demande de devis (Cameroun) pour un shooting.",
			Timestamp: "2h ago",
		},
	}
}

// State is the shell's mutable state. Safe for concurrent use; pages
// read through accessor copies and never share internal slices.
type State struct {
	prefs *store.Store // may be nil in tests

	mu            sync.Mutex
	view          View
	selector      branch.Selector
	theme         Theme
	sync          SyncStatus
	notifications []Notification
}

// New restores shell state from the preference store. A nil store
// yields in-memory state with defaults.
func New(prefs *store.Store) *State {
	s := &State{
		prefs:         prefs,
		view:          ViewDashboard,
		selector:      branch.Global,
		theme:         ThemeLight,
		sync:          SyncUnknown,
		notifications: seedNotifications(),
	}
	if prefs == nil {
		return s
	}

	if v := prefs.GetDefault(store.KeyTheme, string(ThemeLight)); v == string(ThemeDark) {
		s.theme = ThemeDark
	}
	if v := prefs.GetDefault(store.KeyBranch, string(branch.Global)); v != "" {
		sel := branch.Selector(v)
		if _, ok := sel.Concrete(); ok || sel == branch.Global {
			s.selector = sel
		}
	}
	logging.Shell("restored theme=%s selector=%s", s.theme, s.selector)
	return s
}

// ActiveView returns the current page.
func (s *State) ActiveView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView switches the active page.
func (s *State) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
	logging.Shell("view -> %s", v)
}

// Selector returns the current branch selection, by value.
func (s *State) Selector() branch.Selector {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector
}

// SetSelector records a branch selection and persists it.
func (s *State) SetSelector(sel branch.Selector) {
	s.mu.Lock()
	s.selector = sel
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(store.KeyBranch, string(sel)); err != nil {
			logging.Shell("persist selector: %v", err)
		}
	}
	logging.Shell("selector -> %s", sel)
}

// CycleSelector advances Global -> France -> Cameroun -> Global and
// returns the new selection.
func (s *State) CycleSelector() branch.Selector {
	order := branch.Selectors()
	cur := s.Selector()
	next := order[0]
	for i, sel := range order {
		if sel == cur {
			next = order[(i+1)%len(order)]
			break
		}
	}
	s.SetSelector(next)
	return next
}

// Theme returns the current theme.
func (s *State) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// ToggleTheme flips light/dark, persists, and returns the new theme.
func (s *State) ToggleTheme() Theme {
	s.mu.Lock()
	if s.theme == ThemeLight {
		s.theme = ThemeDark
	} else {
		s.theme = ThemeLight
	}
	next := s.theme
	s.mu.Unlock()

	if s.prefs != nil {
		if err := s.prefs.Set(store.KeyTheme, string(next)); err != nil {
			logging.Shell("persist theme: %v", err)
		}
	}
	return next
}

// SyncStatus returns the last observed connectivity.
func (s *State) SyncStatus() SyncStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sync
}

// SetSyncStatus records the outcome of the latest remote fetch.
func (s *State) SetSyncStatus(status SyncStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sync = status
}

// Notifications returns a copy of the notification list, newest
// first as seeded.
func (s *State) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount returns the number of unread notifications.
func (s *State) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, notif := range s.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}

// MarkAllRead clears the unread flags.
func (s *State) MarkAllRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Notify prepends a new unread notification and returns its id.
func (s *State) Notify(title, message string, typ NotificationType, timestamp string) string {
	n := Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Timestamp: timestamp,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append([]Notification{n}, s.notifications...)
	return n.ID
}

// Settings loads the settings blob, falling back to defaults when
// unset or unreadable.
func (s *State) Settings() Settings {
	def := Settings{StudioName: "La Maison Marvelous", DefaultBranch: string(branch.Global)}
	if s.prefs == nil {
		return def
	}
	raw, err := s.prefs.Get(store.KeySettings)
	if err != nil {
		return def
	}
	var out Settings
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logging.Shell("settings blob unreadable: %v", err)
		return def
	}
	return out
}

// SaveSettings persists the settings blob.
func (s *State) SaveSettings(settings Settings) error {
	if s.prefs == nil {
		return nil
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	return s.prefs.Set(store.KeySettings, string(raw))
}
