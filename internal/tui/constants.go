package tui

import "github.com/careops/dispatch/internal/core/styles"

// ViewType represents which navigation tab is active.
type ViewType int

const (
	ViewHome ViewType = iota
	ViewAnnouncements
	ViewClients
	ViewCases
	ViewTodos
	ViewCaregivers
	ViewAccounting
	ViewAnalytics
)

// navTabs lists every tab in sidebar order. Only cases and to-dos are live;
// the rest are placeholders owned by upstream systems.
var navTabs = []struct {
	view  ViewType
	icon  string
	label string
	live  bool
}{
	{ViewHome, styles.IconHome, "home", false},
	{ViewAnnouncements, styles.IconAnnouncements, "announcements", false},
	{ViewClients, styles.IconClients, "clients", false},
	{ViewCases, styles.IconCases, "cases", true},
	{ViewTodos, styles.IconTodos, "to-dos", true},
	{ViewCaregivers, styles.IconCaregivers, "caregivers", false},
	{ViewAccounting, styles.IconAccounting, "accounting", false},
	{ViewAnalytics, styles.IconAnalytics, "analytics", false},
}

// String returns the lowercase tab name.
func (v ViewType) String() string {
	for _, tab := range navTabs {
		if tab.view == v {
			return tab.label
		}
	}
	return "unknown"
}

// Live reports whether the tab has a working view behind it.
func (v ViewType) Live() bool {
	for _, tab := range navTabs {
		if tab.view == v {
			return tab.live
		}
	}
	return false
}
