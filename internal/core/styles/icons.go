package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconPending   = "○" // ○
	IconCompleted = "◉" // ◉
	IconPinned    = "" // pin
	IconDue       = "" // clock
	IconSearch    = "" // magnifier
	IconCalendar  = "" //
	IconInbox     = "" //
	IconHistory   = "" //
)

// Navigation icons, one per top-level tab.
var (
	IconHome          = ""
	IconAnnouncements = ""
	IconClients       = ""
	IconCases         = ""
	IconTodos         = ""
	IconCaregivers    = ""
	IconAccounting    = ""
	IconAnalytics     = ""
)
