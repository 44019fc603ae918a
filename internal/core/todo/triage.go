package todo

import (
	"sort"
	"strings"
	"time"

	"github.com/careops/dispatch/internal/core/casefile"
)

// Filter holds the user-adjustable filters for the global to-do view.
// A zero Filter matches everything.
type Filter struct {
	Categories []Category // empty set means unfiltered
	Search     string     // case-insensitive substring; empty means unfiltered
	LogDate    string     // DateLayout; selects which day the Logs bucket shows
}

// matchesCategory reports whether the item passes the category multi-select.
// An empty selection means "show all", never "show none".
func (f Filter) matchesCategory(item Item) bool {
	if len(f.Categories) == 0 {
		return true
	}
	for _, c := range f.Categories {
		if item.Category == c {
			return true
		}
	}
	return false
}

// matchesSearch reports whether the item passes the free-text search. The
// haystack is content + case ID + the linked patient name, so a dangling
// case reference simply contributes nothing.
func (f Filter) matchesSearch(item Item, patientName string) bool {
	if f.Search == "" {
		return true
	}
	haystack := strings.ToLower(item.Content + item.CaseID + patientName)
	return strings.Contains(haystack, strings.ToLower(f.Search))
}

// Buckets is the triaged output of the global to-do view. The three buckets
// are disjoint by construction and each sorted by CreatedAt descending.
type Buckets struct {
	// Due holds not-completed items that are due today or carry the cancel
	// category. Computed from the unfiltered collection: urgent items must
	// never be filterable away.
	Due []Item

	// Logs holds items created on the selected log date, after filters.
	// Includes completed items; a log records what happened that day.
	Logs []Item

	// Backlog holds pending items passing the filters that are not already
	// in Due. Bucket membership, not filter state, decides the exclusion.
	Backlog []Item
}

// Triage classifies items into the three global-view buckets. The caller
// supplies today per render so the Due bucket tracks the real clock rather
// than a cached snapshot.
func Triage(items []Item, cases []casefile.Case, f Filter, today time.Time) Buckets {
	todayStr := today.Format(DateLayout)

	patients := make(map[string]string, len(cases))
	for _, c := range cases {
		patients[c.ID] = c.PatientName
	}

	var b Buckets
	dueIDs := make(map[string]bool)

	// First pass: due and urgent, from the unfiltered collection.
	for _, item := range items {
		if item.Completed() {
			continue
		}
		if item.DueDate == todayStr || item.Category == CategoryCancel {
			b.Due = append(b.Due, item)
			dueIDs[item.ID] = true
		}
	}

	// Second pass: logs and backlog, subject to category and search filters.
	for _, item := range items {
		if !f.matchesCategory(item) {
			continue
		}
		if !f.matchesSearch(item, patients[item.CaseID]) {
			continue
		}

		if item.CreatedDate() == f.LogDate {
			b.Logs = append(b.Logs, item)
		}

		if item.Status == StatusPending && !dueIDs[item.ID] {
			b.Backlog = append(b.Backlog, item)
		}
	}

	SortNewestFirst(b.Due)
	SortNewestFirst(b.Logs)
	SortNewestFirst(b.Backlog)

	return b
}

// SortNewestFirst orders items by CreatedAt descending, parsing the
// timestamp rather than comparing strings. Equal timestamps keep their
// existing relative order.
func SortNewestFirst(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedTime().After(items[j].CreatedTime())
	})
}

// Stats summarizes the whole collection for the view's header cards.
type Stats struct {
	Pending   int
	Completed int
	Urgent    int // pending items in the cancel category
}

// Summarize computes collection-level counts, ignoring filters.
func Summarize(items []Item) Stats {
	var s Stats
	for _, item := range items {
		switch item.Status {
		case StatusPending:
			s.Pending++
			if item.Category == CategoryCancel {
				s.Urgent++
			}
		case StatusCompleted:
			s.Completed++
		}
	}
	return s
}
