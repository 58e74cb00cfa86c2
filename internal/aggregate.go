package internal

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Lookback windows for the listing endpoints.
const (
	DefaultListDays    = 30
	DetailLookbackDays = 365
)

// SearchLimit caps the number of prompt search matches returned.
const SearchLimit = 100

// WorkspaceSummary is a workspace with its payloads stripped to counts.
type WorkspaceSummary struct {
	ID            string    `json:"id"`
	Folder        string    `json:"folder,omitempty"`
	Modified      time.Time `json:"modified"`
	PromptCount   int       `json:"promptCount"`
	ComposerCount int       `json:"composerCount"`
}

// WorkspaceDetail is a full workspace plus its composers grouped by the
// local calendar date of their last update.
type WorkspaceDetail struct {
	WorkspaceSummary
	Prompts         []Prompt              `json:"prompts"`
	Composers       []Composer            `json:"composers"`
	ComposersByDate map[string][]Composer `json:"composersByDate"`
}

// ComposerWithWorkspace is a composer annotated with its origin for the
// flattened cross-workspace listing.
type ComposerWithWorkspace struct {
	Composer
	WorkspaceID     string `json:"workspaceId"`
	WorkspaceFolder string `json:"workspaceFolder,omitempty"`
}

// SearchResult is one prompt matched by a text search.
type SearchResult struct {
	Workspace string `json:"workspace"`
	Folder    string `json:"folder,omitempty"`
	Prompt    Prompt `json:"prompt"`
}

// Summarize strips workspace payloads down to identifying metadata.
func Summarize(workspaces []*Workspace) []WorkspaceSummary {
	summaries := make([]WorkspaceSummary, 0, len(workspaces))
	for _, ws := range workspaces {
		summaries = append(summaries, WorkspaceSummary{
			ID:            ws.ID,
			Folder:        ws.Folder,
			Modified:      ws.Modified,
			PromptCount:   ws.PromptCount,
			ComposerCount: len(ws.Composers),
		})
	}
	return summaries
}

// BuildDetail assembles the detail view for one workspace, optionally
// restricting composers to a single local calendar day.
func BuildDetail(ws *Workspace, date string) (*WorkspaceDetail, error) {
	composers := ws.Composers
	if date != "" {
		filtered, err := FilterComposersByDay(composers, date)
		if err != nil {
			return nil, err
		}
		composers = filtered
	}

	return &WorkspaceDetail{
		WorkspaceSummary: WorkspaceSummary{
			ID:            ws.ID,
			Folder:        ws.Folder,
			Modified:      ws.Modified,
			PromptCount:   ws.PromptCount,
			ComposerCount: len(composers),
		},
		Prompts:         ws.Prompts,
		Composers:       composers,
		ComposersByDate: GroupComposersByDate(composers),
	}, nil
}

// GroupComposersByDate partitions composers by the local calendar date of
// their last update. Grouping an already-grouped partition again yields the
// same partition.
func GroupComposersByDate(composers []Composer) map[string][]Composer {
	groups := make(map[string][]Composer)
	for _, c := range composers {
		date := c.LocalDate()
		groups[date] = append(groups[date], c)
	}
	return groups
}

// DayRange resolves a YYYY-MM-DD date string to its local midnight-to-
// midnight window.
func DayRange(date string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return start, start.AddDate(0, 0, 1), nil
}

// FilterComposersByDay keeps composers whose last update falls within the
// given local calendar day, inclusive of the whole day.
func FilterComposersByDay(composers []Composer, date string) ([]Composer, error) {
	start, end, err := DayRange(date)
	if err != nil {
		return nil, err
	}

	filtered := make([]Composer, 0, len(composers))
	for _, c := range composers {
		updated := c.LastUpdated()
		if !updated.Before(start) && updated.Before(end) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// BuildDateGroups tallies activity per local calendar date. Prompt counts
// attach to the workspace's own modification date while composer counts
// attach to each composer's last-updated date; both axes feed the same map
// entry, matching the source system's behavior. Dates without any composer
// are dropped even when they carry prompts. The result is sorted descending
// by date string.
func BuildDateGroups(workspaces []*Workspace) []DateGroup {
	groups := make(map[string]*DateGroup)
	members := make(map[string]map[string]struct{})

	touch := func(date, workspaceID string) *DateGroup {
		group, ok := groups[date]
		if !ok {
			group = &DateGroup{Date: date}
			groups[date] = group
			members[date] = make(map[string]struct{})
		}
		members[date][workspaceID] = struct{}{}
		return group
	}

	for _, ws := range workspaces {
		modDate := ws.Modified.Format("2006-01-02")
		touch(modDate, ws.ID).PromptCount += ws.PromptCount

		for _, c := range ws.Composers {
			touch(c.LocalDate(), ws.ID).ComposerCount++
		}
	}

	result := make([]DateGroup, 0, len(groups))
	for date, group := range groups {
		if group.ComposerCount == 0 {
			continue
		}
		ids := make([]string, 0, len(members[date]))
		for id := range members[date] {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		group.WorkspaceIDs = ids
		result = append(result, *group)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result
}

// FlattenComposers lists every composer across all workspaces with its
// origin attached, optionally filtered to one local calendar day, sorted
// descending by last update.
func FlattenComposers(workspaces []*Workspace, date string) ([]ComposerWithWorkspace, error) {
	flat := make([]ComposerWithWorkspace, 0)
	for _, ws := range workspaces {
		composers := ws.Composers
		if date != "" {
			filtered, err := FilterComposersByDay(composers, date)
			if err != nil {
				return nil, err
			}
			composers = filtered
		}
		for _, c := range composers {
			flat = append(flat, ComposerWithWorkspace{
				Composer:        c,
				WorkspaceID:     ws.ID,
				WorkspaceFolder: ws.Folder,
			})
		}
	}

	sort.Slice(flat, func(i, j int) bool {
		return flat[i].LastUpdatedAt > flat[j].LastUpdatedAt
	})
	return flat, nil
}

// SearchPrompts matches a query against every prompt's text, case
// insensitively. A blank query matches nothing, and results are capped at
// SearchLimit.
func SearchPrompts(workspaces []*Workspace, query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []SearchResult{}
	}

	results := make([]SearchResult, 0)
	for _, ws := range workspaces {
		for _, prompt := range ws.Prompts {
			if !strings.Contains(strings.ToLower(prompt.Text), query) {
				continue
			}
			results = append(results, SearchResult{
				Workspace: ws.ID,
				Folder:    ws.Folder,
				Prompt:    prompt,
			})
			if len(results) >= SearchLimit {
				return results
			}
		}
	}
	return results
}
