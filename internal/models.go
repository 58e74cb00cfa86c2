package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Command types recorded on legacy prompts.
const (
	CommandTypeTerminal = 1
	CommandTypeChat     = 2
	CommandTypeAgent    = 4
)

// Bubble author types.
const (
	BubbleTypeUser      = 1
	BubbleTypeAssistant = 2
)

// Workspace is a snapshot of one workspaceStorage entry. It is rebuilt from
// disk on every enumeration and never written back.
type Workspace struct {
	ID          string     `json:"id"`
	Folder      string     `json:"folder,omitempty"`
	Modified    time.Time  `json:"modified"`
	PromptCount int        `json:"promptCount"`
	Prompts     []Prompt   `json:"prompts,omitempty"`
	Composers   []Composer `json:"composers,omitempty"`
}

// Prompt is a legacy single-input record from aiService.prompts.
type Prompt struct {
	Text        string   `json:"text"`
	CommandType int      `json:"commandType"`
	CreatedAt   FlexTime `json:"createdAt,omitempty"`
}

// Composer is one conversation thread from composer.composerData.
type Composer struct {
	ComposerID    string `json:"composerId"`
	Name          string `json:"name"`
	CreatedAt     int64  `json:"createdAt"`
	LastUpdatedAt int64  `json:"lastUpdatedAt"`
	Mode          string `json:"mode"`
}

// Bubble is one message within a conversation, keyed in the global store as
// bubbleId:<composerId>:<bubbleId>.
type Bubble struct {
	BubbleID  string `json:"bubbleId"`
	Type      int    `json:"type"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt,omitempty"`
}

// DateGroup is a derived per-calendar-date tally. Prompt counts attach to the
// owning workspace's modification date while composer counts attach to each
// composer's own last-updated date; the two axes share one map entry.
type DateGroup struct {
	Date          string   `json:"date"`
	PromptCount   int      `json:"promptCount"`
	ComposerCount int      `json:"composerCount"`
	WorkspaceIDs  []string `json:"workspaceIds"`
}

// FlexTime decodes the loosely-typed createdAt field found on prompts and
// bubbles: either an ISO-8601 string or epoch milliseconds. A missing or
// unparseable value decodes to the zero time rather than failing the record.
type FlexTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *FlexTime) UnmarshalJSON(data []byte) error {
	t.Time = time.Time{}
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		if parsed, err := time.Parse(time.RFC3339Nano, s); err == nil {
			t.Time = parsed
		}
		return nil
	}
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return nil
	}
	if ms > 0 {
		t.Time = time.UnixMilli(int64(ms))
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}

// rawComposer mirrors the stored composer shape before validation.
type rawComposer struct {
	ComposerID    string `json:"composerId"`
	Name          string `json:"name"`
	CreatedAt     int64  `json:"createdAt"`
	LastUpdatedAt int64  `json:"lastUpdatedAt"`
	UnifiedMode   string `json:"unifiedMode"`
}

// ParseComposer validates one raw composer record. Records without an
// identifier or without a positive lastUpdatedAt are dropped.
func ParseComposer(data json.RawMessage) (Composer, bool) {
	var raw rawComposer
	if err := json.Unmarshal(data, &raw); err != nil {
		return Composer{}, false
	}
	if raw.ComposerID == "" || raw.LastUpdatedAt <= 0 {
		return Composer{}, false
	}

	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = fallbackComposerName(raw.CreatedAt)
	}
	mode := raw.UnifiedMode
	if mode == "" {
		mode = "chat"
	}

	return Composer{
		ComposerID:    raw.ComposerID,
		Name:          name,
		CreatedAt:     raw.CreatedAt,
		LastUpdatedAt: raw.LastUpdatedAt,
		Mode:          mode,
	}, true
}

func fallbackComposerName(createdAt int64) string {
	if createdAt <= 0 {
		return "Chat"
	}
	return "Chat " + time.UnixMilli(createdAt).Format("2006-01-02 15:04")
}

// rawBubble mirrors the stored bubble shape before validation.
type rawBubble struct {
	Type      int      `json:"type"`
	Text      string   `json:"text"`
	CreatedAt FlexTime `json:"createdAt"`
}

// ParseBubble validates one bubble row. The bubble identifier is the final
// segment of the storage key; bubbles with empty text are dropped.
func ParseBubble(key string, value []byte) (Bubble, error) {
	rest, ok := strings.CutPrefix(key, "bubbleId:")
	if !ok {
		return Bubble{}, fmt.Errorf("unexpected bubble key format: %s", key)
	}
	parts := strings.SplitN(rest, ":", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Bubble{}, fmt.Errorf("unexpected bubble key format: %s", key)
	}

	var raw rawBubble
	if err := json.Unmarshal(value, &raw); err != nil {
		return Bubble{}, fmt.Errorf("parse bubble %s: %w", key, err)
	}
	if raw.Text == "" {
		return Bubble{}, fmt.Errorf("bubble %s has no text", key)
	}

	var createdAt int64
	if !raw.CreatedAt.IsZero() {
		createdAt = raw.CreatedAt.UnixMilli()
	}
	return Bubble{
		BubbleID:  parts[1],
		Type:      raw.Type,
		Text:      raw.Text,
		CreatedAt: createdAt,
	}, nil
}

// ActorLabel maps a bubble type to a display label.
func (b Bubble) ActorLabel() string {
	switch b.Type {
	case BubbleTypeUser:
		return "User"
	case BubbleTypeAssistant:
		return "Assistant"
	default:
		return "Other"
	}
}

// CommandTypeLabel maps a prompt command type to a display label.
func (p Prompt) CommandTypeLabel() string {
	switch p.CommandType {
	case CommandTypeTerminal:
		return "Terminal"
	case CommandTypeChat:
		return "Chat"
	case CommandTypeAgent:
		return "Agent"
	default:
		return "Other"
	}
}

// LastUpdated returns the composer's last-updated timestamp as a time.Time.
func (c Composer) LastUpdated() time.Time {
	return time.UnixMilli(c.LastUpdatedAt)
}

// LocalDate returns the composer's last-updated calendar date (local time).
func (c Composer) LocalDate() string {
	return c.LastUpdated().Format("2006-01-02")
}
