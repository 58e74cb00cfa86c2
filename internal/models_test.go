package internal

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexTime_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantZero bool
		wantUnix int64
	}{
		{
			name:     "ISO string",
			input:    `"2024-01-01T10:00:00Z"`,
			wantUnix: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name:     "ISO string with millis",
			input:    `"2024-01-01T10:00:00.500Z"`,
			wantUnix: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).Unix(),
		},
		{
			name:     "epoch milliseconds",
			input:    `1704103200000`,
			wantUnix: 1704103200,
		},
		{
			name:     "null",
			input:    `null`,
			wantZero: true,
		},
		{
			name:     "unparseable string",
			input:    `"yesterday"`,
			wantZero: true,
		},
		{
			name:     "wrong type",
			input:    `{"nested": true}`,
			wantZero: true,
		},
		{
			name:     "zero",
			input:    `0`,
			wantZero: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ft FlexTime
			if err := json.Unmarshal([]byte(tt.input), &ft); err != nil {
				t.Fatalf("Unmarshal(%s) error = %v", tt.input, err)
			}
			if ft.IsZero() != tt.wantZero {
				t.Errorf("IsZero() = %v, want %v", ft.IsZero(), tt.wantZero)
			}
			if !tt.wantZero && ft.Unix() != tt.wantUnix {
				t.Errorf("Unix() = %d, want %d", ft.Unix(), tt.wantUnix)
			}
		})
	}
}

func TestFlexTime_MarshalJSON(t *testing.T) {
	var zero FlexTime
	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != "null" {
		t.Errorf("Marshal(zero) = %s, want null", data)
	}

	ft := FlexTime{Time: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)}
	data, err = json.Marshal(ft)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-01-01T10:00:00Z"` {
		t.Errorf("Marshal() = %s", data)
	}
}

func TestParseComposer(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantName string
		wantMode string
	}{
		{
			name:     "valid record",
			input:    `{"composerId":"c1","name":"Fix the tests","createdAt":1000,"lastUpdatedAt":2000,"unifiedMode":"agent"}`,
			wantOK:   true,
			wantName: "Fix the tests",
			wantMode: "agent",
		},
		{
			name:   "missing composerId",
			input:  `{"name":"x","lastUpdatedAt":2000}`,
			wantOK: false,
		},
		{
			name:   "zero lastUpdatedAt",
			input:  `{"composerId":"c1","name":"x","lastUpdatedAt":0}`,
			wantOK: false,
		},
		{
			name:   "negative lastUpdatedAt",
			input:  `{"composerId":"c1","name":"x","lastUpdatedAt":-5}`,
			wantOK: false,
		},
		{
			name:   "malformed json",
			input:  `{"composerId":`,
			wantOK: false,
		},
		{
			name:     "mode defaults to chat",
			input:    `{"composerId":"c1","name":"x","lastUpdatedAt":2000}`,
			wantOK:   true,
			wantName: "x",
			wantMode: "chat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			composer, ok := ParseComposer(json.RawMessage(tt.input))
			if ok != tt.wantOK {
				t.Fatalf("ParseComposer() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if composer.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", composer.Name, tt.wantName)
			}
			if composer.Mode != tt.wantMode {
				t.Errorf("Mode = %q, want %q", composer.Mode, tt.wantMode)
			}
		})
	}
}

func TestParseComposer_NameFallback(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 9, 30, 0, 0, time.Local).UnixMilli()
	input := []byte(`{"composerId":"c1","createdAt":` + jsonInt(createdAt) + `,"lastUpdatedAt":2000}`)

	composer, ok := ParseComposer(input)
	if !ok {
		t.Fatal("ParseComposer() dropped a valid record")
	}
	want := "Chat 2024-03-15 09:30"
	if composer.Name != want {
		t.Errorf("Name = %q, want %q", composer.Name, want)
	}

	// Without createdAt there is nothing to derive a timestamp from.
	composer, ok = ParseComposer(json.RawMessage(`{"composerId":"c1","lastUpdatedAt":2000}`))
	if !ok {
		t.Fatal("ParseComposer() dropped a valid record")
	}
	if composer.Name != "Chat" {
		t.Errorf("Name = %q, want %q", composer.Name, "Chat")
	}
}

func jsonInt(v int64) string {
	data, _ := json.Marshal(v)
	return string(data)
}

func TestParseBubble(t *testing.T) {
	bubble, err := ParseBubble("bubbleId:conv1:b42", []byte(`{"type":1,"text":"hello","createdAt":1704103200000}`))
	if err != nil {
		t.Fatalf("ParseBubble() error = %v", err)
	}
	if bubble.BubbleID != "b42" {
		t.Errorf("BubbleID = %q, want %q", bubble.BubbleID, "b42")
	}
	if bubble.Type != BubbleTypeUser {
		t.Errorf("Type = %d, want %d", bubble.Type, BubbleTypeUser)
	}
	if bubble.CreatedAt != 1704103200000 {
		t.Errorf("CreatedAt = %d, want 1704103200000", bubble.CreatedAt)
	}
}

func TestParseBubble_ISOTimestamp(t *testing.T) {
	bubble, err := ParseBubble("bubbleId:conv1:b1", []byte(`{"type":2,"text":"hi","createdAt":"2024-01-01T10:00:00Z"}`))
	if err != nil {
		t.Fatalf("ParseBubble() error = %v", err)
	}
	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC).UnixMilli()
	if bubble.CreatedAt != want {
		t.Errorf("CreatedAt = %d, want %d", bubble.CreatedAt, want)
	}
}

func TestParseBubble_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"empty text", "bubbleId:conv1:b1", `{"type":1,"text":""}`},
		{"missing text", "bubbleId:conv1:b1", `{"type":1}`},
		{"malformed json", "bubbleId:conv1:b1", `{{{`},
		{"wrong key prefix", "composerData:conv1", `{"type":1,"text":"x"}`},
		{"missing bubble segment", "bubbleId:conv1", `{"type":1,"text":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBubble(tt.key, []byte(tt.value)); err == nil {
				t.Error("ParseBubble() expected an error")
			}
		})
	}
}

func TestBubble_ActorLabel(t *testing.T) {
	if got := (Bubble{Type: 1}).ActorLabel(); got != "User" {
		t.Errorf("ActorLabel(1) = %q", got)
	}
	if got := (Bubble{Type: 2}).ActorLabel(); got != "Assistant" {
		t.Errorf("ActorLabel(2) = %q", got)
	}
	if got := (Bubble{Type: 9}).ActorLabel(); got != "Other" {
		t.Errorf("ActorLabel(9) = %q", got)
	}
}

func TestPrompt_CommandTypeLabel(t *testing.T) {
	tests := []struct {
		commandType int
		want        string
	}{
		{CommandTypeTerminal, "Terminal"},
		{CommandTypeChat, "Chat"},
		{CommandTypeAgent, "Agent"},
		{0, "Other"},
		{99, "Other"},
	}
	for _, tt := range tests {
		if got := (Prompt{CommandType: tt.commandType}).CommandTypeLabel(); got != tt.want {
			t.Errorf("CommandTypeLabel(%d) = %q, want %q", tt.commandType, got, tt.want)
		}
	}
}

func TestComposer_LocalDate(t *testing.T) {
	updated := time.Date(2024, 6, 10, 23, 30, 0, 0, time.Local)
	composer := CreateTestComposerAt("c1", "x", updated)
	if got := composer.LocalDate(); got != "2024-06-10" {
		t.Errorf("LocalDate() = %q, want %q", got, "2024-06-10")
	}
}
