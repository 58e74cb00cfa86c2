package internal

import (
	"time"
)

// CreateTestComposer creates a valid Composer for tests.
func CreateTestComposer(id, name string) Composer {
	now := time.Now().UnixMilli()
	return Composer{
		ComposerID:    id,
		Name:          name,
		CreatedAt:     now,
		LastUpdatedAt: now,
		Mode:          "chat",
	}
}

// CreateTestComposerAt creates a Composer last updated at the given time.
func CreateTestComposerAt(id, name string, updated time.Time) Composer {
	return Composer{
		ComposerID:    id,
		Name:          name,
		CreatedAt:     updated.UnixMilli(),
		LastUpdatedAt: updated.UnixMilli(),
		Mode:          "chat",
	}
}

// CreateTestPrompt creates a Prompt for tests.
func CreateTestPrompt(text string, commandType int) Prompt {
	return Prompt{
		Text:        text,
		CommandType: commandType,
		CreatedAt:   FlexTime{Time: time.Now()},
	}
}

// CreateTestBubble creates a Bubble for tests.
func CreateTestBubble(id, text string, bubbleType int, createdAt int64) Bubble {
	return Bubble{
		BubbleID:  id,
		Type:      bubbleType,
		Text:      text,
		CreatedAt: createdAt,
	}
}

// CreateTestWorkspace creates a workspace snapshot for tests.
func CreateTestWorkspace(id, folder string, modified time.Time, prompts []Prompt, composers []Composer) *Workspace {
	return &Workspace{
		ID:          id,
		Folder:      folder,
		Modified:    modified,
		PromptCount: len(prompts),
		Prompts:     prompts,
		Composers:   composers,
	}
}
