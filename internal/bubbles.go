package internal

import (
	"os"
	"sort"
)

// ReadBubbles loads every message stored for one conversation from the
// global database, ordered ascending by creation time. The sort is stable:
// bubbles without a timestamp keep their storage order instead of moving
// relative to their neighbors. A missing global database or an unreadable
// row yields an empty or shortened result, never an error.
func ReadBubbles(globalDBPath, composerID string) []Bubble {
	if _, err := os.Stat(globalDBPath); err != nil {
		return nil
	}

	db, err := OpenDatabase(globalDBPath)
	if err != nil {
		LogDebug("read bubbles: %v", err)
		return nil
	}
	defer db.Close()

	pairs, err := QueryCursorDiskKV(db, "bubbleId:"+composerID+":%")
	if err != nil {
		LogDebug("read bubbles: %v", err)
		return nil
	}

	bubbles := make([]Bubble, 0, len(pairs))
	for _, pair := range pairs {
		bubble, err := ParseBubble(pair.Key, []byte(pair.Value))
		if err != nil {
			LogDebug("skipping bubble: %v", err)
			continue
		}
		bubbles = append(bubbles, bubble)
	}

	sort.SliceStable(bubbles, func(i, j int) bool {
		if bubbles[i].CreatedAt == 0 || bubbles[j].CreatedAt == 0 {
			return false
		}
		return bubbles[i].CreatedAt < bubbles[j].CreatedAt
	})
	return bubbles
}
