package storage

import (
	"github.com/charmbracelet/log"
)

// HighScoreSlot is one named best score in the kv table. It satisfies
// core.HighScoreStore; storage failures are logged and otherwise ignored,
// so a broken database never stops a game.
type HighScoreSlot struct {
	store *Store
	key   string
}

// NewHighScoreSlot returns the slot for key.
func NewHighScoreSlot(store *Store, key string) *HighScoreSlot {
	return &HighScoreSlot{store: store, key: key}
}

// Key returns the kv key of this slot.
func (h *HighScoreSlot) Key() string {
	return h.key
}

// Read returns the stored best score, or 0 if it is missing or unreadable.
func (h *HighScoreSlot) Read() int {
	v, err := h.store.GetInt(h.key)
	if err != nil {
		log.Warn("could not read high score", "key", h.key, "error", err)
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// Write stores score as the new best score.
func (h *HighScoreSlot) Write(score int) {
	if err := h.store.SetInt(h.key, score); err != nil {
		log.Warn("could not write high score", "key", h.key, "score", score, "error", err)
		return
	}
	log.Debug("high score written", "key", h.key, "score", score)
}

// HighScoreKey returns the kv key used for a program's best score.
func HighScoreKey(gameID string) string {
	switch gameID {
	case "whack":
		return "wam-high-score"
	default:
		return gameID + "-high-score"
	}
}
