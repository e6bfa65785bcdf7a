package core

// HighScoreStore is the single-integer persistence capability a program
// depends on for its best score.
type HighScoreStore interface {
	Read() int
	Write(score int)
}

// MemoryHighScore keeps a best score in memory. It is used when no database
// is available and in tests.
type MemoryHighScore struct {
	Value  int
	Writes int // Number of Write calls, for assertions
}

// Read returns the stored value.
func (m *MemoryHighScore) Read() int {
	return m.Value
}

// Write stores score.
func (m *MemoryHighScore) Write(score int) {
	m.Value = score
	m.Writes++
}

// RecordHighScore writes final to store if it beats the stored value and
// returns the resulting best score, max(previous, final).
func RecordHighScore(store HighScoreStore, previous, final int) int {
	if final <= previous {
		return previous
	}
	if store != nil {
		store.Write(final)
	}
	return final
}
