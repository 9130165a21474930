package constants

// HistoryLimit is the maximum number of mood records kept in history.
// Inserting beyond the cap evicts the oldest entry.
const HistoryLimit = 10

// DefaultDataFile is the default storage location. A .json extension
// selects the JSON store, anything else the SQLite store.
const DefaultDataFile = "~/.config/moodmirror/moodmirror.db"

// Theme preference values, persisted separately from mood history.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Display format for record timestamps.
const TimestampFormat = "Jan 2 2006 15:04"
