package tasklist

import "time"

// Slot keys used in the backing store.
const (
	SlotActiveTasks  = "active_tasks"
	SlotDeletedTasks = "deleted_tasks"
	SlotTheme        = "theme"
)

// Theme values, stored as literal strings.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Task is a single to-do item. DeletedAt is set only while the task
// sits in the history list.
type Task struct {
	ID        string     `json:"id"`
	Text      string     `json:"text"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// State is everything the page needs to render: the two task lists,
// the theme flag, and whether the history panel is open. HistoryOpen
// is never persisted.
type State struct {
	ActiveTasks  []Task `json:"activeTasks"`
	DeletedTasks []Task `json:"deletedTasks"`
	Theme        string `json:"theme"`
	HistoryOpen  bool   `json:"historyOpen"`
}

// SlotStore persists named string slots. Load reports whether the key
// existed. Implemented by database.Store and database.MemoryStore.
type SlotStore interface {
	Load(key string) (string, bool, error)
	Save(key, value string) error
}
