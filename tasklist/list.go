package tasklist

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// List owns the authoritative task-list state. Every mutating method
// writes the touched slots back to the store before returning, so the
// in-memory state and the persisted state never drift by more than one
// in-flight call. HTTP handlers call these methods concurrently; the
// mutex serializes them into the one-mutation-at-a-time model the data
// assumes.
type List struct {
	mu    sync.Mutex
	state State
	store SlotStore

	// overridable for tests
	now   func() time.Time
	newID func() string
}

// NewList creates an empty list backed by store. Call Hydrate before
// serving to pick up previously persisted state.
func NewList(store SlotStore) *List {
	return &List{
		state: State{
			ActiveTasks:  []Task{},
			DeletedTasks: []Task{},
			Theme:        ThemeLight,
		},
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Hydrate loads the three slots from the store. Missing slots leave
// the defaults in place (empty lists, light theme). Persisted data is
// only ever written by this program, so a decode failure is surfaced
// rather than papered over.
func (l *List) Hydrate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if raw, ok, err := l.store.Load(SlotActiveTasks); err != nil {
		return fmt.Errorf("failed to load active tasks: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &l.state.ActiveTasks); err != nil {
			return fmt.Errorf("failed to decode active tasks: %w", err)
		}
	}

	if raw, ok, err := l.store.Load(SlotDeletedTasks); err != nil {
		return fmt.Errorf("failed to load deleted tasks: %w", err)
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &l.state.DeletedTasks); err != nil {
			return fmt.Errorf("failed to decode deleted tasks: %w", err)
		}
	}

	if raw, ok, err := l.store.Load(SlotTheme); err != nil {
		return fmt.Errorf("failed to load theme: %w", err)
	} else if ok && raw == ThemeDark {
		l.state.Theme = ThemeDark
	}

	return nil
}

// Add appends a new task with the trimmed text. Blank input is
// silently rejected and the state is returned unchanged.
func (l *List) Add(text string) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	text = strings.TrimSpace(text)
	if text == "" {
		return l.snapshotLocked()
	}

	l.state.ActiveTasks = append(l.state.ActiveTasks, Task{
		ID:   l.newID(),
		Text: text,
	})
	l.persistLocked(SlotActiveTasks)
	return l.snapshotLocked()
}

// Delete moves the task to the front of the history list, stamped with
// the deletion time. Unknown ids are a no-op.
func (l *List) Delete(id string) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.ActiveTasks, id)
	if i < 0 {
		return l.snapshotLocked()
	}

	t := l.state.ActiveTasks[i]
	deletedAt := l.now()
	t.DeletedAt = &deletedAt

	l.state.ActiveTasks = append(l.state.ActiveTasks[:i], l.state.ActiveTasks[i+1:]...)
	l.state.DeletedTasks = append([]Task{t}, l.state.DeletedTasks...)
	l.persistLocked(SlotActiveTasks, SlotDeletedTasks)
	return l.snapshotLocked()
}

// Restore moves a deleted task back to the end of the active list with
// its deletion stamp cleared. The task loses its old position. Unknown
// ids are a no-op.
func (l *List) Restore(id string) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.DeletedTasks, id)
	if i < 0 {
		return l.snapshotLocked()
	}

	t := l.state.DeletedTasks[i]
	t.DeletedAt = nil

	l.state.DeletedTasks = append(l.state.DeletedTasks[:i], l.state.DeletedTasks[i+1:]...)
	l.state.ActiveTasks = append(l.state.ActiveTasks, t)
	l.persistLocked(SlotActiveTasks, SlotDeletedTasks)
	return l.snapshotLocked()
}

// Purge removes a task from the history list for good. There is no
// confirmation and no way back. Unknown ids are a no-op.
func (l *List) Purge(id string) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.DeletedTasks, id)
	if i < 0 {
		return l.snapshotLocked()
	}

	l.state.DeletedTasks = append(l.state.DeletedTasks[:i], l.state.DeletedTasks[i+1:]...)
	l.persistLocked(SlotDeletedTasks)
	return l.snapshotLocked()
}

// Reorder moves the dragged task to targetIndex within the active
// list. The page calls this once per list item the drag crosses, so
// every intermediate position is already the authoritative order and
// drag end needs no commit step. targetIndex is clamped to the list
// bounds; unknown ids are a no-op.
func (l *List) Reorder(draggedID string, targetIndex int) State {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := indexOf(l.state.ActiveTasks, draggedID)
	if i < 0 {
		return l.snapshotLocked()
	}

	t := l.state.ActiveTasks[i]
	l.state.ActiveTasks = append(l.state.ActiveTasks[:i], l.state.ActiveTasks[i+1:]...)

	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex > len(l.state.ActiveTasks) {
		targetIndex = len(l.state.ActiveTasks)
	}

	l.state.ActiveTasks = append(l.state.ActiveTasks[:targetIndex],
		append([]Task{t}, l.state.ActiveTasks[targetIndex:]...)...)
	l.persistLocked(SlotActiveTasks)
	return l.snapshotLocked()
}

// ToggleTheme flips between light and dark and persists the choice.
func (l *List) ToggleTheme() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Theme == ThemeDark {
		l.state.Theme = ThemeLight
	} else {
		l.state.Theme = ThemeDark
	}
	l.persistLocked(SlotTheme)
	return l.snapshotLocked()
}

// ToggleHistory flips the history panel. Purely presentational, never
// persisted.
func (l *List) ToggleHistory() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.HistoryOpen = !l.state.HistoryOpen
	return l.snapshotLocked()
}

// Snapshot returns a copy of the current state.
func (l *List) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *List) snapshotLocked() State {
	s := l.state
	s.ActiveTasks = append([]Task{}, l.state.ActiveTasks...)
	s.DeletedTasks = append([]Task{}, l.state.DeletedTasks...)
	return s
}

// persistLocked mirrors the named slots to the store. The storage
// contract is assumed to hold under normal operation; a failed write
// is logged and the in-memory mutation stands.
func (l *List) persistLocked(keys ...string) {
	for _, key := range keys {
		var value string
		switch key {
		case SlotActiveTasks:
			b, err := json.Marshal(l.state.ActiveTasks)
			if err != nil {
				log.Printf("Error encoding %s: %v", key, err)
				continue
			}
			value = string(b)
		case SlotDeletedTasks:
			b, err := json.Marshal(l.state.DeletedTasks)
			if err != nil {
				log.Printf("Error encoding %s: %v", key, err)
				continue
			}
			value = string(b)
		case SlotTheme:
			value = l.state.Theme
		}

		if err := l.store.Save(key, value); err != nil {
			log.Printf("Error saving %s: %v", key, err)
		}
	}
}

func indexOf(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
