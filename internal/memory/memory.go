package memory

import (
	"sort"
	"strings"
	"time"
)

// SavePrefix marks history entries written by Save.
const SavePrefix = "save:"

// Note is a single stored value. A Note is never modified after creation; a
// re-save of the same key replaces it with a new Note.
type Note struct {
	Value     string
	Tags      []string
	Timestamp time.Time
}

// NewNote creates a note stamped with the current time.
func NewNote(value string, tags []string) Note {
	return Note{
		Value:     value,
		Tags:      copyTags(tags),
		Timestamp: time.Now().UTC(),
	}
}

// HasTag reports whether tag is one of the note's tags (exact match).
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n Note) matches(keyword string) bool {
	if strings.Contains(n.Value, keyword) {
		return true
	}
	for _, t := range n.Tags {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}

// Entry pairs a note with the key it is stored under.
type Entry struct {
	Key  string
	Note Note
}

// Memory maps note keys to notes and records the history used by Undo.
type Memory struct {
	Items   map[string]Note
	History []string
}

// New returns an empty memory.
func New() *Memory {
	return &Memory{Items: make(map[string]Note)}
}

// Save inserts or replaces the note stored under itemKey and records the
// operation in the history. Empty keys and values are accepted.
func (m *Memory) Save(itemKey, value string, tags []string) Note {
	if m.Items == nil {
		m.Items = make(map[string]Note)
	}
	note := NewNote(value, tags)
	m.Items[itemKey] = note
	m.History = append(m.History, SavePrefix+itemKey)
	return note
}

// Get looks up the note stored under itemKey.
func (m *Memory) Get(itemKey string) (Note, bool) {
	note, ok := m.Items[itemKey]
	return note, ok
}

// Search returns every note whose key, value or any tag contains keyword.
// Matching is case-sensitive. Results are ordered by key.
func (m *Memory) Search(keyword string) []Entry {
	var out []Entry
	for k, note := range m.Items {
		if strings.Contains(k, keyword) || note.matches(keyword) {
			out = append(out, Entry{Key: k, Note: note})
		}
	}
	sortEntries(out)
	return out
}

// FilterByTag returns every note carrying tag exactly. Results are ordered by key.
func (m *Memory) FilterByTag(tag string) []Entry {
	var out []Entry
	for k, note := range m.Items {
		if note.HasTag(tag) {
			out = append(out, Entry{Key: k, Note: note})
		}
	}
	sortEntries(out)
	return out
}

// Entries returns all notes ordered by key.
func (m *Memory) Entries() []Entry {
	out := make([]Entry, 0, len(m.Items))
	for k, note := range m.Items {
		out = append(out, Entry{Key: k, Note: note})
	}
	sortEntries(out)
	return out
}

// Undo pops the most recent history entry. A save entry removes its key from
// the items; the previous value is not restored. ok is false when the
// history is empty, in which case nothing changes.
func (m *Memory) Undo() (entry string, ok bool) {
	if len(m.History) == 0 {
		return "", false
	}
	last := len(m.History) - 1
	entry = m.History[last]
	m.History = m.History[:last]

	if itemKey, isSave := strings.CutPrefix(entry, SavePrefix); isSave {
		delete(m.Items, itemKey)
	}
	return entry, true
}

// Len returns the number of stored notes.
func (m *Memory) Len() int {
	return len(m.Items)
}

// Clone returns a deep copy of the memory.
func (m *Memory) Clone() *Memory {
	c := &Memory{Items: make(map[string]Note, len(m.Items))}
	for k, note := range m.Items {
		note.Tags = copyTags(note.Tags)
		c.Items[k] = note
	}
	if m.History != nil {
		c.History = append(make([]string, 0, len(m.History)), m.History...)
	}
	return c
}

// Equal reports whether both memories hold the same notes and history.
// Timestamps are compared as instants.
func (m *Memory) Equal(o *Memory) bool {
	if m == nil || o == nil {
		return m == o
	}
	if len(m.Items) != len(o.Items) || len(m.History) != len(o.History) {
		return false
	}
	for i := range m.History {
		if m.History[i] != o.History[i] {
			return false
		}
	}
	for k, a := range m.Items {
		b, ok := o.Items[k]
		if !ok || a.Value != b.Value || !a.Timestamp.Equal(b.Timestamp) || len(a.Tags) != len(b.Tags) {
			return false
		}
		for i := range a.Tags {
			if a.Tags[i] != b.Tags[i] {
				return false
			}
		}
	}
	return true
}

func copyTags(tags []string) []string {
	if tags == nil {
		return nil
	}
	return append(make([]string, 0, len(tags)), tags...)
}

func sortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
}
