/*
Package content holds the platform's read-only catalog and the small amount of
visitor-generated community state.

This file defines the in-memory community state: the forum board, seeded from
fixtures and accepting new posts, and the mood check-in log. Neither survives a
process restart.
*/
package content

import (
	"sync"
	"time"
)

// AnonymousAuthor is the display name used on forum posts when the author
// prefers full anonymity.
const AnonymousAuthor = "Anonymous Student"

// Board is the peer-support forum board. New posts are prepended so the most
// recent entry lists first, matching the seeded ordering.
type Board struct {
	// mu protects posts and nextID.
	mu sync.RWMutex

	// posts holds the board entries, newest first.
	posts []ForumPost

	// nextID is the ID assigned to the next created post.
	nextID int
}

// NewBoard constructs a Board seeded with the given posts.
func NewBoard(seed []ForumPost) *Board {
	posts := make([]ForumPost, len(seed))
	copy(posts, seed)

	nextID := 1
	for _, post := range posts {
		if post.ID >= nextID {
			nextID = post.ID + 1
		}
	}

	return &Board{
		posts:  posts,
		nextID: nextID,
	}
}

// Add creates a new post authored by the given display name and returns it.
func (b *Board) Add(title, body, author, category string, tags []string) ForumPost {
	if author == "" {
		author = AnonymousAuthor
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	post := ForumPost{
		ID:       b.nextID,
		Title:    title,
		Content:  body,
		Author:   author,
		Posted:   time.Now().Format("Jan 2, 15:04"),
		Tags:     tags,
		Category: category,
	}
	b.nextID++

	b.posts = append([]ForumPost{post}, b.posts...)

	return post
}

// Posts returns a copy of the board, newest first.
func (b *Board) Posts() []ForumPost {
	b.mu.RLock()
	defer b.mu.RUnlock()

	copied := make([]ForumPost, len(b.posts))
	copy(copied, b.posts)
	return copied
}

// MoodEntry is one recorded mood check-in.
type MoodEntry struct {
	// Value is the selected point on the mood scale.
	Value int `json:"value"`

	// Note is an optional free-text comment.
	Note string `json:"note,omitempty"`

	// At records when the check-in happened.
	At time.Time `json:"at"`
}

// MoodLog records mood check-ins for the current visitor session, in memory only.
type MoodLog struct {
	// mu protects entries.
	mu sync.RWMutex

	// entries holds the check-ins in record order.
	entries []MoodEntry
}

// NewMoodLog constructs an empty MoodLog.
func NewMoodLog() *MoodLog {
	return &MoodLog{}
}

// Record appends a mood check-in and returns it.
func (m *MoodLog) Record(value int, note string) MoodEntry {
	entry := MoodEntry{
		Value: value,
		Note:  note,
		At:    time.Now(),
	}

	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()

	return entry
}

// Entries returns a copy of the recorded check-ins in record order.
func (m *MoodLog) Entries() []MoodEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	copied := make([]MoodEntry, len(m.entries))
	copy(copied, m.entries)
	return copied
}
