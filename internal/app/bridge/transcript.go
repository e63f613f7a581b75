/*
Package bridge delivers chat messages to the remote AI endpoint and returns
exactly one reply per message, bounded in time.

This file defines the chat transcript: an append-only ordered sequence of
messages held in memory for the lifetime of the chat screen. Entries are never
mutated or removed.
*/
package bridge

import (
	"sync"
	"time"

	"mindcampus/internal/pkg/randx"
)

// Sender identifies the author of a transcript entry.
type Sender string

const (
	// SenderUser marks a visitor-authored message.
	SenderUser Sender = "user"

	// SenderAI marks an assistant reply.
	SenderAI Sender = "ai"
)

// Message is a single transcript entry.
type Message struct {
	// ID is a unique identifier assigned at append time.
	ID string `json:"id"`

	// Content is the text body.
	Content string `json:"content"`

	// Sender is "user" or "ai".
	Sender Sender `json:"sender"`

	// Timestamp records when the entry was appended.
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is an append-only ordered message sequence, safe for concurrent use.
type Transcript struct {
	// mu protects entries.
	mu sync.RWMutex

	// entries holds the messages in append order.
	entries []Message
}

// NewTranscript constructs a Transcript seeded with an assistant greeting when
// one is supplied.
func NewTranscript(greeting string) *Transcript {
	t := &Transcript{}
	if greeting != "" {
		t.Append(greeting, SenderAI)
	}
	return t
}

// Append adds a new entry and returns it. Entries are never mutated afterwards.
func (t *Transcript) Append(content string, sender Sender) Message {
	msg := Message{
		ID:        randx.MessageID(),
		Content:   content,
		Sender:    sender,
		Timestamp: time.Now(),
	}

	t.mu.Lock()
	t.entries = append(t.entries, msg)
	t.mu.Unlock()

	return msg
}

// Entries returns a copy of the transcript in append order.
func (t *Transcript) Entries() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	copied := make([]Message, len(t.entries))
	copy(copied, t.entries)
	return copied
}

// Len reports the number of entries.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.entries)
}
