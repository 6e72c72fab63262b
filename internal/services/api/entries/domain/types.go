// Package domain holds types and DTOs for the entries http and service contracts
package domain

import "time"

// Entry is one journal record owned by a user
type Entry struct {
	UserID        string    `json:"user_id"`
	EntryID       string    `json:"entry_id"`
	Transcription string    `json:"transcription"`
	Sentiment     string    `json:"sentiment"`
	Summary       string    `json:"summary"`
	Keywords      []string  `json:"keywords"`
	Tags          []string  `json:"tags"`
	CreatedAt     time.Time `json:"created_at"`
}
