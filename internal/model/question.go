package model

import "time"

// Question is a question bound to exactly one document.
// Creation order among questions of the same document is owned by the store.
type Question struct {
	ID         string    `json:"id"`
	DocumentID string    `json:"document_id"`
	Question   string    `json:"question"`
	CreatedAt  time.Time `json:"created_at"`
}
