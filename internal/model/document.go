package model

import "time"

// Document represents an ingested file and the text extracted from it.
// This is a pure domain model with no database-specific dependencies or tags.
// It can be used across layers (HTTP, service, storage) without coupling to persistence.
type Document struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	Encoding    string    `json:"encoding"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Content     string    `json:"content"`
	StoragePath string    `json:"storage_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DocumentMeta is the upload metadata supplied alongside the raw bytes.
type DocumentMeta struct {
	Filename    string
	Encoding    string
	ContentType string
}
