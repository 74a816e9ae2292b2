package models

import "time"

// Document defines the struct for the 'documents' table. The zero ID and
// timestamp are omitted on marshal so inserts leave both to the database.
type Document struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Filename  string    `json:"filename" db:"filename"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
}

// DocumentChunk defines the struct for the 'document_chunks' table.
// Embedding is a pgvector column on the Supabase side.
type DocumentChunk struct {
	ID         int64     `json:"id,omitempty" db:"id"`
	DocumentID int64     `json:"document_id" db:"document_id"`
	Content    string    `json:"content" db:"content"`
	Embedding  []float32 `json:"embedding" db:"embedding"`
}
