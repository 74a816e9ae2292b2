// Package documents implements the document Q&A pipeline: PDF text
// extraction, fixed-size chunking, per-chunk embeddings and vector-similarity
// retrieval. The vector search itself is delegated to a Postgres function
// (match_documents) on the Supabase side.
package documents

import (
	"context"
	"fmt"

	"github.com/adapta-ai/backend/internal/logger"
	"github.com/adapta-ai/backend/internal/models"
	"github.com/adapta-ai/backend/internal/supabase"
)

const (
	chunkSize      = 1000
	matchThreshold = 0.5
	matchCount     = 5
)

// Embedder computes retrieval embeddings for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Store wraps the documents and document_chunks tables.
type Store struct {
	db       *supabase.Client
	embedder Embedder
}

// NewStore wires the store to a Supabase client and an embedder.
func NewStore(db *supabase.Client, embedder Embedder) *Store {
	return &Store{db: db, embedder: embedder}
}

// Ingest stores a document record, splits the text into chunks, embeds each
// chunk and stores the chunk rows. Chunks whose embedding fails are skipped,
// not fatal: a partially indexed document still answers questions.
func (s *Store) Ingest(ctx context.Context, userID, filename, text string) (int64, error) {
	doc := models.Document{UserID: userID, Filename: filename}
	var inserted []models.Document
	if err := s.db.Insert(ctx, "documents", doc, &inserted); err != nil {
		return 0, fmt.Errorf("failed to insert document: %w", err)
	}
	if len(inserted) == 0 {
		return 0, fmt.Errorf("document insert returned no representation")
	}
	docID := inserted[0].ID

	var rows []models.DocumentChunk
	for _, chunk := range Chunk(text, chunkSize) {
		emb, err := s.embedder.Embed(ctx, chunk)
		if err != nil {
			logger.Log.WithError(err).Warn("skipping chunk: embedding failed")
			continue
		}
		rows = append(rows, models.DocumentChunk{
			DocumentID: docID,
			Content:    chunk,
			Embedding:  emb,
		})
	}
	if len(rows) > 0 {
		if err := s.db.Insert(ctx, "document_chunks", rows, nil); err != nil {
			return 0, fmt.Errorf("failed to insert document chunks: %w", err)
		}
	}
	return docID, nil
}

// Search embeds the question and returns the contents of the most similar
// chunks belonging to the user, best match first.
func (s *Store) Search(ctx context.Context, userID, question string) ([]string, error) {
	qEmb, err := s.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("failed to embed question: %w", err)
	}

	args := map[string]interface{}{
		"query_embedding": qEmb,
		"match_threshold": matchThreshold,
		"match_count":     matchCount,
		"user_id_filter":  userID,
	}
	var matches []struct {
		Content string `json:"content"`
	}
	if err := s.db.RPC(ctx, "match_documents", args, &matches); err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}

	contents := make([]string, 0, len(matches))
	for _, m := range matches {
		contents = append(contents, m.Content)
	}
	return contents, nil
}

// Chunk splits text into fixed-size segments. Size counts characters, not
// bytes, so a multi-byte rune never straddles two chunks.
func Chunk(text string, size int) []string {
	if size <= 0 || text == "" {
		return nil
	}
	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
