// Package history persists the per-user activity log. Records are only
// written when the frontend explicitly asks to save; generation calls
// themselves leave no trace here.
package history

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/adapta-ai/backend/internal/models"
	"github.com/adapta-ai/backend/internal/supabase"
)

// ErrNotFound is returned when an item does not exist or belongs to another
// user; callers map it to 404 without distinguishing the two cases.
var ErrNotFound = errors.New("history item not found")

// maxPromptLength bounds the prompt column of image_history.
const maxPromptLength = 500

// Store wraps the user_history and image_history tables.
type Store struct {
	db *supabase.Client
}

// NewStore wires the store to a Supabase client.
func NewStore(db *supabase.Client) *Store {
	return &Store{db: db}
}

// Save inserts a history record and returns the inserted representation.
func (s *Store) Save(ctx context.Context, rec models.HistoryRecord) ([]models.HistoryRecord, error) {
	payload := map[string]interface{}{
		"user_id":     rec.UserID,
		"tool_type":   rec.ToolType,
		"tool_name":   rec.ToolName,
		"input_data":  rec.InputData,
		"output_data": rec.OutputData,
		"metadata":    rec.Metadata,
	}
	var inserted []models.HistoryRecord
	if err := s.db.Insert(ctx, "user_history", payload, &inserted); err != nil {
		return nil, fmt.Errorf("failed to save history: %w", err)
	}
	return inserted, nil
}

// List returns a user's records, newest first, optionally filtered by tool
// type.
func (s *Store) List(ctx context.Context, userID, toolType string, limit int) ([]models.HistoryRecord, error) {
	if limit <= 0 {
		limit = 100
	}
	query := "user_id=eq." + url.QueryEscape(userID)
	if toolType != "" {
		query += "&tool_type=eq." + url.QueryEscape(toolType)
	}
	query += fmt.Sprintf("&select=*&order=created_at.desc&limit=%d", limit)

	var rows []models.HistoryRecord
	if err := s.db.Select(ctx, "user_history", query, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes an item after checking it belongs to the user.
func (s *Store) Delete(ctx context.Context, userID string, itemID int64) error {
	id := strconv.FormatInt(itemID, 10)
	checkQuery := "id=eq." + id + "&user_id=eq." + url.QueryEscape(userID) + "&select=id"
	var rows []models.HistoryRecord
	if err := s.db.Select(ctx, "user_history", checkQuery, &rows); err != nil {
		return err
	}
	if len(rows) == 0 {
		return ErrNotFound
	}
	return s.db.Delete(ctx, "user_history", "id=eq."+id)
}

// SaveImage records a generated image. Callers treat failures as
// best-effort: the user already has the image URL.
func (s *Store) SaveImage(ctx context.Context, userID, prompt, imageURL string) error {
	if runes := []rune(prompt); len(runes) > maxPromptLength {
		prompt = string(runes[:maxPromptLength])
	}
	rec := models.ImageRecord{
		UserID:   userID,
		Prompt:   prompt,
		ImageURL: imageURL,
	}
	return s.db.Insert(ctx, "image_history", rec, nil)
}
