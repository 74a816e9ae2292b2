package models

import (
	"encoding/json"
	"time"
)

// HistoryRecord defines the struct for the 'user_history' table.
// Input/output payloads are free-form JSON chosen by the frontend, so they
// are kept as raw messages rather than typed structs.
type HistoryRecord struct {
	ID         int64           `json:"id,omitempty" db:"id"`
	UserID     string          `json:"user_id" db:"user_id"`
	ToolType   string          `json:"tool_type" db:"tool_type"`
	ToolName   string          `json:"tool_name" db:"tool_name"`
	InputData  json.RawMessage `json:"input_data" db:"input_data"`
	OutputData json.RawMessage `json:"output_data,omitempty" db:"output_data"`
	Metadata   json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt  time.Time       `json:"created_at,omitempty" db:"created_at"`
}

// ImageRecord defines the struct for the 'image_history' table. The zero ID
// and timestamp are omitted on marshal so inserts leave both to the database.
type ImageRecord struct {
	ID        int64     `json:"id,omitempty" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Prompt    string    `json:"prompt" db:"prompt"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	CreatedAt time.Time `json:"created_at,omitzero" db:"created_at"`
}
