package dto

import "time"

// UpdateDraftFieldRequest sets one field of the active draft. Tags are sent
// as a single comma separated string.
type UpdateDraftFieldRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type CollectionResponse[T any] struct {
	Items []T    `json:"items"`
	State string `json:"state"`
	Draft *T     `json:"draft,omitempty"`
}

type DraftResponse[T any] struct {
	State string `json:"state"`
	Draft *T     `json:"draft"`
}

type SaveResponse[T any] struct {
	Record         T      `json:"record"`
	Acknowledgment string `json:"acknowledgment"`
}

// ContentSavedMessage is published after a collection write.
type ContentSavedMessage struct {
	Key     string    `json:"key"`
	Size    int       `json:"size"`
	SavedAt time.Time `json:"saved_at"`
}
