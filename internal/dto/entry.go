package dto

import "time"

// CreateEntryRequest is the JSON body for POST /entries/.
// Content is optional and stored as empty when absent.
type CreateEntryRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type EntryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	OwnerID   int64     `json:"owner_id"`
}
