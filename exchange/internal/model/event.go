package model

import (
	"time"

	"github.com/google/uuid"
)

type ListEventType string

const (
	ListEventAdded   ListEventType = "added"
	ListEventRemoved ListEventType = "removed"
)

type ListEvent struct {
	Type   ListEventType `json:"type"`
	List   List          `json:"list"`
	UserID uuid.UUID     `json:"user_id"`
	BookID uuid.UUID     `json:"book_id"`
	At     time.Time     `json:"at"`
}
