package challenge

import (
	"time"

	"github.com/google/uuid"
)

type Challenge struct {
	UUID        uuid.UUID
	Title       string
	Description string
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
