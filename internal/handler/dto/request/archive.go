package request

import "github.com/google/uuid"

type BulkArchiveRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}
