package document

import "time"

// Document is the persistent document model. ID and CreatedAt are assigned
// server-side at creation and never mutated afterwards; updates touch
// Title/Content/Status only.
type Document struct {
	ID        string    `json:"id" bson:"id" db:"id"`
	Title     string    `json:"title" bson:"title" db:"title"`
	Content   string    `json:"content" bson:"content" db:"content"`
	Status    string    `json:"status" bson:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
}

// Page is one window of a filtered, sorted document listing plus the
// pagination metadata computed before the window was cut.
type Page struct {
	Items      []Document `json:"items"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
	HasPrev    bool       `json:"hasPreviousPage"`
	HasNext    bool       `json:"hasNextPage"`
}
