package domain

// Category statuses.
const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)

// Category is a job category managed by administrators.
type Category struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedBy   string `json:"createdBy,omitempty"`
}
