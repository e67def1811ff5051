package contact

// ListFilter narrows a people listing. Nil pointer fields mean no filter.
type ListFilter struct {
	Page     int
	PageSize int
	Query    string
	GroupID  *int
	TagID    *int
}

// NewPersonInput is the data needed to create a person with initial tags.
type NewPersonInput struct {
	DID    string  `json:"did"`
	Name   string  `json:"name"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	TagIDs []int   `json:"tags"`
}
