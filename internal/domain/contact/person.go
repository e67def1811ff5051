// Package contact models people, their tags, and their group memberships as
// the backend reports them. The Discord id (did) is the person's primary key
// across the whole system.
package contact

// Person is a volunteer or contact in the CRM.
type Person struct {
	DID   string  `json:"did"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// PersonWithRelations is the expanded shape returned by the
// people-with-relations endpoint.
type PersonWithRelations struct {
	Person
	Tags   []Tag        `json:"tags"`
	Groups []Membership `json:"groups"`
}

// Tag is an assignable label such as "Dev-Software" or "Community Building".
type Tag struct {
	TID  int    `json:"tid"`
	Name string `json:"name"`
}
