package order

// Order is the result ordering of a search.
type Order string

// Search order constants.
const (
	// Relevance sorts by score, then most recently updated, then compound slug.
	Relevance Order = "relevance"
	// Recency sorts by last update only.
	Recency Order = "recency"
)

// IsValid checks if the order is one of the supported values.
func (o Order) IsValid() bool {
	return o == Relevance || o == Recency
}

// OrDefault returns Relevance for the zero value.
func (o Order) OrDefault() Order {
	if o == "" {
		return Relevance
	}
	return o
}
