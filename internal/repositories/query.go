package repositories

// ListFilter holds the optional list filters accepted by GET without an id
type ListFilter struct {
	// Search is a case-insensitive substring matched against the table's text columns
	Search string

	// Category is an exact match on the category column (records only)
	Category string
}

// NewListFilter builds a filter from query string parameters
func NewListFilter(params map[string]string) ListFilter {
	return ListFilter{
		Search:   params["search"],
		Category: params["category"],
	}
}

// SearchPattern returns the bound LIKE pattern for Search
func (f ListFilter) SearchPattern() string {
	return "%" + f.Search + "%"
}
