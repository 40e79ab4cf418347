package pagination

// Meta contains metadata about a page of results.
type Meta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewMeta creates pagination metadata from a page state.
func NewMeta(s State) Meta {
	pages := s.TotalPages()
	return Meta{
		CurrentPage: s.CurrentPage,
		PageSize:    s.PageLimit,
		TotalPages:  pages,
		TotalItems:  s.TotalRecords,
		HasPrevious: s.CurrentPage > MinPage,
		HasNext:     s.CurrentPage < pages,
	}
}
