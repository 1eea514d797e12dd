package task

// Filter selects tasks from a listing. The zero value selects all live
// tasks.
type Filter struct {
	// IncludeArchived widens the selection to archived tasks.
	IncludeArchived bool

	// Slug, when non-empty, selects only tasks with this exact slug.
	Slug string
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Task) bool {
	if !f.IncludeArchived && t.Meta().IsArchived() {
		return false
	}

	if f.Slug != "" && t.Slug().Unwrap() != f.Slug {
		return false
	}

	return true
}
