package query

import "github.com/docintegrator/doc-service/internal/document"

// Paginate cuts the page window out of the sorted, filtered sequence and
// computes the pagination metadata. TotalCount always reflects the full
// filtered sequence, not the window. A page past the end yields an empty
// item list with intact metadata; it is never an error.
func Paginate(docs []document.Document, page, pageSize int) document.Page {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalCount := len(docs)
	totalPages := (totalCount + pageSize - 1) / pageSize

	skip := (page - 1) * pageSize
	items := []document.Document{}
	if skip < totalCount {
		end := skip + pageSize
		if end > totalCount {
			end = totalCount
		}
		items = append(items, docs[skip:end]...)
	}

	return document.Page{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}

// Execute runs the full pipeline in its fixed order: filter, then sort, then
// paginate. Reordering would change semantics (total count must be
// post-filter, pre-page). The spec is normalized first, so callers may pass
// a raw one.
func Execute(docs []document.Document, s Spec, p document.Policy) document.Page {
	s = s.Normalize()
	filtered := Filter(docs, s)
	sorted := Sort(filtered, s, p)
	return Paginate(sorted, s.Page, s.PageSize)
}
