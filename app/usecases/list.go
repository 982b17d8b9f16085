package usecases

import "BE-HOTEL-ADMIN/app/listing"

// paginate answers a list request. Without page and pageSize the whole filtered,
// sorted list comes back as one page, the way the mock API always returned everything.
func paginate[T any](records []T, schema listing.Schema[T], q listing.Query) (listing.Page[T], error) {
	if q.SortField != "" {
		if _, ok := schema.Fields[q.SortField]; !ok {
			return listing.Page[T]{}, badRequest("unknown sort field " + q.SortField)
		}
	}
	if q.Page <= 0 && q.PageSize <= 0 {
		q.Page = 1
		q.PageSize = max(len(records), 1)
	}
	return listing.Apply(records, schema, q), nil
}
