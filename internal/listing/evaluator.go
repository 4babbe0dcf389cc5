package listing

// Matches reports whether record satisfies every active criterion.
// Equality is exact and case-sensitive; a record lacking a filtered field does
// not match. Date ranges compare calendar days inclusively, and a record date
// that is missing or unparseable never matches an active range.
func Matches(record Record, criteria Criteria) bool {
	for field, want := range criteria.Equals {
		if want == "" {
			continue
		}
		got, ok := record.FieldValue(field)
		if !ok || got != want {
			return false
		}
	}

	for dim, r := range criteria.Ranges {
		if r.IsZero() {
			continue
		}
		raw, ok := record.DateValue(dim)
		if !ok {
			return false
		}
		day, ok := ParseDate(raw)
		if !ok {
			return false
		}
		if r.From != nil && day.Before(Day(*r.From)) {
			return false
		}
		if r.To != nil && day.After(Day(*r.To)) {
			return false
		}
	}

	return true
}

// Filter returns the records matching both criteria and search in their original order.
func Filter[T Record](items []T, criteria Criteria, search Search) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, criteria) && search.Match(item) {
			out = append(out, item)
		}
	}
	return out
}
