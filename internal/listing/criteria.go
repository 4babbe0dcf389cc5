package listing

import "time"

// DateRange is an inclusive calendar-date interval. A nil bound is open.
type DateRange struct {
	From *time.Time `json:"from,omitempty"`
	To   *time.Time `json:"to,omitempty"`
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Criteria combines equality filters with date ranges. Empty values and zero
// ranges are neutral.
type Criteria struct {
	Equals map[Field]string            `json:"equals,omitempty"`
	Ranges map[DateDimension]DateRange `json:"ranges,omitempty"`
}

// IsEmpty reports whether the criteria would accept every record.
func (c Criteria) IsEmpty() bool {
	for _, v := range c.Equals {
		if v != "" {
			return false
		}
	}
	for _, r := range c.Ranges {
		if !r.IsZero() {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers cannot alter controller state through shared maps.
func (c Criteria) Clone() Criteria {
	out := Criteria{}
	if len(c.Equals) > 0 {
		out.Equals = make(map[Field]string, len(c.Equals))
		for k, v := range c.Equals {
			out.Equals[k] = v
		}
	}
	if len(c.Ranges) > 0 {
		out.Ranges = make(map[DateDimension]DateRange, len(c.Ranges))
		for k, r := range c.Ranges {
			out.Ranges[k] = DateRange{From: copyTime(r.From), To: copyTime(r.To)}
		}
	}
	return out
}

// WithEqual returns a copy with field set to value. An empty value removes the filter.
func (c Criteria) WithEqual(field Field, value string) Criteria {
	out := c.Clone()
	if value == "" {
		delete(out.Equals, field)
		return out
	}
	if out.Equals == nil {
		out.Equals = map[Field]string{}
	}
	out.Equals[field] = value
	return out
}

// WithOnlyRange returns a copy whose date criteria consist of dim alone.
// A zero range clears every date criterion.
func (c Criteria) WithOnlyRange(dim DateDimension, r DateRange) Criteria {
	out := c.Clone()
	out.Ranges = nil
	if r.IsZero() {
		return out
	}
	out.Ranges = map[DateDimension]DateRange{dim: {From: copyTime(r.From), To: copyTime(r.To)}}
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
