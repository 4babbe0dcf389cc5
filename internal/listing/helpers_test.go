package listing

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	fieldStatus     Field         = "status"
	fieldDepartment Field         = "department"
	dimSubmitted    DateDimension = "submitted"
	dimDeparture    DateDimension = "departure"
)

type fakeRecord struct {
	id     int
	fields map[Field]string
	dates  map[DateDimension]string
	text   []string
}

func (r fakeRecord) FieldValue(f Field) (string, bool) {
	v, ok := r.fields[f]
	return v, ok
}

func (r fakeRecord) DateValue(d DateDimension) (string, bool) {
	v, ok := r.dates[d]
	return v, ok
}

func (r fakeRecord) SearchText() []string { return r.text }

func numbered(n int) []fakeRecord {
	out := make([]fakeRecord, n)
	for i := range out {
		out[i] = fakeRecord{
			id:     i + 1,
			fields: map[Field]string{fieldStatus: "Pending"},
			text:   []string{fmt.Sprintf("record %d", i+1)},
		}
	}
	return out
}

func ids(items []fakeRecord) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.id)
	}
	return out
}

func day(t *testing.T, raw string) *time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", raw)
	require.NoError(t, err)
	return &d
}
