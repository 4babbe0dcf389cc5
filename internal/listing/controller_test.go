package listing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusRecords() []fakeRecord {
	items := numbered(23)
	for i := range items {
		if i%2 == 1 {
			items[i].fields = map[Field]string{fieldStatus: "Approved"}
		}
		items[i].dates = map[DateDimension]string{
			dimSubmitted: "2025-07-08",
			dimDeparture: "2025-08-01",
		}
	}
	return items
}

func TestControllerStartsLoading(t *testing.T) {
	c := NewController[fakeRecord](10)
	v := c.View()

	assert.Equal(t, StateLoading, v.State)
	assert.Empty(t, v.Items)
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 1, v.TotalPages)
}

func TestControllerLoadReadyAndPaging(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(numbered(23))

	v := c.View()
	assert.Equal(t, StateReady, v.State)
	assert.Equal(t, 3, v.TotalPages)
	assert.Equal(t, 23, v.TotalItems)
	assert.Len(t, v.Items, 10)

	c.SetPage(2)
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, ids(c.View().Items))

	c.NextPage()
	c.NextPage()
	assert.Equal(t, []int{21, 22, 23}, ids(c.View().Items))

	c.PrevPage()
	assert.Equal(t, 2, c.View().CurrentPage)
}

func TestFilterChangeResetsPage(t *testing.T) {
	c := NewController[fakeRecord](5)
	c.Load(statusRecords())
	c.SetPage(3)
	require.Equal(t, 3, c.View().CurrentPage)

	c.SetFilter(fieldStatus, "Approved")
	v := c.View()
	assert.Equal(t, 1, v.CurrentPage)
	assert.Equal(t, 11, v.TotalItems)

	c.SetPage(2)
	c.SetSearchTerm("record 2")
	assert.Equal(t, 1, c.View().CurrentPage)

	c.SetPage(2)
	c.SetFilterCriteria(Criteria{})
	assert.Equal(t, 1, c.View().CurrentPage)
}

func TestControllerEmptyAndBack(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(statusRecords())

	c.SetFilter(fieldStatus, "Rejected")
	v := c.View()
	assert.Equal(t, StateEmpty, v.State)
	assert.Empty(t, v.Items)
	assert.Equal(t, 1, v.TotalPages)

	c.SetFilter(fieldStatus, "")
	assert.Equal(t, StateReady, c.View().State)

	empty := NewController[fakeRecord](10)
	empty.Load(nil)
	assert.Equal(t, StateEmpty, empty.View().State)
}

func TestCriteriaRecordedWhileLoading(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.SetFilter(fieldStatus, "Approved")
	c.SetSearchTerm("record 1")
	assert.Equal(t, StateLoading, c.View().State)

	c.Load(statusRecords())
	// records 10, 12, ... are approved and contain "record 1"
	assert.Equal(t, []int{10, 12, 14, 16, 18}, ids(c.Filtered()))
	assert.Equal(t, "record 1", c.SearchTerm())
}

func TestControllerFailAndRecover(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(statusRecords())
	c.Refresh()
	assert.Equal(t, StateLoading, c.State())

	c.Fail(errors.New("request list unavailable"))
	v := c.View()
	assert.Equal(t, StateError, v.State)
	assert.Equal(t, "request list unavailable", v.Error)
	assert.Empty(t, v.Items)
	assert.Empty(t, c.Snapshot())

	c.SetFilter(fieldStatus, "Approved")
	assert.Equal(t, StateError, c.State())

	c.Refresh()
	c.Load(statusRecords())
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, 11, c.View().TotalItems)
	assert.Empty(t, c.View().Error)
}

func TestFailWithoutErrorStillReportsMessage(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Fail(nil)
	assert.NotEmpty(t, c.View().Error)
}

func TestLoadKeepsClampedPage(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(numbered(23))
	c.SetPage(3)

	c.Refresh()
	c.Load(numbered(23))
	assert.Equal(t, 3, c.View().CurrentPage)

	c.Load(numbered(12))
	assert.Equal(t, 2, c.View().CurrentPage)
}

func TestSetDateRangeKeepsSingleDimension(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(statusRecords())

	c.SetDateRange(dimSubmitted, day(t, "2025-07-01"), day(t, "2025-07-10"))
	assert.Equal(t, 23, c.View().TotalItems)

	c.SetDateRange(dimDeparture, day(t, "2025-09-01"), nil)
	crit := c.Criteria()
	assert.Len(t, crit.Ranges, 1)
	assert.Contains(t, crit.Ranges, dimDeparture)
	assert.Equal(t, StateEmpty, c.State())

	c.SetDateRange(dimSubmitted, nil, nil)
	assert.Empty(t, c.Criteria().Ranges)
	assert.Equal(t, 23, c.View().TotalItems)
}

func TestClearDateRangeKeepsEqualityFilters(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(statusRecords())
	c.SetFilter(fieldStatus, "Approved")
	c.SetDateRange(dimDeparture, day(t, "2025-09-01"), nil)

	c.ClearDateRange()
	assert.Empty(t, c.Criteria().Ranges)
	assert.Equal(t, 11, c.View().TotalItems)

	c.ResetFilters()
	assert.Equal(t, 23, c.View().TotalItems)
}

func TestTallyIgnoresFilters(t *testing.T) {
	c := NewController[fakeRecord](10)
	c.Load(statusRecords())
	c.SetFilter(fieldStatus, "Approved")

	counts := c.Tally(fieldStatus, "Pending", "Approved", "Rejected")
	assert.Equal(t, map[string]int{"Pending": 12, "Approved": 11, "Rejected": 0}, counts)
}

func TestSnapshotAndFilteredAreCopies(t *testing.T) {
	source := numbered(3)
	c := NewController[fakeRecord](10)
	c.Load(source)

	source[0].id = 100
	snap := c.Snapshot()
	snap[1].id = 200
	assert.Equal(t, []int{1, 2, 3}, ids(c.Filtered()))
}

func TestViewJSONShape(t *testing.T) {
	c := NewController[fakeRecord](2)
	c.Load(numbered(3))

	raw, err := json.Marshal(c.View())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "ready", decoded["state"])
	assert.EqualValues(t, 2, decoded["total_pages"])
	assert.EqualValues(t, 1, decoded["current_page"])
	assert.NotContains(t, decoded, "error")
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "loading", StateLoading.String())
	assert.Equal(t, "empty", StateEmpty.String())
	assert.Equal(t, "state(9)", State(9).String())
}
