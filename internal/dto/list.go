package dto

// DateRangeRequest bounds a date dimension. Dates use YYYY-MM-DD; empty bounds are open.
type DateRangeRequest struct {
	From string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To   string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// FilterCriteriaRequest replaces every equality and date filter of a list.
type FilterCriteriaRequest struct {
	Equals map[string]string           `json:"equals"`
	Ranges map[string]DateRangeRequest `json:"ranges" validate:"omitempty,dive"`
}

// SearchRequest sets the free-text term of a list.
type SearchRequest struct {
	Term string `json:"term" validate:"max=200"`
}

// FieldFilterRequest sets a single filter value; empty shows everything.
type FieldFilterRequest struct {
	Value string `json:"value"`
}

// DateRangeSelection picks one date dimension of the calendar. Both bounds
// null clears every date filter.
type DateRangeSelection struct {
	Dimension string  `json:"dimension" validate:"required"`
	From      *string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To        *string `json:"to" validate:"omitempty,datetime=2006-01-02"`
}

// PageRequest jumps to a page or steps with action next/prev.
type PageRequest struct {
	Page   int    `json:"page" validate:"omitempty,gt=0"`
	Action string `json:"action" validate:"omitempty,oneof=next prev"`
}

// PageSizeRequest changes the number of rows per page.
type PageSizeRequest struct {
	PageSize int `json:"page_size" validate:"required,gt=0,lte=100"`
}

// NotificationFilterRequest toggles All/Read/Unread.
type NotificationFilterRequest struct {
	Filter string `json:"filter" validate:"required,oneof=all read unread"`
}
