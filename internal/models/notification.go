package models

import "github.com/noah-isme/hr-portal/internal/listing"

// NotificationFieldRead filters notifications by read flag ("true"/"false").
const NotificationFieldRead listing.Field = "read"

// NotificationReadFilter is the All/Read/Unread toggle of the notification list.
type NotificationReadFilter string

const (
	NotificationsAll    NotificationReadFilter = "all"
	NotificationsRead   NotificationReadFilter = "read"
	NotificationsUnread NotificationReadFilter = "unread"
)

// Notification is one entry of the notification feed.
type Notification struct {
	ID        int64  `json:"notification_id"`
	UserID    int64  `json:"user_id,omitempty"`
	RequestID int64  `json:"request_id,omitempty"`
	Name      string `json:"name,omitempty"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FieldValue implements listing.Record.
func (n Notification) FieldValue(field listing.Field) (string, bool) {
	if field == NotificationFieldRead {
		if n.Read {
			return "true", true
		}
		return "false", true
	}
	return "", false
}

// DateValue implements listing.Record.
func (n Notification) DateValue(listing.DateDimension) (string, bool) {
	return "", false
}

// SearchText implements listing.Record.
func (n Notification) SearchText() []string {
	return []string{n.Name, n.Message}
}
