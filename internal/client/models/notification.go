package models

// Notification priorities and types as stored by the backing store.
const (
	NotificationTypeAlert  = "alert"
	NotificationTypeEvent  = "event"
	NotificationTypeSocial = "social"
	NotificationTypeSystem = "system"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Notification is an inbox item. Alert posts produce one via the create-post
// fan-out, reusing the post's identifier.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"isRead"`
	Priority  string `json:"priority"`
}
