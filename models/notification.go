package models

import "time"

// NotificationLevel grades a user-facing notification.
type NotificationLevel string

const (
	NotificationError NotificationLevel = "error"
	NotificationInfo  NotificationLevel = "info"
)

// Notification is a message presented to the user by the surrounding UI.
type Notification struct {
	Level   NotificationLevel
	Title   string
	Message string
	At      time.Time
}
