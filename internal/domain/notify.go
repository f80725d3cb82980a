package domain

import "time"

// NotificationKind classifies a transient notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyWarning NotificationKind = "warning"
	NotifyInfo    NotificationKind = "info"
)

// NotificationTTL is how long a notification stays visible before it is
// auto-dismissed. A new notification replaces the visible one; there is
// no queue.
const NotificationTTL = 5 * time.Second

// Notification is a transient toast-style message.
type Notification struct {
	Kind    NotificationKind `json:"kind"`
	Message string           `json:"message"`
}
