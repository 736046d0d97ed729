package core

// Notification levels
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Notification is a transient message shown to the operator after an action.
type Notification struct {
	Level       string
	Title       string
	Description string
}

// Notifier is any service that can show transient notifications.
type Notifier interface {
	Notify(n Notification)
}

func NotifySuccess(n Notifier, desc string) {
	n.Notify(Notification{Level: LevelSuccess, Title: "Success", Description: desc})
}

func NotifyError(n Notifier, desc string) {
	n.Notify(Notification{Level: LevelError, Title: "Error", Description: desc})
}
