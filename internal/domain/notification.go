package domain

// Severity — тип пользовательского уведомления.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Notification — эфемерное пользовательское уведомление.
// Одновременно видимо не более одного; очереди отложенных сообщений нет.
type Notification struct {
	Text     string
	Severity Severity
	Visible  bool
}
