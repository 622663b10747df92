package core

// Severity classifies a notification for presentation.
type Severity int

const (
	SeverityDefault Severity = iota
	SeveritySuccess
	SeverityDestructive
)

// String returns a lowercase name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityDefault:
		return "default"
	case SeveritySuccess:
		return "success"
	case SeverityDestructive:
		return "destructive"
	default:
		return "unknown"
	}
}

// Notification is a fire-and-forget message for the player.
// Games raise them and the platform displays them; nothing reads them back.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Outbox collects notifications raised between two drains.
// The zero value is ready to use.
type Outbox struct {
	pending []Notification
}

// Post queues a notification.
func (o *Outbox) Post(title, description string, sev Severity) {
	o.pending = append(o.pending, Notification{
		Title:       title,
		Description: description,
		Severity:    sev,
	})
}

// Drain returns all queued notifications in posting order and empties the outbox.
func (o *Outbox) Drain() []Notification {
	if len(o.pending) == 0 {
		return nil
	}
	out := o.pending
	o.pending = nil
	return out
}

// Len returns the number of queued notifications.
func (o *Outbox) Len() int {
	return len(o.pending)
}
