// Package notify implements the one-shot user notification: a message is
// shown immediately and dismissed automatically after a fixed timeout.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// DefaultTimeout is how long a notification stays visible.
const DefaultTimeout = 3 * time.Second

// Notifier shows a message to the user. Notify never blocks.
type Notifier interface {
	Notify(title, message string)
}

// Notification is a message currently on screen.
type Notification struct {
	Title   string
	Message string
}

// Console prints notifications to w and keeps the latest one visible until
// it is dismissed by its timer or replaced by a newer one.
type Console struct {
	w       io.Writer
	timeout time.Duration

	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	seq     uint64
}

func NewConsole(w io.Writer, timeout time.Duration) *Console {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Console{w: w, timeout: timeout}
}

func (c *Console) Notify(title, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintf(c.w, "[%s] %s\n", title, message)

	if c.timer != nil {
		c.timer.Stop()
	}
	c.seq++
	seq := c.seq
	c.current = &Notification{Title: title, Message: message}
	c.timer = time.AfterFunc(c.timeout, func() { c.dismiss(seq) })
}

// Current returns the visible notification, if any.
func (c *Console) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// dismiss hides notification seq unless a newer one replaced it.
func (c *Console) dismiss(seq uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seq == seq {
		c.current = nil
		c.timer = nil
	}
}
