package metric

import (
	"context"
	"time"
)

// clockFormat renders like "2025/01/31(Fri) 23:59:07".
const clockFormat = "2006/01/02(Mon) 15:04:05"

// Clock renders the current local time. It reads nothing external.
type Clock struct {
	// Now is the time source, overridable in tests. Defaults to time.Now.
	Now func() time.Time

	text string
}

// NewClock creates a Clock using the real local time.
func NewClock() *Clock {
	return &Clock{Now: time.Now}
}

// Update formats the current time.
func (c *Clock) Update(ctx context.Context) error {
	c.text = c.Now().Format(clockFormat)
	return nil
}

// Render returns the formatted timestamp from the last Update.
func (c *Clock) Render() string {
	return c.text
}
