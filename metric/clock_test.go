package metric

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockRender(t *testing.T) {
	c := NewClock()
	c.Now = func() time.Time {
		return time.Date(2025, 1, 31, 23, 59, 7, 0, time.UTC)
	}

	require.NoError(t, c.Update(context.Background()))
	assert.Equal(t, "2025/01/31(Fri) 23:59:07", c.Render())
}

func TestClockRenderBeforeUpdate(t *testing.T) {
	assert.Equal(t, "", NewClock().Render())
}
