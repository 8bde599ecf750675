package metric

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVScreen(t *testing.T) {
	dir := t.TempDir()
	v := &VScreen{Path: writeFile(t, dir, "vscreen", "2\n")}

	require.NoError(t, v.Update(context.Background()))
	assert.Equal(t, "[2]", v.Render())
}

func TestVScreenMissingMarker(t *testing.T) {
	v := &VScreen{Path: filepath.Join(t.TempDir(), "vscreen")}

	require.NoError(t, v.Update(context.Background()))
	assert.Equal(t, "[0]", v.Render())
}
