package metric

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/u1Ys/statline/source"
)

// DefaultVScreenPath returns the marker file the companion window manager
// writes the current virtual-screen index to.
func DefaultVScreenPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/tmp"
	}
	return filepath.Join(home, ".statline-vscreen")
}

// VScreen renders the virtual-screen index maintained by a companion
// window-manager process. An absent marker file yields index 0.
type VScreen struct {
	Path string

	index int64
}

// NewVScreen creates a VScreen widget reading the default marker file.
func NewVScreen() *VScreen {
	return &VScreen{Path: DefaultVScreenPath()}
}

// Update re-reads the marker file.
func (v *VScreen) Update(ctx context.Context) error {
	v.index = source.ReadInt(v.Path, 0)
	return nil
}

// Render returns the index in brackets, e.g. "[2]".
func (v *VScreen) Render() string {
	return fmt.Sprintf("[%d]", v.index)
}
