package metric

import (
	"context"
	"fmt"

	"github.com/u1Ys/statline/internal/extract"
	"github.com/u1Ys/statline/source"
)

// Defaults for the mixer query and the media-player presence probe.
var (
	defaultMixerCommand  = []string{"amixer", "get", "Master"}
	defaultPlayerProcess = "mpv"
)

// Volume tracks the mixer's master level and mute switch, plus whether a
// known media player is currently running.
//
// Both mixer fields come from a single pass over the mixer-status command's
// output: one rule for the percentage, one for the on/off toggle. Either
// being absent simply leaves its zero value.
type Volume struct {
	MixerCommand  []string
	PlayerProcess string
	Run           source.Runner

	percent int64
	on      bool
	playing bool
}

// NewVolume creates a Volume widget querying amixer and probing for mpv.
func NewVolume() *Volume {
	return &Volume{
		MixerCommand:  defaultMixerCommand,
		PlayerProcess: defaultPlayerProcess,
		Run:           source.RunCommand,
	}
}

// Update re-queries the mixer and the player probe.
func (v *Volume) Update(ctx context.Context) error {
	rules := []extract.Rule{
		extract.NewRule(`\[(\d+)%\]`, extract.Int),
		extract.NewRule(`\[(on|off)\]`, extract.String),
	}
	values, err := extract.Scan(v.Run(ctx, v.MixerCommand...), nil, rules)
	if err != nil {
		return fmt.Errorf("mixer status: %w", err)
	}
	v.percent = values[0].Int()
	v.on = values[1].Str() == "on"
	v.playing = source.ProcessRunning(ctx, v.Run, v.PlayerProcess)
	return nil
}

// Render returns e.g. "VOL:43%", "VOL:---" when muted, with a trailing "*"
// while the media player is running.
func (v *Volume) Render() string {
	s := "VOL:---"
	if v.on {
		s = fmt.Sprintf("VOL:%d%%", v.percent)
	}
	if v.playing {
		s += "*"
	}
	return s
}
