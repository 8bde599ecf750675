package metric

import (
	"context"
	"fmt"
	"time"

	"github.com/u1Ys/statline/internal/extract"
	"github.com/u1Ys/statline/source"
)

// defaultAddrCommand enumerates addresses one line per address, which lets
// the loopback ignore pattern drop whole lines cleanly.
var defaultAddrCommand = []string{"ip", "-o", "addr", "show"}

// defaultStatsCommand queries byte counters for one interface; the
// interface name is appended at call time.
var defaultStatsCommand = []string{"ifconfig"}

// emaDecay is the weight of the previous smoothed rate in the exponential
// moving average.
const emaDecay = 0.95

var (
	rxBytesRule = extract.NewRule(`RX packets \d+\s+bytes (\d+)`, extract.Int)
	txBytesRule = extract.NewRule(`TX packets \d+\s+bytes (\d+)`, extract.Int)
)

// Network tracks the active wired interface, its addresses and a smoothed
// transfer rate.
//
// Every poll re-discovers the active interface. When the discovered name
// differs from the tracked one the byte counters and smoothed rates reset
// to a fresh-start state: a topology change invalidates the accumulated
// deltas, and the smoothed rate stays undefined until two fresh samples
// exist.
type Network struct {
	AddrCommand  []string
	StatsCommand []string
	Run          source.Runner

	// Now is the sample-timestamp source, overridable in tests.
	Now func() time.Time

	iface    string
	ipv4     string
	ipv6     string
	rxBytes  int64
	txBytes  int64
	sampled  time.Time
	rxRate   float64 // smoothed, bits per second
	txRate   float64
	haveBase bool // a counter baseline exists for the current interface
}

// NewNetwork creates a Network widget using ip for discovery and ifconfig
// for byte counters.
func NewNetwork() *Network {
	return &Network{
		AddrCommand:  defaultAddrCommand,
		StatsCommand: defaultStatsCommand,
		Run:          source.RunCommand,
		Now:          time.Now,
	}
}

// Update re-discovers the interface, samples its byte counters and folds
// the instantaneous bit rate into the smoothed rate.
func (n *Network) Update(ctx context.Context) error {
	addr, err := discoverInterface(ctx, n.Run, n.AddrCommand)
	if err != nil {
		return fmt.Errorf("interface discovery: %w", err)
	}
	if addr.name != n.iface {
		n.reset()
		n.iface = addr.name
	}
	n.ipv4 = addr.ipv4
	n.ipv6 = addr.ipv6
	if n.iface == "" {
		return nil
	}

	argv := append(append([]string{}, n.StatsCommand...), n.iface)
	values, err := extract.Scan(n.Run(ctx, argv...), nil, []extract.Rule{rxBytesRule, txBytesRule})
	if err != nil {
		return fmt.Errorf("byte counters: %w", err)
	}
	rx, tx := values[0].Int(), values[1].Int()
	now := n.Now()

	if n.haveBase {
		elapsed := now.Sub(n.sampled).Seconds()
		if elapsed > 0 {
			n.rxRate = smooth(n.rxRate, float64(rx-n.rxBytes)*8/elapsed)
			n.txRate = smooth(n.txRate, float64(tx-n.txBytes)*8/elapsed)
		}
	}
	n.rxBytes, n.txBytes = rx, tx
	n.sampled = now
	n.haveBase = true
	return nil
}

// reset returns the counters and smoothed rates to the fresh-start state.
func (n *Network) reset() {
	n.rxBytes, n.txBytes = 0, 0
	n.rxRate, n.txRate = 0, 0
	n.sampled = time.Time{}
	n.haveBase = false
}

// Render returns e.g. "eth0 192.168.1.5 RX:1.50M TX:0.25M". Without a
// discovered interface it renders the address placeholders only.
func (n *Network) Render() string {
	if n.iface == "" {
		return noIPv4
	}
	return fmt.Sprintf("%s %s RX:%s TX:%s",
		n.iface, n.ipv4, FormatRate(n.rxRate), FormatRate(n.txRate))
}

// smooth applies the EMA to the previous smoothed value. A previous value
// of zero is the documented fresh-start case: the first post-reset sample
// smooths from zero rather than jumping to the instantaneous rate.
func smooth(prev, instant float64) float64 {
	return (1-emaDecay)*instant + emaDecay*prev
}

// ScaleSI divides v by 1000 until its magnitude is at most 100, returning
// the scaled value and the selected unit prefix. The prefix for an unscaled
// value is a space so rendered rates keep a fixed shape.
//
//	ScaleSI(99)     == (99, " ")
//	ScaleSI(150)    == (0.15, "K")
//	ScaleSI(150000) == (0.15, "M")
func ScaleSI(v float64) (float64, string) {
	const prefixes = " KMGTP"
	i := 0
	for v > 100 && i < len(prefixes)-1 {
		v /= 1000
		i++
	}
	return v, string(prefixes[i])
}

// FormatRate renders a bit rate with its SI prefix, e.g. "1.50M".
func FormatRate(bps float64) string {
	v, prefix := ScaleSI(bps)
	return fmt.Sprintf("%.2f%s", v, prefix)
}
