package metric

import (
	"context"
	"fmt"

	"github.com/u1Ys/statline/internal/extract"
	"github.com/u1Ys/statline/source"
)

// Defaults for the wireless-status query and the supplicant probe.
var (
	defaultWirelessCommand   = []string{"iwconfig"}
	defaultSupplicantProcess = "wpa_supplicant"
)

// Placeholders for wireless fields that the status command did not report.
const (
	noSSID    = "--------"
	noQuality = "--/--"
)

var (
	ssidRule    = extract.NewRule(`ESSID:"([^"]*)"`, extract.String)
	bitRateRule = extract.NewRule(`Bit Rate[=:]\s*([0-9.]+)`, extract.Float)
	qualityRule = extract.NewRule(`Link Quality[=:](\d+/\d+)`, extract.String)
	signalRule  = extract.NewRule(`Signal level[=:]\s*(-?\d+)`, extract.Int)
)

// Wireless tracks the wireless link: SSID, bit rate, link quality and
// signal level, plus whether the WPA supplicant is running.
//
// Like Network it re-discovers the active interface every poll, so the
// status command always targets whatever interface currently carries an
// address. All four queried fields degrade to placeholders when the
// interface is down or the command emits nothing.
type Wireless struct {
	AddrCommand       []string
	WirelessCommand   []string
	SupplicantProcess string
	Run               source.Runner

	iface      string
	ssid       string
	mbit       float64
	quality    string
	signal     int64
	supplicant bool
}

// NewWireless creates a Wireless widget using ip for discovery and iwconfig
// for link state.
func NewWireless() *Wireless {
	return &Wireless{
		AddrCommand:       defaultAddrCommand,
		WirelessCommand:   defaultWirelessCommand,
		SupplicantProcess: defaultSupplicantProcess,
		Run:               source.RunCommand,
	}
}

// Update re-discovers the interface and queries its wireless status.
func (w *Wireless) Update(ctx context.Context) error {
	addr, err := discoverInterface(ctx, w.Run, w.AddrCommand)
	if err != nil {
		return fmt.Errorf("interface discovery: %w", err)
	}
	w.iface = addr.name

	argv := append(append([]string{}, w.WirelessCommand...), w.iface)
	rules := []extract.Rule{ssidRule, bitRateRule, qualityRule, signalRule}
	values, err := extract.Scan(w.Run(ctx, argv...), nil, rules)
	if err != nil {
		return fmt.Errorf("wireless status: %w", err)
	}
	w.ssid = values[0].Str()
	if w.ssid == "" {
		w.ssid = noSSID
	}
	w.mbit = values[1].Float()
	w.quality = values[2].Str()
	if w.quality == "" {
		w.quality = noQuality
	}
	w.signal = values[3].Int()
	w.supplicant = source.ProcessRunning(ctx, w.Run, w.SupplicantProcess)
	return nil
}

// Render returns e.g. "home-ap 300Mb/s 68/70 -41dBm+", the trailing "+"
// indicating a running supplicant.
func (w *Wireless) Render() string {
	s := fmt.Sprintf("%s %.0fMb/s %s %ddBm", w.ssid, w.mbit, w.quality, w.signal)
	if w.supplicant {
		s += "+"
	}
	return s
}
