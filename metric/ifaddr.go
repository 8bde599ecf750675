package metric

import (
	"context"
	"regexp"

	"github.com/u1Ys/statline/internal/extract"
	"github.com/u1Ys/statline/source"
)

// Placeholders substituted when an interface carries no address of the
// respective family.
const (
	noIPv4 = "---.---.---.---"
	noIPv6 = "::"
)

// loopbackIgnore skips loopback address lines so that discovery settles on
// the first real interface.
var loopbackIgnore = regexp.MustCompile(`127\.0\.0\.1|::1/128`)

var (
	ifaceNameRule = extract.NewRule(`^\d+:\s+([^:@\s]+)`, extract.String)
	inet4Rule     = extract.NewRule(`inet (\d+\.\d+\.\d+\.\d+)`, extract.String)
	inet6Rule     = extract.NewRule(`inet6 ([0-9a-f:]+)/\d+ scope global`, extract.String)
)

// ifaceAddr is the result of one interface-discovery pass: the first
// non-loopback interface name and its addresses.
type ifaceAddr struct {
	name string
	ipv4 string
	ipv6 string
}

// discoverInterface runs the address-enumeration command and extracts the
// active interface name, its IPv4 address and its global-scope IPv6 address
// in a single pass. Missing addresses get placeholder strings; a machine
// with no non-loopback interface at all yields an empty name.
func discoverInterface(ctx context.Context, run source.Runner, argv []string) (ifaceAddr, error) {
	rules := []extract.Rule{ifaceNameRule, inet4Rule, inet6Rule}
	values, err := extract.Scan(run(ctx, argv...), loopbackIgnore, rules)
	if err != nil {
		return ifaceAddr{}, err
	}
	addr := ifaceAddr{
		name: values[0].Str(),
		ipv4: values[1].Str(),
		ipv6: values[2].Str(),
	}
	if addr.ipv4 == "" {
		addr.ipv4 = noIPv4
	}
	if addr.ipv6 == "" {
		addr.ipv6 = noIPv6
	}
	return addr, nil
}
