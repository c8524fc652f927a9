package provider

import (
	"fmt"
	"strings"
)

// Network generates addresses and client identifiers.
type Network struct {
	base
}

// NewNetwork returns a Network provider.
func NewNetwork(opts ...Option) *Network {
	return &Network{base: newBase(opts)}
}

// IPv4 returns a dotted-quad address. Any octet value may appear, so the
// result can be a reserved address.
func (n *Network) IPv4() string {
	return fmt.Sprintf("%d.%d.%d.%d",
		n.rnd.IntN(256), n.rnd.IntN(256), n.rnd.IntN(256), n.rnd.IntN(256))
}

// IPv6 returns an address in the 2001::/16 block with seven random groups.
func (n *Network) IPv6() string {
	groups := make([]string, 7)
	for i := range groups {
		groups[i] = fmt.Sprintf("%x", n.rnd.IntN(0x10000))
	}
	return "2001:" + strings.Join(groups, ":")
}

// MACAddress returns a locally administered Xen-prefixed MAC address
// (00:16:3e).
func (n *Network) MACAddress() string {
	return fmt.Sprintf("00:16:3e:%02x:%02x:%02x",
		n.rnd.IntRange(0x00, 0x7f), n.rnd.IntN(0x100), n.rnd.IntN(0x100))
}

// UserAgent returns a browser User-Agent header value.
func (n *Network) UserAgent() (string, error) {
	return n.pickDefault("useragents")
}
