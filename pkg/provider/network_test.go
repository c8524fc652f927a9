package provider

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetwork_Addresses(t *testing.T) {
	n := NewNetwork(testOpts(t, "en_us", 12)...)

	for range 50 {
		v4, err := netip.ParseAddr(n.IPv4())
		require.NoError(t, err)
		assert.True(t, v4.Is4())

		raw := n.IPv6()
		require.True(t, strings.HasPrefix(raw, "2001:"))
		v6, err := netip.ParseAddr(raw)
		require.NoError(t, err, raw)
		assert.True(t, v6.Is6())

		assert.Regexp(t, `^00:16:3e:[0-7][0-9a-f]:[0-9a-f]{2}:[0-9a-f]{2}$`, n.MACAddress())
	}
}

func TestNetwork_UserAgentFallsBack(t *testing.T) {
	n := NewNetwork(testOpts(t, "ru_ru", 1)...)
	ua, err := n.UserAgent()
	require.NoError(t, err)
	assert.Equal(t, "Mozilla/5.0", ua)
}
