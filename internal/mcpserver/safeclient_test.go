package mcpserver

import (
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},      // loopback
		{"10.0.0.1", true},       // private (Class A)
		{"172.16.0.1", true},     // private (Class B)
		{"192.168.1.1", true},    // private (Class C)
		{"169.254.1.1", true},    // link-local
		{"::1", true},            // IPv6 loopback
		{"0.0.0.0", true},        // unspecified IPv4
		{"::", true},             // unspecified IPv6
		{"fe80::1", true},        // IPv6 link-local
		{"fd00::1", true},        // IPv6 ULA (private)
		{"8.8.8.8", false},       // public (Google DNS)
		{"1.1.1.1", false},       // public (Cloudflare DNS)
		{"93.184.216.34", false}, // public (example.com)
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip, "failed to parse IP: %s", tt.ip)
			assert.Equal(t, tt.blocked, isBlockedIP(ip))
		})
	}
}

func TestNewSafeHTTPClient(t *testing.T) {
	client := newSafeHTTPClient(15 * time.Second)
	require.NotNil(t, client)
	assert.Equal(t, 15*time.Second, client.Timeout)
	assert.NotNil(t, client.CheckRedirect)
	assert.NotNil(t, client.Transport)
}

func TestSafeHTTPClient_BlocksLoopback(t *testing.T) {
	client := newSafeHTTPClient(5 * time.Second)
	_, err := client.Get("http://127.0.0.1:1/api-docs.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked request to private/loopback IP")
}

func TestSafeHTTPClient_CheckRedirect(t *testing.T) {
	client := newSafeHTTPClient(time.Second)

	private, err := http.NewRequest(http.MethodGet, "http://10.0.0.8/api-docs/pet", nil)
	require.NoError(t, err)
	assert.ErrorContains(t, client.CheckRedirect(private, nil), "blocked request to private/loopback IP")

	public, err := http.NewRequest(http.MethodGet, "http://93.184.216.34/api-docs/pet", nil)
	require.NoError(t, err)
	assert.NoError(t, client.CheckRedirect(public, nil))
	assert.EqualError(t, client.CheckRedirect(public, make([]*http.Request, maxRedirects)), "stopped after 10 redirects")
}
