package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	p, err := New("", zap.NewNop())
	require.NoError(t, err)
	return p
}

func TestParseUserAgent(t *testing.T) {
	p := newParser(t)

	tests := []struct {
		name       string
		userAgent  string
		deviceType string
	}{
		{
			"chrome on windows",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			"desktop",
		},
		{
			"safari on iphone",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			"mobile",
		},
		{
			"safari on ipad",
			"Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
			"tablet",
		},
		{
			"chrome on android phone",
			"Mozilla/5.0 (Linux; Android 13; Pixel 7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
			"mobile",
		},
		{
			"googlebot",
			"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
			"bot",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := p.ParseUserAgent(tt.userAgent)
			assert.Equal(t, tt.deviceType, info.DeviceType)
		})
	}
}

func TestParseUserAgent_Empty(t *testing.T) {
	p := newParser(t)

	info := p.ParseUserAgent("")
	assert.Equal(t, "unknown", info.DeviceType)
	assert.Equal(t, "unknown", info.Browser)
	assert.Equal(t, "unknown", info.OS)
}

func TestParseUserAgent_BrowserAndOS(t *testing.T) {
	p := newParser(t)

	info := p.ParseUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")
	assert.Equal(t, "Chrome", info.Browser)
	assert.Equal(t, "Windows", info.OS)
}

func TestNew_MissingFileUsesBundledDefinitions(t *testing.T) {
	p, err := New("does/not/exist.yaml", zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, p.ParseUserAgent("Mozilla/5.0"))
}
