package useragent

import (
	"fmt"
	"os"
	"strings"

	"github.com/ua-parser/uap-go/uaparser"
	"go.uber.org/zap"
)

// Parser wraps the uap-go User-Agent parser with device type classification.
// The analytics layer uses it to group a link's stored click user agents into
// a device breakdown at read time.
type Parser struct {
	parser *uaparser.Parser
	log    *zap.Logger
}

// DeviceInfo represents parsed device information.
type DeviceInfo struct {
	DeviceType string // mobile, desktop, tablet, bot, unknown
	Browser    string // Chrome, Firefox, Safari, etc.
	OS         string // Windows, iOS, Android, etc.
}

// New creates a parser from a uap-core regexes file. When regexFilePath is
// empty or missing, the definitions bundled with uap-go are used instead.
func New(regexFilePath string, log *zap.Logger) (*Parser, error) {
	if regexFilePath == "" {
		return &Parser{parser: uaparser.NewFromSaved(), log: log}, nil
	}

	if _, err := os.Stat(regexFilePath); err != nil {
		log.Warn("regexes file not found, using bundled definitions", zap.String("path", regexFilePath))
		return &Parser{parser: uaparser.NewFromSaved(), log: log}, nil
	}

	parser, err := uaparser.New(regexFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create User-Agent parser: %w", err)
	}

	log.Info("User-Agent parser initialized", zap.String("regexes_file", regexFilePath))
	return &Parser{parser: parser, log: log}, nil
}

// ParseUserAgent parses a User-Agent string and classifies the device.
func (p *Parser) ParseUserAgent(userAgent string) *DeviceInfo {
	if userAgent == "" {
		return &DeviceInfo{DeviceType: "unknown", Browser: "unknown", OS: "unknown"}
	}

	client := p.parser.Parse(userAgent)

	info := &DeviceInfo{
		Browser: orUnknown(client.UserAgent.Family),
		OS:      orUnknown(client.Os.Family),
	}
	info.DeviceType = classify(client, userAgent)
	return info
}

func classify(client *uaparser.Client, userAgent string) string {
	if isBot(client.UserAgent.Family, userAgent) {
		return "bot"
	}

	device := client.Device.Family
	if containsAny(device, "iPad", "Tablet", "Kindle", "Surface") {
		return "tablet"
	}
	if containsAny(device, "iPhone", "Android", "BlackBerry", "Windows Phone", "Mobile", "Phone") {
		return "mobile"
	}

	switch client.Os.Family {
	case "iOS":
		if strings.Contains(userAgent, "iPad") {
			return "tablet"
		}
		return "mobile"
	case "Android":
		// Android tablets usually omit the "Mobile" token.
		if !strings.Contains(userAgent, "Mobile") {
			return "tablet"
		}
		return "mobile"
	case "Windows", "Mac OS X", "Linux", "Ubuntu", "Chrome OS", "Fedora":
		return "desktop"
	}

	return "unknown"
}

func isBot(uaFamily, userAgent string) bool {
	indicators := []string{
		"Googlebot", "Bingbot", "Slurp", "DuckDuckBot", "Baiduspider",
		"YandexBot", "facebookexternalhit", "Twitterbot", "LinkedInBot",
		"bot", "crawler", "spider", "scraper",
	}
	for _, indicator := range indicators {
		needle := strings.ToLower(indicator)
		if strings.Contains(strings.ToLower(uaFamily), needle) ||
			strings.Contains(strings.ToLower(userAgent), needle) {
			return true
		}
	}
	return false
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func orUnknown(s string) string {
	if s == "" || s == "Other" {
		return "unknown"
	}
	return s
}
