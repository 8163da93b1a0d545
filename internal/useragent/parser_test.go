package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"reklamito/internal/core/domain"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		ua   string
		want map[string]string
		dev  domain.DeviceType
	}{
		{
			name: "chrome on windows",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			want: map[string]string{"browser": "Chrome", "bver": "120.0.0.0", "os": "Windows", "osver": "10.0"},
			dev:  domain.DeviceDesktop,
		},
		{
			name: "chrome on android is mobile",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.6099.43 Mobile Safari/537.36",
			want: map[string]string{"browser": "Chrome", "bver": "120.0.6099.43", "os": "Android", "osver": "14"},
			dev:  domain.DeviceMobile,
		},
		{
			name: "safari on iphone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
			want: map[string]string{"browser": "Safari", "bver": "17.1", "os": "iOS", "osver": "17.1"},
			dev:  domain.DeviceMobile,
		},
		{
			name: "edge beats embedded chrome token",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.2210.61",
			want: map[string]string{"browser": "Edge", "bver": "120.0.2210.61", "os": "Windows", "osver": "10.0"},
			dev:  domain.DeviceDesktop,
		},
		{
			name: "firefox on linux",
			ua:   "Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0",
			want: map[string]string{"browser": "Firefox", "bver": "121.0", "os": "Linux", "osver": ""},
			dev:  domain.DeviceDesktop,
		},
		{
			name: "opera on mac",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 OPR/106.0.0.0",
			want: map[string]string{"browser": "Opera", "bver": "106.0.0.0", "os": "macOS", "osver": "10.15.7"},
			dev:  domain.DeviceDesktop,
		},
		{
			name: "unknown agent",
			ua:   "curl/8.4.0",
			want: map[string]string{"browser": "", "bver": "", "os": "", "osver": ""},
			dev:  domain.DeviceDesktop,
		},
		{
			name: "empty agent",
			ua:   "",
			want: map[string]string{"browser": "", "bver": "", "os": "", "osver": ""},
			dev:  domain.DeviceDesktop,
		},
	}

	p := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Parse(tc.ua)
			assert.Equal(t, tc.want["browser"], got.BrowserFamily)
			assert.Equal(t, tc.want["bver"], got.BrowserVersion)
			assert.Equal(t, tc.want["os"], got.OSFamily)
			assert.Equal(t, tc.want["osver"], got.OSVersion)
			assert.Equal(t, tc.dev, got.DeviceType)
		})
	}
}
