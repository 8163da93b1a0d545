package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestinationURL(t *testing.T) {
	cases := []struct {
		name    string
		content json.RawMessage
		want    string
	}{
		{"present", json.RawMessage(`{"click_url":"https://example.com","headline":"Sale"}`), "https://example.com"},
		{"absent", json.RawMessage(`{"headline":"Sale"}`), ""},
		{"empty content", json.RawMessage(`{}`), ""},
		{"malformed content", json.RawMessage(`not json`), ""},
		{"nil content", nil, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Banner{Content: tc.content}
			assert.Equal(t, tc.want, b.DestinationURL())
		})
	}
}
