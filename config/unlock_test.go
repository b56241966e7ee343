package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUnlockKind(t *testing.T) {
	tests := []struct {
		in   string
		want UnlockKind
		ok   bool
	}{
		{"brass_key", UnlockBrassKey, true},
		{"silver_key", UnlockSilverKey, true},
		{"crowbar", UnlockCrowbar, true},
		{"none", UnlockNone, false},
		{"", UnlockNone, false},
		{"skeleton_key", UnlockNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseUnlockKind(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
	}
}

func TestUnlockKindStringRoundTrip(t *testing.T) {
	for _, k := range []UnlockKind{UnlockBrassKey, UnlockSilverKey, UnlockCrowbar} {
		got, ok := ParseUnlockKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	assert.Equal(t, "none", UnlockNone.String())
	assert.Equal(t, "none", UnlockKind(99).String())
}

func TestUnlockKindLabel(t *testing.T) {
	assert.Empty(t, UnlockNone.Label())
	assert.Equal(t, "Brass Key", UnlockBrassKey.Label())
	assert.Equal(t, "Crowbar", UnlockCrowbar.Label())
}
