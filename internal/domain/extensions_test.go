package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtensionSet_Match(t *testing.T) {
	set := NewExtensionSet("flac")

	tests := []struct {
		path string
		want bool
	}{
		{path: "/music/a.flac", want: true},
		{path: "/music/A.FLAC", want: true},
		{path: "/music/a.Flac", want: true},
		{path: "/music/a.flac.txt", want: false},
		{path: "/music/c.txt", want: false},
		{path: "/music/flac", want: false},
		{path: "/music/.flac", want: true},
		{path: "/music/album.flac/cover.jpg", want: false},
		{path: "/music/a.", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, set.Match(tt.path))
		})
	}
}

func TestNewExtensionSet_Normalizes(t *testing.T) {
	set := NewExtensionSet(".FLAC", " Fla ", "flac", "", ".")

	assert.Equal(t, []string{"fla", "flac"}, set.List())
	assert.True(t, set.Match("x.fla"))
}

func TestNewExtensionSet_DefaultsToFlac(t *testing.T) {
	assert.Equal(t, []string{DefaultExtension}, NewExtensionSet().List())
	assert.Equal(t, []string{DefaultExtension}, NewExtensionSet("", "  ").List())
}
