package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAudio(t *testing.T) {
	cases := []struct {
		name         string
		filename     string
		declaredType string
		size         int64
		ok           bool
	}{
		{"mp3 with declared type", "meeting.mp3", "audio/mpeg", 1024, true},
		{"extension only", "meeting.m4a", "", 1024, true},
		{"uppercase extension", "MEETING.WAV", "", 1024, true},
		{"video container", "capture.webm", "video/webm", 1024, true},
		{"declared audio with odd extension", "blob.bin", "audio/ogg", 1024, true},
		{"at the cap", "meeting.mp3", "audio/mpeg", MaxAudioBytes, true},
		{"over the cap", "meeting.mp3", "audio/mpeg", MaxAudioBytes + 1, false},
		{"document", "notes.pdf", "application/pdf", 1024, false},
		{"no extension no type", "recording", "", 1024, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAudio(tc.filename, tc.declaredType, tc.size)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidInput)
			}
		})
	}
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("we discussed the launch"))
	require.ErrorIs(t, ValidateText(""), ErrInvalidInput)
	require.ErrorIs(t, ValidateText("  \n\t  "), ErrInvalidInput)
}
