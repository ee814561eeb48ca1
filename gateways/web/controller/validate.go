package controller

import (
	"errors"
	"fmt"
	"strings"
)

// MaxAudioBytes caps uploads so the base64 inline payload stays inside the
// model API request limit.
const MaxAudioBytes = 10 * 1024 * 1024

var acceptedAudioExtensions = map[string]bool{
	"mp3":  true,
	"wav":  true,
	"m4a":  true,
	"mp4":  true,
	"aac":  true,
	"ogg":  true,
	"webm": true,
}

var (
	// ErrInvalidInput wraps every local validation rejection. No remote call
	// and no state transition happens for these.
	ErrInvalidInput = errors.New("invalid input")

	ErrQuotaExceeded      = errors.New("monthly quota exceeded")
	ErrSubmissionInFlight = errors.New("a submission is already being processed")
)

// ValidateAudio checks an upload locally before any remote call. The declared
// type is accepted for any audio/video family; otherwise the extension must be
// in the accepted set.
func ValidateAudio(filename, declaredType string, size int64) error {
	if size > MaxAudioBytes {
		return fmt.Errorf("%w: file is too large, please upload a file smaller than 10MB", ErrInvalidInput)
	}

	if strings.HasPrefix(declaredType, "audio/") || strings.HasPrefix(declaredType, "video/") {
		return nil
	}

	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}
	if !acceptedAudioExtensions[ext] {
		return fmt.Errorf("%w: unsupported file type, please upload an audio file (MP3, WAV, M4A)", ErrInvalidInput)
	}

	return nil
}

// ValidateText rejects empty or whitespace-only transcripts.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: transcript text is empty", ErrInvalidInput)
	}

	return nil
}
