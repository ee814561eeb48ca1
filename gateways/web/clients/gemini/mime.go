package gemini

import "strings"

var mimeByExtension = map[string]string{
	"mp3":  "audio/mpeg",
	"wav":  "audio/wav",
	"m4a":  "audio/mp4",
	"mp4":  "audio/mp4",
	"aac":  "audio/aac",
	"ogg":  "audio/ogg",
	"webm": "video/webm",
}

const defaultMimeType = "audio/mpeg"

// MimeTypeFor resolves the payload MIME type: a declared Content-Type wins,
// otherwise the filename extension is looked up, unknown extensions default to
// audio/mpeg.
func MimeTypeFor(filename, declaredType string) string {
	if declaredType != "" {
		return declaredType
	}

	ext := ""
	if i := strings.LastIndex(filename, "."); i >= 0 {
		ext = strings.ToLower(filename[i+1:])
	}
	if mimeType, ok := mimeByExtension[ext]; ok {
		return mimeType
	}

	return defaultMimeType
}
