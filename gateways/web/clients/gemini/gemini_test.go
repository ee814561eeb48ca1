package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	config "github.com/meetingmind/backend/config/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return New(&config.GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.5-flash",
		BaseURL: url,
	})
}

func modelResponse(t *testing.T, analysisJSON string) []byte {
	t.Helper()
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": analysisJSON}}}},
		},
	}
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	return data
}

func TestAnalyzeText(t *testing.T) {
	analysisJSON := `{
		"transcript": "we talked",
		"summary_points": ["A", "B"],
		"decisions": [],
		"action_items": [{"owner": "Bob", "description": "Follow up", "due_date": null}]
	}`

	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "we met")
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMimeType)

		w.Write(modelResponse(t, analysisJSON))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).AnalyzeText(context.Background(), "we met")
	require.NoError(t, err)

	assert.Equal(t, "/models/gemini-2.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)

	// The payload must come through verbatim and in order.
	assert.Equal(t, "we talked", result.Transcript)
	assert.Equal(t, []string{"A", "B"}, result.SummaryPoints)
	assert.Empty(t, result.Decisions)
	require.Len(t, result.ActionItems, 1)
	assert.Equal(t, "Bob", result.ActionItems[0].Owner)
	assert.Equal(t, "Follow up", result.ActionItems[0].Description)
	assert.Nil(t, result.ActionItems[0].DueDate)
}

func TestAnalyzeAudio_InlinePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.NotNil(t, req.Contents[0].Parts[0].InlineData)
		assert.Equal(t, "audio/wav", req.Contents[0].Parts[0].InlineData.MimeType)
		assert.NotEmpty(t, req.Contents[0].Parts[0].InlineData.Data)

		w.Write(modelResponse(t, `{"transcript":"t","summary_points":[],"decisions":[],"action_items":[]}`))
	}))
	defer srv.Close()

	result, err := testClient(srv.URL).AnalyzeAudio(context.Background(), []byte("RIFF"), "standup.wav", "")
	require.NoError(t, err)
	assert.Equal(t, "t", result.Transcript)
}

func TestGenerate_StatusCodeSurfacesInError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).AnalyzeText(context.Background(), "we met")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "413")
}

func TestGenerate_EmptyResponseIsAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).AnalyzeText(context.Background(), "we met")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no content returned")
}

func TestMimeTypeFor(t *testing.T) {
	// Declared type wins.
	assert.Equal(t, "audio/flac", MimeTypeFor("a.mp3", "audio/flac"))

	assert.Equal(t, "audio/mpeg", MimeTypeFor("a.mp3", ""))
	assert.Equal(t, "audio/wav", MimeTypeFor("a.wav", ""))
	assert.Equal(t, "audio/mp4", MimeTypeFor("a.m4a", ""))
	assert.Equal(t, "audio/mp4", MimeTypeFor("a.mp4", ""))
	assert.Equal(t, "audio/aac", MimeTypeFor("a.aac", ""))
	assert.Equal(t, "audio/ogg", MimeTypeFor("a.ogg", ""))
	assert.Equal(t, "video/webm", MimeTypeFor("a.webm", ""))
	assert.Equal(t, "audio/wav", MimeTypeFor("a.WAV", ""))

	// Unknown or missing extensions fall back to mp3.
	assert.Equal(t, "audio/mpeg", MimeTypeFor("a.xyz", ""))
	assert.Equal(t, "audio/mpeg", MimeTypeFor("noext", ""))
}
