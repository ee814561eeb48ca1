package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	config "github.com/meetingmind/backend/config/web"
	"github.com/meetingmind/backend/gateways/web/entity"
)

const systemInstruction = `You are an expert executive assistant and meeting scribe.
Your task is to analyze the provided meeting input (either audio or text transcript) and produce a structured analysis.
You must extract:
1. A verbatim-style transcript (if audio is provided) or cleaned up text (if text is provided).
2. A concise summary of key discussion points.
3. A list of specific decisions made during the meeting.
4. A list of action items, identifying who is responsible and the due date (if mentioned). If no due date is mentioned, use "TBD". If no owner is clear, use "Unassigned".

Output strict JSON.`

// responseSchema constrains the model output to the analysis shape.
const responseSchema = `{
	"type": "OBJECT",
	"properties": {
		"transcript": {"type": "STRING", "description": "The full text transcript of the meeting."},
		"summary_points": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "List of key points discussed."},
		"decisions": {"type": "ARRAY", "items": {"type": "STRING"}, "description": "List of decisions agreed upon."},
		"action_items": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"owner": {"type": "STRING", "description": "Person responsible"},
					"description": {"type": "STRING", "description": "Task description"},
					"due_date": {"type": "STRING", "description": "Due date or TBD", "nullable": true}
				},
				"required": ["owner", "description"]
			},
			"description": "List of action items."
		}
	},
	"required": ["transcript", "summary_points", "decisions", "action_items"]
}`

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

type (
	generateRequest struct {
		SystemInstruction *content         `json:"system_instruction,omitempty"`
		Contents          []content        `json:"contents"`
		GenerationConfig  generationConfig `json:"generationConfig"`
	}

	content struct {
		Role  string `json:"role,omitempty"`
		Parts []part `json:"parts"`
	}

	part struct {
		Text       string      `json:"text,omitempty"`
		InlineData *inlineData `json:"inline_data,omitempty"`
	}

	inlineData struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}

	generationConfig struct {
		ResponseMimeType string          `json:"responseMimeType"`
		ResponseSchema   json.RawMessage `json:"responseSchema"`
	}

	generateResponse struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
)

func New(cfg *config.GeminiConfig) *Client {
	log := slog.Default()
	log.Debug("creating gemini client",
		slog.String("base_url", cfg.BaseURL),
		slog.String("model", cfg.Model),
		slog.Bool("api_key_set", cfg.APIKey != ""))
	return &Client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{},
		log:        log,
	}
}

// AnalyzeAudio sends the audio bytes inline and returns the structured
// analysis. The MIME type is the declared one when present, otherwise derived
// from the filename extension.
func (c *Client) AnalyzeAudio(ctx context.Context, data []byte, filename, declaredType string) (*entity.AnalysisResult, error) {
	mimeType := MimeTypeFor(filename, declaredType)
	c.log.Info("AnalyzeAudio called",
		slog.String("filename", filename),
		slog.String("mime_type", mimeType),
		slog.Int("size", len(data)))

	parts := []part{
		{InlineData: &inlineData{
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(data),
		}},
		{Text: "Analyze this meeting audio. Generate the transcript, summary, decisions, and action items."},
	}

	return c.generate(ctx, parts)
}

// AnalyzeText sends a pasted transcript for analysis.
func (c *Client) AnalyzeText(ctx context.Context, transcript string) (*entity.AnalysisResult, error) {
	c.log.Info("AnalyzeText called", slog.Int("transcript_length", len(transcript)))

	parts := []part{
		{Text: fmt.Sprintf("Here is the transcript/notes of a meeting:\n\n%s\n\nAnalyze this text. Generate the summary, decisions, and action items. Retain the transcript text in the output.", transcript)},
	}

	return c.generate(ctx, parts)
}

func (c *Client) generate(ctx context.Context, parts []part) (*entity.AnalysisResult, error) {
	body := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents: []content{
			{Role: "user", Parts: parts},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   json.RawMessage(responseSchema),
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		c.log.Error("failed to marshal request", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		c.log.Error("failed to create HTTP request", slog.String("error", err.Error()))
		return nil, err
	}

	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("HTTP request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("API request failed",
			slog.Int("status_code", resp.StatusCode),
			slog.String("body", string(respBody)))
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Error("failed to decode response", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	text := ""
	if len(result.Candidates) > 0 && len(result.Candidates[0].Content.Parts) > 0 {
		text = result.Candidates[0].Content.Parts[0].Text
	}
	if text == "" {
		c.log.Warn("model returned no content")
		return nil, fmt.Errorf("no content returned from the model")
	}

	var analysis entity.AnalysisResult
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		c.log.Error("failed to parse analysis JSON", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to parse analysis JSON: %w", err)
	}
	c.log.Info("analysis received",
		slog.Int("summary_points", len(analysis.SummaryPoints)),
		slog.Int("decisions", len(analysis.Decisions)),
		slog.Int("action_items", len(analysis.ActionItems)))

	return &analysis, nil
}
