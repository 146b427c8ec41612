// Package insight adapts an external text-generation service to the
// usecase.InsightProvider port.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bayufn/artha/internal/domain"
)

// GeminiProvider calls a Gemini-style generateContent endpoint and parses
// the structured JSON insight list out of the reply.
type GeminiProvider struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   zerolog.Logger
}

// NewGeminiProvider creates a provider for the given endpoint and key.
func NewGeminiProvider(endpoint, apiKey string, timeout time.Duration, logger zerolog.Logger) *GeminiProvider {
	return &GeminiProvider{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type insightItem struct {
	Text  string `json:"text"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Generate asks the model for 5-7 insights about the payload. The reply
// must be a JSON array of {text, icon, color} objects.
func (p *GeminiProvider) Generate(ctx context.Context, payload domain.InsightPayload) ([]domain.Insight, error) {
	prompt, err := buildPrompt(payload)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMIMEType: "application/json"},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insight request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insight request failed: status %d", resp.StatusCode)
	}

	var reply generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, fmt.Errorf("decode insight response: %w", err)
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("insight response has no candidates")
	}

	text := strings.TrimSpace(reply.Candidates[0].Content.Parts[0].Text)

	var items []insightItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("decode insight list: %w", err)
	}

	insights := make([]domain.Insight, 0, len(items))
	for _, it := range items {
		insights = append(insights, domain.Insight{Text: it.Text, Icon: it.Icon, Color: it.Color})
	}

	p.logger.Debug().
		Str("period", payload.PeriodLabel).
		Int("insights", len(insights)).
		Msg("insights generated")

	return insights, nil
}

func buildPrompt(payload domain.InsightPayload) (string, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("PERAN: Anda adalah seorang analis keuangan ahli. ")
	b.WriteString(fmt.Sprintf("KONTEKS: Anda sedang menganalisis data keuangan pengguna untuk periode %q. ", payload.PeriodLabel))
	b.WriteString("DATA PENGGUNA (JSON): ")
	b.Write(data)
	b.WriteString(" TUGAS: Hasilkan 5-7 poin insight yang paling relevan. ")
	b.WriteString("Fokus pada tren, anomali, perbandingan dengan anggaran, dan progres target. ")
	b.WriteString(`FORMAT OUTPUT WAJIB: Array JSON yang valid dengan struktur {"text": "...", "icon": "...", "color": "..."}. `)
	b.WriteString(`DAFTAR YANG DIIZINKAN: icon: "CheckCircleIcon", "TrendingUpIcon", "TrendingDownIcon", "PercentIcon", "ReceiptIcon", "LightbulbIcon", "TargetIcon". `)
	b.WriteString(`color: "text-green-500", "text-red-500", "text-yellow-500", "text-blue-500", "text-indigo-500", "text-teal-500", "text-primary-500".`)
	return b.String(), nil
}
