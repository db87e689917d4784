package assistant

import (
	"bytes"
	"context"
	"dermacare-service/internal/app/config"
	"dermacare-service/internal/app/contracts"
	"dermacare-service/internal/pkg/constvars"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const promptTemplate = `You are Dr. AI, a professional dermatology assistant for an Indian healthcare platform.
Respond to this patient query in a helpful, professional manner. Keep responses concise and relevant to dermatology.
Always suggest consulting with certified dermatologists for serious concerns.
Patient query: %s`

type fallbackReply struct {
	keyword string
	reply   string
}

// canned replies matched by keyword when the model is unreachable or
// no API key is configured; checked in order, first match wins
var fallbackReplies = []fallbackReply{
	{"hello", "Namaste! I'm Dr. AI, your dedicated dermatology assistant. I can help you find the best skin specialists across India, book appointments, or answer your skin care questions. What would you like to know?"},
	{"appointment", "Booking is easy! Find a hospital, select your city, choose a dermatologist and pick your preferred time slot. We have 500+ certified doctors across 150+ hospitals in India!"},
	{"hours", "Our partner hospitals operate 24/7! Most dermatologists are available Mon-Sat, 9 AM to 6 PM. Many also offer evening and weekend slots for your convenience."},
	{"insurance", "Most of our partner hospitals accept major insurance plans including CGHS, ECHS, and private insurers. Please verify with your chosen hospital during booking."},
	{"emergency", "For urgent skin emergencies like severe allergic reactions, rapidly spreading rashes, or suspicious mole changes, please visit the nearest emergency room or call 102 immediately!"},
	{"telemedicine", "Yes! We offer secure video consultations with certified dermatologists. Perfect for follow-ups, prescription renewals, and non-emergency consultations from home."},
	{"tips", "Daily skin care tips: use sunscreen SPF 30+, moisturize twice daily, drink plenty of water, eat antioxidant-rich foods, and avoid harsh scrubbing. Need personalized advice? Book a consultation!"},
}

const fallbackDefaultReply = "That's a great question! For personalized medical advice, I recommend consulting with one of our board-certified dermatologists. Shall I help you find one in your area?"

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type assistantService struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	apiKey     string
	model      string
	Log        *zap.Logger
}

func NewAssistantService(assistantConfig config.Assistant, logger *zap.Logger) contracts.AssistantService {
	perSecond := rate.Limit(float64(assistantConfig.MaxRequestsPerMinute) / 60.0)
	return &assistantService{
		httpClient: &http.Client{
			Timeout: time.Duration(assistantConfig.RequestTimeoutInSecs) * time.Second,
		},
		limiter: rate.NewLimiter(perSecond, assistantConfig.MaxRequestsPerMinute),
		baseURL: assistantConfig.BaseURL,
		apiKey:  assistantConfig.APIKey,
		model:   assistantConfig.Model,
		Log:     logger,
	}
}

// Ask answers a patient message, preferring the model and degrading to the
// keyword table so chat never returns an error to the client.
func (s *assistantService) Ask(ctx context.Context, message string) (string, string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if s.apiKey == "" {
		return fallbackFor(message), constvars.ChatSourceFallback, nil
	}

	if !s.limiter.Allow() {
		s.Log.Warn("assistantService.Ask rate limit reached, using fallback reply",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return fallbackFor(message), constvars.ChatSourceFallback, nil
	}

	reply, err := s.generateContent(ctx, message)
	if err != nil {
		s.Log.Error("assistantService.Ask model call failed, using fallback reply",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return fallbackFor(message), constvars.ChatSourceFallback, nil
	}

	return reply, constvars.ChatSourceModel, nil
}

func (s *assistantService) generateContent(ctx context.Context, message string) (string, error) {
	payload := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(promptTemplate, message)}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 200,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("model request failed with status %d", resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model response carried no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

func fallbackFor(message string) string {
	lower := strings.ToLower(message)
	for _, entry := range fallbackReplies {
		if strings.Contains(lower, entry.keyword) {
			return entry.reply
		}
	}
	return fallbackDefaultReply
}
