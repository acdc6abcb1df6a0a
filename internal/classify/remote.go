package classify

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const remotePrompt = `Analyze the facial features in this image and provide:
1. Face shape (choose one): Oval, Round, Square, Heart, Diamond, Oblong, Triangle
2. Color season (choose one): 
   - Spring: Light Spring, Warm Spring, Clear Spring
   - Summer: Light Summer, Cool Summer, Soft Summer
   - Autumn: Soft Autumn, Warm Autumn, Deep Autumn
   - Winter: Deep Winter, Cool Winter, Clear Winter

Respond with ONLY two lines:
Line 1: Face shape
Line 2: Color season`

// remoteConfidence is assigned to accepted remote answers.
const remoteConfidence = 0.9

// RemoteConfig configures the remote vision stage.
type RemoteConfig struct {
	APIKey  string
	APIURL  string
	Model   string
	Timeout time.Duration

	// Probe reports whether the network is reachable before a call is
	// attempted. Nil uses a TCP dial against a public DNS resolver.
	Probe func() bool

	HTTPClient *http.Client
}

// RemoteStage asks a hosted vision model for both labels in one call. Any
// failure along the way is a decline so local stages can still answer.
type RemoteStage struct {
	apiKey     string
	apiURL     string
	model      string
	probe      func() bool
	httpClient *http.Client
}

// NewRemoteStage constructs the stage. An empty API key produces a stage
// that declines everything.
func NewRemoteStage(cfg RemoteConfig) *RemoteStage {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	probe := cfg.Probe
	if probe == nil {
		probe = func() bool { return probeConnectivity("8.8.8.8:53", 3*time.Second) }
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &RemoteStage{
		apiKey:     strings.TrimSpace(cfg.APIKey),
		apiURL:     cfg.APIURL,
		model:      cfg.Model,
		probe:      probe,
		httpClient: httpClient,
	}
}

// ConnectivityProbe returns a probe that dials addr over TCP.
func ConnectivityProbe(addr string, timeout time.Duration) func() bool {
	return func() bool { return probeConnectivity(addr, timeout) }
}

func probeConnectivity(addr string, timeout time.Duration) bool {
	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (s *RemoteStage) Name() string { return "remote" }

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatContentPart `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (s *RemoteStage) Classify(ctx context.Context, subj *Subject) (Result, error) {
	if s.apiKey == "" {
		return Result{}, fmt.Errorf("%w: no api key configured", ErrDecline)
	}
	if len(subj.Bytes) == 0 {
		return Result{}, fmt.Errorf("%w: no image bytes", ErrDecline)
	}
	if !s.probe() {
		return Result{}, fmt.Errorf("%w: no network connectivity", ErrDecline)
	}

	shape, season, err := s.callOnce(ctx, subj.Bytes)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrDecline, err)
	}
	if !KnownFaceShape(shape) || !KnownSeason(season) {
		return Result{}, fmt.Errorf("%w: unrecognized labels %q / %q", ErrDecline, shape, season)
	}
	return Result{
		FaceShape:   shape,
		ColorSeason: season,
		Confidence:  remoteConfidence,
		Stage:       s.Name(),
	}, nil
}

func (s *RemoteStage) callOnce(ctx context.Context, imageBytes []byte) (string, string, error) {
	encoded := base64.StdEncoding.EncodeToString(imageBytes)
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []chatContentPart{
					{Type: "text", Text: remotePrompt},
					{Type: "image_url", ImageURL: &chatImageURL{
						URL: "data:image/jpeg;base64," + encoded,
					}},
				},
			},
		},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("vision api status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", "", fmt.Errorf("vision api response parse: %w", err)
	}
	if parsed.Error != nil {
		return "", "", fmt.Errorf("vision api error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return "", "", fmt.Errorf("vision api response missing choices")
	}

	lines := strings.Split(strings.TrimSpace(parsed.Choices[0].Message.Content), "\n")
	if len(lines) < 2 {
		return "", "", fmt.Errorf("vision api answer has %d lines, want 2", len(lines))
	}
	return strings.TrimSpace(lines[0]), strings.TrimSpace(lines[1]), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
