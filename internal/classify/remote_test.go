package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func remoteServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing bearer token")
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Messages) != 1 || len(req.Messages[0].Content) != 2 {
			t.Errorf("expected one message with text and image parts, got %+v", req.Messages)
		}
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": content}},
			},
		})
	}))
}

func newTestRemote(url string) *RemoteStage {
	return NewRemoteStage(RemoteConfig{
		APIKey: "test-key",
		APIURL: url,
		Model:  "test-model",
		Probe:  func() bool { return true },
	})
}

func TestRemoteStageParsesTwoLineAnswer(t *testing.T) {
	srv := remoteServer(t, "Heart\nClear Winter", http.StatusOK)
	defer srv.Close()

	res, err := newTestRemote(srv.URL).Classify(context.Background(), &Subject{Bytes: []byte("img")})
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if res.FaceShape != "Heart" || res.ColorSeason != "Clear Winter" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRemoteStageDeclinesOnMalformedAnswer(t *testing.T) {
	srv := remoteServer(t, "just one line", http.StatusOK)
	defer srv.Close()

	if _, err := newTestRemote(srv.URL).Classify(context.Background(), &Subject{Bytes: []byte("img")}); err == nil {
		t.Fatalf("expected decline for one-line answer")
	}
}

func TestRemoteStageDeclinesOnUnknownLabels(t *testing.T) {
	srv := remoteServer(t, "Hexagon\nNeon Monsoon", http.StatusOK)
	defer srv.Close()

	if _, err := newTestRemote(srv.URL).Classify(context.Background(), &Subject{Bytes: []byte("img")}); err == nil {
		t.Fatalf("expected decline for unknown labels")
	}
}

func TestRemoteStageDeclinesOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	if _, err := newTestRemote(srv.URL).Classify(context.Background(), &Subject{Bytes: []byte("img")}); err == nil {
		t.Fatalf("expected decline on 5xx")
	}
}

func TestRemoteStageDeclinesWithoutConnectivity(t *testing.T) {
	stage := NewRemoteStage(RemoteConfig{
		APIKey: "test-key",
		APIURL: "http://example.invalid",
		Model:  "test-model",
		Probe:  func() bool { return false },
	})
	if _, err := stage.Classify(context.Background(), &Subject{Bytes: []byte("img")}); err == nil {
		t.Fatalf("expected decline when probe fails")
	}
}

func TestRemoteStageDeclinesWithoutAPIKey(t *testing.T) {
	stage := NewRemoteStage(RemoteConfig{Probe: func() bool {
		t.Fatalf("probe must not run without an api key")
		return true
	}})
	if _, err := stage.Classify(context.Background(), &Subject{Bytes: []byte("img")}); err == nil {
		t.Fatalf("expected decline without api key")
	}
}
