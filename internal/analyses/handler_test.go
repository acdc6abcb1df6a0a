package analyses

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"chromalyze-backend/internal/classify"
)

func newTestRouter(t *testing.T, svc *Service, cache *ResultCache) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc, cache)
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func multipartUpload(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadAcceptsImage(t *testing.T) {
	cls := &stubClassifier{result: classify.Result{FaceShape: "Round", ColorSeason: "Soft Summer", Stage: "geometry"}}
	svc, _ := newTestService(t, cls, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	body, contentType := multipartUpload(t, "file", "me.png", pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Status     string `json:"status"`
		AnalysisID string `json:"analysis_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Fatalf("status field = %q, want success", resp.Status)
	}
	if resp.AnalysisID == "" {
		t.Fatal("expected an analysis_id")
	}
	svc.Wait(resp.AnalysisID)
}

func TestUploadRejectsUnsupportedFile(t *testing.T) {
	svc, _ := newTestService(t, &stubClassifier{}, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	body, contentType := multipartUpload(t, "file", "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400; body %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponseShape
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error.Code != ErrorCodeValidation {
		t.Fatalf("error code = %q, want %q", resp.Error.Code, ErrorCodeValidation)
	}
}

func TestUploadRequiresFilePart(t *testing.T) {
	svc, _ := newTestService(t, &stubClassifier{}, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	body, contentType := multipartUpload(t, "attachment", "me.png", pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

// ErrorResponseShape mirrors the standardized error envelope for assertions.
type ErrorResponseShape struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestResultsUnknownID(t *testing.T) {
	svc, _ := newTestService(t, &stubClassifier{}, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/results/no-such-id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404; body %s", rec.Code, rec.Body.String())
	}
	var resp ErrorResponseShape
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error.Code != ErrorCodeNotFound {
		t.Fatalf("error code = %q, want %q", resp.Error.Code, ErrorCodeNotFound)
	}
}

func TestResultsCompletedIncludesRecommendations(t *testing.T) {
	cls := &stubClassifier{result: classify.Result{FaceShape: "Heart", ColorSeason: "Clear Winter", Stage: "geometry"}}
	svc, _ := newTestService(t, cls, &stubDetector{})
	cache := NewResultCache(8, time.Hour, nil)
	r := newTestRouter(t, svc, cache)

	body, contentType := multipartUpload(t, "file", "me.png", pngBytes(t))
	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("upload status = %d; body %s", rec.Code, rec.Body.String())
	}
	var uploaded struct {
		AnalysisID string `json:"analysis_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	svc.Wait(uploaded.AnalysisID)

	req = httptest.NewRequest(http.MethodGet, "/api/results/"+uploaded.AnalysisID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("results status = %d; body %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Status  string `json:"status"`
		Results struct {
			FaceShape     string `json:"face_shape"`
			ColorSeason   string `json:"color_season"`
			FacesDetected int    `json:"faces_detected"`
			Palette       struct {
				Recommended []struct {
					Name string `json:"name"`
					Hex  string `json:"hex"`
				} `json:"recommended"`
			} `json:"palette"`
			FaceShapeTips struct {
				Description string `json:"description"`
			} `json:"face_shape_tips"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode results: %v", err)
	}
	if resp.Status != StatusCompleted {
		t.Fatalf("status = %q, want %q", resp.Status, StatusCompleted)
	}
	if resp.Results.FaceShape != "Heart" || resp.Results.ColorSeason != "Clear Winter" {
		t.Fatalf("labels = %q/%q, want Heart/Clear Winter", resp.Results.FaceShape, resp.Results.ColorSeason)
	}
	if len(resp.Results.Palette.Recommended) == 0 {
		t.Fatal("expected palette recommendations for a known season")
	}
	if resp.Results.FaceShapeTips.Description == "" {
		t.Fatal("expected face shape tips for a known shape")
	}
}

func TestResultsCachedResponseIsByteIdentical(t *testing.T) {
	cls := &stubClassifier{result: classify.Result{FaceShape: "Oval", ColorSeason: "Warm Autumn", Stage: "default"}}
	svc, _ := newTestService(t, cls, &stubDetector{})
	cache := NewResultCache(8, time.Hour, nil)
	r := newTestRouter(t, svc, cache)

	data := pngBytes(t)
	analysis, err := svc.Submit(context.Background(), "me.png", int64(len(data)), bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	svc.Wait(analysis.ID)

	fetch := func() []byte {
		req := httptest.NewRequest(http.MethodGet, "/api/results/"+analysis.ID, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("results status = %d; body %s", rec.Code, rec.Body.String())
		}
		return rec.Body.Bytes()
	}

	first := fetch()
	second := fetch()
	if !bytes.Equal(first, second) {
		t.Fatalf("repeated polls differ:\n%s\n%s", first, second)
	}
	if cache.Len() != 1 {
		t.Fatalf("cache holds %d entries, want 1", cache.Len())
	}
}

func TestResultsFailedIncludesDetail(t *testing.T) {
	svc, _ := newTestService(t, &stubClassifier{}, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	detail := "open stored image: gone"
	if err := svc.Repo.Create(context.Background(), Analysis{
		ID: "failed-1", Status: StatusPending, FileName: "a.png", StorageKey: "failed-1.png", CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Repo.UpdateStatus(context.Background(), "failed-1", Update{Status: StatusFailed, ErrorDetail: &detail}); err != nil {
		t.Fatalf("update: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/results/failed-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d; body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Status      string `json:"status"`
		ErrorDetail string `json:"error_detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != StatusFailed {
		t.Fatalf("status = %q, want %q", resp.Status, StatusFailed)
	}
	if resp.ErrorDetail != detail {
		t.Fatalf("error_detail = %q, want %q", resp.ErrorDetail, detail)
	}
}

func TestResultsPendingReturnsStatusOnly(t *testing.T) {
	svc, _ := newTestService(t, &stubClassifier{}, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	if err := svc.Repo.Create(context.Background(), Analysis{
		ID: "pending-1", Status: StatusPending, FileName: "a.png", StorageKey: "pending-1.png", CreatedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/results/pending-1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["status"] != StatusPending {
		t.Fatalf("status = %v, want %q", resp["status"], StatusPending)
	}
	if _, ok := resp["results"]; ok {
		t.Fatal("pending response should not carry results")
	}
}

func TestHealthEndpoint(t *testing.T) {
	svc, _ := newTestService(t, &stubClassifier{}, &stubDetector{})
	r := newTestRouter(t, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Fatalf("body = %s", got)
	}
}
