package analyses

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chromalyze-backend/internal/recommend"
	"chromalyze-backend/internal/shared/server/respond"
	"chromalyze-backend/internal/shared/telemetry"
)

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc   *Service
	Cache *ResultCache
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, cache *ResultCache) *Handler {
	return &Handler{Svc: svc, Cache: cache}
}

// RegisterRoutes attaches analysis routes to the router group. The rate
// limiter only guards uploads; result polling stays unthrottled.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, uploadMiddleware ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, uploadMiddleware...), h.upload)
	rg.POST("/upload", handlers...)
	rg.GET("/results/:id", h.results)
	rg.GET("/health", h.health)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is required", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to read upload", nil)
		return
	}
	defer f.Close()

	analysis, err := h.Svc.Submit(c.Request.Context(), fileHeader.Filename, fileHeader.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFileName):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file name is required", nil)
		case errors.Is(err, ErrInvalidFileType):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "only jpg, jpeg, png and bmp files are accepted", nil)
		case errors.Is(err, ErrFileTooLarge):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file exceeds the 10 MB limit", nil)
		case errors.Is(err, ErrEmptyFile):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "file is empty", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to accept upload", nil)
		}
		return
	}

	c.Set("analysisId", analysis.ID)
	respond.OK(c, gin.H{
		"status":      "success",
		"analysis_id": analysis.ID,
	})
}

// resultsPayload is the completed-analysis response body.
type resultsPayload struct {
	Status  string         `json:"status"`
	Results resultsDetails `json:"results"`
}

type resultsDetails struct {
	FaceShape     string                  `json:"face_shape"`
	ColorSeason   string                  `json:"color_season"`
	FacesDetected int                     `json:"faces_detected"`
	Palette       recommend.Palette       `json:"palette"`
	FaceShapeTips recommend.FaceShapeTips `json:"face_shape_tips"`
}

func (h *Handler) results(c *gin.Context) {
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "analysis id is required", nil)
		return
	}
	c.Set("analysisId", analysisID)

	if h.Cache != nil {
		if body, ok := h.Cache.Get(analysisID); ok {
			respond.Raw(c, http.StatusOK, body)
			return
		}
	}

	analysis, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to load analysis", nil)
		}
		return
	}

	switch analysis.Status {
	case StatusCompleted:
		h.respondCompleted(c, analysis)
	case StatusFailed:
		detail := "analysis failed"
		if analysis.ErrorDetail != nil {
			detail = *analysis.ErrorDetail
		}
		respond.OK(c, gin.H{
			"status":       StatusFailed,
			"error_detail": detail,
		})
	default:
		respond.OK(c, gin.H{"status": analysis.Status})
	}
}

func (h *Handler) respondCompleted(c *gin.Context, analysis Analysis) {
	faceShape := ""
	if analysis.FaceShape != nil {
		faceShape = *analysis.FaceShape
	}
	colorSeason := ""
	if analysis.ColorSeason != nil {
		colorSeason = *analysis.ColorSeason
	}

	palette, _ := recommend.PaletteFor(colorSeason)
	payload := resultsPayload{
		Status: StatusCompleted,
		Results: resultsDetails{
			FaceShape:     faceShape,
			ColorSeason:   colorSeason,
			FacesDetected: analysis.FacesDetected,
			Palette:       palette,
			FaceShapeTips: recommend.TipsFor(faceShape),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		telemetry.Error("results.marshal_failed", map[string]any{
			"analysis_id": analysis.ID,
			"error":       err.Error(),
		})
		respond.OK(c, payload)
		return
	}
	if h.Cache != nil {
		h.Cache.Set(analysis.ID, body)
	}
	respond.Raw(c, http.StatusOK, body)
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{"status": "ok"})
}
