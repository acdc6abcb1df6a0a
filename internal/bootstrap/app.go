package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"chromalyze-backend/internal/analyses"
	"chromalyze-backend/internal/classify"
	"chromalyze-backend/internal/retention"
	"chromalyze-backend/internal/shared/config"
	"chromalyze-backend/internal/shared/server"
	"chromalyze-backend/internal/shared/server/middleware"
	"chromalyze-backend/internal/shared/storage/db"
	"chromalyze-backend/internal/shared/storage/object"
	localstore "chromalyze-backend/internal/shared/storage/object/local"
	s3store "chromalyze-backend/internal/shared/storage/object/s3"
	"chromalyze-backend/internal/vision"
)

// trainedMinConfidence is the acceptance floor for the trained model stage;
// below it the cascade moves on to the geometric fallback.
const trainedMinConfidence = 0.75

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore

	AnalysesRepo    analyses.Repo
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	ResultCache     *analyses.ResultCache
	UploadLimiter   *middleware.SlidingWindowLimiter
	Detector        vision.Detector
	Cascade         *classify.Cascade
	Sweeper         *retention.Sweeper
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo analyses.Repo
	if sqlDB != nil {
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		repo = analyses.NewMemoryRepo()
	}

	detector := buildDetector(cfg)
	cascade, err := buildCascade(cfg)
	if err != nil {
		return nil, err
	}

	cache := analyses.NewResultCache(cfg.CacheMaxSize, cfg.CacheTTL, nil)
	limiter := middleware.NewSlidingWindowLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, nil)

	svc := &analyses.Service{
		Repo:             repo,
		Store:            store,
		Detector:         detector,
		Cascade:          cascade,
		StalenessHorizon: cfg.StalenessHorizon,
	}
	handler := analyses.NewHandler(svc, cache)

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		Store:           store,
		AnalysesRepo:    repo,
		AnalysesService: svc,
		AnalysisHandler: handler,
		ResultCache:     cache,
		UploadLimiter:   limiter,
		Detector:        detector,
		Cascade:         cascade,
		Sweeper: &retention.Sweeper{
			Store:           store,
			FileMaxAge:      cfg.MaxFileAge,
			Cache:           cache,
			Limiter:         limiter,
			FileInterval:    cfg.FileSweepInterval,
			CacheInterval:   cfg.CacheSweepInterval,
			LimiterInterval: cfg.RateSweepInterval,
		},
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: handler,
		UploadLimiter:   limiter,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: migrations failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("S3_BUCKET is required for the s3 object store")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	case "local":
		return localstore.New(cfg.LocalStoreDir)
	default:
		return nil, fmt.Errorf("unknown object store type %q", cfg.ObjectStoreType)
	}
}

// buildDetector loads the face cascade when the artifact exists; otherwise
// detection is disabled and classification falls through to pixel stages.
func buildDetector(cfg config.Config) vision.Detector {
	detector, err := vision.NewCascadeDetector(cfg.FaceCascadePath)
	if err != nil {
		log.Printf("bootstrap: face detector unavailable: %v", err)
		return vision.UnavailableDetector{}
	}
	return detector
}

func buildCascade(cfg config.Config) (*classify.Cascade, error) {
	var stages []classify.Stage

	trained, err := classify.NewTrainedStage(cfg.ModelWeightsPath)
	if err != nil {
		return nil, fmt.Errorf("load trained model: %w", err)
	}
	if trained.Enabled() {
		stages = append(stages, trained)
	} else {
		log.Printf("bootstrap: no trained model at %s; stage disabled", cfg.ModelWeightsPath)
	}

	stages = append(stages, classify.GeometryStage{})

	if strings.TrimSpace(cfg.VisionAPIKey) != "" {
		stages = append(stages, classify.NewRemoteStage(classify.RemoteConfig{
			APIKey:  cfg.VisionAPIKey,
			APIURL:  cfg.VisionAPIURL,
			Model:   cfg.VisionModel,
			Timeout: cfg.VisionTimeout,
			Probe:   classify.ConnectivityProbe(cfg.ProbeAddr, cfg.ProbeTimeout),
		}))
	} else {
		log.Printf("bootstrap: OPENROUTER_API_KEY empty; remote stage disabled")
	}

	stages = append(stages, classify.ColorimetricStage{})

	return classify.NewCascade(stages, map[string]float64{
		"trained": trainedMinConfidence,
	}), nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "development", "test", "local", "":
		return true
	default:
		return false
	}
}
