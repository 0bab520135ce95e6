package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/azroofops/backend/internal/ai"
	"github.com/azroofops/backend/internal/config"
	"github.com/azroofops/backend/internal/db"
	"github.com/azroofops/backend/internal/geocode"
	"github.com/azroofops/backend/internal/http/handlers"
	"github.com/azroofops/backend/internal/http/middleware"

	_ "github.com/azroofops/backend/docs"
)

func Router(cfg config.Config, store *db.Store, adapter ai.Adapter, geocoder geocode.Geocoder, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.MaxMultipartMemory = cfg.MaxUploadSizeMB << 20

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Admin-Key", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSAllowed}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Store:     store,
		AI:        adapter,
		Geocoder:  geocoder,
		Validator: validator.New(),
		Logger:    logger,
		AdminKey:  cfg.AdminKey,
		Threshold: cfg.MatchThreshold,
	}

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/schedule/parse", h.ScheduleParse)
		api.GET("/jobs", h.JobsList)
		api.GET("/jobs/:id", h.JobDetails)
		api.GET("/reps", h.RepsList)
		api.GET("/timeslots", h.TimeSlotsList)
		api.GET("/geo/region", h.GeoRegion)
		api.GET("/geo/adjacency", h.GeoAdjacency)
		api.GET("/runs/latest", h.RunsLatest)
		api.POST("/addresses/resolve", h.AddressResolve)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.POST("/schedule/import", h.ScheduleImport)
		admin.POST("/addresses/index", h.AddressIndexUpload)
		admin.POST("/jobs/:id/geocode", h.JobGeocode)
		admin.POST("/assist/suggest", h.AssistSuggest)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
