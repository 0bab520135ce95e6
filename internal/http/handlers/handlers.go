package handlers

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/azroofops/backend/internal/ai"
	"github.com/azroofops/backend/internal/db"
	"github.com/azroofops/backend/internal/geo"
	"github.com/azroofops/backend/internal/geocode"
	"github.com/azroofops/backend/internal/models"
	"github.com/azroofops/backend/internal/schedule"
	"github.com/azroofops/backend/internal/service"
	"github.com/azroofops/backend/internal/timeslot"
)

type Handler struct {
	Store     *db.Store
	AI        ai.Adapter
	Geocoder  geocode.Geocoder
	Validator *validator.Validate
	Logger    zerolog.Logger
	AdminKey  string
	Threshold float64
}

func (h *Handler) Healthz(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	if err := h.Store.Ping(ctx); err != nil {
		writeError(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type ScheduleParseRequest struct {
	Text   string       `json:"text" validate:"required"`
	Roster []models.Rep `json:"reps"`
}

// @Summary Parse schedule text
// @Description Split pasted schedule text into day sections and job records without persisting anything
// @Tags schedule
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/schedule/parse [post]
func (h *Handler) ScheduleParse(c *gin.Context) {
	var req ScheduleParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	roster := req.Roster
	if len(roster) == 0 {
		stored, err := h.Store.ListReps(c.Request.Context())
		if err != nil {
			writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load reps", err.Error())
			return
		}
		roster = stored
	}

	parser := schedule.NewParser()
	results := parser.Parse(req.Text, roster)

	jobCount := 0
	for _, r := range results {
		jobCount += len(r.Jobs)
	}
	c.JSON(http.StatusOK, gin.H{"sections": results, "job_count": jobCount})
}

// @Summary Import schedule text
// @Description Parse pasted schedule text and persist the resulting jobs and pre-assignments
// @Tags schedule
// @Accept json
// @Produce json
// @Success 200 {object} service.RunSummary
// @Failure 400 {object} map[string]any
// @Router /api/schedule/import [post]
func (h *Handler) ScheduleImport(c *gin.Context) {
	var req ScheduleParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	roster := req.Roster
	if len(roster) > 0 {
		if _, err := h.Store.InsertReps(c.Request.Context(), roster); err != nil {
			h.Logger.Warn().Err(err).Msg("roster insert skipped")
		}
	} else {
		stored, err := h.Store.ListReps(c.Request.Context())
		if err != nil {
			writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to load reps", err.Error())
			return
		}
		roster = stored
	}

	runID, err := h.Store.CreateRun(c.Request.Context(), "RUNNING")
	if err != nil {
		h.Logger.Error().Err(err).Msg("failed to create run")
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to create run", err.Error())
		return
	}

	ingest := service.IngestService{Store: h.Store, Parser: schedule.NewParser(), Logger: h.Logger}
	debug := c.Query("debug")
	summary, err := ingest.IngestSchedule(c.Request.Context(), req.Text, roster, debug == "1" || strings.EqualFold(debug, "true"))
	status := "SUCCESS"
	if err != nil {
		status = "FAILED"
	}
	b, _ := json.Marshal(summary)
	if finishErr := h.Store.FinishRun(c.Request.Context(), runID, status, b); finishErr != nil {
		h.Logger.Error().Err(finishErr).Msg("failed to finish run")
	}

	if err != nil {
		h.Logger.Error().Err(err).Msg("schedule import failed")
		writeError(c, http.StatusInternalServerError, "INGEST_ERROR", "Schedule import failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

// @Summary Latest run
// @Tags runs
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/runs/latest [get]
func (h *Handler) RunsLatest(c *gin.Context) {
	result, err := h.Store.GetLatestRun(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusNotFound, "NOT_FOUND", "No runs found", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) JobsList(c *gin.Context) {
	dateKey := strings.TrimSpace(c.Query("date"))
	city := c.Query("city")
	q := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	items, err := h.Store.ListJobs(c.Request.Context(), dateKey, city, q, limit, offset)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list jobs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "limit": limit, "offset": offset})
}

func (h *Handler) JobDetails(c *gin.Context) {
	id := c.Param("id")
	job, err := h.Store.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Job not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get job", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"job":    job,
		"region": geo.RegionOf(job.City),
		"slot":   timeslot.Classify(job.OriginalTimeframe),
	})
}

func (h *Handler) RepsList(c *gin.Context) {
	items, err := h.Store.ListReps(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list reps", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) TimeSlotsList(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": timeslot.Slots})
}

// @Summary Region lookup
// @Tags geo
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} map[string]any
// @Router /api/geo/region [get]
func (h *Handler) GeoRegion(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "city is required", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"city":   city,
		"region": geo.RegionOf(city),
		"known":  geo.IsKnownCity(city),
	})
}

func (h *Handler) GeoAdjacency(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "city is required", nil)
		return
	}
	other := strings.TrimSpace(c.Query("other"))
	if other != "" {
		c.JSON(http.StatusOK, gin.H{"city": city, "other": other, "adjacent": geo.AreAdjacent(city, other)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"city": city, "neighbors": geo.Neighbors(city)})
}

type AddressResolveRequest struct {
	Address   string  `json:"address" validate:"required"`
	Threshold float64 `json:"threshold"`
}

// @Summary Resolve an address
// @Description Fuzzy-match an address against the stored canonical index
// @Tags addresses
// @Accept json
// @Produce json
// @Success 200 {object} models.MatchResult
// @Failure 400 {object} map[string]any
// @Router /api/addresses/resolve [post]
func (h *Handler) AddressResolve(c *gin.Context) {
	var req AddressResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}
	if err := h.Validator.Struct(req); err != nil {
		writeError(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", err.Error())
		return
	}

	threshold := h.Threshold
	if req.Threshold > 0 {
		threshold = req.Threshold
	}
	resolver := service.ResolveService{Store: h.Store, Logger: h.Logger, Threshold: threshold}
	result, err := resolver.Resolve(c.Request.Context(), req.Address)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to resolve address", err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary Upload address index
// @Description Replace the canonical address index from a CSV of address,external_id rows
// @Tags addresses
// @Accept multipart/form-data
// @Produce json
// @Param addresses formData file true "addresses.csv"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /api/addresses/index [post]
func (h *Handler) AddressIndexUpload(c *gin.Context) {
	file, err := c.FormFile("addresses")
	if err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "addresses file required", nil)
		return
	}
	if !validateExt(file.Filename) {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "file must be .csv", nil)
		return
	}

	entries, errs := parseAddressIndexCSV(file)
	if len(errs) > 0 {
		writeError(c, http.StatusBadRequest, "CSV_PARSE_ERROR", "CSV validation errors", errs)
		return
	}
	if len(entries) == 0 {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "no address rows found", nil)
		return
	}

	resolver := service.ResolveService{Store: h.Store, Logger: h.Logger, Threshold: h.Threshold}
	inserted, expanded, err := resolver.RebuildIndex(c.Request.Context(), entries)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to rebuild address index", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"addresses":  len(entries),
		"variations": expanded,
		"inserted":   inserted,
	})
}

// @Summary Geocode a job
// @Tags jobs
// @Produce json
// @Success 200 {object} geocode.Result
// @Router /api/jobs/{id}/geocode [post]
func (h *Handler) JobGeocode(c *gin.Context) {
	id := c.Param("id")
	job, err := h.Store.GetJob(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Job not found", nil)
			return
		}
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to get job", err.Error())
		return
	}

	query := geocode.BuildQuery(job.Address, job.City, "AZ")
	result, err := h.Geocoder.Geocode(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, geocode.ErrNotFound) {
			writeError(c, http.StatusNotFound, "NOT_FOUND", "Address could not be geocoded", nil)
			return
		}
		writeError(c, http.StatusBadGateway, "GEOCODE_ERROR", "Geocoding failed", err.Error())
		return
	}

	hub, distanceKm := geo.NearestHub(result.Lat, result.Lon)
	c.JSON(http.StatusOK, gin.H{
		"job_id":          job.ID,
		"query":           query,
		"result":          result,
		"nearest_hub":     hub,
		"hub_distance_km": distanceKm,
	})
}

type AssistSuggestRequest struct {
	DateKey string `json:"date"`
}

// @Summary Suggest assignments
// @Description Ask the assignment adapter to propose rep/slot pairings for unassigned jobs
// @Tags assist
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /api/assist/suggest [post]
func (h *Handler) AssistSuggest(c *gin.Context) {
	var req AssistSuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid payload", err.Error())
		return
	}

	items, err := h.Store.ListJobs(c.Request.Context(), req.DateKey, "", "", 200, 0)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list jobs", err.Error())
		return
	}
	var jobs []models.Job
	for _, item := range items {
		job, ok := item["job"].(models.Job)
		if !ok {
			continue
		}
		if repID, _ := item["rep_id"].(*string); repID != nil {
			continue
		}
		jobs = append(jobs, job)
	}

	reps, err := h.Store.ListReps(c.Request.Context())
	if err != nil {
		writeError(c, http.StatusInternalServerError, "DB_ERROR", "Failed to list reps", err.Error())
		return
	}
	if len(jobs) == 0 || len(reps) == 0 {
		c.JSON(http.StatusOK, gin.H{"suggestions": []ai.Suggestion{}, "latency_ms": 0})
		return
	}

	suggestions, latencyMs, err := h.AI.SuggestAssignments(c.Request.Context(), jobs, reps)
	if err != nil {
		writeError(c, http.StatusBadGateway, "ASSIST_ERROR", "Assignment suggestion failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions, "latency_ms": latencyMs})
}

func writeError(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

func parseAddressIndexCSV(file *multipart.FileHeader) (map[string]string, []string) {
	f, err := file.Open()
	if err != nil {
		return nil, []string{err.Error()}
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, []string{"failed to read header"}
	}
	index := headerIndex(headers)
	var errs []string
	out := map[string]string{}

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			errs = append(errs, err.Error())
			continue
		}

		addr := getFieldAny(rec, index, "address", "street_address", "full_address")
		externalID := getFieldAny(rec, index, "external_id", "id", "job_id", "acculynx_id")
		if addr == "" || externalID == "" {
			errs = append(errs, "address and external_id required")
			continue
		}
		if _, exists := out[addr]; exists {
			continue
		}
		out[addr] = externalID
	}
	return out, errs
}

func headerIndex(headers []string) map[string]int {
	idx := map[string]int{}
	for i, h := range headers {
		idx[normalizeHeader(h)] = i
	}
	return idx
}

func getField(rec []string, idx map[string]int, name string) string {
	pos, ok := idx[name]
	if !ok || pos >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[pos])
}

func getFieldAny(rec []string, idx map[string]int, names ...string) string {
	for _, name := range names {
		if v := getField(rec, idx, normalizeHeader(name)); v != "" {
			return v
		}
	}
	return ""
}

func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "\ufeff", "")
	return strings.ToLower(strings.TrimSpace(h))
}

func validateExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".csv"
}
