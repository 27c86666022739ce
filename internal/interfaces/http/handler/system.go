package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/geotrail/backend/internal/infrastructure/persistence"
	"github.com/geotrail/backend/internal/infrastructure/scheduler"
	"github.com/geotrail/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SystemHandler handles health and system endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	redis     *redis.Client
	scheduler *scheduler.Scheduler
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler. The Redis client may be
// nil when the layer cache runs in memory; the scheduler may be nil
// when background jobs are disabled.
func NewSystemHandler(db *persistence.Database, redisClient *redis.Client, jobScheduler *scheduler.Scheduler) *SystemHandler {
	return &SystemHandler{
		db:        db,
		redis:     redisClient,
		scheduler: jobScheduler,
		startTime: time.Now(),
	}
}

// SystemInfoResponse represents the system information response
type SystemInfoResponse struct {
	Name      string `json:"name" example:"Geotrail API"`
	Version   string `json:"version" example:"1.0.0"`
	GoVersion string `json:"go_version" example:"go1.25.5"`
	Uptime    string `json:"uptime" example:"1h30m45s"`
}

// GetSystemInfo godoc
// @Summary      Get system information
// @Description  Returns basic system information including version and uptime
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=SystemInfoResponse}
// @Router       /system/info [get]
func (h *SystemHandler) GetSystemInfo(c *gin.Context) {
	info := SystemInfoResponse{
		Name:      "Geotrail API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(info))
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2026-08-29T12:00:00Z"`
}

// Health godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=HealthResponse}
// @Router       /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}))
}

// ReadinessResponse reports the state of each backing service
type ReadinessResponse struct {
	Status   string            `json:"status" example:"ready"`
	Services map[string]string `json:"services"`
}

// Ready godoc
// @Summary      Readiness probe
// @Description  Checks the database and, when configured, the Redis layer cache
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=ReadinessResponse}
// @Failure      503 {object} dto.Response{data=ReadinessResponse}
// @Router       /ready [get]
func (h *SystemHandler) Ready(c *gin.Context) {
	services := map[string]string{}
	ready := true

	if err := h.db.Ping(); err != nil {
		services["database"] = err.Error()
		ready = false
	} else {
		services["database"] = "ok"
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.redis.Ping(ctx).Err(); err != nil {
			services["redis"] = err.Error()
			ready = false
		} else {
			services["redis"] = "ok"
		}
	}

	status := "ready"
	code := http.StatusOK
	if !ready {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, dto.NewSuccessResponse(ReadinessResponse{
		Status:   status,
		Services: services,
	}))
}

// JobStatusResponse describes a background job tracked by the scheduler
type JobStatusResponse struct {
	ID          string     `json:"id"`
	StructureID *string    `json:"structure_id,omitempty"`
	JobType     string     `json:"job_type" example:"MAP_CAPTURE"`
	Status      string     `json:"status" example:"SUCCESS"`
	Error       string     `json:"error,omitempty"`
	RetryCount  int        `json:"retry_count"`
	MaxRetries  int        `json:"max_retries"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func jobStatusResponse(job scheduler.Job) JobStatusResponse {
	resp := JobStatusResponse{
		ID:          job.ID.String(),
		JobType:     string(job.JobType),
		Status:      string(job.Status),
		Error:       job.Error,
		RetryCount:  job.RetryCount,
		MaxRetries:  job.MaxRetries,
		StartedAt:   job.StartedAt,
		CompletedAt: job.CompletedAt,
	}
	if job.StructureID != nil {
		id := job.StructureID.String()
		resp.StructureID = &id
	}
	return resp
}

// ListJobs godoc
// @Summary      List recent background jobs
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.Response{data=[]JobStatusResponse}
// @Security     BearerAuth
// @Router       /system/jobs [get]
func (h *SystemHandler) ListJobs(c *gin.Context) {
	if h.scheduler == nil {
		h.Success(c, []JobStatusResponse{})
		return
	}

	jobs := h.scheduler.RecentJobs()
	resp := make([]JobStatusResponse, 0, len(jobs))
	for _, job := range jobs {
		resp = append(resp, jobStatusResponse(job))
	}
	h.Success(c, resp)
}

// GetJob godoc
// @Summary      Get the status of a background job
// @Tags         system
// @Produce      json
// @Param        id path string true "Job ID"
// @Success      200 {object} dto.Response{data=JobStatusResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /system/jobs/{id} [get]
func (h *SystemHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid job ID format")
		return
	}

	if h.scheduler == nil {
		h.NotFound(c, "Job not found")
		return
	}
	job, ok := h.scheduler.JobByID(id)
	if !ok {
		h.NotFound(c, "Job not found")
		return
	}
	h.Success(c, jobStatusResponse(job))
}
