package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixmate_backend/internal/middleware"
	"fixmate_backend/internal/services"
	"fixmate_backend/internal/services/dto"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobService.ListAll()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"jobs": dto.NewJobResponses(jobs)})
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusCreated, gin.H{"job": dto.NewJobResponse(job)})
}

// ListMine returns the caller's own jobs; the owner comes from the session,
// never from a query parameter.
func (h *JobHandler) ListMine(c *gin.Context) {
	jobs, err := h.jobService.ListMine(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"jobs": dto.NewJobResponses(jobs)})
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Complete(c *gin.Context) {
	job, err := h.jobService.Complete(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Cancel(c *gin.Context) {
	job, err := h.jobService.Cancel(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Assign(c *gin.Context) {
	var req dto.AssignRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Assign(c.Param("id"), middleware.GetUserID(c), req.WorkerID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Fund(c *gin.Context) {
	job, err := h.jobService.Fund(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Start(c *gin.Context) {
	job, err := h.jobService.Start(c.Param("id"), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Apply(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusCreated, gin.H{"job": dto.NewJobResponse(job)})
}

func (h *JobHandler) Review(c *gin.Context) {
	var req dto.ReviewRequest
	if !h.BindJSON(c, &req) {
		return
	}

	job, err := h.jobService.Review(c.Param("id"), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	OK(c, http.StatusOK, gin.H{"job": dto.NewJobResponse(job)})
}
