package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
)

type JobService interface {
	Enqueue(ctx context.Context, job, requestedBy string) error
}

type JobHandler struct {
	BaseHandler
	service JobService
}

func NewJobHandler(service JobService) *JobHandler {
	return &JobHandler{service: service}
}

// RunJob godoc
// @Summary Queue an accrual or sweep run
// @Description The scheduler process picks the job up from the queue. A run already in progress is not duplicated.
// @Tags    jobs
// @Produce json
// @Security BearerAuth
// @Param   job path string true "Job name" Enums(accrual, sweep)
// @Success 202 {object} dto.JobRunResponse
// @Failure 400 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Router  /jobs/{job} [post]
func (h *JobHandler) RunJob(c *gin.Context) {
	userID, ok := h.Caller(c)
	if !ok {
		return
	}

	job := c.Param("job")
	if err := h.service.Enqueue(h.RequestCtx(c), job, userID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.JobRunResponse{Job: job, Status: "queued"})
}
