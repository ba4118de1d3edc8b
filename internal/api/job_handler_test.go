package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/angadsxngh/rent-management-backend/internal/api/dto"
	"github.com/angadsxngh/rent-management-backend/internal/domain"
)

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) Enqueue(ctx context.Context, job, requestedBy string) error {
	args := m.Called(ctx, job, requestedBy)
	return args.Error(0)
}

func TestJobHandler_RunJob(t *testing.T) {
	tests := []struct {
		name   string
		job    string
		err    error
		status int
	}{
		{"queued", "accrual", nil, http.StatusAccepted},
		{"unknown job", "reindex", fmt.Errorf("unknown job: %w", domain.ErrValidation), http.StatusBadRequest},
		{"no queue", "sweep", domain.ErrTransientStore, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			service := new(MockJobService)
			service.On("Enqueue", mock.Anything, tt.job, ownerID).Return(tt.err)
			handler := NewJobHandler(service)
			c, w := newTestContext(http.MethodPost, "/jobs/"+tt.job, nil, ownerID, domain.RoleOwner)
			c.AddParam("job", tt.job)

			// Act
			handler.RunJob(c)

			// Assert
			assert.Equal(t, tt.status, w.Code)
			if tt.err == nil {
				assert.Equal(t, dto.JobRunResponse{Job: tt.job, Status: "queued"}, decode[dto.JobRunResponse](w))
			}
			service.AssertExpectations(t)
		})
	}
}
