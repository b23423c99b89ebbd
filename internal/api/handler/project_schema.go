package handler

import (
	"time"

	"github.com/atelierhub/design-collab/internal/core/domain"
)

// projectRequest is shared by create and update: updates replace every field
// here, they are not a partial patch.
type projectRequest struct {
	Name           string    `json:"name" validate:"required"`
	StartDate      time.Time `json:"startDate" validate:"required"`
	EndDate        time.Time `json:"endDate" validate:"required"`
	Budget         float64   `json:"budget" validate:"required,gt=0"`
	ClientUsername string    `json:"clientUsername" validate:"required"`
}

type projectResponse struct {
	Project *domain.Project `json:"project"`
}
