package handler

import "github.com/atelierhub/design-collab/internal/core/domain"

type preferenceGroupRequest struct {
	TopicName string   `json:"topicName" validate:"required"`
	Options   []string `json:"options" validate:"required,dive,required"`
}

type saveOptionsRequest struct {
	DesignPreferences []preferenceGroupRequest `json:"designPreferences" validate:"required,dive"`
}

type saveOptionsResponse struct {
	Message      string           `json:"message"`
	SavedOptions []*domain.Option `json:"savedOptions"`
}
