package dto

import (
	"github.com/google/uuid"

	"github.com/GitMovi52027/movi5/internal/domains/configuration/model"
	gModel "github.com/GitMovi52027/movi5/shared/model"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type SetConfigurationRequest struct {
	Key         string  `json:"key" validate:"required,max=255"`
	Value       string  `json:"value" validate:"required"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

func (c *SetConfigurationRequest) ToModel(user string) model.Configuration {
	return model.Configuration{
		ID:          uuid.NewString(),
		Key:         c.Key,
		Value:       c.Value,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// SetWebhookRequest is the payload of the dedicated webhook settings endpoint.
type SetWebhookRequest struct {
	URL string `json:"url" validate:"omitempty,url,max=2048"`
}

type ConfigurationResponse struct {
	Key         string  `json:"key"`
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

func (r *ConfigurationResponse) FromModel(mod model.Configuration) {
	r.Key = mod.Key
	r.Value = mod.Value
	r.Description = mod.Description
}

type GetConfigurationsResponse struct {
	Configurations []ConfigurationResponse `json:"configurations"`
}

func (r *GetConfigurationsResponse) FromModels(models []model.Configuration) {
	r.Configurations = make([]ConfigurationResponse, len(models))
	for i, mod := range models {
		r.Configurations[i].FromModel(mod)
	}
}

type WebhookResponse struct {
	URL string `json:"url"`
}
