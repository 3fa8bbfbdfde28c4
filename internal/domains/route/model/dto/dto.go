package dto

import (
	"github.com/google/uuid"

	"github.com/GitMovi52027/movi5/internal/domains/route/model"
	"github.com/GitMovi52027/movi5/shared"
	gDto "github.com/GitMovi52027/movi5/shared/dto"
	gModel "github.com/GitMovi52027/movi5/shared/model"
	"github.com/GitMovi52027/movi5/shared/timezone"
)

type CreateRouteRequest struct {
	Origin          string   `json:"origin" validate:"required,max=255"`
	Destination     string   `json:"destination" validate:"required,max=255"`
	BusPrice        *int64   `json:"busPrice" validate:"omitempty,gt=0"`
	BoatPrice       *int64   `json:"boatPrice" validate:"omitempty,gt=0"`
	StartTime       string   `json:"startTime" validate:"required,clock"`
	EndTime         string   `json:"endTime" validate:"required,clock"`
	FrequencyType   string   `json:"frequencyType" validate:"required,oneof=INTERVAL SPECIFIC"`
	IntervalMinutes *int     `json:"intervalMinutes" validate:"omitempty,gt=0"`
	SpecificTimes   []string `json:"specificTimes" validate:"omitempty,dive,clock"`
	OperatingDays   []string `json:"operatingDays" validate:"required,min=1,dive,weekday_es"`
	TripType        string   `json:"tripType" validate:"required,oneof=BUS BUS_BOAT BOAT"`
}

func (c *CreateRouteRequest) ToModel(user string) model.Route {
	return model.Route{
		ID:              uuid.NewString(),
		Origin:          c.Origin,
		Destination:     c.Destination,
		BusPrice:        c.BusPrice,
		BoatPrice:       c.BoatPrice,
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		FrequencyType:   c.FrequencyType,
		IntervalMinutes: c.IntervalMinutes,
		SpecificTimes:   c.SpecificTimes,
		OperatingDays:   c.OperatingDays,
		TripType:        c.TripType,
		Active:          true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRouteRequest struct {
	Origin          *string  `json:"origin" validate:"omitempty,max=255"`
	Destination     *string  `json:"destination" validate:"omitempty,max=255"`
	BusPrice        *int64   `json:"busPrice" validate:"omitempty,gt=0"`
	BoatPrice       *int64   `json:"boatPrice" validate:"omitempty,gt=0"`
	StartTime       *string  `json:"startTime" validate:"omitempty,clock"`
	EndTime         *string  `json:"endTime" validate:"omitempty,clock"`
	FrequencyType   *string  `json:"frequencyType" validate:"omitempty,oneof=INTERVAL SPECIFIC"`
	IntervalMinutes *int     `json:"intervalMinutes" validate:"omitempty,gt=0"`
	SpecificTimes   []string `json:"specificTimes" validate:"omitempty,dive,clock"`
	OperatingDays   []string `json:"operatingDays" validate:"omitempty,min=1,dive,weekday_es"`
	TripType        *string  `json:"tripType" validate:"omitempty,oneof=BUS BUS_BOAT BOAT"`
}

// MergeInto applies the present patch fields onto an existing route. The
// merged result is re-validated by the service before it is persisted.
func (u *UpdateRouteRequest) MergeInto(route *model.Route) {
	if u.Origin != nil {
		route.Origin = *u.Origin
	}

	if u.Destination != nil {
		route.Destination = *u.Destination
	}

	if u.BusPrice != nil {
		route.BusPrice = u.BusPrice
	}

	if u.BoatPrice != nil {
		route.BoatPrice = u.BoatPrice
	}

	if u.StartTime != nil {
		route.StartTime = *u.StartTime
	}

	if u.EndTime != nil {
		route.EndTime = *u.EndTime
	}

	if u.FrequencyType != nil {
		route.FrequencyType = *u.FrequencyType
	}

	if u.IntervalMinutes != nil {
		route.IntervalMinutes = u.IntervalMinutes
	}

	if u.SpecificTimes != nil {
		route.SpecificTimes = u.SpecificTimes
	}

	if u.OperatingDays != nil {
		route.OperatingDays = u.OperatingDays
	}

	if u.TripType != nil {
		route.TripType = *u.TripType
	}

	// An explicit frequency switch clears the counterpart column. When the
	// frequency type is untouched, mismatched patch fields stay on the merged
	// result so validation can reject them.
	if u.FrequencyType != nil {
		if route.FrequencyType == model.FrequencyTypeInterval && u.SpecificTimes == nil {
			route.SpecificTimes = nil
		} else if route.FrequencyType == model.FrequencyTypeSpecific && u.IntervalMinutes == nil {
			route.IntervalMinutes = nil
		}
	}
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type RouteResponse struct {
	ID              string   `json:"id"`
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	BusPrice        *int64   `json:"busPrice"`
	BoatPrice       *int64   `json:"boatPrice"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	FrequencyType   string   `json:"frequencyType"`
	IntervalMinutes *int     `json:"intervalMinutes"`
	SpecificTimes   []string `json:"specificTimes"`
	OperatingDays   []string `json:"operatingDays"`
	TripType        string   `json:"tripType"`
	Active          bool     `json:"isActive"`
	Frequency       string   `json:"frequency"`
	gDto.Metadata
}

func (r *RouteResponse) FromModel(mod model.Route) {
	r.ID = mod.ID
	r.Origin = mod.Origin
	r.Destination = mod.Destination
	r.BusPrice = mod.BusPrice
	r.BoatPrice = mod.BoatPrice
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.FrequencyType = mod.FrequencyType
	r.IntervalMinutes = mod.IntervalMinutes
	r.SpecificTimes = mod.SpecificTimes
	r.OperatingDays = mod.OperatingDays
	r.TripType = mod.TripType
	r.Active = mod.Active
	r.Frequency = model.FrequencyLabel(mod.FrequencyType, mod.IntervalMinutes, mod.SpecificTimes)
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoutesResponse struct {
	Routes    []RouteResponse `json:"routes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetRoutesResponse) FromModels(models []model.Route, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Routes = make([]RouteResponse, len(models))
	for i, mod := range models {
		r.Routes[i].FromModel(mod)
	}
}
