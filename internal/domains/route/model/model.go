package model

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/GitMovi52027/movi5/shared/model"
)

const (
	TableName  = "routes"
	EntityName = "route"

	FieldID              = "id"
	FieldOrigin          = "origin"
	FieldDestination     = "destination"
	FieldBusPrice        = "bus_price"
	FieldBoatPrice       = "boat_price"
	FieldStartTime       = "start_time"
	FieldEndTime         = "end_time"
	FieldFrequencyType   = "frequency_type"
	FieldIntervalMinutes = "interval_minutes"
	FieldSpecificTimes   = "specific_times"
	FieldOperatingDays   = "operating_days"
	FieldTripType        = "trip_type"
	FieldActive          = "active"
)

const (
	FrequencyTypeInterval = "INTERVAL"
	FrequencyTypeSpecific = "SPECIFIC"
)

const (
	TripTypeBus     = "BUS"
	TripTypeBusBoat = "BUS_BOAT"
	TripTypeBoat    = "BOAT"
)

const minutesPerHour = 60

type Route struct {
	ID              string         `db:"id"`
	Origin          string         `db:"origin"`
	Destination     string         `db:"destination"`
	BusPrice        *int64         `db:"bus_price"`
	BoatPrice       *int64         `db:"boat_price"`
	StartTime       string         `db:"start_time"`
	EndTime         string         `db:"end_time"`
	FrequencyType   string         `db:"frequency_type"`
	IntervalMinutes *int           `db:"interval_minutes"`
	SpecificTimes   pq.StringArray `db:"specific_times"`
	OperatingDays   pq.StringArray `db:"operating_days"`
	TripType        string         `db:"trip_type"`
	Active          bool           `db:"active"`
	model.Metadata
}

// FrequencyLabel derives the human readable frequency description shown to
// customers, e.g. "8 min", "1 hora", "2 horas" or "Salidas: 06:00, 14:30".
func FrequencyLabel(frequencyType string, intervalMinutes *int, specificTimes []string) string {
	if frequencyType == FrequencyTypeInterval && intervalMinutes != nil && *intervalMinutes > 0 {
		if *intervalMinutes >= minutesPerHour {
			hours := *intervalMinutes / minutesPerHour
			if hours == 1 {
				return "1 hora"
			}

			return fmt.Sprintf("%d horas", hours)
		}

		return fmt.Sprintf("%d min", *intervalMinutes)
	}

	if frequencyType == FrequencyTypeSpecific && len(specificTimes) > 0 {
		return "Salidas: " + strings.Join(specificTimes, ", ")
	}

	return "-"
}
