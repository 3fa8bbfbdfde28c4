package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GitMovi52027/movi5/internal/domains/route/model"
)

func TestFrequencyLabel(t *testing.T) {
	interval := func(minutes int) *int { return &minutes }

	tests := []struct {
		name            string
		frequencyType   string
		intervalMinutes *int
		specificTimes   []string
		want            string
	}{
		{
			name:            "interval below an hour",
			frequencyType:   model.FrequencyTypeInterval,
			intervalMinutes: interval(8),
			want:            "8 min",
		},
		{
			name:            "interval of exactly one hour",
			frequencyType:   model.FrequencyTypeInterval,
			intervalMinutes: interval(60),
			want:            "1 hora",
		},
		{
			name:            "interval of several hours",
			frequencyType:   model.FrequencyTypeInterval,
			intervalMinutes: interval(120),
			want:            "2 horas",
		},
		{
			name:            "interval rounded down to whole hours",
			frequencyType:   model.FrequencyTypeInterval,
			intervalMinutes: interval(90),
			want:            "1 hora",
		},
		{
			name:          "specific departure times",
			frequencyType: model.FrequencyTypeSpecific,
			specificTimes: []string{"06:00", "14:30"},
			want:          "Salidas: 06:00, 14:30",
		},
		{
			name:          "interval type without minutes",
			frequencyType: model.FrequencyTypeInterval,
			want:          "-",
		},
		{
			name:          "specific type without times",
			frequencyType: model.FrequencyTypeSpecific,
			want:          "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.FrequencyLabel(tt.frequencyType, tt.intervalMinutes, tt.specificTimes)
			assert.Equal(t, tt.want, got)
		})
	}
}
