package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GitMovi52027/movi5/shared/dto"
)

type sortableModel struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
}

func TestRepository_OrderByClause(t *testing.T) {
	repo := NewRepository[sortableModel]("sortable", "sortables", "id", nil, nil)

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{
			name:     "known column ascending",
			params:   dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			expected: "ORDER BY name ASC",
		},
		{
			name:     "known column descending",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: dto.SortDirDesc},
			expected: "ORDER BY created_at DESC",
		},
		{
			name:     "lowercase direction normalized",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: "desc"},
			expected: "ORDER BY created_at DESC",
		},
		{
			name:     "unknown column dropped",
			params:   dto.QueryParams{SortBy: "unknown_column", SortDir: dto.SortDirAsc},
			expected: "",
		},
		{
			name:     "sql in sort column dropped",
			params:   dto.QueryParams{SortBy: "(SELECT CASE WHEN (SELECT password FROM users LIMIT 1) > 'm' THEN id ELSE name END)", SortDir: dto.SortDirAsc},
			expected: "",
		},
		{
			name:     "sql in sort direction dropped",
			params:   dto.QueryParams{SortBy: "created_at", SortDir: "ASC; DROP TABLE users"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, repo.orderByClause(tt.params))
		})
	}
}
