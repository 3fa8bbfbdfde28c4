package dto

// StatsResponse feeds the admin dashboard cards. Field names match the
// front-end contract.
type StatsResponse struct {
	TotalRoutes       int `json:"totalRutas"`
	ActiveRoutes      int `json:"rutasActivas"`
	PendingRequests   int `json:"solicitudesPendientes"`
	CompletedRequests int `json:"solicitudesCompletadas"`
}
