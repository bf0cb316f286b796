package models

// LeagueResponse is the body of GET /api/sleeper and GET /api/v1/league.
// The demo endpoint returns the same shape.
type LeagueResponse struct {
	TeamData       []TeamData     `json:"teamData"`
	LeagueInfo     LeagueInfo     `json:"leagueInfo"`
	LeagueAverages LeagueAverages `json:"leagueAverages"`
}

// TeamData is one classified team. Points are per-week averages; totals are season sums.
type TeamData struct {
	Name            string  `json:"name"`
	ProjectedPoints float64 `json:"projectedPoints"`
	ScoredPoints    float64 `json:"scoredPoints"`
	TotalProjected  float64 `json:"totalProjected"`
	TotalScored     float64 `json:"totalScored"`
	Weeks           int     `json:"weeks"`
	Quadrant        string  `json:"quadrant"` // "Good Teams", "Lucky Teams", "Unlucky Teams", "Bad Teams"
}

// LeagueInfo keeps Sleeper's snake_case field for the roster count.
type LeagueInfo struct {
	Name         string `json:"name"`
	Season       string `json:"season"`
	TotalRosters int    `json:"total_rosters"`
}

// LeagueAverages are the reference lines the quadrants are split on.
type LeagueAverages struct {
	Scored    float64 `json:"scored"`
	Projected float64 `json:"projected"`
}

// RankingsResponse represents the response from ranking teams
type RankingsResponse struct {
	LeagueInfo LeagueInfo     `json:"leagueInfo"`
	Rankings   []Ranking      `json:"rankings"`
	Counts     map[string]int `json:"counts"`
}

// Ranking represents one ranked team
type Ranking struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	ScoredPoints    float64 `json:"scoredPoints"`
	ProjectedPoints float64 `json:"projectedPoints"`
	Quadrant        string  `json:"quadrant"`
}

// QuadrantInfo describes one luck category
type QuadrantInfo struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
