package fiber

type PointResponse struct {
	Label string `json:"label" example:"Mar 5"`
	Count int64  `json:"count" example:"3"`
}

type SeriesResponse struct {
	Collection      string          `json:"collection" example:"users"`
	Range           string          `json:"range" example:"7d"`
	Start           string          `json:"start" example:"2024-03-03T15:30:00Z"`
	End             string          `json:"end" example:"2024-03-10T15:30:00Z"`
	IntervalSeconds int64           `json:"interval_seconds" example:"86400"`
	Total           int64           `json:"total" example:"3"`
	Points          []PointResponse `json:"points"`
}

type RangeResponse struct {
	Range           string `json:"range" example:"7d"`
	LookbackSeconds int64  `json:"lookback_seconds" example:"604800"`
	IntervalSeconds int64  `json:"interval_seconds" example:"86400"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message,omitempty" example:"unsupported time range: \"5y\""`
}
