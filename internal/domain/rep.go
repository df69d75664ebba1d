package domain

// Rep representa um vendedor e suas métricas de desempenho.
// Cada métrica tem um campo *Change com a variação em relação ao período anterior.
type Rep struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	PhotoURL               string  `json:"photoUrl"`
	PlaybookAdoption       float64 `json:"playbookAdoption"`
	PlaybookAdoptionChange float64 `json:"playbookAdoptionChange"`
	AvgCallScore           float64 `json:"avgCallScore"`
	AvgCallScoreChange     float64 `json:"avgCallScoreChange"`
	WinRate                float64 `json:"winRate"`
	WinRateChange          float64 `json:"winRateChange"`
	ActiveDeals            int     `json:"activeDeals"`
	ActiveDealsChange      int     `json:"activeDealsChange"`
	PipelineValue          int64   `json:"pipelineValue"`
	PipelineValueChange    int64   `json:"pipelineValueChange"`
	AvgDealSize            int64   `json:"avgDealSize"`
	AvgDealSizeChange      int64   `json:"avgDealSizeChange"`
}
