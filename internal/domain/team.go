package domain

import "slices"

// TeamMember é a projeção de um Rep no ranking do time
type TeamMember struct {
	Rank     int     `json:"rank"`
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Adoption float64 `json:"adoption"`
	AvgScore float64 `json:"avgScore"`
	WinRate  float64 `json:"winRate"`
}

type CoachingPriority struct {
	Rank            int      `json:"rank"`
	Title           string   `json:"title"`
	Stage           string   `json:"stage"`
	SkipRate        float64  `json:"skipRate"`
	ImpactOnWinRate float64  `json:"impactOnWinRate"`
	AffectedReps    []string `json:"affectedReps"`
}

func (c CoachingPriority) Clone() CoachingPriority {
	c.AffectedReps = slices.Clone(c.AffectedReps)
	return c
}

// AdoptionTrend registra a evolução da adoção do playbook de um vendedor.
// Change deve ser sempre EndAdoption - StartAdoption.
type AdoptionTrend struct {
	RepName       string  `json:"repName"`
	StartAdoption float64 `json:"startAdoption"`
	EndAdoption   float64 `json:"endAdoption"`
	Change        float64 `json:"change"`
}
