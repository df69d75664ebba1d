package domain

import "slices"

// PlaybookAction é um comportamento esperado do vendedor em uma etapa do funil
type PlaybookAction struct {
	Action          string  `json:"action"`
	CompletionRate  float64 `json:"completionRate"`
	ImpactOnWinRate float64 `json:"impactOnWinRate"`
}

type StageActions struct {
	Stage   DealStage        `json:"stage"`
	Actions []PlaybookAction `json:"actions"`
}

func (s StageActions) Clone() StageActions {
	s.Actions = slices.Clone(s.Actions)
	return s
}
