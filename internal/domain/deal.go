// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "slices"

type DealStage string

const (
	StageDiscovery   DealStage = "Discovery"
	StageDemo        DealStage = "Demo"
	StageNegotiation DealStage = "Negotiation"
	StageClosedWon   DealStage = "Closed Won"
	StageClosedLost  DealStage = "Closed Lost"
)

// RiskLevel é a faixa de risco exibida no dashboard de oportunidades
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "high"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelLow    RiskLevel = "low"
)

// Limites inferiores (inclusivos) das faixas de risco
const (
	HighRiskThreshold   = 80
	MediumRiskThreshold = 60
)

// ParseRiskLevel converte o valor recebido na query string em uma faixa de risco
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(s) {
	case RiskLevelHigh, RiskLevelMedium, RiskLevelLow:
		return RiskLevel(s), true
	}
	return "", false
}

type Deal struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Value             int64     `json:"value"`
	Stage             DealStage `json:"stage"`
	RepID             string    `json:"repId"`
	RepName           string    `json:"repName"`
	RiskScore         int       `json:"riskScore"`
	DaysInStage       int       `json:"daysInStage"`
	RootCauses        []string  `json:"rootCauses"`
	RecommendedAction string    `json:"recommendedAction"`
	LastActivity      string    `json:"lastActivity"`
}

// RiskLevel classifica o riskScore nas faixas usadas pelo dashboard
func (d Deal) RiskLevel() RiskLevel {
	switch {
	case d.RiskScore >= HighRiskThreshold:
		return RiskLevelHigh
	case d.RiskScore >= MediumRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}

// Clone copia a deal. RootCauses nunca sai nil para serializar como [].
func (d Deal) Clone() Deal {
	d.RootCauses = cloneStrings(d.RootCauses)
	return d
}

func cloneStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}

type RiskBucket struct {
	Count      int   `json:"count"`
	TotalValue int64 `json:"totalValue"`
}

// RiskSummary agrega quantidade e valor das oportunidades por faixa de risco
type RiskSummary struct {
	High   RiskBucket `json:"high"`
	Medium RiskBucket `json:"medium"`
	Low    RiskBucket `json:"low"`
}

// Add contabiliza a oportunidade na faixa correspondente
func (s *RiskSummary) Add(d Deal) {
	var bucket *RiskBucket
	switch d.RiskLevel() {
	case RiskLevelHigh:
		bucket = &s.High
	case RiskLevelMedium:
		bucket = &s.Medium
	default:
		bucket = &s.Low
	}

	bucket.Count++
	bucket.TotalValue += d.Value
}
