package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeal_RiskLevel(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  RiskLevel
	}{
		{name: "limite inferior de alto risco", score: 80, want: RiskLevelHigh},
		{name: "alto risco", score: 85, want: RiskLevelHigh},
		{name: "limite inferior de risco médio", score: 60, want: RiskLevelMedium},
		{name: "risco médio", score: 79, want: RiskLevelMedium},
		{name: "baixo risco", score: 59, want: RiskLevelLow},
		{name: "risco zero", score: 0, want: RiskLevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Deal{RiskScore: tt.score}.RiskLevel())
		})
	}
}

func TestParseRiskLevel(t *testing.T) {
	level, ok := ParseRiskLevel("medium")
	assert.True(t, ok)
	assert.Equal(t, RiskLevelMedium, level)

	_, ok = ParseRiskLevel("critical")
	assert.False(t, ok)

	_, ok = ParseRiskLevel("")
	assert.False(t, ok)
}

func TestRiskSummary_Add(t *testing.T) {
	var summary RiskSummary
	summary.Add(Deal{RiskScore: 85, Value: 50000})
	summary.Add(Deal{RiskScore: 72, Value: 35000})
	summary.Add(Deal{RiskScore: 45, Value: 75000})
	summary.Add(Deal{RiskScore: 90, Value: 1000})

	assert.Equal(t, RiskBucket{Count: 2, TotalValue: 51000}, summary.High)
	assert.Equal(t, RiskBucket{Count: 1, TotalValue: 35000}, summary.Medium)
	assert.Equal(t, RiskBucket{Count: 1, TotalValue: 75000}, summary.Low)
}

func TestDeal_Clone(t *testing.T) {
	original := Deal{ID: "1", RootCauses: []string{"a", "b"}}
	clone := original.Clone()
	clone.RootCauses[0] = "changed"

	assert.Equal(t, "a", original.RootCauses[0])
}

func TestDeal_CloneNilRootCauses(t *testing.T) {
	clone := Deal{ID: "9"}.Clone()
	assert.NotNil(t, clone.RootCauses)

	data, err := json.Marshal(clone)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"rootCauses":[]`)

	call := Call{ID: "9"}.Clone()
	assert.NotNil(t, call.Participants)
}
