package domain

import (
	"bytes"
	"slices"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type TranscriptEntry struct {
	Timestamp string `json:"timestamp"`
	Speaker   string `json:"speaker"`
	Text      string `json:"text"`
}

type CallAction struct {
	Action     string `json:"action"`
	Completed  bool   `json:"completed"`
	ImpactText string `json:"impactText,omitempty"`
}

type CoachingTip struct {
	Timestamp   string `json:"timestamp"`
	Context     string `json:"context"`
	Suggestion  string `json:"suggestion"`
	ExampleLink string `json:"exampleLink,omitempty"`
}

type InsightType string

const (
	InsightSentiment    InsightType = "sentiment"
	InsightObjections   InsightType = "objections"
	InsightCompetitors  InsightType = "competitors"
	InsightStakeholders InsightType = "stakeholders"
)

// InsightValue é serializado como string ou como lista de strings,
// dependendo de qual dos campos está preenchido
type InsightValue struct {
	Text  string
	Items []string
}

func TextValue(s string) InsightValue {
	return InsightValue{Text: s}
}

// ListValue monta um valor de lista. Sem itens, continua sendo lista ([]).
func ListValue(items ...string) InsightValue {
	if items == nil {
		items = []string{}
	}
	return InsightValue{Items: items}
}

func (v InsightValue) IsList() bool {
	return v.Items != nil
}

func (v InsightValue) MarshalJSON() ([]byte, error) {
	if v.IsList() {
		return json.Marshal(v.Items)
	}
	return json.Marshal(v.Text)
}

func (v *InsightValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		items := make([]string, 0)
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*v = InsightValue{Items: items}
		return nil
	}

	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return err
	}
	*v = InsightValue{Text: text}
	return nil
}

type AIInsight struct {
	Type  InsightType  `json:"type"`
	Icon  string       `json:"icon"`
	Title string       `json:"title"`
	Value InsightValue `json:"value"`
}

// CallDetail é a visão composta de uma ligação: não é persistida,
// é montada a cada consulta a partir da Call e do conteúdo auxiliar
type CallDetail struct {
	Call          Call              `json:"call"`
	Transcript    []TranscriptEntry `json:"transcript"`
	Actions       []CallAction      `json:"actions"`
	CoachingTip   CoachingTip       `json:"coachingTip"`
	AIInsights    []AIInsight       `json:"aiInsights"`
	FollowUpEmail string            `json:"followUpEmail"`
}

func CloneInsights(in []AIInsight) []AIInsight {
	out := slices.Clone(in)
	for i := range out {
		if out[i].Value.IsList() {
			out[i].Value.Items = slices.Clone(out[i].Value.Items)
		}
	}
	return out
}
