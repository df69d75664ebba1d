package repository

import (
	"slices"

	"github.com/vfg2006/salesflow-api/internal/domain"
)

// CallBundle é o conteúdo auxiliar anexado a toda CallDetail
type CallBundle struct {
	Transcript    []domain.TranscriptEntry
	Actions       []domain.CallAction
	CoachingTip   domain.CoachingTip
	AIInsights    []domain.AIInsight
	FollowUpEmail string
}

func (b CallBundle) clone() CallBundle {
	b.Transcript = cloneOrEmpty(b.Transcript)
	b.Actions = cloneOrEmpty(b.Actions)
	b.AIInsights = domain.CloneInsights(b.AIInsights)
	if b.AIInsights == nil {
		b.AIInsights = []domain.AIInsight{}
	}
	return b
}

// Seed contém todas as coleções carregadas na inicialização do storage.
// Se TeamMembers for nil, o ranking é derivado de Reps.
type Seed struct {
	Deals              []domain.Deal
	Reps               []domain.Rep
	Calls              []domain.Call
	TeamMembers        []domain.TeamMember
	RepStageActions    []domain.StageActions
	TeamStageActions   []domain.StageActions
	CoachingPriorities []domain.CoachingPriority
	AdoptionTrends     []domain.AdoptionTrend
	CallBundle         CallBundle
}

// DefaultSeed retorna os dados de referência do dashboard
func DefaultSeed() Seed {
	return Seed{
		Deals:              seedDeals(),
		Reps:               seedReps(),
		Calls:              seedCalls(),
		TeamMembers:        seedTeamMembers(),
		RepStageActions:    seedRepStageActions(),
		TeamStageActions:   seedTeamStageActions(),
		CoachingPriorities: seedCoachingPriorities(),
		AdoptionTrends:     seedAdoptionTrends(),
		CallBundle:         seedCallBundle(),
	}
}

func seedDeals() []domain.Deal {
	return []domain.Deal{
		{
			ID:          "1",
			Name:        "Acme Corp - Enterprise Plan",
			Value:       50000,
			Stage:       domain.StageDiscovery,
			RepID:       "1",
			RepName:     "Sarah Johnson",
			RiskScore:   85,
			DaysInStage: 18,
			RootCauses: []string{
				"No economic buyer identified (40% lower win rate when skipped)",
				"Last activity 7 days ago",
				"Rep skipped budget qualification",
			},
			RecommendedAction: "Schedule multi-threading call with CFO by Friday",
			LastActivity:      "7 days ago",
		},
		{
			ID:          "2",
			Name:        "TechStart Inc - Growth Package",
			Value:       35000,
			Stage:       domain.StageDemo,
			RepID:       "2",
			RepName:     "John Smith",
			RiskScore:   72,
			DaysInStage: 12,
			RootCauses: []string{
				"Only 1 stakeholder engaged (67% lower win rate)",
				"No technical champion identified",
				"Integration concerns not addressed",
			},
			RecommendedAction: "Schedule technical deep-dive with engineering team this week",
			LastActivity:      "3 days ago",
		},
		{
			ID:          "3",
			Name:        "GlobalTech Solutions",
			Value:       75000,
			Stage:       domain.StageNegotiation,
			RepID:       "3",
			RepName:     "Mike Davis",
			RiskScore:   45,
			DaysInStage: 8,
			RootCauses: []string{
				"Pricing objection raised in last call",
			},
			RecommendedAction: "Share ROI calculator and customer success story from similar company",
			LastActivity:      "1 day ago",
		},
	}
}

func seedReps() []domain.Rep {
	return []domain.Rep{
		{
			ID: "1", Name: "Sarah Johnson",
			PlaybookAdoption: 92, PlaybookAdoptionChange: 15,
			AvgCallScore: 8.5, AvgCallScoreChange: 1.2,
			WinRate: 35, WinRateChange: 0,
			ActiveDeals: 12, ActiveDealsChange: 3,
			PipelineValue: 540000, PipelineValueChange: 120000,
			AvgDealSize: 45000, AvgDealSizeChange: -5000,
		},
		{
			ID: "2", Name: "John Smith",
			PlaybookAdoption: 88, PlaybookAdoptionChange: 5,
			AvgCallScore: 9.1, AvgCallScoreChange: 0.3,
			WinRate: 42, WinRateChange: 7,
			ActiveDeals: 10, ActiveDealsChange: 2,
			PipelineValue: 620000, PipelineValueChange: 80000,
			AvgDealSize: 62000, AvgDealSizeChange: 8000,
		},
		{
			ID: "3", Name: "Mike Davis",
			PlaybookAdoption: 74, PlaybookAdoptionChange: 9,
			AvgCallScore: 7.8, AvgCallScoreChange: -0.5,
			WinRate: 28, WinRateChange: -3,
			ActiveDeals: 15, ActiveDealsChange: 5,
			PipelineValue: 480000, PipelineValueChange: 95000,
			AvgDealSize: 32000, AvgDealSizeChange: -2000,
		},
		{
			ID: "4", Name: "Jessica Chen",
			PlaybookAdoption: 85, PlaybookAdoptionChange: 12,
			AvgCallScore: 8.2, AvgCallScoreChange: 1.8,
			WinRate: 38, WinRateChange: 5,
			ActiveDeals: 11, ActiveDealsChange: 1,
			PipelineValue: 590000, PipelineValueChange: 110000,
			AvgDealSize: 53000, AvgDealSizeChange: 3000,
		},
		{
			ID: "5", Name: "David Martinez",
			PlaybookAdoption: 79, PlaybookAdoptionChange: 6,
			AvgCallScore: 8.0, AvgCallScoreChange: 0.8,
			WinRate: 33, WinRateChange: 2,
			ActiveDeals: 13, ActiveDealsChange: 4,
			PipelineValue: 510000, PipelineValueChange: 75000,
			AvgDealSize: 39000, AvgDealSizeChange: 1000,
		},
	}
}

func seedCalls() []domain.Call {
	sarah := func(c domain.Call) domain.Call {
		c.RepID, c.RepName, c.TotalActions = "1", "Sarah Johnson", 5
		return c
	}
	john := func(c domain.Call) domain.Call {
		c.RepID, c.RepName, c.TotalActions = "2", "John Smith", 5
		return c
	}

	return []domain.Call{
		sarah(domain.Call{ID: "1", DealID: "1", DealName: "Acme Corp - Enterprise Plan", Date: "Oct 16, 2025", Duration: 42,
			Participants: []string{"Sarah Johnson", "John Smith (Buyer)"}, Score: 7, ActionsCompleted: 3}),
		sarah(domain.Call{ID: "2", DealID: "1", DealName: "Acme Corp - Follow-up", Date: "Oct 14, 2025", Duration: 28,
			Participants: []string{"Sarah Johnson", "John Smith (Buyer)"}, Score: 8, ActionsCompleted: 4}),
		sarah(domain.Call{ID: "3", DealID: "2", DealName: "TechStart Inc - Discovery", Date: "Oct 15, 2025", Duration: 35,
			Participants: []string{"Sarah Johnson", "Lisa Wong (CTO)"}, Score: 9, ActionsCompleted: 5}),
		sarah(domain.Call{ID: "4", DealID: "3", DealName: "GlobalTech Solutions", Date: "Oct 12, 2025", Duration: 45,
			Participants: []string{"Sarah Johnson", "Mark Peterson (VP)"}, Score: 6, ActionsCompleted: 2}),
		sarah(domain.Call{ID: "5", DealID: "1", DealName: "Enterprise Account Check-in", Date: "Oct 10, 2025", Duration: 22,
			Participants: []string{"Sarah Johnson", "Team"}, Score: 8, ActionsCompleted: 4}),
		john(domain.Call{ID: "6", DealID: "2", DealName: "TechStart Inc - Product Demo", Date: "Oct 17, 2025", Duration: 50,
			Participants: []string{"John Smith", "Mike Chen (CTO)", "Lisa Wang (VP)"}, Score: 9, ActionsCompleted: 5}),
		john(domain.Call{ID: "7", DealID: "2", DealName: "TechStart Inc - Discovery", Date: "Oct 15, 2025", Duration: 38,
			Participants: []string{"John Smith", "Mike Chen (CTO)"}, Score: 8, ActionsCompleted: 4}),
		john(domain.Call{ID: "8", DealID: "2", DealName: "TechStart Inc - Initial Call", Date: "Oct 12, 2025", Duration: 25,
			Participants: []string{"John Smith", "Mike Chen (CTO)"}, Score: 7, ActionsCompleted: 3}),
		john(domain.Call{ID: "9", DealID: "2", DealName: "TechStart Inc - Technical Deep Dive", Date: "Oct 19, 2025", Duration: 55,
			Participants: []string{"John Smith", "Mike Chen (CTO)", "Engineering Team"}, Score: 9, ActionsCompleted: 4}),
	}
}

func seedTeamMembers() []domain.TeamMember {
	return []domain.TeamMember{
		{Rank: 1, ID: "2", Name: "John Smith", Adoption: 88, AvgScore: 9.1, WinRate: 42},
		{Rank: 2, ID: "1", Name: "Sarah Johnson", Adoption: 92, AvgScore: 8.5, WinRate: 35},
		{Rank: 3, ID: "4", Name: "Jessica Chen", Adoption: 85, AvgScore: 8.2, WinRate: 38},
		{Rank: 4, ID: "5", Name: "David Martinez", Adoption: 79, AvgScore: 8.0, WinRate: 33},
		{Rank: 5, ID: "3", Name: "Mike Davis", Adoption: 74, AvgScore: 7.8, WinRate: 28},
	}
}

func seedRepStageActions() []domain.StageActions {
	return []domain.StageActions{
		{
			Stage: domain.StageDiscovery,
			Actions: []domain.PlaybookAction{
				{Action: "Ask about current pain point", CompletionRate: 95, ImpactOnWinRate: 12},
				{Action: "Identify decision-makers", CompletionRate: 60, ImpactOnWinRate: 8},
				{Action: "Ask about budget", CompletionRate: 40, ImpactOnWinRate: 18},
			},
		},
		{
			Stage: domain.StageDemo,
			Actions: []domain.PlaybookAction{
				{Action: "Customize demo to pain points", CompletionRate: 85, ImpactOnWinRate: 15},
				{Action: "Involve multiple stakeholders", CompletionRate: 55, ImpactOnWinRate: 12},
				{Action: "Address objections directly", CompletionRate: 70, ImpactOnWinRate: 10},
			},
		},
		{
			Stage: domain.StageNegotiation,
			Actions: []domain.PlaybookAction{
				{Action: "Present ROI calculator", CompletionRate: 65, ImpactOnWinRate: 9},
				{Action: "Offer tiered pricing options", CompletionRate: 80, ImpactOnWinRate: 7},
				{Action: "Set clear next steps", CompletionRate: 90, ImpactOnWinRate: 11},
			},
		},
	}
}

func seedTeamStageActions() []domain.StageActions {
	return []domain.StageActions{
		{
			Stage: domain.StageDiscovery,
			Actions: []domain.PlaybookAction{
				{Action: "Ask about pain point", CompletionRate: 88, ImpactOnWinRate: 12},
				{Action: "Identify decision-makers", CompletionRate: 72, ImpactOnWinRate: 8},
				{Action: "Ask about budget", CompletionRate: 54, ImpactOnWinRate: 18},
			},
		},
		{
			Stage: domain.StageDemo,
			Actions: []domain.PlaybookAction{
				{Action: "Customize to pain points", CompletionRate: 82, ImpactOnWinRate: 15},
				{Action: "Multi-thread stakeholders", CompletionRate: 62, ImpactOnWinRate: 12},
				{Action: "Handle objections", CompletionRate: 75, ImpactOnWinRate: 10},
			},
		},
		{
			Stage: domain.StageNegotiation,
			Actions: []domain.PlaybookAction{
				{Action: "Share ROI calculator", CompletionRate: 69, ImpactOnWinRate: 9},
				{Action: "Provide pricing tiers", CompletionRate: 78, ImpactOnWinRate: 7},
				{Action: "Define clear next steps", CompletionRate: 85, ImpactOnWinRate: 11},
			},
		},
	}
}

func seedCoachingPriorities() []domain.CoachingPriority {
	return []domain.CoachingPriority{
		{Rank: 1, Title: "Budget Qualification", Stage: "Discovery", SkipRate: 46, ImpactOnWinRate: 18,
			AffectedReps: []string{"Sarah", "Mike", "Jessica"}},
		{Rank: 2, Title: "Multi-threading", Stage: "Demo", SkipRate: 38, ImpactOnWinRate: 12,
			AffectedReps: []string{"John", "Mike"}},
		{Rank: 3, Title: "ROI Calculator", Stage: "Negotiation", SkipRate: 31, ImpactOnWinRate: 9,
			AffectedReps: []string{"Sarah", "Jessica"}},
	}
}

func seedAdoptionTrends() []domain.AdoptionTrend {
	return []domain.AdoptionTrend{
		{RepName: "Sarah", StartAdoption: 77, EndAdoption: 92, Change: 15},
		{RepName: "John", StartAdoption: 88, EndAdoption: 91, Change: 3},
		{RepName: "Mike", StartAdoption: 65, EndAdoption: 74, Change: 9},
	}
}

func seedCallBundle() CallBundle {
	return CallBundle{
		Transcript: []domain.TranscriptEntry{
			{Timestamp: "00:02", Speaker: "Sarah", Text: "Hi John, thanks for taking the time today. I really appreciate you making space in your schedule."},
			{Timestamp: "00:15", Speaker: "John", Text: "No problem at all. I'm looking forward to learning more about your solution."},
			{Timestamp: "08:15", Speaker: "John", Text: "We're currently using Stripe for payments, but we're having some integration challenges with our legacy systems."},
			{Timestamp: "15:30", Speaker: "Sarah", Text: "That makes sense. I've worked with several companies transitioning from Stripe. Can you tell me more about the specific integration issues you're facing?"},
			{Timestamp: "28:30", Speaker: "John", Text: "Pricing is a concern for us. We need to make sure this fits within our Q1 budget."},
			{Timestamp: "28:45", Speaker: "Sarah", Text: "I understand. Let me show you how our pricing compares and the ROI you can expect in the first quarter."},
			{Timestamp: "35:20", Speaker: "John", Text: "This looks promising. I'd like to involve our CFO in the next conversation."},
			{Timestamp: "41:30", Speaker: "Sarah", Text: "That sounds great. I'll send over a calendar invite for next week. Looking forward to continuing the conversation."},
		},
		Actions: []domain.CallAction{
			{Action: "Asked about current pain point", Completed: true},
			{Action: "Identified decision-makers", Completed: true},
			{Action: "ask about budget", Completed: false, ImpactText: "40% lower win rate when skipped"},
			{Action: "Mentioned case study", Completed: true},
			{Action: "ask about timeline", Completed: false},
		},
		CoachingTip: domain.CoachingTip{
			Timestamp:   "28:30",
			Context:     `John mentioned "pricing is a concern"`,
			Suggestion:  "Sarah should have asked: 'What's your budget range for this project?' This question helps qualify the deal early.",
			ExampleLink: "Watch how top rep handles this (Deal: TechCorp, 15:22)",
		},
		AIInsights: []domain.AIInsight{
			{Type: domain.InsightSentiment, Icon: "😊", Title: "Sentiment Analysis", Value: domain.TextValue("+0.7 (Positive)")},
			{Type: domain.InsightObjections, Icon: "⚠️", Title: "Objections Raised", Value: domain.ListValue("Pricing concern", "Integration complexity")},
			{Type: domain.InsightCompetitors, Icon: "🏆", Title: "Competitors Mentioned", Value: domain.TextValue("Stripe (current provider)")},
			{Type: domain.InsightStakeholders, Icon: "👥", Title: "Key Stakeholders", Value: domain.ListValue("John Smith (Champion)", "CFO mentioned but not on call")},
		},
		FollowUpEmail: `Hi John,

Thanks for the great conversation today. Based on our discussion, I understand your main pain points are integration challenges with legacy systems and ensuring the solution fits within your Q1 budget.

I've attached a case study showing how TechCorp solved similar integration challenges and achieved 40% ROI in their first quarter.

Next steps:
- I'll send over pricing options by Thursday
- Let's schedule a demo with your CFO next week

Best,
Sarah`,
	}
}

// repIDs devolve os IDs de vendedores do seed, ordenados
func (s Seed) repIDs() []string {
	ids := make([]string, 0, len(s.Reps))
	for _, r := range s.Reps {
		ids = append(ids, r.ID)
	}
	slices.Sort(ids)
	return ids
}
