package domain

type Call struct {
	ID               string   `json:"id"`
	DealID           string   `json:"dealId"`
	DealName         string   `json:"dealName"`
	Date             string   `json:"date"`
	Duration         int      `json:"duration"` // minutos
	Participants     []string `json:"participants"`
	Score            float64  `json:"score"`
	RepID            string   `json:"repId"`
	RepName          string   `json:"repName"`
	ActionsCompleted int      `json:"actionsCompleted"`
	TotalActions     int      `json:"totalActions"`
}

func (c Call) Clone() Call {
	c.Participants = cloneStrings(c.Participants)
	return c
}
