package entity

// Stats are running totals over every recorded result.
type Stats struct {
	XWins     int64 `json:"x_wins"`
	OWins     int64 `json:"o_wins"`
	Draws     int64 `json:"draws"`
	HumanWins int64 `json:"human_wins"`
	BotWins   int64 `json:"bot_wins"`
}

func (that Stats) Games() int64 {
	return that.XWins + that.OWins + that.Draws
}
