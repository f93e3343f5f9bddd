package entity

const (
	HumanName = "human"
	BotName   = "computer"
)

type Player struct {
	Name string
	Mark Cell
	Bot  bool
}

func NewHuman(mark Cell) *Player {
	return &Player{Name: HumanName, Mark: mark}
}

func NewBot(mark Cell) *Player {
	return &Player{Name: BotName, Mark: mark, Bot: true}
}
