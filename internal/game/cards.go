package game

// ResponseCard is a white card: a fill-in answer a player holds in hand.
type ResponseCard struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	PackID int64  `json:"packId"`
}

// PromptCard is a black card. Pick is how many response cards a play
// against it must contain, always >= 1.
type PromptCard struct {
	ID     int64  `json:"id"`
	Text   string `json:"text"`
	PackID int64  `json:"packId"`
	Pick   int    `json:"pick"`
}

type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GamePlayer is a Player enrolled in a session, with score and hand.
type GamePlayer struct {
	Player
	Score int            `json:"score"`
	Hand  []ResponseCard `json:"hand"`
}

// Play is one player's submitted answer. Card order is meaningful (it is
// how the judge reads the sentence) and is kept exactly as submitted.
type Play struct {
	PlayerID string         `json:"playerId"`
	Cards    []ResponseCard `json:"cards"`
}
