package game

// Snapshot is the broadcast view of a session. Everything is copied on
// read; callers can hold a snapshot indefinitely without seeing later
// mutations. Hands are deliberately absent (only their size is public);
// a player fetches their own hand through Session.Hand.
type Snapshot struct {
	Players      []PlayerView `json:"players"`
	MaxScore     int          `json:"maxScore"`
	Decks        []int64      `json:"decks"`
	Owner        *Player      `json:"owner"`
	Rounds       []RoundView  `json:"rounds"`
	CurrentRound int          `json:"currentRound"`
	Winner       *Player      `json:"winner"`
}

type PlayerView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
	HandSize int    `json:"handSize"`
}

type RoundView struct {
	BlackCard   PromptCard `json:"blackCard"`
	Czar        *Player    `json:"czar"`
	Plays       []Play     `json:"plays"`
	PlayersLeft []string   `json:"playersLeft"`
	Winner      *Player    `json:"winner"`
	Judging     bool       `json:"judging"`
}

func (g *Session) Snapshot() Snapshot {
	snap := Snapshot{
		MaxScore:     g.maxScore,
		CurrentRound: g.current,
		Owner:        g.playerRef(g.ownerID),
		Winner:       g.playerRef(g.winnerID),
	}
	snap.Decks = append(snap.Decks, g.packs...)
	for _, gp := range g.roster.Players() {
		snap.Players = append(snap.Players, PlayerView{
			ID:       gp.ID,
			Name:     gp.Name,
			Score:    gp.Score,
			HandSize: len(gp.Hand),
		})
	}
	for _, r := range g.rounds {
		rv := RoundView{
			BlackCard: r.Prompt,
			Czar:      g.playerRef(r.JudgeID),
			Winner:    g.playerRef(r.WinnerID),
			Judging:   r.judging() && !r.resolved(),
		}
		rv.PlayersLeft = append(rv.PlayersLeft, r.PlayersLeft...)
		for _, p := range r.Plays {
			cards := make([]ResponseCard, len(p.Cards))
			copy(cards, p.Cards)
			rv.Plays = append(rv.Plays, Play{PlayerID: p.PlayerID, Cards: cards})
		}
		snap.Rounds = append(snap.Rounds, rv)
	}
	return snap
}

// playerRef returns a detached Player for the given id. Resolved against
// the roster first so renames would show through; for players who already
// left (a departed judge or winner) only the id survives.
func (g *Session) playerRef(id string) *Player {
	if id == "" {
		return nil
	}
	if gp := g.roster.Get(id); gp != nil {
		return &Player{ID: gp.ID, Name: gp.Name}
	}
	return &Player{ID: id}
}
