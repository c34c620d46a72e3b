package game

// Round is one prompt/judge cycle. PlayersLeft shrinks as plays come in and
// never contains the judge. A round with a WinnerID is resolved history and
// is never mutated again.
type Round struct {
	Prompt      PromptCard
	JudgeID     string
	Plays       []Play
	PlayersLeft []string
	WinnerID    string
}

func (r *Round) resolved() bool { return r.WinnerID != "" }

func (r *Round) hasPlayed(playerID string) bool {
	for _, p := range r.Plays {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

// judging reports whether every non-judge player has played. The JUDGING
// phase is derived, not stored.
func (r *Round) judging() bool { return len(r.PlayersLeft) == 0 }

func (r *Round) markPlayed(playerID string) {
	for i, id := range r.PlayersLeft {
		if id == playerID {
			r.PlayersLeft = append(r.PlayersLeft[:i], r.PlayersLeft[i+1:]...)
			return
		}
	}
}

// dropPlayer scrubs a leaving player from an unresolved round so the round
// can still complete: their pending slot and any recorded play are removed.
// A leaving judge is left in place; the round simply stalls until reset.
func (r *Round) dropPlayer(playerID string) {
	if r.resolved() {
		return
	}
	r.markPlayed(playerID)
	for i, p := range r.Plays {
		if p.PlayerID == playerID {
			r.Plays = append(r.Plays[:i], r.Plays[i+1:]...)
			return
		}
	}
}
