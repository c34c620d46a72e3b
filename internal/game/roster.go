package game

// Roster is the ordered collection of players in a session. Order is join
// order and drives judge rotation. Owned exclusively by the session; not
// safe for concurrent use.
type Roster struct {
	players []*GamePlayer
}

// Add enrolls a player with score 0 and an empty hand. Returns false if a
// player with the same id is already present.
func (ro *Roster) Add(p Player) bool {
	if ro.Get(p.ID) != nil {
		return false
	}
	ro.players = append(ro.players, &GamePlayer{Player: p})
	return true
}

// Remove drops the player with the given id. Returns false if absent.
func (ro *Roster) Remove(id string) bool {
	for i, gp := range ro.players {
		if gp.ID == id {
			ro.players = append(ro.players[:i], ro.players[i+1:]...)
			return true
		}
	}
	return false
}

func (ro *Roster) Get(id string) *GamePlayer {
	for _, gp := range ro.players {
		if gp.ID == id {
			return gp
		}
	}
	return nil
}

func (ro *Roster) Len() int { return len(ro.players) }

// Players returns the underlying ordered slice. Callers must not hold on
// to it across mutations.
func (ro *Roster) Players() []*GamePlayer { return ro.players }

// DeductCards removes the cards with matching ids from the player's hand.
// Ids not present in the hand are ignored, so the call is idempotent.
func (ro *Roster) DeductCards(id string, cardIDs []int64) {
	gp := ro.Get(id)
	if gp == nil {
		return
	}
	drop := make(map[int64]bool, len(cardIDs))
	for _, cid := range cardIDs {
		drop[cid] = true
	}
	kept := gp.Hand[:0]
	for _, c := range gp.Hand {
		if !drop[c.ID] {
			kept = append(kept, c)
		}
	}
	gp.Hand = kept
}

// Replenish appends cards from supply until the hand reaches maxHandSize.
// No-op if the hand is already at or above it. Never shrinks a hand.
func (ro *Roster) Replenish(id string, maxHandSize int, supply []ResponseCard) {
	gp := ro.Get(id)
	if gp == nil {
		return
	}
	for _, c := range supply {
		if len(gp.Hand) >= maxHandSize {
			break
		}
		gp.Hand = append(gp.Hand, c)
	}
}

// ResetAll zeroes every score and empties every hand. Membership is kept.
func (ro *Roster) ResetAll() {
	for _, gp := range ro.players {
		gp.Score = 0
		gp.Hand = nil
	}
}
