package game

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// MaxHandSize is the hand cap. Replenishment tops hands up to this,
	// never beyond it.
	MaxHandSize = 7

	DefaultMaxScore = 5

	// DefaultPackID is selected when the game starts with no packs chosen.
	DefaultPackID = 1
)

// Session is the top-level aggregate: roster, settings, round history and
// the derived winner. It is not safe for concurrent use; the lobby actor
// serializes all access, including across catalog round-trips.
type Session struct {
	roster      Roster
	packs       []int64
	maxScore    int
	ownerID     string
	rounds      []*Round
	current     int
	winnerID    string
	judgeCursor int
	catalog     Catalog
}

func NewSession(catalog Catalog) *Session {
	return &Session{
		maxScore:    DefaultMaxScore,
		current:     -1,
		judgeCursor: -1,
		catalog:     catalog,
	}
}

// CurrentRound returns the active round, or nil before the first round.
func (g *Session) CurrentRound() *Round {
	if g.current < 0 || g.current >= len(g.rounds) {
		return nil
	}
	return g.rounds[g.current]
}

func (g *Session) AddPlayer(p Player) error {
	if !g.roster.Add(p) {
		return ErrPlayerExists
	}
	if g.ownerID == "" {
		g.ownerID = p.ID
	}
	return nil
}

// RemovePlayer drops the player from the roster and scrubs them from the
// active round. If the owner leaves, ownership passes to the oldest
// remaining member so the owner is always a current member.
func (g *Session) RemovePlayer(id string) error {
	if !g.roster.Remove(id) {
		return ErrUnknownPlayer
	}
	if r := g.CurrentRound(); r != nil {
		r.dropPlayer(id)
	}
	if g.ownerID == id {
		g.ownerID = ""
		if g.roster.Len() > 0 {
			g.ownerID = g.roster.Players()[0].ID
		}
	}
	return nil
}

func (g *Session) SetOwner(p Player) error {
	if g.roster.Get(p.ID) == nil {
		return ErrNotMember
	}
	g.ownerID = p.ID
	return nil
}

func (g *Session) SetMaxScore(n int) error {
	if n < 1 {
		return ErrInvalidMaxScore
	}
	g.maxScore = n
	return nil
}

// ChangeSettings applies an optional max score (zero means unchanged) and
// adds packs to the selection. Packs are never removed implicitly; use
// RemovePack for that.
func (g *Session) ChangeSettings(maxScore int, packs []int64) error {
	if maxScore != 0 {
		if err := g.SetMaxScore(maxScore); err != nil {
			return err
		}
	}
	for _, id := range packs {
		g.AddPack(id)
	}
	return nil
}

func (g *Session) AddPack(id int64) {
	for _, p := range g.packs {
		if p == id {
			return
		}
	}
	g.packs = append(g.packs, id)
}

func (g *Session) RemovePack(id int64) {
	for i, p := range g.packs {
		if p == id {
			g.packs = append(g.packs[:i], g.packs[i+1:]...)
			return
		}
	}
}

// Start begins the first round. Requires an owner and at least two players;
// selects the default pack when none is chosen.
func (g *Session) Start(ctx context.Context) error {
	if g.ownerID == "" {
		return ErrNoOwner
	}
	if g.roster.Len() < 2 {
		return ErrNotEnoughPlayers
	}
	if g.winnerID != "" {
		return ErrGameOver
	}
	if g.CurrentRound() != nil {
		return ErrGameInProgress
	}
	if len(g.packs) == 0 {
		g.AddPack(DefaultPackID)
	}
	prep, err := g.prepareRound(ctx)
	if err != nil {
		return err
	}
	g.commitRound(prep)
	return nil
}

// SubmitPlay records playerID's answer for the active round. Card ids are
// resolved against the catalog and reordered to match the submitted order
// before anything is mutated; a catalog failure leaves the session as-is.
func (g *Session) SubmitPlay(ctx context.Context, playerID string, cardIDs []int64) error {
	r := g.CurrentRound()
	if r == nil {
		return ErrNoActiveRound
	}
	if r.resolved() {
		return ErrRoundResolved
	}
	if playerID == r.JudgeID {
		return ErrJudgeCannotPlay
	}
	if r.hasPlayed(playerID) {
		return ErrDuplicatePlay
	}
	if g.roster.Get(playerID) == nil {
		return ErrUnknownPlayer
	}
	if len(cardIDs) != r.Prompt.Pick {
		return ErrWrongCardCount
	}

	resolved, err := g.catalog.ResolveByIDs(ctx, cardIDs)
	if err != nil {
		return err
	}
	byID := make(map[int64]ResponseCard, len(resolved))
	for _, c := range resolved {
		byID[c.ID] = c
	}
	// Catalog lookups are unordered; reorder to the submitted sequence.
	cards := make([]ResponseCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		c, ok := byID[id]
		if !ok {
			return ErrUnknownCard
		}
		cards = append(cards, c)
	}

	g.roster.DeductCards(playerID, cardIDs)
	r.Plays = append(r.Plays, Play{PlayerID: playerID, Cards: cards})
	r.markPlayed(playerID)
	return nil
}

// JudgePlay resolves the active round: the judge picks winnerID's play,
// their score goes up by one, and either the session ends (score reached
// maxScore) or the next round starts. The next round is prepared before any
// mutation so a catalog failure cannot leave a half-applied judgement.
func (g *Session) JudgePlay(ctx context.Context, winnerID, judgedByID string) error {
	if g.winnerID != "" {
		return ErrGameOver
	}
	r := g.CurrentRound()
	if r == nil {
		return ErrNoActiveRound
	}
	if r.resolved() {
		return ErrRoundResolved
	}
	if judgedByID != r.JudgeID {
		return ErrNotJudge
	}
	w := g.roster.Get(winnerID)
	if w == nil {
		return ErrUnknownPlayer
	}

	if w.Score+1 >= g.maxScore {
		r.WinnerID = winnerID
		w.Score++
		g.winnerID = winnerID
		return nil
	}

	prep, err := g.prepareRound(ctx)
	if err != nil {
		return err
	}
	r.WinnerID = winnerID
	w.Score++
	g.commitRound(prep)
	return nil
}

// Restart wipes the session for a rematch. Only allowed once a winner is
// decided. Players stay enrolled; everything else resets.
func (g *Session) Restart() error {
	if g.winnerID == "" {
		return ErrGameNotOver
	}
	g.Reset()
	return nil
}

// Reset clears rounds, winner, pack selection and the judge cursor, puts
// max score back to the default, and zeroes every player's score and hand.
// Players are kept; they rejoin nothing, the lobby simply starts over.
func (g *Session) Reset() {
	g.rounds = nil
	g.current = -1
	g.winnerID = ""
	g.packs = nil
	g.maxScore = DefaultMaxScore
	g.judgeCursor = -1
	g.roster.ResetAll()
}

// Hand returns a copy of the player's current hand, or nil if unknown.
func (g *Session) Hand(playerID string) []ResponseCard {
	gp := g.roster.Get(playerID)
	if gp == nil {
		return nil
	}
	hand := make([]ResponseCard, len(gp.Hand))
	copy(hand, gp.Hand)
	return hand
}

// roundPrep holds everything fetched from the catalog for the next round.
// Nothing in the session changes until commitRound.
type roundPrep struct {
	judgeIdx int
	prompt   PromptCard
	draws    map[string][]ResponseCard
}

// prepareRound advances the judge cursor (without committing it), fetches
// the prompt and every player's top-up cards. Per-player draws are
// independent catalog calls, run concurrently.
func (g *Session) prepareRound(ctx context.Context) (*roundPrep, error) {
	players := g.roster.Players()
	prep := &roundPrep{
		judgeIdx: (g.judgeCursor + 1) % len(players),
		draws:    make(map[string][]ResponseCard, len(players)),
	}

	prompt, err := g.catalog.RandomPromptCard(ctx, g.packs)
	if err != nil {
		return nil, err
	}
	prep.prompt = prompt

	eg, egCtx := errgroup.WithContext(ctx)
	results := make([][]ResponseCard, len(players))
	for i, gp := range players {
		need := MaxHandSize - len(gp.Hand)
		if need <= 0 {
			continue
		}
		i := i
		eg.Go(func() error {
			cards, err := g.catalog.RandomResponseCards(egCtx, g.packs, need)
			if err != nil {
				return err
			}
			results[i] = cards
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for i, gp := range players {
		if results[i] != nil {
			prep.draws[gp.ID] = results[i]
		}
	}
	return prep, nil
}

func (g *Session) commitRound(prep *roundPrep) {
	players := g.roster.Players()
	g.judgeCursor = prep.judgeIdx
	judge := players[prep.judgeIdx]

	left := make([]string, 0, len(players)-1)
	for _, gp := range players {
		if gp.ID != judge.ID {
			left = append(left, gp.ID)
		}
	}
	g.rounds = append(g.rounds, &Round{
		Prompt:      prep.prompt,
		JudgeID:     judge.ID,
		PlayersLeft: left,
	})
	g.current++

	for id, cards := range prep.draws {
		g.roster.Replenish(id, MaxHandSize, cards)
	}
}
