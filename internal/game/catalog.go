package game

import "context"

// Catalog is the card store a session draws from. Sampling is independent
// per call: there is no cross-call uniqueness guarantee, so a card already
// dealt to some hand can come back again. Known gap, kept on purpose.
type Catalog interface {
	// RandomPromptCard returns one prompt card from the given packs.
	RandomPromptCard(ctx context.Context, packIDs []int64) (PromptCard, error)

	// RandomResponseCards returns up to n response cards from the given packs.
	RandomResponseCards(ctx context.Context, packIDs []int64, n int) ([]ResponseCard, error)

	// ResolveByIDs returns the full records for the given card ids.
	// Result order is unspecified; callers must reorder themselves.
	ResolveByIDs(ctx context.Context, ids []int64) ([]ResponseCard, error)
}
