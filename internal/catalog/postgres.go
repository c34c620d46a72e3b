package catalog

import (
	"context"
	"errors"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blanks-game/blanks-backend/internal/game"
)

// PG serves cards out of Postgres via gorm. Random sampling is done in SQL
// with ORDER BY RANDOM(); every call samples independently, duplicates
// across calls are expected. Safe for concurrent use across sessions.
type PG struct {
	db *gorm.DB
}

func OpenPG(dsn string) (*PG, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	return &PG{db: db}, nil
}

// Migrate creates the catalog tables. Used by the seed command.
func (p *PG) Migrate() error {
	return p.db.AutoMigrate(&Deck{}, &WhiteCard{}, &BlackCard{})
}

// DB exposes the underlying handle for the seed command.
func (p *PG) DB() *gorm.DB { return p.db }

func (p *PG) RandomPromptCard(ctx context.Context, packIDs []int64) (game.PromptCard, error) {
	var row BlackCard
	err := p.db.WithContext(ctx).
		Where("pack_id IN ?", packIDs).
		Order("RANDOM()").
		Take(&row).Error
	if err != nil {
		return game.PromptCard{}, err
	}
	return game.PromptCard{ID: row.ID, Text: row.Text, PackID: row.PackID, Pick: row.Pick}, nil
}

func (p *PG) RandomResponseCards(ctx context.Context, packIDs []int64, n int) ([]game.ResponseCard, error) {
	var rows []WhiteCard
	err := p.db.WithContext(ctx).
		Where("pack_id IN ?", packIDs).
		Order("RANDOM()").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return whiteToResponse(rows), nil
}

func (p *PG) ResolveByIDs(ctx context.Context, ids []int64) ([]game.ResponseCard, error) {
	var rows []WhiteCard
	err := p.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return whiteToResponse(rows), nil
}

func (p *PG) ListDecks(ctx context.Context) ([]Deck, error) {
	var decks []Deck
	err := p.db.WithContext(ctx).Order("official DESC, id ASC").Find(&decks).Error
	return decks, err
}

func (p *PG) GetDeck(ctx context.Context, id int64) (*Deck, error) {
	var deck Deck
	err := p.db.WithContext(ctx).
		Preload("WhiteCards").
		Preload("BlackCards").
		First(&deck, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, err
	}
	return &deck, nil
}

func whiteToResponse(rows []WhiteCard) []game.ResponseCard {
	cards := make([]game.ResponseCard, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, game.ResponseCard{ID: row.ID, Text: row.Text, PackID: row.PackID})
	}
	return cards
}
