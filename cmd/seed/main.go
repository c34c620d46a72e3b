// Command seed loads a card pack JSON file into the catalog database.
//
// The input format is a map keyed by pack id:
//
//	{"0": {"name": "Base Set", "official": true,
//	       "white": [{"text": "...", "pack": 0}],
//	       "black": [{"text": "... _?", "pick": 1, "pack": 0}]}}
package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm/clause"

	"github.com/blanks-game/blanks-backend/internal/catalog"
	"github.com/blanks-game/blanks-backend/internal/config"
)

type packFile map[string]struct {
	Name     string `json:"name"`
	Official bool   `json:"official"`
	White    []struct {
		Text string `json:"text"`
		Pack int64  `json:"pack"`
	} `json:"white"`
	Black []struct {
		Text string `json:"text"`
		Pick int    `json:"pick"`
		Pack int64  `json:"pack"`
	} `json:"black"`
}

func main() {
	file := flag.String("file", "cards.json", "path to the card pack JSON file")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.FromEnv()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	raw, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("failed to read pack file", zap.Error(err))
	}
	var packs packFile
	if err := json.Unmarshal(raw, &packs); err != nil {
		logger.Fatal("failed to parse pack file", zap.Error(err))
	}

	store, err := catalog.OpenPG(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open catalog", zap.Error(err))
	}
	if err := store.Migrate(); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	var decks []catalog.Deck
	var whites []catalog.WhiteCard
	var blacks []catalog.BlackCard
	for key, pack := range packs {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			logger.Warn("skipping pack with non-numeric key", zap.String("key", key))
			continue
		}
		decks = append(decks, catalog.Deck{ID: id, Name: pack.Name, Official: pack.Official})
		for _, c := range pack.White {
			whites = append(whites, catalog.WhiteCard{Text: c.Text, PackID: c.Pack})
		}
		for _, c := range pack.Black {
			blacks = append(blacks, catalog.BlackCard{Text: c.Text, Pick: c.Pick, PackID: c.Pack})
		}
	}

	db := store.DB().Clauses(clause.OnConflict{DoNothing: true})
	if err := db.CreateInBatches(decks, 100).Error; err != nil {
		logger.Fatal("failed to insert decks", zap.Error(err))
	}
	if err := db.CreateInBatches(whites, 500).Error; err != nil {
		logger.Fatal("failed to insert white cards", zap.Error(err))
	}
	if err := db.CreateInBatches(blacks, 500).Error; err != nil {
		logger.Fatal("failed to insert black cards", zap.Error(err))
	}

	logger.Info("seeded catalog",
		zap.Int("decks", len(decks)),
		zap.Int("whiteCards", len(whites)),
		zap.Int("blackCards", len(blacks)))
}
