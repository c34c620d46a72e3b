package catalog

// Deck is a named pack of cards. Official packs sort before community ones
// in listings.
type Deck struct {
	ID         int64       `json:"id" gorm:"primaryKey"`
	Name       string      `json:"name"`
	Official   bool        `json:"official"`
	WhiteCards []WhiteCard `json:"whiteCards,omitempty" gorm:"foreignKey:PackID"`
	BlackCards []BlackCard `json:"blackCards,omitempty" gorm:"foreignKey:PackID"`
}

// WhiteCard is a response card row.
type WhiteCard struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Text   string `json:"text"`
	PackID int64  `json:"packId" gorm:"index"`
}

// BlackCard is a prompt card row.
type BlackCard struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Text   string `json:"text"`
	Pick   int    `json:"pick"`
	PackID int64  `json:"packId" gorm:"index"`
}
