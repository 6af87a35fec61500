package retro

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CardType string

const (
	CardTypeHappy CardType = "HAPPY"
	CardTypeMeh   CardType = "MEH"
	CardTypeSad   CardType = "SAD"
)

type RetroBoard struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null" binding:"required,notblank"`
	Cards     []Card    `json:"cards" gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" binding:"omitempty,dive"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

type Card struct {
	ID        uuid.UUID `json:"id" gorm:"primaryKey"`
	BoardID   uuid.UUID `json:"-" gorm:"index;not null"`
	Comment   string    `json:"comment" gorm:"not null" binding:"required,notblank"`
	CardType  CardType  `json:"cardType" gorm:"not null" binding:"required,oneof=HAPPY MEH SAD"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (b *RetroBoard) ValidationMessage(field, tag string) (string, bool) {
	if field == "name" {
		return "A name must be provided", true
	}
	// Nested card fields arrive as "cards[i].<field>".
	if strings.HasPrefix(field, "cards[") {
		if i := strings.Index(field, "]."); i >= 0 {
			return (&Card{}).ValidationMessage(field[i+2:], tag)
		}
	}
	return "", false
}

func (c *Card) ValidationMessage(field, tag string) (string, bool) {
	switch {
	case field == "comment":
		return "A comment must be provided", true
	case field == "cardType" && tag == "required":
		return "A card type must be provided", true
	}
	return "", false
}

type ErrorResponse struct {
	Error string `json:"error"`
}
