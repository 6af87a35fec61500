package seeder

import (
	"myretro/internal/app/retro"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed() error {
	s.logger.Info("Running database seeders...")

	if err := s.seedBoards(); err != nil {
		return err
	}

	s.logger.Info("Database seeders completed successfully")
	return nil
}

func (s *Seeder) seedBoards() error {
	var count int64
	if err := s.db.Model(&retro.RetroBoard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("Retro boards already exist, skipping seed")
		return nil
	}

	boardID := uuid.New()
	board := retro.RetroBoard{
		ID:   boardID,
		Name: "Spring Boot 3 Retro",
		Cards: []retro.Card{
			{ID: uuid.New(), BoardID: boardID, Comment: "Nice to meet everyone", CardType: retro.CardTypeHappy},
			{ID: uuid.New(), BoardID: boardID, Comment: "When are we going to travel?", CardType: retro.CardTypeMeh},
			{ID: uuid.New(), BoardID: boardID, Comment: "When are we going to have a party?", CardType: retro.CardTypeMeh},
			{ID: uuid.New(), BoardID: boardID, Comment: "Timezone is hard", CardType: retro.CardTypeSad},
		},
	}

	if err := s.db.Create(&board).Error; err != nil {
		return err
	}

	s.logger.Info("Seeded retro board",
		zap.String("board_id", boardID.String()),
		zap.Int("cards", len(board.Cards)),
	)
	return nil
}
