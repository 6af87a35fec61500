package retro

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindAll(ctx context.Context) ([]*RetroBoard, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RetroBoard, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, board *RetroBoard) error
	FindCards(ctx context.Context, boardID uuid.UUID) ([]*Card, error)
	FindCard(ctx context.Context, boardID, cardID uuid.UUID) (*Card, error)
	CreateCard(ctx context.Context, card *Card) error
	DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func orderedCards(db *gorm.DB) *gorm.DB {
	return db.Order("cards.created_at ASC")
}

func (r *repository) FindAll(ctx context.Context) ([]*RetroBoard, error) {
	var boards []*RetroBoard
	err := r.db.WithContext(ctx).
		Preload("Cards", orderedCards).
		Order("created_at ASC").
		Find(&boards).Error
	return boards, err
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*RetroBoard, error) {
	var board RetroBoard
	err := r.db.WithContext(ctx).
		Preload("Cards", orderedCards).
		Where("id = ?", id).
		First(&board).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBoardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &board, nil
}

func (r *repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&RetroBoard{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, board *RetroBoard) error {
	return r.db.WithContext(ctx).Create(board).Error
}

func (r *repository) FindCards(ctx context.Context, boardID uuid.UUID) ([]*Card, error) {
	cards := []*Card{}
	err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&cards).Error
	return cards, err
}

func (r *repository) FindCard(ctx context.Context, boardID, cardID uuid.UUID) (*Card, error) {
	var card Card
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND id = ?", boardID, cardID).
		First(&card).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func (r *repository) CreateCard(ctx context.Context, card *Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *repository) DeleteCard(ctx context.Context, boardID, cardID uuid.UUID) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("board_id = ? AND id = ?", boardID, cardID).
		Delete(&Card{})
	return res.RowsAffected > 0, res.Error
}
