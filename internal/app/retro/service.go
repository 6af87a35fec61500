package retro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"myretro/internal/providers/redis"
	"myretro/internal/utils"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	ErrBoardNotFound = errors.New("retro board not found")
	ErrCardNotFound  = errors.New("card not found")
)

type Service interface {
	FindAll(ctx context.Context) ([]*RetroBoard, error)
	Save(ctx context.Context, board *RetroBoard) (*RetroBoard, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RetroBoard, error)
	FindAllCardsFromRetroBoard(ctx context.Context, id uuid.UUID) ([]*Card, error)
	AddCardToRetroBoard(ctx context.Context, id uuid.UUID, card *Card) (*Card, error)
	FindCardByUUIDFromRetroBoard(ctx context.Context, id, cardID uuid.UUID) (*Card, error)
	RemoveCardFromRetroBoard(ctx context.Context, id, cardID uuid.UUID) error
}

type service struct {
	repo        Repository
	redisP      *redis.RedisProvider
	eventBus    *utils.EventBus
	logger      *zap.SugaredLogger
	cachePrefix string
}

// NewService wires the board service. redisP may be nil, which disables
// caching.
func NewService(repo Repository, redisP *redis.RedisProvider, eventBus *utils.EventBus, logger *zap.Logger) Service {
	return &service{
		repo:        repo,
		redisP:      redisP,
		eventBus:    eventBus,
		logger:      logger.Sugar(),
		cachePrefix: "retros",
	}
}

func (s *service) FindAll(ctx context.Context) ([]*RetroBoard, error) {
	gen, cacheable := s.generation(ctx)
	var cached []*RetroBoard
	if cacheable && s.readCache(ctx, s.allKey(gen), &cached) {
		return cached, nil
	}

	boards, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find retro boards: %w", err)
	}
	for _, board := range boards {
		normalizeCards(board)
	}
	if boards == nil {
		boards = []*RetroBoard{}
	}

	if cacheable {
		s.writeCache(ctx, s.allKey(gen), boards)
	}
	return boards, nil
}

func (s *service) Save(ctx context.Context, board *RetroBoard) (*RetroBoard, error) {
	board.ID = uuid.New()
	for i := range board.Cards {
		board.Cards[i].ID = uuid.New()
		board.Cards[i].BoardID = board.ID
	}

	if err := s.repo.Create(ctx, board); err != nil {
		return nil, fmt.Errorf("failed to save retro board: %w", err)
	}
	normalizeCards(board)

	s.invalidateCache(board.ID)
	s.eventBus.Publish(utils.EventBoardCreated, board.ID.String(), board)
	s.logger.Infow("Retro board created", "board_id", board.ID, "name", board.Name)
	return board, nil
}

func (s *service) FindByID(ctx context.Context, id uuid.UUID) (*RetroBoard, error) {
	gen, cacheable := s.generation(ctx)
	var cached RetroBoard
	if cacheable && s.readCache(ctx, s.boardKey(gen, id), &cached) {
		return &cached, nil
	}

	board, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find retro board %s: %w", id, err)
	}
	normalizeCards(board)

	if cacheable {
		s.writeCache(ctx, s.boardKey(gen, id), board)
	}
	return board, nil
}

func (s *service) FindAllCardsFromRetroBoard(ctx context.Context, id uuid.UUID) ([]*Card, error) {
	if err := s.ensureBoard(ctx, id); err != nil {
		return nil, err
	}

	cards, err := s.repo.FindCards(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find cards of retro board %s: %w", id, err)
	}
	if cards == nil {
		cards = []*Card{}
	}
	return cards, nil
}

func (s *service) AddCardToRetroBoard(ctx context.Context, id uuid.UUID, card *Card) (*Card, error) {
	if err := s.ensureBoard(ctx, id); err != nil {
		return nil, err
	}

	card.ID = uuid.New()
	card.BoardID = id
	if err := s.repo.CreateCard(ctx, card); err != nil {
		return nil, fmt.Errorf("failed to add card to retro board %s: %w", id, err)
	}

	s.invalidateCache(id)
	s.eventBus.Publish(utils.EventCardAdded, id.String(), card)
	return card, nil
}

func (s *service) FindCardByUUIDFromRetroBoard(ctx context.Context, id, cardID uuid.UUID) (*Card, error) {
	if err := s.ensureBoard(ctx, id); err != nil {
		return nil, err
	}

	card, err := s.repo.FindCard(ctx, id, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to find card %s: %w", cardID, err)
	}
	return card, nil
}

func (s *service) RemoveCardFromRetroBoard(ctx context.Context, id, cardID uuid.UUID) error {
	if err := s.ensureBoard(ctx, id); err != nil {
		return err
	}

	deleted, err := s.repo.DeleteCard(ctx, id, cardID)
	if err != nil {
		return fmt.Errorf("failed to remove card %s: %w", cardID, err)
	}
	if !deleted {
		return fmt.Errorf("failed to remove card %s: %w", cardID, ErrCardNotFound)
	}

	s.invalidateCache(id)
	s.eventBus.Publish(utils.EventCardRemoved, id.String(), map[string]string{"id": cardID.String()})
	return nil
}

func (s *service) ensureBoard(ctx context.Context, id uuid.UUID) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to look up retro board %s: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("retro board %s: %w", id, ErrBoardNotFound)
	}
	return nil
}

func normalizeCards(board *RetroBoard) {
	if board.Cards == nil {
		board.Cards = []Card{}
	}
}

// Cache keys carry a generation that every write bumps. A read that raced
// a write can only store its result under the old generation, which no
// later read looks up.
func (s *service) genKey() string {
	return s.cachePrefix + ":gen"
}

func (s *service) allKey(gen string) string {
	return fmt.Sprintf("%s:all:%s", s.cachePrefix, gen)
}

func (s *service) boardKey(gen string, id uuid.UUID) string {
	return fmt.Sprintf("%s:board:%s:%s", s.cachePrefix, id, gen)
}

// generation returns the current cache generation, or false when caching
// is off or Redis cannot be reached.
func (s *service) generation(ctx context.Context) (string, bool) {
	if s.redisP == nil {
		return "", false
	}
	gen, err := s.redisP.Get(ctx, s.genKey()).Result()
	if errors.Is(err, goredis.Nil) {
		return "0", true
	}
	if err != nil {
		s.logger.Warnw("Retro cache unavailable", "error", err)
		return "", false
	}
	return gen, true
}

func (s *service) readCache(ctx context.Context, key string, dest interface{}) bool {
	data, err := s.redisP.Get(ctx, key).Result()
	if err != nil || data == "" {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

func (s *service) writeCache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warnw("Failed to encode cache entry", "key", key, "error", err)
		return
	}
	if err := s.redisP.SetWithDefaultTTL(ctx, key, data, 0).Err(); err != nil {
		s.logger.Warnw("Failed to write cache entry", "key", key, "error", err)
	}
}

func (s *service) invalidateCache(id uuid.UUID) {
	if s.redisP == nil {
		return
	}
	ctx := context.Background()
	if gen, ok := s.generation(ctx); ok {
		if err := s.redisP.Del(ctx, s.allKey(gen), s.boardKey(gen, id)).Err(); err != nil {
			s.logger.Warnw("Failed to evict retro cache", "board_id", id, "error", err)
		}
	}
	if err := s.redisP.Incr(ctx, s.genKey()).Err(); err != nil {
		s.logger.Warnw("Failed to bump retro cache generation", "board_id", id, "error", err)
	}
}
