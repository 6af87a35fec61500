package retro_test

import (
	"context"
	"testing"
	"time"

	"myretro/internal/app/retro"
	"myretro/internal/providers/redis"
	"myretro/internal/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type cachedFixture struct {
	svc  retro.Service
	conn *gorm.DB
	mr   *miniredis.Miniredis
}

func newCachedService(t *testing.T) cachedFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	provider := redis.NewRedisProvider(mr.Addr(), zap.NewNop(), time.Minute)
	t.Cleanup(func() { _ = provider.Close() })

	conn := newTestDB(t)
	svc := retro.NewService(retro.NewRepository(conn), provider, utils.NewEventBus(), zap.NewNop())
	return cachedFixture{svc: svc, conn: conn, mr: mr}
}

func (f cachedFixture) generation(t *testing.T) string {
	t.Helper()
	gen, err := f.mr.Get("retros:gen")
	require.NoError(t, err)
	return gen
}

func boardKey(id uuid.UUID, gen string) string {
	return "retros:board:" + id.String() + ":" + gen
}

// insertCardBehindCache writes straight to the database so only a cache
// miss can observe it.
func (f cachedFixture) insertCardBehindCache(t *testing.T, boardID uuid.UUID) {
	t.Helper()
	require.NoError(t, f.conn.Create(&retro.Card{
		ID:       uuid.New(),
		BoardID:  boardID,
		Comment:  "Written around the service",
		CardType: retro.CardTypeMeh,
	}).Error)
}

func TestCachedFindByIDServesFromRedis(t *testing.T) {
	f := newCachedService(t)
	ctx := context.Background()

	board, err := f.svc.Save(ctx, &retro.RetroBoard{Name: "Cached"})
	require.NoError(t, err)

	_, err = f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)
	assert.True(t, f.mr.Exists(boardKey(board.ID, f.generation(t))))

	f.insertCardBehindCache(t, board.ID)

	found, err := f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Cards, "second read should come from the cache")
}

func TestCachedFindAllServesFromRedis(t *testing.T) {
	f := newCachedService(t)
	ctx := context.Background()

	_, err := f.svc.Save(ctx, &retro.RetroBoard{Name: "One"})
	require.NoError(t, err)

	boards, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.True(t, f.mr.Exists("retros:all:"+f.generation(t)))

	require.NoError(t, f.conn.Create(&retro.RetroBoard{ID: uuid.New(), Name: "Behind"}).Error)

	boards, err = f.svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 1)

	_, err = f.svc.Save(ctx, &retro.RetroBoard{Name: "Two"})
	require.NoError(t, err)

	boards, err = f.svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 3)
}

func TestCardWritesEvictCachedBoard(t *testing.T) {
	f := newCachedService(t)
	ctx := context.Background()

	board, err := f.svc.Save(ctx, &retro.RetroBoard{Name: "Evict"})
	require.NoError(t, err)
	_, err = f.svc.FindAll(ctx)
	require.NoError(t, err)
	_, err = f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)

	gen := f.generation(t)
	require.True(t, f.mr.Exists(boardKey(board.ID, gen)))
	require.True(t, f.mr.Exists("retros:all:"+gen))

	card, err := f.svc.AddCardToRetroBoard(ctx, board.ID, &retro.Card{Comment: "New", CardType: retro.CardTypeHappy})
	require.NoError(t, err)

	assert.False(t, f.mr.Exists(boardKey(board.ID, gen)))
	assert.False(t, f.mr.Exists("retros:all:"+gen))
	assert.NotEqual(t, gen, f.generation(t))

	found, err := f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, found.Cards, 1)
	assert.Equal(t, card.ID, found.Cards[0].ID)

	gen = f.generation(t)
	require.NoError(t, f.svc.RemoveCardFromRetroBoard(ctx, board.ID, card.ID))
	assert.False(t, f.mr.Exists(boardKey(board.ID, gen)))

	found, err = f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Empty(t, found.Cards)
}

func TestLateCacheWriteFromRacingReadIsIgnored(t *testing.T) {
	f := newCachedService(t)
	ctx := context.Background()

	board, err := f.svc.Save(ctx, &retro.RetroBoard{Name: "Race"})
	require.NoError(t, err)
	before := f.generation(t)

	_, err = f.svc.AddCardToRetroBoard(ctx, board.ID, &retro.Card{Comment: "Landed", CardType: retro.CardTypeHappy})
	require.NoError(t, err)

	// A reader that loaded the board before the card was added stores its
	// stale copy after the write finished.
	require.NoError(t, f.mr.Set(boardKey(board.ID, before), `{"id":"`+board.ID.String()+`","name":"Race","cards":[]}`))

	found, err := f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, found.Cards, 1)

	cards, err := f.svc.FindAllCardsFromRetroBoard(ctx, board.ID)
	require.NoError(t, err)
	assert.Len(t, cards, len(found.Cards))
}

func TestStoppedRedisFallsBackToDatabase(t *testing.T) {
	f := newCachedService(t)
	ctx := context.Background()

	board, err := f.svc.Save(ctx, &retro.RetroBoard{Name: "Outage"})
	require.NoError(t, err)
	_, err = f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)

	f.mr.Close()

	card, err := f.svc.AddCardToRetroBoard(ctx, board.ID, &retro.Card{Comment: "Still works", CardType: retro.CardTypeSad})
	require.NoError(t, err)

	found, err := f.svc.FindByID(ctx, board.ID)
	require.NoError(t, err)
	require.Len(t, found.Cards, 1)
	assert.Equal(t, card.ID, found.Cards[0].ID)

	boards, err := f.svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}
