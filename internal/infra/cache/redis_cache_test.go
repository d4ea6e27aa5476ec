package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/service"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKey() service.ComplianceCacheKey {
	return service.ComplianceCacheKey{
		UserID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		RouteID:  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		DateFrom: "2024-03-01",
		DateTo:   "2024-03-07",
	}
}

func TestRedisComplianceCache_GetHit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, time.Minute)
	key := testKey()
	pct := 60.0
	want := &entity.ComplianceScore{UserID: key.UserID, RouteID: key.RouteID, ProgrammedCount: 5, VisitedCount: 3, Percentage: &pct}
	raw, err := json.Marshal(want)
	require.NoError(t, err)

	mock.ExpectGet(versionKey(key.UserID)).SetVal("4")
	mock.ExpectGet(scoreKey(key, 4)).SetVal(string(raw))

	pinned, err := c.Pin(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, int64(4), pinned.Version)

	got, err := c.Get(context.Background(), pinned)

	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisComplianceCache_GetMissWithoutVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, time.Minute)
	key := testKey()

	mock.ExpectGet(versionKey(key.UserID)).RedisNil()
	mock.ExpectGet(scoreKey(key, 0)).RedisNil()

	pinned, err := c.Pin(context.Background(), key)
	require.NoError(t, err)
	assert.Zero(t, pinned.Version)

	_, err = c.Get(context.Background(), pinned)

	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisComplianceCache_PinError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, time.Minute)
	key := testKey()

	mock.ExpectGet(versionKey(key.UserID)).SetErr(errors.New("connection refused"))

	_, err := c.Pin(context.Background(), key)

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisComplianceCache_GetError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, time.Minute)
	key := testKey()
	key.Version = 1

	mock.ExpectGet(scoreKey(key, 1)).SetErr(errors.New("connection refused"))

	_, err := c.Get(context.Background(), key)

	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrCacheMiss)
}

func TestRedisComplianceCache_SetUsesPinnedVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, 15*time.Minute)
	key := testKey()
	key.Version = 2
	score := &entity.ComplianceScore{UserID: key.UserID, RouteID: key.RouteID}
	raw, err := json.Marshal(score)
	require.NoError(t, err)

	mock.ExpectSet(scoreKey(key, 2), raw, 15*time.Minute).SetVal("OK")

	require.NoError(t, c.Set(context.Background(), key, score))
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A checkout that invalidates while a score is being computed must orphan that score:
// it is written under the old generation and the next lookup misses.
func TestRedisComplianceCache_InvalidateDuringComputationOrphansScore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, 15*time.Minute)
	ctx := context.Background()
	key := testKey()
	stale := &entity.ComplianceScore{UserID: key.UserID, RouteID: key.RouteID, ProgrammedCount: 5, VisitedCount: 2}
	raw, err := json.Marshal(stale)
	require.NoError(t, err)

	mock.ExpectGet(versionKey(key.UserID)).RedisNil()
	mock.ExpectGet(scoreKey(key, 0)).RedisNil()
	mock.ExpectIncr(versionKey(key.UserID)).SetVal(1)
	mock.ExpectSet(scoreKey(key, 0), raw, 15*time.Minute).SetVal("OK")
	mock.ExpectGet(versionKey(key.UserID)).SetVal("1")
	mock.ExpectGet(scoreKey(key, 1)).RedisNil()

	pinned, err := c.Pin(ctx, key)
	require.NoError(t, err)
	_, err = c.Get(ctx, pinned)
	require.ErrorIs(t, err, service.ErrCacheMiss)

	require.NoError(t, c.Invalidate(ctx, key.UserID))
	require.NoError(t, c.Set(ctx, pinned, stale))

	next, err := c.Pin(ctx, key)
	require.NoError(t, err)
	_, err = c.Get(ctx, next)

	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisComplianceCache_InvalidateBumpsVersion(t *testing.T) {
	db, mock := redismock.NewClientMock()
	c := NewRedisComplianceCache(db, time.Minute)
	userID := uuid.New()

	mock.ExpectIncr(versionKey(userID)).SetVal(1)

	require.NoError(t, c.Invalidate(context.Background(), userID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScoreKey_ChangesWithVersion(t *testing.T) {
	key := testKey()

	assert.NotEqual(t, scoreKey(key, 1), scoreKey(key, 2))
}

func TestNoopComplianceCache(t *testing.T) {
	c := NewNoopComplianceCache()
	ctx := context.Background()

	pinned, err := c.Pin(ctx, testKey())
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, pinned, &entity.ComplianceScore{}))
	_, err = c.Get(ctx, pinned)
	assert.ErrorIs(t, err, service.ErrCacheMiss)
	assert.NoError(t, c.Invalidate(ctx, uuid.New()))
}
