package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"go-yourtask/internal/session"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestRedisStore_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := session.NewRedisStore(db, 0, zap.NewNop())
	ctx := context.Background()

	sess := session.Session{Username: "rudi1", Name: "Rudi", Role: session.RoleOps}
	payload, _ := json.Marshal(sess)

	mock.ExpectSet(session.Key("sid-1"), payload, 0).SetVal("OK")

	assert.NoError(t, store.Save(ctx, "sid-1", sess))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_SaveWithTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := session.NewRedisStore(db, 12*time.Hour, zap.NewNop())
	ctx := context.Background()

	sess := session.Session{Username: "budi2", Name: "Budi", Role: session.RoleKurir}
	payload, _ := json.Marshal(sess)

	mock.ExpectSet(session.Key("sid-2"), payload, 12*time.Hour).SetVal("OK")

	assert.NoError(t, store.Save(ctx, "sid-2", sess))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := session.NewRedisStore(db, 0, zap.NewNop())

		mock.ExpectGet(session.Key("sid-1")).SetVal(`{"username":"budi2","name":"Budi","role":"kurir"}`)

		got, err := store.Load(ctx, "sid-1")
		assert.NoError(t, err)
		assert.Equal(t, &session.Session{Username: "budi2", Name: "Budi", Role: session.RoleKurir}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := session.NewRedisStore(db, 0, zap.NewNop())

		mock.ExpectGet(session.Key("sid-x")).RedisNil()

		got, err := store.Load(ctx, "sid-x")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("corrupt json discarded silently", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := session.NewRedisStore(db, 0, zap.NewNop())

		mock.ExpectGet(session.Key("sid-bad")).SetVal(`{not json`)
		mock.ExpectDel(session.Key("sid-bad")).SetVal(1)

		got, err := store.Load(ctx, "sid-bad")
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown role discarded silently", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := session.NewRedisStore(db, 0, zap.NewNop())

		mock.ExpectGet(session.Key("sid-role")).SetVal(`{"username":"x","name":"X","role":"admin"}`)
		mock.ExpectDel(session.Key("sid-role")).SetVal(1)

		got, err := store.Load(ctx, "sid-role")
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis error surfaces", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		store := session.NewRedisStore(db, 0, zap.NewNop())

		mock.ExpectGet(session.Key("sid-1")).SetErr(assert.AnError)

		got, err := store.Load(ctx, "sid-1")
		assert.Error(t, err)
		assert.Nil(t, got)
	})
}

func TestRedisStore_Clear(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := session.NewRedisStore(db, 0, zap.NewNop())

	mock.ExpectDel(session.Key("sid-1")).SetVal(1)

	assert.NoError(t, store.Clear(context.Background(), "sid-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
