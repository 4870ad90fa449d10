package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/domains/message/repository"
	"portfolio-backend/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, store *storage.MemoryStore) (message.Service, *repository.LocalMirror) {
	t.Helper()
	mirror := repository.NewLocalMirror(filepath.Join(t.TempDir(), "mirror.json"))
	return NewMessageService(repository.NewBlobRepository(store), mirror, 2*time.Second), mirror
}

func TestCreate_Valid(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)

	msg, err := svc.Create(context.Background(), message.CreateMessageReq{
		Name:    "Ann",
		Email:   "ann@x.com",
		Content: "Hello",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, message.StatusUnread, msg.Status)
	assert.NotEmpty(t, msg.CreatedAt)
	assert.Equal(t, 1, store.Len())
}

func TestCreate_MissingFields(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())

	tests := []message.CreateMessageReq{
		{},
		{Name: "Ann", Email: "ann@x.com"},
		{Name: "Ann", Content: "hi"},
		{Email: "ann@x.com", Content: "hi"},
		{Name: "Ann", Email: "not-an-email", Content: "hi"},
	}

	for _, req := range tests {
		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, message.ErrMissingFields, "%+v", req)
	}
}

func TestMessageIDs_AreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := message.NewMessageID(time.Now())
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestCreate_StoreDown_CapturedLocally(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Fail = true
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	msg, err := svc.Create(ctx, message.CreateMessageReq{
		Name:    "A",
		Email:   "a@b.com",
		Content: "hi",
	})

	require.ErrorIs(t, err, message.ErrStoreUnavailable)
	require.NotNil(t, msg, "the submission rides along with the error")

	// the offline submission still surfaces in the merged list
	msgs := svc.List(ctx)
	require.Len(t, msgs, 1)
	assert.Equal(t, msg.ID, msgs[0].ID)
	assert.Equal(t, "hi", msgs[0].Content)
}

func TestList_RemoteWinsPerID(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, mirror := newTestService(t, store)
	ctx := context.Background()

	// local-only copy with stale content
	stale := message.ContactMessage{
		ID: "mX", Name: "A", Email: "a@b.com", Content: "local draft",
		CreatedAt: "2026-01-01T00:00:00Z", Status: message.StatusUnread,
	}
	require.NoError(t, mirror.Put(ctx, stale))

	// remote copy under the same id
	fresh := stale
	fresh.Content = "remote truth"
	fresh.Status = message.StatusReplied
	require.NoError(t, repository.NewBlobRepository(store).Put(ctx, fresh))

	msgs := svc.List(ctx)

	require.Len(t, msgs, 1, "one entry per id")
	assert.Equal(t, "remote truth", msgs[0].Content)
	assert.Equal(t, message.StatusReplied, msgs[0].Status)
}

func TestList_SortedNewestFirst(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	remote := repository.NewBlobRepository(store)
	for i, ts := range []string{"2026-01-01T00:00:00Z", "2026-03-01T00:00:00Z", "2026-02-01T00:00:00Z"} {
		require.NoError(t, remote.Put(ctx, message.ContactMessage{
			ID: message.NewMessageID(time.Now().Add(time.Duration(i) * time.Millisecond)),
			Name: "N", Email: "n@x.com", Content: "c",
			CreatedAt: ts, Status: message.StatusUnread,
		}))
	}

	msgs := svc.List(ctx)

	require.Len(t, msgs, 3)
	assert.Equal(t, "2026-03-01T00:00:00Z", msgs[0].CreatedAt)
	assert.Equal(t, "2026-01-01T00:00:00Z", msgs[2].CreatedAt)
}

func TestUpdate_StatusToggleIsIdempotent(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	msg, err := svc.Create(ctx, message.CreateMessageReq{Name: "A", Email: "a@b.com", Content: "hi"})
	require.NoError(t, err)

	replied := message.StatusReplied
	first, err := svc.Update(ctx, msg.ID, message.UpdateMessageReq{Status: &replied})
	require.NoError(t, err)
	second, err := svc.Update(ctx, msg.ID, message.UpdateMessageReq{Status: &replied})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, message.StatusReplied, second.Status)
}

func TestUpdate_UnknownID(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())

	replied := message.StatusReplied
	_, err := svc.Update(context.Background(), "mNOPE", message.UpdateMessageReq{Status: &replied})

	assert.ErrorIs(t, err, message.ErrNotFound)
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc, _ := newTestService(t, storage.NewMemoryStore())

	bogus := "archived"
	_, err := svc.Update(context.Background(), "mX", message.UpdateMessageReq{Status: &bogus})

	assert.ErrorIs(t, err, message.ErrMissingFields)
}

func TestUpdate_StoreDown_PatchesMirror(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	msg, err := svc.Create(ctx, message.CreateMessageReq{Name: "A", Email: "a@b.com", Content: "hi"})
	require.NoError(t, err)

	store.Fail = true
	replied := message.StatusReplied
	patched, err := svc.Update(ctx, msg.ID, message.UpdateMessageReq{Status: &replied})

	require.ErrorIs(t, err, message.ErrStoreUnavailable)
	require.NotNil(t, patched)
	assert.Equal(t, message.StatusReplied, patched.Status)

	// the admin action survives in the merged view
	msgs := svc.List(ctx)
	require.Len(t, msgs, 1)
	assert.Equal(t, message.StatusReplied, msgs[0].Status)
}

func TestDelete_RemovesBothCopies(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, mirror := newTestService(t, store)
	ctx := context.Background()

	msg, err := svc.Create(ctx, message.CreateMessageReq{Name: "A", Email: "a@b.com", Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, msg.ID))

	assert.Empty(t, svc.List(ctx))
	_, err = mirror.Get(ctx, msg.ID)
	assert.ErrorIs(t, err, message.ErrNotFound)
}

func TestDelete_StoreDown_LocalCleanupStillHappens(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, mirror := newTestService(t, store)
	ctx := context.Background()

	msg, err := svc.Create(ctx, message.CreateMessageReq{Name: "A", Email: "a@b.com", Content: "hi"})
	require.NoError(t, err)

	store.Fail = true
	err = svc.Delete(ctx, msg.ID)

	assert.ErrorIs(t, err, message.ErrStoreUnavailable)
	_, mirrorErr := mirror.Get(ctx, msg.ID)
	assert.ErrorIs(t, mirrorErr, message.ErrNotFound, "stale mirror copy must not resurface later")
}

func TestExportCSV(t *testing.T) {
	store := storage.NewMemoryStore()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.Create(ctx, message.CreateMessageReq{Name: `Ann "Quotes"`, Email: "ann@x.com", Content: "a,b\nc"})
	require.NoError(t, err)

	csvData := string(svc.ExportCSV(ctx))

	assert.Contains(t, csvData, "id,name,email,content,preferredChannel,status,createdAt")
	assert.Contains(t, csvData, `"Ann ""Quotes"""`)
	assert.Contains(t, csvData, "ann@x.com")
}
