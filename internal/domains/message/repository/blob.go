package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/pkg/logger"
)

const messagePrefix = "messages/"

// BlobRepository stores one object per message in the blob store.
type BlobRepository struct {
	store storage.ObjectStore
}

func NewBlobRepository(store storage.ObjectStore) *BlobRepository {
	return &BlobRepository{store: store}
}

func (r *BlobRepository) List(ctx context.Context) ([]message.ContactMessage, error) {
	infos, err := r.store.List(ctx, messagePrefix)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]message.ContactMessage, 0, len(infos))
	for _, info := range infos {
		if !strings.HasSuffix(info.Key, ".json") {
			continue
		}
		data, err := r.store.Get(ctx, info.Key)
		if err != nil {
			// an object that vanished between list and fetch is skipped,
			// not fatal for the whole listing
			logger.Warn("skipping unreadable message object "+info.Key, err)
			continue
		}
		var m message.ContactMessage
		if err := json.Unmarshal(data, &m); err != nil {
			logger.Warn("skipping malformed message object "+info.Key, err)
			continue
		}
		msgs = append(msgs, m)
	}

	return msgs, nil
}

func (r *BlobRepository) Get(ctx context.Context, id string) (*message.ContactMessage, error) {
	data, err := r.store.Get(ctx, message.ObjectKey(id))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, message.ErrNotFound
		}
		return nil, fmt.Errorf("get message %s: %w", id, err)
	}

	var m message.ContactMessage
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode message %s: %w", id, err)
	}
	return &m, nil
}

func (r *BlobRepository) Put(ctx context.Context, msg message.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode message %s: %w", msg.ID, err)
	}

	if _, err := r.store.Put(ctx, message.ObjectKey(msg.ID), data, "application/json"); err != nil {
		return fmt.Errorf("put message %s: %w", msg.ID, err)
	}
	return nil
}

func (r *BlobRepository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, message.ObjectKey(id)); err != nil {
		return fmt.Errorf("delete message %s: %w", id, err)
	}
	return nil
}
