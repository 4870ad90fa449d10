package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"portfolio-backend/internal/domains/message"
	"portfolio-backend/internal/domains/message/repository"
	"portfolio-backend/pkg/logger"
)

type messageService struct {
	remote  message.Repository
	mirror  message.Repository
	timeout time.Duration
}

// NewMessageService composes the remote blob repository with the local
// mirror. remote is authoritative, mirror is the offline fallback.
func NewMessageService(remote, mirror message.Repository, timeout time.Duration) message.Service {
	return &messageService{
		remote:  remote,
		mirror:  mirror,
		timeout: timeout,
	}
}

func (s *messageService) List(ctx context.Context) []message.ContactMessage {
	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	remote, err := s.remote.List(rctx)
	if err != nil {
		logger.Warn("remote message listing failed, serving local mirror only", err)
		remote = nil
	}

	local, err := s.mirror.List(ctx)
	if err != nil {
		logger.Warn("local mirror read failed", err)
		local = nil
	}

	return repository.MergeByID(local, remote)
}

func (s *messageService) Create(ctx context.Context, req message.CreateMessageReq) (*message.ContactMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", message.ErrMissingFields, err)
	}

	msg := message.NewContactMessage(req.Name, req.Email, req.Content, req.PreferredChannel, time.Now())

	wctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.remote.Put(wctx, msg); err != nil {
		logger.Warn("remote message write failed, capturing in mirror", err)
		if mirrorErr := s.mirror.Put(ctx, msg); mirrorErr != nil {
			logger.Error("mirror capture failed, submission may be lost", mirrorErr)
		}
		return &msg, message.ErrStoreUnavailable
	}

	// keep the mirror in step so an admin session survives a later
	// remote outage
	if err := s.mirror.Put(ctx, msg); err != nil {
		logger.Warn("mirror update after create failed", err)
	}

	return &msg, nil
}

func (s *messageService) Update(ctx context.Context, id string, patch message.UpdateMessageReq) (*message.ContactMessage, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", message.ErrMissingFields, err)
	}

	rctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	current, err := s.remote.Get(rctx, id)
	if err != nil {
		if errors.Is(err, message.ErrNotFound) {
			return nil, message.ErrNotFound
		}
		// remote down: apply the patch to the mirror only so the admin
		// action is not lost
		logger.Warn("remote message load failed, patching mirror only", err)
		return s.patchMirror(ctx, id, patch)
	}

	next := *current
	patch.Apply(&next)

	if err := s.remote.Put(rctx, next); err != nil {
		logger.Warn("remote message write failed, patching mirror only", err)
		return s.patchMirror(ctx, id, patch)
	}

	// keep both copies consistent when a matching local record exists
	if _, err := s.mirror.Get(ctx, id); err == nil {
		if err := s.mirror.Put(ctx, next); err != nil {
			logger.Warn("mirror update after patch failed", err)
		}
	}

	return &next, nil
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	wctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	remoteErr := s.remote.Delete(wctx, id)

	// best-effort local cleanup happens on both outcomes: a stale
	// mirror entry must not resurface in a future merge
	if err := s.mirror.Delete(ctx, id); err != nil {
		logger.Warn("mirror delete failed", err)
	}

	if remoteErr != nil {
		logger.Warn("remote message delete failed, orphan accepted", remoteErr)
		return message.ErrStoreUnavailable
	}
	return nil
}

func (s *messageService) ExportCSV(ctx context.Context) []byte {
	msgs := s.List(ctx)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"id", "name", "email", "content", "preferredChannel", "status", "createdAt"})
	for _, m := range msgs {
		_ = w.Write([]string{m.ID, m.Name, m.Email, m.Content, m.PreferredChannel, m.Status, m.CreatedAt})
	}
	w.Flush()

	return buf.Bytes()
}

// patchMirror applies a patch to the mirror copy when the remote store
// is unreachable. ErrStoreUnavailable is returned either way; the
// patched record rides along when the mirror had it.
func (s *messageService) patchMirror(ctx context.Context, id string, patch message.UpdateMessageReq) (*message.ContactMessage, error) {
	local, err := s.mirror.Get(ctx, id)
	if err != nil {
		return nil, message.ErrStoreUnavailable
	}

	next := *local
	patch.Apply(&next)
	if err := s.mirror.Put(ctx, next); err != nil {
		logger.Warn("mirror patch write failed", err)
		return nil, message.ErrStoreUnavailable
	}

	return &next, message.ErrStoreUnavailable
}
