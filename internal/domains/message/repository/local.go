package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"portfolio-backend/internal/domains/message"
)

// LocalMirror keeps the message collection in a single JSON file, the
// server-side analogue of the SPA's localStorage mirror. It is never
// authoritative: the list merge lets remote entries win on id, the
// mirror only keeps submissions alive while the remote store is down.
type LocalMirror struct {
	mu   sync.Mutex
	path string
}

func NewLocalMirror(path string) *LocalMirror {
	return &LocalMirror{path: path}
}

func (r *LocalMirror) List(ctx context.Context) ([]message.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *LocalMirror) Get(ctx context.Context, id string) (*message.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range msgs {
		if msgs[i].ID == id {
			m := msgs[i]
			return &m, nil
		}
	}
	return nil, message.ErrNotFound
}

// Put upserts: an existing entry with the same id is replaced.
func (r *LocalMirror) Put(ctx context.Context, msg message.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range msgs {
		if msgs[i].ID == msg.ID {
			msgs[i] = msg
			replaced = true
			break
		}
	}
	if !replaced {
		msgs = append(msgs, msg)
	}

	return r.save(msgs)
}

func (r *LocalMirror) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgs, err := r.load()
	if err != nil {
		return err
	}

	kept := msgs[:0]
	for _, m := range msgs {
		if m.ID != id {
			kept = append(kept, m)
		}
	}

	return r.save(kept)
}

// load reads the mirror file. A missing file is an empty collection,
// a corrupt file is treated the same way rather than wedging every
// message operation.
func (r *LocalMirror) load() ([]message.ContactMessage, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read mirror %s: %w", r.path, err)
	}

	var msgs []message.ContactMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, nil
	}
	return msgs, nil
}

func (r *LocalMirror) save(msgs []message.ContactMessage) error {
	if msgs == nil {
		msgs = []message.ContactMessage{}
	}

	data, err := json.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("encode mirror: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create mirror dir: %w", err)
	}

	// write-then-rename keeps the mirror readable if the process dies
	// mid-write
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write mirror: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("replace mirror: %w", err)
	}
	return nil
}
