package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/content-console/models"
)

type fileSessionRepository struct {
	path string

	mu       sync.RWMutex
	sessions map[string]models.AuthSession
}

type filePersistedState struct {
	Sessions map[string]models.AuthSession `json:"sessions"`
}

// NewFileSessionRepository returns a [SessionRepository] that keeps every
// namespace in one JSON document at path. A missing file is an empty store.
func NewFileSessionRepository(path string) (SessionRepository, error) {
	r := &fileSessionRepository{
		path:     path,
		sessions: make(map[string]models.AuthSession),
	}
	if err := r.load(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *fileSessionRepository) Load(_ context.Context, namespace string) (models.AuthSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[namespace]
	if !ok {
		return models.AuthSession{}, ErrLocalSessionNotFound
	}
	return session.Clone(), nil
}

func (r *fileSessionRepository) Save(_ context.Context, namespace string, session models.AuthSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[namespace] = session.Clone()
	return r.persist()
}

func (r *fileSessionRepository) Delete(_ context.Context, namespace string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[namespace]; !ok {
		return nil
	}
	delete(r.sessions, namespace)
	return r.persist()
}

func (r *fileSessionRepository) load() error {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var st filePersistedState
	if err = json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingSession, err)
	}
	if st.Sessions != nil {
		r.sessions = st.Sessions
	}

	return nil
}

func (r *fileSessionRepository) persist() error {
	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(filePersistedState{Sessions: r.sessions}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	// the token is a credential
	if err = os.WriteFile(r.path, payload, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}

	return nil
}
