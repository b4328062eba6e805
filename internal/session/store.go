// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the console's process-wide auth state: the bearer
// token and the profile of the signed-in user.
//
// A [Store] is created once by the client, rehydrated with [Store.Init] and
// passed to every consumer explicitly. All mutations go through Login,
// SetUser, Logout and Teardown; every mutation persists the full snapshot
// through a [store.SessionRepository] under a fixed namespace.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/content-console/internal/logger"
	"github.com/MKhiriev/content-console/internal/store"
	"github.com/MKhiriev/content-console/models"
)

// ErrPersistSession wraps the repository error when a snapshot could not be
// written or removed. The in-memory state is updated regardless.
var ErrPersistSession = errors.New("failed to persist session")

// Listener receives a copy of the session after every change.
type Listener func(models.AuthSession)

// Store is the auth session singleton. It is safe for concurrent use.
type Store struct {
	repo      store.SessionRepository
	namespace string
	logger    *logger.Logger

	mu    sync.RWMutex
	state models.AuthSession

	subsMu    sync.Mutex
	nextSubID int
	subs      map[int]Listener
}

// NewStore returns an empty store persisting under namespace. Call Init to
// load the previously saved session.
func NewStore(repo store.SessionRepository, namespace string, log *logger.Logger) *Store {
	return &Store{
		repo:      repo,
		namespace: namespace,
		logger:    log,
		subs:      make(map[int]Listener),
	}
}

// Init replaces the in-memory state with the persisted snapshot. A missing
// snapshot yields an empty session and no error.
func (s *Store) Init(ctx context.Context) error {
	loaded, err := s.repo.Load(ctx, s.namespace)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		loaded, err = models.AuthSession{}, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "Store.Init").Str("namespace", s.namespace).Msg("error loading session")
		return fmt.Errorf("load session: %w", err)
	}

	s.mu.Lock()
	s.state = loaded.Clone()
	snapshot := s.state.Clone()
	s.mu.Unlock()

	s.logger.Debug().Str("func", "Store.Init").Bool("has_token", snapshot.HasToken()).Msg("session rehydrated")
	s.notify(snapshot)
	return nil
}

// Login stores token. The previously known user is kept until SetUser.
func (s *Store) Login(ctx context.Context, token string) error {
	return s.mutate(ctx, "Store.Login", func(st *models.AuthSession) {
		st.Token = token
	})
}

// SetUser stores the profile of the signed-in user. A nil user clears it.
func (s *Store) SetUser(ctx context.Context, user *models.User) error {
	return s.mutate(ctx, "Store.SetUser", func(st *models.AuthSession) {
		if user == nil {
			st.User = nil
			return
		}
		u := *user
		st.User = &u
	})
}

// Logout clears the token only. The user profile stays in the session until
// Teardown or the next SetUser.
func (s *Store) Logout(ctx context.Context) error {
	return s.mutate(ctx, "Store.Logout", func(st *models.AuthSession) {
		st.Token = ""
	})
}

// Teardown is the full sign-out: it clears the token and the user and
// removes the persisted snapshot.
func (s *Store) Teardown(ctx context.Context) error {
	s.mu.Lock()
	s.state = models.AuthSession{}
	s.mu.Unlock()

	var persistErr error
	if err := s.repo.Delete(ctx, s.namespace); err != nil {
		s.logger.Err(err).Str("func", "Store.Teardown").Str("namespace", s.namespace).Msg("error deleting session")
		persistErr = fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	s.notify(models.AuthSession{})
	return persistErr
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() models.AuthSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Token returns the current bearer token, empty when signed out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Token
}

// User returns a copy of the current profile or nil.
func (s *Store) User() *models.User {
	return s.Snapshot().User
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription and may be called more than once.
func (s *Store) Subscribe(fn Listener) func() {
	s.subsMu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	return func() {
		s.subsMu.Lock()
		delete(s.subs, id)
		s.subsMu.Unlock()
	}
}

func (s *Store) mutate(ctx context.Context, fn string, apply func(*models.AuthSession)) error {
	s.mu.Lock()
	apply(&s.state)
	snapshot := s.state.Clone()
	s.mu.Unlock()

	var persistErr error
	if err := s.repo.Save(ctx, s.namespace, snapshot); err != nil {
		s.logger.Err(err).Str("func", fn).Str("namespace", s.namespace).Msg("error persisting session")
		persistErr = fmt.Errorf("%w: %w", ErrPersistSession, err)
	}

	s.notify(snapshot)
	return persistErr
}

func (s *Store) notify(snapshot models.AuthSession) {
	s.subsMu.Lock()
	listeners := make([]Listener, 0, len(s.subs))
	for _, l := range s.subs {
		listeners = append(listeners, l)
	}
	s.subsMu.Unlock()

	for _, l := range listeners {
		l(snapshot.Clone())
	}
}
