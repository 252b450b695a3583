// Package services contains application services for the portal client.
// This file defines the session service: bootstrap from the stored bearer
// credential, login, registration, logout and change notification.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nvpwelfare/portal/internal/client/access"
	"github.com/nvpwelfare/portal/internal/client/client"
	"github.com/nvpwelfare/portal/internal/client/models"
	"github.com/nvpwelfare/portal/internal/client/repositories/metadata"
	"github.com/nvpwelfare/portal/internal/dbx"
	"github.com/nvpwelfare/portal/internal/logging"
)

var ErrEmptyCredentials = errors.New("email and password are required")

// SessionService is the single source of truth for who is logged in.
//
// Contract:
//   - Init: restore the session from the stored credential. The identity
//     fetch runs in the background; Loading reports true until it resolves.
//     A refused or failed fetch logs the user out; a cancelled one leaves the
//     stored credential in place. Init does nothing once Login, Register or
//     Logout has run.
//   - Login/Register: one backend attempt; on success the credential is
//     persisted and the principal set. Backend errors are returned unchanged.
//   - Logout: never fails and may be called any number of times.
//   - OnChange: fn is called after every principal or loading change.
type SessionService interface {
	Init(ctx context.Context) error
	Ready() <-chan struct{}
	Wait(ctx context.Context) error
	Loading() bool
	Principal() *models.Principal
	State() access.State

	Login(ctx context.Context, email, password string) (models.Principal, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.Principal, error)
	Logout(ctx context.Context)

	OnChange(fn func(access.State)) (unsubscribe func())
}

type sessionService struct {
	client client.Client
	db     *sql.DB
	log    logging.Logger
	now    func() time.Time

	initOnce  sync.Once
	readyOnce sync.Once
	ready     chan struct{}

	// wmu serialises credential writes with the principal updates that
	// follow them.
	wmu sync.Mutex

	mu        sync.RWMutex
	principal *models.Principal
	loading   bool
	// gen is bumped by every login, register and logout so a late identity
	// fetch cannot overwrite a newer session.
	gen uint64

	lmu       sync.Mutex
	listeners map[int]func(access.State)
	nextID    int
}

// NewSessionService constructs a SessionService bound to the backend client
// and the local state database.
func NewSessionService(c client.Client, db *sql.DB, log logging.Logger) SessionService {
	return &sessionService{
		client:    c,
		db:        db,
		log:       log.With("component", "session"),
		now:       time.Now,
		ready:     make(chan struct{}),
		loading:   true,
		listeners: make(map[int]func(access.State)),
	}
}

func (s *sessionService) Init(ctx context.Context) error {
	first := false
	s.initOnce.Do(func() { first = true })
	if !first {
		return nil
	}

	s.wmu.Lock()
	gen := s.generation()
	if gen != 0 {
		// a login, register or logout already settled the session
		s.wmu.Unlock()
		return nil
	}
	raw, err := metadata.NewSQLiteRepository(s.db).Get(ctx, metadata.KeyToken)
	token := string(raw)

	switch {
	case err != nil:
		s.log.Error(ctx, "read stored credential", "error", err)
		s.forget(ctx)
		s.resolve(gen, nil)
	case token == "":
		s.resolve(gen, nil)
	case tokenExpired(token, s.now()):
		s.log.Info(ctx, "stored credential expired")
		s.forget(ctx)
		s.resolve(gen, nil)
	default:
		s.client.SetToken(token)
		go s.fetchIdentity(ctx, gen)
	}
	s.wmu.Unlock()

	if s.Loading() {
		return nil
	}
	s.notify()
	if err != nil {
		return fmt.Errorf("read stored credential: %w", err)
	}
	return nil
}

func (s *sessionService) fetchIdentity(ctx context.Context, gen uint64) {
	p, err := s.client.Me(ctx)

	s.wmu.Lock()
	switch {
	case errors.Is(err, context.Canceled):
		// Interrupted, not refused: keep the credential for the next start.
		s.log.Info(ctx, "identity fetch cancelled")
		if s.generation() == gen {
			s.client.ClearToken()
		}
		s.resolve(gen, nil)
	case err != nil:
		s.log.Warn(ctx, "identity fetch failed, logging out", "error", err)
		if s.generation() == gen {
			s.forget(ctx)
		}
		s.resolve(gen, nil)
	default:
		s.log.Info(ctx, "session restored", "user_id", p.ID, "role", p.Role)
		s.resolve(gen, &p)
	}
	s.wmu.Unlock()

	s.notify()
}

func (s *sessionService) generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

// resolve ends the loading phase. p is applied only if no login, register or
// logout happened since gen was taken.
func (s *sessionService) resolve(gen uint64, p *models.Principal) {
	s.mu.Lock()
	if s.gen == gen {
		s.principal = p
	}
	s.loading = false
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
}

// replace installs p as the current principal and resolves loading.
func (s *sessionService) replace(p *models.Principal) {
	s.mu.Lock()
	s.gen++
	s.principal = p
	s.loading = false
	s.mu.Unlock()

	s.readyOnce.Do(func() { close(s.ready) })
}

func (s *sessionService) Ready() <-chan struct{} {
	return s.ready
}

func (s *sessionService) Wait(ctx context.Context) error {
	select {
	case <-s.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *sessionService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Principal returns a copy of the current principal, or nil.
func (s *sessionService) Principal() *models.Principal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePrincipal(s.principal)
}

func (s *sessionService) State() access.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return access.State{Principal: clonePrincipal(s.principal), Loading: s.loading}
}

func (s *sessionService) Login(ctx context.Context, email, password string) (models.Principal, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return models.Principal{}, ErrEmptyCredentials
	}

	sess, err := s.client.Login(ctx, email, password)
	if err != nil {
		return models.Principal{}, err
	}
	if err := s.establish(ctx, sess); err != nil {
		return models.Principal{}, err
	}
	s.log.Info(ctx, "logged in", "user_id", sess.Principal.ID, "role", sess.Principal.Role)
	return sess.Principal, nil
}

func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) (models.Principal, error) {
	sess, err := s.client.Register(ctx, req)
	if err != nil {
		return models.Principal{}, err
	}
	if err := s.establish(ctx, sess); err != nil {
		return models.Principal{}, err
	}
	s.log.Info(ctx, "registered", "user_id", sess.Principal.ID, "pending", sess.Principal.IsPending())
	return sess.Principal, nil
}

// establish persists the credential and then publishes the principal.
func (s *sessionService) establish(ctx context.Context, sess models.Session) error {
	s.wmu.Lock()
	if err := s.saveCredential(ctx, sess.Token); err != nil {
		s.wmu.Unlock()
		return fmt.Errorf("persist credential: %w", err)
	}
	s.client.SetToken(sess.Token)
	p := sess.Principal
	s.replace(&p)
	s.wmu.Unlock()

	s.notify()
	return nil
}

func (s *sessionService) saveCredential(ctx context.Context, token string) error {
	savedAt := s.now().UTC().Format(time.RFC3339)
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyTokenSavedAt, []byte(savedAt))
	})
}

func (s *sessionService) Logout(ctx context.Context) {
	s.wmu.Lock()
	s.forget(ctx)
	s.replace(nil)
	s.wmu.Unlock()

	s.log.Info(ctx, "logged out")
	s.notify()
}

// forget erases the stored credential and detaches it from the client.
// Storage failures are logged, not returned.
func (s *sessionService) forget(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, metadata.KeyToken); err != nil {
			return err
		}
		return repo.Delete(ctx, metadata.KeyTokenSavedAt)
	})
	if err != nil {
		s.log.Error(ctx, "erase stored credential", "error", err)
	}
	s.client.ClearToken()
}

func (s *sessionService) OnChange(fn func(access.State)) func() {
	s.lmu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.lmu.Unlock()

	return func() {
		s.lmu.Lock()
		delete(s.listeners, id)
		s.lmu.Unlock()
	}
}

// notify calls listeners outside the state lock.
func (s *sessionService) notify() {
	state := s.State()

	s.lmu.Lock()
	fns := make([]func(access.State), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.lmu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

func clonePrincipal(p *models.Principal) *models.Principal {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// tokenExpired reports whether token is a JWT whose exp claim has passed.
// The signature is not checked; opaque tokens are never considered expired.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return !claims.ExpiresAt.After(now)
}
