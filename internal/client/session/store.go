// Package session owns durable persistence of the authentication session:
// access token, refresh token, and the serialized identity. It is the single
// authority other components consult to decide whether a token exists.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/microbank-cli/internal/client/models"
	"github.com/dmitrijs2005/microbank-cli/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/microbank-cli/internal/dbx"
	"github.com/dmitrijs2005/microbank-cli/internal/logging"
)

// Storage keys, fixed for compatibility with earlier releases.
const (
	keyToken        = "microbank_token"
	keyUser         = "microbank_user"
	keyRefreshToken = "microbank_refresh_token"
)

// Store keeps the session in memory, write-through to the local database.
// Reads (Get, HasToken, Token) are O(1) and never touch storage.
type Store struct {
	db  *sql.DB
	log logging.Logger

	mu  sync.RWMutex
	cur models.Session
}

// Open loads the persisted session into memory. A corrupt or inconsistent
// identity payload is purged and treated as absent; Open fails only when the
// storage medium itself cannot be read.
func Open(ctx context.Context, db *sql.DB, log logging.Logger) (*Store, error) {
	s := &Store{db: db, log: log}

	repo := s.repo()

	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return nil, fmt.Errorf("failed to load access token: %w", err)
	}
	refresh, err := repo.Get(ctx, keyRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to load refresh token: %w", err)
	}

	s.cur = models.Session{
		AccessToken:  string(token),
		RefreshToken: string(refresh),
	}
	s.cur.Identity = s.loadIdentity(ctx, repo, s.cur.AccessToken)

	return s, nil
}

func (s *Store) repo() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// loadIdentity deserializes the persisted identity. Missing entries, the
// literal "null"/"undefined" markers, malformed JSON, and an identity without
// a token all yield nil; bad rows are removed so the next start is clean.
func (s *Store) loadIdentity(ctx context.Context, repo metadata.Repository, token string) *models.Identity {
	raw, err := repo.Get(ctx, keyUser)
	if err != nil {
		s.log.Warn(ctx, "failed to read persisted identity", "error", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	purge := func(reason string) {
		s.log.Warn(ctx, "purging persisted identity", "reason", reason)
		if err := repo.Delete(ctx, keyUser); err != nil {
			s.log.Warn(ctx, "failed to purge identity entry", "error", err)
		}
	}

	if v := string(raw); v == "null" || v == "undefined" {
		purge("literal null marker")
		return nil
	}

	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		purge("malformed payload")
		return nil
	}

	if token == "" {
		// Identity never outlives the token.
		purge("identity without token")
		return nil
	}

	return &identity
}

// Get returns a snapshot of the current session.
func (s *Store) Get() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.cur
	if s.cur.Identity != nil {
		identity := *s.cur.Identity
		snap.Identity = &identity
	}
	return snap
}

// HasToken reports whether an access token is present.
func (s *Store) HasToken() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken != ""
}

// Token returns the current access token, or "" when absent.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.AccessToken
}

// Put persists a freshly created session. All three entries are written in a
// single transaction; partial updates are not supported.
func (s *Store) Put(ctx context.Context, accessToken string, identity models.Identity, refreshToken string) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to serialize identity: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(accessToken)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUser, raw); err != nil {
			return err
		}
		return repo.Set(ctx, keyRefreshToken, []byte(refreshToken))
	})
	if err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Identity:     &identity,
	}
	s.mu.Unlock()
	return nil
}

// SetIdentity replaces only the persisted identity, leaving tokens untouched
// (profile refresh path). Without a token it is a no-op.
func (s *Store) SetIdentity(ctx context.Context, identity models.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cur.AccessToken == "" {
		return nil
	}

	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to serialize identity: %w", err)
	}
	if err := s.repo().Set(ctx, keyUser, raw); err != nil {
		return err
	}

	s.cur.Identity = &identity
	return nil
}

// Clear removes all session entries. Idempotent.
func (s *Store) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, key := range []string{keyToken, keyUser, keyRefreshToken} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	s.cur = models.Session{}
	s.mu.Unlock()
	return nil
}
