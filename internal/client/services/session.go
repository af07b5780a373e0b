package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
)

// SessionService owns the single "who is logged in" record.
//
// The record lives under models.KeySession. Older data may still carry an
// admin session under models.KeyLegacyAdminUser; Current falls back to it
// and Logout removes both.
type SessionService struct {
	store kv.Store
	log   logging.Logger
}

func NewSessionService(store kv.Store, log logging.Logger) *SessionService {
	return &SessionService{store: store, log: log.With("component", "session")}
}

// Save overwrites the current session.
func (s *SessionService) Save(ctx context.Context, rec models.SessionRecord) error {
	if !rec.Role.Valid() {
		return fmt.Errorf("save session: unknown role %q", rec.Role)
	}
	if err := kv.SaveJSON(ctx, s.store, models.KeySession, rec); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Current returns the logged-in account, if any. Unreadable records count
// as logged out.
func (s *SessionService) Current(ctx context.Context) (models.SessionRecord, bool) {
	if rec, ok := s.load(ctx, models.KeySession, models.RoleUser); ok {
		return rec, true
	}
	return s.load(ctx, models.KeyLegacyAdminUser, models.RoleAdmin)
}

func (s *SessionService) load(ctx context.Context, key string, defaultRole models.Role) (models.SessionRecord, bool) {
	var rec models.SessionRecord
	found, err := kv.LoadJSON(ctx, s.store, key, &rec)
	if err != nil {
		s.log.Warn(ctx, "session record unreadable", "key", key, "err", err)
		return models.SessionRecord{}, false
	}
	if !found || strings.TrimSpace(rec.Email) == "" {
		return models.SessionRecord{}, false
	}
	if rec.Role == "" {
		rec.Role = defaultRole
	}
	return rec, true
}

// RequireRole gates a protected screen: it returns common.ErrNoSession when
// nobody is logged in and common.ErrForbidden when the role differs.
// An admin passes every gate.
func (s *SessionService) RequireRole(ctx context.Context, role models.Role) (models.SessionRecord, error) {
	rec, ok := s.Current(ctx)
	if !ok {
		return models.SessionRecord{}, common.ErrNoSession
	}
	if rec.Role != role && rec.Role != models.RoleAdmin {
		return rec, common.ErrForbidden
	}
	return rec, nil
}

// Logout removes the session record under both keys.
func (s *SessionService) Logout(ctx context.Context) error {
	err := kv.Update(ctx, s.store, func(ctx context.Context, st kv.Store) error {
		if err := st.Delete(ctx, models.KeySession); err != nil {
			return err
		}
		return st.Delete(ctx, models.KeyLegacyAdminUser)
	})
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}
