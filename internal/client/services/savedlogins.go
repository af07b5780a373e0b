package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/investportal/internal/client/models"
	"github.com/dmitrijs2005/investportal/internal/client/repositories/kv"
	"github.com/dmitrijs2005/investportal/internal/common"
	"github.com/dmitrijs2005/investportal/internal/logging"
	"github.com/google/uuid"
)

// DefaultSavedLoginsLimit is the recents list bound used when none is set.
const DefaultSavedLoginsLimit = 5

// SavedLogins is the most-recently-used list of prior successful logins,
// newest first, at most one entry per email. Mutators never return errors:
// a failed write is logged and the list simply keeps its old contents.
type SavedLogins struct {
	store kv.Store
	log   logging.Logger
	limit int
	now   func() time.Time
	newID func() string
}

func NewSavedLogins(store kv.Store, limit int, log logging.Logger) *SavedLogins {
	if limit < 1 {
		limit = DefaultSavedLoginsLimit
	}
	return &SavedLogins{
		store: store,
		log:   log.With("component", "saved_logins"),
		limit: limit,
		now:   time.Now,
		newID: newSavedLoginID,
	}
}

// newSavedLoginID returns a UUIDv7, which sorts by creation time.
func newSavedLoginID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func loadSavedLogins(ctx context.Context, s kv.Store) ([]models.SavedLogin, error) {
	var list []models.SavedLogin
	if _, err := kv.LoadJSON(ctx, s, models.KeySavedLogins, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func indexOfSavedLogin(list []models.SavedLogin, email string) int {
	return slices.IndexFunc(list, func(l models.SavedLogin) bool {
		return common.SameEmail(l.Email, email)
	})
}

func (s *SavedLogins) update(ctx context.Context, op string, fn func([]models.SavedLogin) ([]models.SavedLogin, bool)) {
	err := kv.Update(ctx, s.store, func(ctx context.Context, st kv.Store) error {
		list, err := loadSavedLogins(ctx, st)
		if err != nil {
			return err
		}
		list, changed := fn(list)
		if !changed {
			return nil
		}
		if len(list) > s.limit {
			list = list[:s.limit]
		}
		if list == nil {
			list = []models.SavedLogin{}
		}
		return kv.SaveJSON(ctx, st, models.KeySavedLogins, list)
	})
	if err != nil {
		s.log.Warn(ctx, "saved logins not updated", "op", op, "err", err)
	}
}

// Add records a login for email. An existing entry for the same email is
// replaced with the fresh data and moved to the front; otherwise the new
// entry goes in front. The list is then cut to the limit.
func (s *SavedLogins) Add(ctx context.Context, email, name, country string) {
	s.update(ctx, "add", func(list []models.SavedLogin) ([]models.SavedLogin, bool) {
		entry := models.SavedLogin{
			ID:       s.newID(),
			Email:    strings.TrimSpace(email),
			Name:     name,
			Country:  country,
			LastUsed: s.now(),
		}
		if i := indexOfSavedLogin(list, email); i >= 0 {
			entry.Avatar = list[i].Avatar
			list = slices.Delete(list, i, i+1)
		}
		return slices.Insert(list, 0, entry), true
	})
}

// Remove forgets every entry for email.
func (s *SavedLogins) Remove(ctx context.Context, email string) {
	s.update(ctx, "remove", func(list []models.SavedLogin) ([]models.SavedLogin, bool) {
		n := len(list)
		list = slices.DeleteFunc(list, func(l models.SavedLogin) bool {
			return common.SameEmail(l.Email, email)
		})
		return list, len(list) != n
	})
}

// Touch moves the entry for email to the front and refreshes its LastUsed.
// Unknown emails are ignored.
func (s *SavedLogins) Touch(ctx context.Context, email string) {
	s.update(ctx, "touch", func(list []models.SavedLogin) ([]models.SavedLogin, bool) {
		i := indexOfSavedLogin(list, email)
		if i < 0 {
			return list, false
		}
		entry := list[i]
		entry.LastUsed = s.now()
		list = slices.Delete(list, i, i+1)
		return slices.Insert(list, 0, entry), true
	})
}

// List returns the saved logins, most recent first. Read failures yield an
// empty list.
func (s *SavedLogins) List(ctx context.Context) []models.SavedLogin {
	list, err := loadSavedLogins(ctx, s.store)
	if err != nil {
		s.log.Warn(ctx, "saved logins unreadable", "err", err)
		return nil
	}
	if len(list) > s.limit {
		list = list[:s.limit]
	}
	return list
}

// Find returns the saved login for email, if any.
func (s *SavedLogins) Find(ctx context.Context, email string) (models.SavedLogin, bool) {
	list := s.List(ctx)
	if i := indexOfSavedLogin(list, email); i >= 0 {
		return list[i], true
	}
	return models.SavedLogin{}, false
}
