package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/noah-isme/etec-portal-api/internal/models"
	appErrors "github.com/noah-isme/etec-portal-api/pkg/errors"
)

// Gateway exposes the four portal collections (plus inquiries) as typed
// values over the raw Store. Missing keys yield defined defaults; a document
// that no longer decodes is surfaced as BAD_STORE_DATA instead of being
// silently reset, so a corrupted store never loses data behind the caller's
// back.
type Gateway struct {
	store Store
}

// NewGateway wraps a Store.
func NewGateway(s Store) *Gateway {
	return &Gateway{store: s}
}

// Accounts returns the accounts mapping keyed by lowercased email.
func (g *Gateway) Accounts(ctx context.Context) (map[string]models.Account, error) {
	accounts := make(map[string]models.Account)
	if err := g.read(ctx, KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SetAccounts overwrites the accounts mapping.
func (g *Gateway) SetAccounts(ctx context.Context, accounts map[string]models.Account) error {
	return g.write(ctx, KeyAccounts, accounts)
}

// Marks returns the append-only marks collection.
func (g *Gateway) Marks(ctx context.Context) ([]models.Mark, error) {
	marks := []models.Mark{}
	if err := g.read(ctx, KeyMarks, &marks); err != nil {
		return nil, err
	}
	return marks, nil
}

// SetMarks overwrites the marks collection.
func (g *Gateway) SetMarks(ctx context.Context, marks []models.Mark) error {
	return g.write(ctx, KeyMarks, marks)
}

// Events returns the append-only events collection.
func (g *Gateway) Events(ctx context.Context) ([]models.Event, error) {
	events := []models.Event{}
	if err := g.read(ctx, KeyEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SetEvents overwrites the events collection.
func (g *Gateway) SetEvents(ctx context.Context, events []models.Event) error {
	return g.write(ctx, KeyEvents, events)
}

// Inquiries returns the stored contact-form entries.
func (g *Gateway) Inquiries(ctx context.Context) ([]models.Inquiry, error) {
	inquiries := []models.Inquiry{}
	if err := g.read(ctx, KeyInquiry, &inquiries); err != nil {
		return nil, err
	}
	return inquiries, nil
}

// SetInquiries overwrites the inquiries collection.
func (g *Gateway) SetInquiries(ctx context.Context, inquiries []models.Inquiry) error {
	return g.write(ctx, KeyInquiry, inquiries)
}

// Current returns the current-session snapshot, or nil when logged out.
func (g *Gateway) Current(ctx context.Context) (*models.Session, error) {
	raw, ok, err := g.store.Get(ctx, KeyCurrent)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", KeyCurrent, err)
	}
	if !ok {
		return nil, nil
	}
	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrBadStoreData.Code, appErrors.ErrBadStoreData.Status, fmt.Sprintf("decode %s", KeyCurrent))
	}
	return &session, nil
}

// SetCurrent persists the session snapshot; nil clears the slot.
func (g *Gateway) SetCurrent(ctx context.Context, session *models.Session) error {
	if session == nil {
		if err := g.store.Delete(ctx, KeyCurrent); err != nil {
			return fmt.Errorf("clear %s: %w", KeyCurrent, err)
		}
		return nil
	}
	return g.write(ctx, KeyCurrent, session)
}

func (g *Gateway) read(ctx context.Context, key string, out interface{}) error {
	raw, ok, err := g.store.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return appErrors.Wrap(err, appErrors.ErrBadStoreData.Code, appErrors.ErrBadStoreData.Status, fmt.Sprintf("decode %s", key))
	}
	return nil
}

func (g *Gateway) write(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := g.store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
