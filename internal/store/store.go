// Package store holds the portal's persistence layer: a string-keyed
// key-value Store with pluggable drivers and a typed Gateway over the named
// collections. The layout mirrors the browser local-storage schema the portal
// front end was built against, one JSON document per collection key.
package store

import "context"

// Collection keys. The etec_ prefix is part of the persisted contract and
// must not change while existing data is around.
const (
	KeyAccounts = "etec_accounts"
	KeyMarks    = "etec_marks"
	KeyEvents   = "etec_events"
	KeyCurrent  = "etec_current_user"
	KeyInquiry  = "etec_inquiries"
)

// Store is a string-keyed persistent blob store. Get reports presence
// explicitly so callers can distinguish an absent key from an empty value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
