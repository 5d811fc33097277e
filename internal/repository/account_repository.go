package repository

import (
	"context"
	"fmt"

	"github.com/noah-isme/etec-portal-api/internal/identity"
	"github.com/noah-isme/etec-portal-api/internal/models"
	"github.com/noah-isme/etec-portal-api/internal/store"
)

// AccountRepository provides access to the accounts collection.
type AccountRepository struct {
	gateway *store.Gateway
}

// NewAccountRepository creates a new instance of AccountRepository.
func NewAccountRepository(gateway *store.Gateway) *AccountRepository {
	return &AccountRepository{gateway: gateway}
}

// Find resolves an identifier to an account. The normalized identifier is
// tried as an email key first; failing that, student accounts are scanned for
// a matching registration number. When two accounts incorrectly share a regNo
// the winner follows map iteration order, which is unspecified — a quirk of
// the original portal kept as-is rather than silently repaired.
func (r *AccountRepository) Find(ctx context.Context, identifier string) (*models.Account, error) {
	accounts, err := r.gateway.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	id := identity.Normalize(identifier)
	if account, ok := accounts[id]; ok {
		return &account, nil
	}

	for _, account := range accounts {
		if account.RegNo != "" && identity.Normalize(account.RegNo) == id {
			account := account
			return &account, nil
		}
	}
	return nil, nil
}

// Save upserts the account under its lowercased email, fully overwriting any
// existing record at that key.
func (r *AccountRepository) Save(ctx context.Context, account models.Account) error {
	accounts, err := r.gateway.Accounts(ctx)
	if err != nil {
		return err
	}

	key := identity.Normalize(account.Email)
	if key == "" {
		key = identity.Normalize(account.ID)
	}
	if key == "" {
		return fmt.Errorf("account has no usable key")
	}

	accounts[key] = account
	return r.gateway.SetAccounts(ctx, accounts)
}

// List returns every stored account.
func (r *AccountRepository) List(ctx context.Context) ([]models.Account, error) {
	accounts, err := r.gateway.Accounts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Account, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, account)
	}
	return out, nil
}

// SeedAdminIfMissing inserts the configured demo admin when no admin account
// exists. Calling it again is a no-op. The seeded plaintext credentials are a
// demo-only convenience for a throwaway portal; a real deployment must not
// ship this.
func (r *AccountRepository) SeedAdminIfMissing(ctx context.Context, seed models.Account) error {
	accounts, err := r.gateway.Accounts(ctx)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		if account.Role == models.RoleAdmin {
			return nil
		}
	}

	seed.Role = models.RoleAdmin
	seed.Email = identity.Normalize(seed.Email)
	seed.ID = seed.Email
	accounts[seed.Email] = seed
	return r.gateway.SetAccounts(ctx, accounts)
}
