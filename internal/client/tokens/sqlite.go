package tokens

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/scanly/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/scanly/internal/common"
	"github.com/dmitrijs2005/scanly/internal/cryptox"
	"github.com/dmitrijs2005/scanly/internal/dbx"
)

// SQLiteStore persists the token pair in the local metadata table. Both
// tokens are sealed with a key derived from a passphrase; the salt lives in
// the same table so the key can be derived again on the next start.
type SQLiteStore struct {
	db   *sql.DB
	repo metadata.Repository
	key  []byte
}

// NewSQLiteStore derives the sealing key from passphrase, creating and
// saving a salt on first use. An empty passphrase yields common.ErrStoreLocked.
func NewSQLiteStore(ctx context.Context, db *sql.DB, passphrase []byte) (*SQLiteStore, error) {
	if len(passphrase) == 0 {
		return nil, common.ErrStoreLocked
	}

	var salt []byte
	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)

		var err error
		salt, err = repo.Get(ctx, common.MetadataStoreSalt)
		if err != nil {
			return err
		}
		if salt != nil {
			return nil
		}

		salt = common.GenerateRandByteArray(cryptox.SaltSize)
		return repo.Set(ctx, common.MetadataStoreSalt, salt)
	})
	if err != nil {
		return nil, fmt.Errorf("load store salt: %w", err)
	}

	return &SQLiteStore{
		db:   db,
		repo: metadata.NewSQLiteRepository(db),
		key:  cryptox.DeriveKey(passphrase, salt),
	}, nil
}

func (s *SQLiteStore) AccessToken(ctx context.Context) (string, error) {
	return s.read(ctx, common.MetadataAccessToken)
}

func (s *SQLiteStore) RefreshToken(ctx context.Context) (string, error) {
	return s.read(ctx, common.MetadataRefreshToken)
}

// SetTokens replaces both tokens in one transaction.
func (s *SQLiteStore) SetTokens(ctx context.Context, accessToken, refreshToken string) error {
	sealedAccess, err := cryptox.Seal([]byte(accessToken), s.key)
	if err != nil {
		return fmt.Errorf("seal access token: %w", err)
	}
	sealedRefresh, err := cryptox.Seal([]byte(refreshToken), s.key)
	if err != nil {
		return fmt.Errorf("seal refresh token: %w", err)
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.MetadataAccessToken, sealedAccess); err != nil {
			return err
		}
		return repo.Set(ctx, common.MetadataRefreshToken, sealedRefresh)
	})
}

func (s *SQLiteStore) ClearTokens(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.MetadataAccessToken, common.MetadataRefreshToken)
	})
}

// Close wipes the sealing key from memory. The store is unusable afterwards.
func (s *SQLiteStore) Close() {
	common.WipeByteArray(s.key)
}

func (s *SQLiteStore) read(ctx context.Context, key string) (string, error) {
	sealed, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if sealed == nil {
		return "", nil
	}

	plain, err := cryptox.Open(sealed, s.key)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", key, err)
	}
	return string(plain), nil
}
