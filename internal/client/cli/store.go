package cli

import (
	"context"
	"database/sql"
	"errors"
	"os"

	"github.com/dmitrijs2005/scanly/internal/client/client"
	"github.com/dmitrijs2005/scanly/internal/client/config"
	"github.com/dmitrijs2005/scanly/internal/client/tokens"
	"github.com/dmitrijs2005/scanly/internal/common"
	"github.com/dmitrijs2005/scanly/internal/logging"
)

// openTokenStore opens the sealed SQLite token store. The passphrase comes
// from SCANLY_STORE_PASSPHRASE or a prompt; without one the session is kept
// in memory only. Tokens that cannot be opened with the given passphrase are
// dropped, which means logging in again.
func openTokenStore(ctx context.Context, db *sql.DB, log logging.Logger) (client.TokenStore, error) {
	passphrase := []byte(os.Getenv(config.StorePassphraseEnvVar))
	if len(passphrase) == 0 {
		p, err := getSecret(os.Stdout, "Enter local store passphrase (empty keeps the session in memory): ")
		if err == nil {
			passphrase = p
		}
	}
	defer common.WipeByteArray(passphrase)

	store, err := tokens.NewSQLiteStore(ctx, db, passphrase)
	if errors.Is(err, common.ErrStoreLocked) {
		log.Warn(ctx, "no store passphrase, the session will not survive a restart")
		return tokens.NewMemoryStore(), nil
	}
	if err != nil {
		return nil, err
	}

	if _, err := store.AccessToken(ctx); err != nil {
		log.Warn(ctx, "stored session cannot be opened, dropping it", "error", err)
		if err := store.ClearTokens(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}
