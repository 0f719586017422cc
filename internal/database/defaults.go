package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/kodex/kodexdash/internal/database/repository"
)

// InstallKey names the preference holding the per-install identifier.
const InstallKey = "install.id"

// SeedDefaults makes sure a new database carries an install id and returns
// it. It is idempotent and safe to run on every startup. The theme key is
// never seeded.
func SeedDefaults(ctx context.Context, db *sql.DB) (string, error) {
	prefs := repository.NewPreferenceRepo(db)
	id, ok, err := prefs.Get(ctx, InstallKey)
	if err != nil {
		return "", fmt.Errorf("read install id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.NewString()
	if err := prefs.Set(ctx, InstallKey, id); err != nil {
		return "", fmt.Errorf("seed install id: %w", err)
	}
	return id, nil
}
