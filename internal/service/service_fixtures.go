package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/models"
)

// Fixtures seeds the reference server with accounts and groups.
type Fixtures struct {
	Users  []FixtureUser  `json:"users"`
	Groups []models.Group `json:"groups"`
}

// FixtureUser is an account created at startup.
type FixtureUser struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoadFixtures reads a fixtures file and creates everything it lists.
func LoadFixtures(ctx context.Context, services *Services, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fixtures: %w", err)
	}

	var f Fixtures
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("decode fixtures %s: %w", path, err)
	}
	return ApplyFixtures(ctx, services, f)
}

func ApplyFixtures(ctx context.Context, services *Services, f Fixtures) error {
	log := logger.FromContext(ctx)

	for _, u := range f.Users {
		if _, err := services.AuthService.CreateAccount(ctx, u.ID, u.Name, u.Password); err != nil {
			return fmt.Errorf("fixture user %q: %w", u.Name, err)
		}
	}
	for _, g := range f.Groups {
		if _, err := services.LibraryService.CreateGroup(ctx, g); err != nil {
			return fmt.Errorf("fixture group %d: %w", g.ID, err)
		}
	}

	log.Info().Int("users", len(f.Users)).Int("groups", len(f.Groups)).Msg("fixtures loaded")
	return nil
}
