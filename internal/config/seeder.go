package config

import (
	"context"
	"strings"

	"cmms-backend/internal/adapters/persistence/models"
	"cmms-backend/internal/adapters/persistence/repositories"
	"cmms-backend/internal/pkg/password"

	"github.com/gofiber/fiber/v2/log"
)

// Seeder handles database seeding
type Seeder struct {
	identityRepo repositories.IdentityRepository
	cfg          SeedConfig
}

// NewSeeder creates a new seeder instance
func NewSeeder(identityRepo repositories.IdentityRepository, cfg SeedConfig) *Seeder {
	return &Seeder{identityRepo: identityRepo, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Info("🌱 Running database seeders...")

	if err := s.seedAdministrator(ctx); err != nil {
		return err
	}

	log.Info("✅ Database seeding completed")
	return nil
}

// seedAdministrator creates the bootstrap administrator once.
// Administrators have no registration endpoint, so this is the only way in.
func (s *Seeder) seedAdministrator(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(s.cfg.AdminEmail))
	if email == "" || s.cfg.AdminPassword == "" {
		log.Warn("⚠️ Skipping admin seed: SEED_ADMIN_EMAIL or SEED_ADMIN_PASSWORD not set")
		return nil
	}

	taken, err := s.identityRepo.EmailTaken(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return nil // Already seeded
	}

	hashed, err := password.Hash(s.cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.Administrator{Name: s.cfg.AdminName, Email: email, Password: hashed}
	if err := s.identityRepo.CreateAdministrator(ctx, admin); err != nil {
		return err
	}

	log.Infof("✅ Administrator created: %s", admin.Email)
	return nil
}
