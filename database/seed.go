package database

import (
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// defaultSkills are created on first boot so the admin dashboard is usable
// before any skills have been added by hand.
var defaultSkills = []models.Skill{
	{Name: "TypeScript", Category: "Frontend", Color: "#3178C6"},
	{Name: "React", Category: "Frontend", Color: "#61DAFB"},
	{Name: "Next.js", Category: "Frontend", Color: "#000000"},
	{Name: "Node.js", Category: "Backend", Color: "#339933"},
	{Name: "Go", Category: "Backend", Color: "#00ADD8"},
	{Name: "PostgreSQL", Category: "Database", Color: "#336791"},
	{Name: "GraphQL", Category: "Backend", Color: "#E10098"},
	{Name: "Docker", Category: "DevOps", Color: "#2496ED"},
	{Name: "AWS", Category: "Cloud", Color: "#FF9900"},
}

// Seed bootstraps the admin account from ADMIN_EMAIL/ADMIN_PASSWORD and the
// default skill set. Existing rows are left untouched, so seeding is safe to
// run on every startup.
func (d Database) Seed(adminEmail, adminPassword string) error {
	if adminEmail != "" && adminPassword != "" {
		existing, err := d.userRepo.FindByEmail(adminEmail)
		if err != nil {
			return err
		}
		if existing == nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), 12)
			if err != nil {
				return err
			}
			password := string(hash)
			admin := models.User{
				Email:    adminEmail,
				Name:     "Admin User",
				Password: &password,
			}
			if err := d.userRepo.Add(&admin); err != nil {
				return err
			}
			log.Info().Str("email", adminEmail).Msg("Seeded admin user")
		}
	}

	for _, skill := range defaultSkills {
		s := skill
		if err := d.skillRepo.UpsertByName(&s); err != nil {
			return err
		}
	}
	return nil
}

// Migrate creates or updates the schema for every model
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Project{},
		&models.ProjectSkill{},
		&models.ProjectImage{},
	)
}
