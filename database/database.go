package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo         *UserRepo
	projectRepo      *ProjectRepo
	skillRepo        *SkillRepo
	projectSkillRepo *ProjectSkillRepo
	projectImageRepo *ProjectImageRepo

	db *gorm.DB
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:         NewUserRepo(db),
		projectRepo:      NewProjectRepo(db),
		skillRepo:        NewSkillRepo(db),
		projectSkillRepo: NewProjectSkillRepo(db),
		projectImageRepo: NewProjectImageRepo(db),
		db:               db,
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) ProjectSkillRepo() *ProjectSkillRepo {
	return d.projectSkillRepo
}

func (d Database) ProjectImageRepo() *ProjectImageRepo {
	return d.projectImageRepo
}

// Transaction runs fn against a Database bound to a single transaction.
// Any error returned by fn rolls the whole transaction back.
func (d Database) Transaction(fn func(Database) error) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
