package database

import (
	"gorm.io/gorm"
)

type Database struct {
	blogPostRepo *BlogPostRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		blogPostRepo: NewBlogPostRepo(db),
	}
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

// Ping verifies the underlying connection is alive.
func (d Database) Ping() error {
	sqlDB, err := d.blogPostRepo.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
