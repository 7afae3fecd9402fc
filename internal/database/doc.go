// Package database owns the GORM connection, schema migration, and
// category seeding. Domain-specific queries live in the subpackages
// (books, categories, shelves, reviews, users), each exposing a
// Repository around the shared *gorm.DB.
package database
