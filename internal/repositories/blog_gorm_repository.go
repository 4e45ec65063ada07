package repositories

import (
	"errors"
	"fmt"

	"bloglist/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{
		db: db,
	}
}

// GetAll retrieves all blogs from the database with their owners preloaded.
func (r *GORMBlogRepository) GetAll() ([]models.Blog, error) {
	var blogs []models.Blog
	if err := r.db.Preload("User").Find(&blogs).Error; err != nil {
		return nil, fmt.Errorf("failed to get all blogs: %w", err)
	}
	return blogs, nil
}

// GetByID retrieves a single blog by its ID with its owner preloaded.
func (r *GORMBlogRepository) GetByID(id string) (*models.Blog, error) {
	var blog models.Blog
	if err := r.db.Preload("User").First(&blog, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get blog by ID %s: %w", id, err)
	}
	return &blog, nil
}

// Create creates a new blog in the database.
func (r *GORMBlogRepository) Create(blog *models.Blog) error {
	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// Update updates an existing blog in the database.
func (r *GORMBlogRepository) Update(blog *models.Blog) error {
	res := r.db.Model(&models.Blog{}).Where("id = ?", blog.ID).
		Updates(map[string]interface{}{
			"title":  blog.Title,
			"author": blog.Author,
			"url":    blog.URL,
			"likes":  blog.Likes,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update blog: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's update does not return ErrRecordNotFound when no rows
		// matched, so we check RowsAffected.
		return fmt.Errorf("blog with ID %s: %w", blog.ID, ErrNotFound)
	}
	return nil
}

// Delete deletes a blog by its ID from the database.
func (r *GORMBlogRepository) Delete(id string) error {
	res := r.db.Delete(&models.Blog{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete blog: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
	}
	return nil
}
