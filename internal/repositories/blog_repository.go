package repositories

import (
	"bloglist/internal/models"
)

// BlogRepository defines the interface for blog data access. GetAll and
// GetByID return blogs with the owning user loaded so callers can project it.
type BlogRepository interface {
	GetAll() ([]models.Blog, error)
	GetByID(id string) (*models.Blog, error)
	Create(blog *models.Blog) error
	Update(blog *models.Blog) error
	Delete(id string) error
}
