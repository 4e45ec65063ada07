package repositories

import (
	"fmt"
	"sync"

	"bloglist/internal/models"

	"github.com/google/uuid"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
// Blogs are kept in insertion order so aggregation over GetAll is stable.
type MockBlogRepository struct {
	blogs []models.Blog
	mu    sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

// GetAll returns all blogs in insertion order.
func (r *MockBlogRepository) GetAll() ([]models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogList := make([]models.Blog, len(r.blogs))
	copy(blogList, r.blogs)
	return blogList, nil
}

// GetByID returns a blog by its ID.
func (r *MockBlogRepository) GetByID(id string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.blogs {
		if b.ID == id {
			blog := b
			return &blog, nil
		}
	}
	return nil, fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
}

// Create adds a new blog.
func (r *MockBlogRepository) Create(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = uuid.New().String()
	}
	r.blogs = append(r.blogs, *blog)
	return nil
}

// Update modifies the mutable fields of an existing blog.
func (r *MockBlogRepository) Update(blog *models.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.blogs {
		if r.blogs[i].ID == blog.ID {
			r.blogs[i].Title = blog.Title
			r.blogs[i].Author = blog.Author
			r.blogs[i].URL = blog.URL
			r.blogs[i].Likes = blog.Likes
			return nil
		}
	}
	return fmt.Errorf("blog with ID %s: %w", blog.ID, ErrNotFound)
}

// Delete removes a blog by its ID.
func (r *MockBlogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.blogs {
		if r.blogs[i].ID == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("blog with ID %s: %w", id, ErrNotFound)
}
