package services

import (
	"errors"
	"fmt"
	"log"

	"bloglist/internal/models"
	"bloglist/internal/repositories"
	"bloglist/pkg/events"
)

// BlogUpdate carries the mutable blog fields for an update. The ownership
// reference is not part of it; it is immutable after creation.
type BlogUpdate struct {
	Title  string
	Author string
	URL    string
	Likes  int
}

// BlogService handles business logic related to blogs.
type BlogService struct {
	blogRepo repositories.BlogRepository
	userRepo repositories.UserRepository
	events   *events.Client
}

// NewBlogService creates a new BlogService. The events client may be nil, in
// which case lifecycle events are skipped.
func NewBlogService(blogRepo repositories.BlogRepository, userRepo repositories.UserRepository, eventsClient *events.Client) *BlogService {
	return &BlogService{
		blogRepo: blogRepo,
		userRepo: userRepo,
		events:   eventsClient,
	}
}

// GetAllBlogs retrieves all blogs with their owners resolved.
func (s *BlogService) GetAllBlogs() ([]models.Blog, error) {
	return s.blogRepo.GetAll()
}

// GetBlogByID retrieves a single blog by its ID.
func (s *BlogService) GetBlogByID(id string) (*models.Blog, error) {
	blog, err := s.blogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return blog, nil
}

// CreateBlog persists a blog owned by the given user, then links it into the
// owner's blog list. These are two separate writes with no transaction
// around them: a failure after the first leaves the blog persisted but not
// yet listed on the user, which callers must tolerate.
func (s *BlogService) CreateBlog(owner *models.User, blog *models.Blog) (*models.Blog, error) {
	if blog.Title == "" {
		return nil, NewValidationError("title is required")
	}
	if blog.URL == "" {
		return nil, NewValidationError("url is required")
	}

	blog.UserID = owner.ID
	if err := s.blogRepo.Create(blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	if err := s.userRepo.AppendBlog(owner.ID, blog.ID); err != nil {
		// The blog exists and resolves to its owner; the missing list entry
		// is the accepted consistency gap.
		log.Printf("Warning: blog %s created but not linked to user %s: %v", blog.ID, owner.ID, err)
	}

	blog.User = owner
	s.publish(events.BlogCreatedKey, blog)
	return blog, nil
}

// UpdateBlog applies the mutable fields to an already fetched blog. Ownership
// must have been checked by the caller before this point.
func (s *BlogService) UpdateBlog(blog *models.Blog, upd BlogUpdate) (*models.Blog, error) {
	if upd.Title == "" {
		return nil, NewValidationError("title is required")
	}
	if upd.URL == "" {
		return nil, NewValidationError("url is required")
	}

	blog.Title = upd.Title
	blog.Author = upd.Author
	blog.URL = upd.URL
	blog.Likes = upd.Likes

	if err := s.blogRepo.Update(blog); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, fmt.Errorf("failed to update blog: %w", err)
	}
	return blog, nil
}

// DeleteBlog removes the blog. Ownership must have been checked by the caller.
func (s *BlogService) DeleteBlog(blog *models.Blog) error {
	if err := s.blogRepo.Delete(blog.ID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBlogNotFound
		}
		return fmt.Errorf("failed to delete blog: %w", err)
	}
	s.publish(events.BlogDeletedKey, blog)
	return nil
}

// publish sends a lifecycle event when an events client is configured.
// Publish failures are logged, never surfaced to the request.
func (s *BlogService) publish(routingKey string, blog *models.Blog) {
	if s.events == nil {
		return
	}
	payload := map[string]interface{}{
		"blogID": blog.ID,
		"title":  blog.Title,
		"userID": blog.UserID,
		"likes":  blog.Likes,
	}
	if err := s.events.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event for blog %s: %v", routingKey, blog.ID, err)
	}
}
