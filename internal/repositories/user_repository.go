package repositories

import "bloglist/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// AppendBlog links an already persisted blog to the user's blog list.
	// This is a second write after the blog's own insert; the two are not
	// performed in a single transaction.
	AppendBlog(userID, blogID string) error
}
