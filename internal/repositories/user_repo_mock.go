package repositories

import (
	"fmt"
	"sync"

	"bloglist/internal/models"

	"github.com/google/uuid"
)

// MockUserRepository is an in-memory implementation of UserRepository.
type MockUserRepository struct {
	users map[string]models.User
	// blogIDs tracks the order blogs were linked to each user. Interleaved
	// appends from concurrent creates land in arrival order, which is
	// deliberately unspecified for callers.
	blogIDs map[string][]string
	mu      sync.RWMutex
}

// NewMockUserRepository creates a new instance of MockUserRepository.
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users:   make(map[string]models.User),
		blogIDs: make(map[string][]string),
	}
}

// Create adds a new user.
func (r *MockUserRepository) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.users[user.ID] = *user
	return nil
}

// GetByUsername returns a user by their username.
func (r *MockUserRepository) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user with username %s: %w", username, ErrNotFound)
}

// GetByID returns a user by their ID.
func (r *MockUserRepository) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user with ID %s: %w", id, ErrNotFound)
	}
	return &user, nil
}

// AppendBlog records the blog id in the user's blog list.
func (r *MockUserRepository) AppendBlog(userID, blogID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return fmt.Errorf("user with ID %s: %w", userID, ErrNotFound)
	}
	r.blogIDs[userID] = append(r.blogIDs[userID], blogID)
	return nil
}
