package models

import "gorm.io/gorm"

// Blog represents a shared blog post owned by a user.
type Blog struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title      string `json:"title" gorm:"type:varchar(255)" validate:"required,max=255"`
	Author     string `json:"author" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	URL        string `json:"url" gorm:"type:varchar(255)" validate:"required,max=255"`
	Likes      int    `json:"likes" gorm:"default:0" validate:"gte=0"`
	UserID     string `json:"-" gorm:"index;type:varchar(36)"`
	User       *User  `json:"-" gorm:"foreignKey:UserID"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// BlogView is the API shape of a blog with its owner resolved to an Owner projection.
type BlogView struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author,omitempty"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
	User   *Owner `json:"user,omitempty"`
}

// View projects the blog into its API shape. The owner projection is present
// only when the owning user has been loaded alongside the blog.
func (b *Blog) View() BlogView {
	view := BlogView{
		ID:     b.ID,
		Title:  b.Title,
		Author: b.Author,
		URL:    b.URL,
		Likes:  b.Likes,
	}
	if b.User != nil {
		view.User = &Owner{
			ID:       b.User.ID,
			Username: b.User.Username,
			Name:     b.User.Name,
		}
	}
	return view
}
