package handlers

import (
	"log"

	"bloglist/internal/middleware"
	"bloglist/internal/models"
	"bloglist/internal/services"
	"bloglist/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// BlogHandler handles HTTP requests for blogs.
type BlogHandler struct {
	blogService *services.BlogService
	authService *services.AuthService
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(blogService *services.BlogService, authService *services.AuthService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
		authService: authService,
	}
}

// RegisterRoutes registers the blog routes with the Fiber app. Reads are
// public; mutations run behind the auth middleware.
func (h *BlogHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	blogRoutes := router.Group("/blogs")
	blogRoutes.Get("/", h.HandleGetBlogs)
	// Registered before "/:id" so the path is not captured as an id.
	blogRoutes.Get("/stats", h.HandleGetStats)
	blogRoutes.Get("/:id", h.HandleGetBlogByID)
	blogRoutes.Post("/", auth, h.HandleCreateBlog)
	blogRoutes.Put("/:id", auth, h.HandleUpdateBlog)
	blogRoutes.Delete("/:id", auth, h.HandleDeleteBlog)
}

// HandleGetBlogs retrieves all blogs with their owner projections.
func (h *BlogHandler) HandleGetBlogs(c *fiber.Ctx) error {
	blogs, err := h.blogService.GetAllBlogs()
	if err != nil {
		log.Printf("Error getting all blogs: %v", err)
		return respondError(c, err)
	}

	views := make([]models.BlogView, 0, len(blogs))
	for i := range blogs {
		views = append(views, blogs[i].View())
	}
	return c.JSON(views)
}

// HandleGetStats computes the aggregate summary over the full blog list.
func (h *BlogHandler) HandleGetStats(c *fiber.Ctx) error {
	blogs, err := h.blogService.GetAllBlogs()
	if err != nil {
		log.Printf("Error getting blogs for stats: %v", err)
		return respondError(c, err)
	}

	summary := fiber.Map{
		"totalLikes": stats.TotalLikes(blogs),
		"mostBlogs":  stats.MostBlogs(blogs),
		"mostLikes":  stats.MostLikes(blogs),
	}
	if favorite := stats.FavoriteBlog(blogs); favorite != nil {
		view := favorite.View()
		summary["favoriteBlog"] = &view
	} else {
		summary["favoriteBlog"] = nil
	}
	return c.JSON(summary)
}

// HandleGetBlogByID retrieves a single blog by its ID.
func (h *BlogHandler) HandleGetBlogByID(c *fiber.Ctx) error {
	blog, err := h.getBlog(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(blog.View())
}

// CreateBlogRequest represents the request body for blog creation. A missing
// likes field defaults to zero; a missing author is accepted.
type CreateBlogRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  int    `json:"likes"`
}

// HandleCreateBlog creates a new blog owned by the authenticated principal.
func (h *BlogHandler) HandleCreateBlog(c *fiber.Ctx) error {
	principal := c.Locals(middleware.PrincipalKey).(*models.User)

	var req CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create blog request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	blog := &models.Blog{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	}
	created, err := h.blogService.CreateBlog(principal, blog)
	if err != nil {
		log.Printf("Error creating blog for user %s: %v", principal.Username, err)
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created.View())
}

// HandleUpdateBlog updates a blog's mutable fields. Only the owner may
// update, matching the delete policy.
func (h *BlogHandler) HandleUpdateBlog(c *fiber.Ctx) error {
	principal := c.Locals(middleware.PrincipalKey).(*models.User)

	blog, err := h.getBlog(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.authService.AuthorizeOwner(principal, blog.UserID); err != nil {
		return respondError(c, err)
	}

	var req CreateBlogRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update blog request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	updated, err := h.blogService.UpdateBlog(blog, services.BlogUpdate{
		Title:  req.Title,
		Author: req.Author,
		URL:    req.URL,
		Likes:  req.Likes,
	})
	if err != nil {
		log.Printf("Error updating blog %s: %v", blog.ID, err)
		return respondError(c, err)
	}

	return c.JSON(updated.View())
}

// HandleDeleteBlog deletes a blog; only its owner may do so.
func (h *BlogHandler) HandleDeleteBlog(c *fiber.Ctx) error {
	principal := c.Locals(middleware.PrincipalKey).(*models.User)

	blog, err := h.getBlog(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.authService.AuthorizeOwner(principal, blog.UserID); err != nil {
		return respondError(c, err)
	}

	if err := h.blogService.DeleteBlog(blog); err != nil {
		log.Printf("Error deleting blog %s: %v", blog.ID, err)
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// getBlog resolves the :id path parameter to a blog, rejecting ids that do
// not match the store's uuid shape before hitting the repository.
func (h *BlogHandler) getBlog(c *fiber.Ctx) (*models.Blog, error) {
	id := c.Params("id")
	if _, err := uuid.Parse(id); err != nil {
		return nil, services.NewValidationError("malformed blog id")
	}
	return h.blogService.GetBlogByID(id)
}
