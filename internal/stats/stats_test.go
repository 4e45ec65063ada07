package stats_test

import (
	"testing"

	"bloglist/internal/models"
	"bloglist/internal/stats"

	"github.com/stretchr/testify/assert"
)

var listWithOneBlog = []models.Blog{
	{ID: "b1", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://example.com/goto", Likes: 5},
}

var listWithManyBlogs = []models.Blog{
	{ID: "b1", Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
	{ID: "b2", Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://example.com/goto", Likes: 5},
	{ID: "b3", Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://example.com/canonical", Likes: 12},
	{ID: "b4", Title: "First class tests", Author: "Robert C. Martin", URL: "http://example.com/tests", Likes: 10},
	{ID: "b5", Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://example.com/tdd", Likes: 0},
	{ID: "b6", Title: "Type wars", Author: "Robert C. Martin", URL: "http://example.com/typewars", Likes: 2},
}

func TestTotalLikes(t *testing.T) {
	t.Run("of empty list is zero", func(t *testing.T) {
		assert.Equal(t, 0, stats.TotalLikes(nil))
		assert.Equal(t, 0, stats.TotalLikes([]models.Blog{}))
	})

	t.Run("when list has only one blog, equals the likes of that blog", func(t *testing.T) {
		assert.Equal(t, 5, stats.TotalLikes(listWithOneBlog))
	})

	t.Run("of a big list is calculated correctly", func(t *testing.T) {
		assert.Equal(t, 36, stats.TotalLikes(listWithManyBlogs))
	})

	t.Run("is order independent", func(t *testing.T) {
		reversed := make([]models.Blog, len(listWithManyBlogs))
		for i, b := range listWithManyBlogs {
			reversed[len(listWithManyBlogs)-1-i] = b
		}
		assert.Equal(t, stats.TotalLikes(listWithManyBlogs), stats.TotalLikes(reversed))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("of empty list is nil", func(t *testing.T) {
		assert.Nil(t, stats.FavoriteBlog(nil))
	})

	t.Run("when list has only one blog, the favorite is that blog", func(t *testing.T) {
		favorite := stats.FavoriteBlog(listWithOneBlog)
		assert.NotNil(t, favorite)
		assert.Equal(t, listWithOneBlog[0], *favorite)
	})

	t.Run("when list has many blogs, the favorite is the blog with the most likes", func(t *testing.T) {
		favorite := stats.FavoriteBlog(listWithManyBlogs)
		assert.NotNil(t, favorite)
		assert.Equal(t, listWithManyBlogs[2], *favorite)
	})

	t.Run("on a tie the earliest blog wins", func(t *testing.T) {
		tied := []models.Blog{
			{ID: "first", Author: "A", Likes: 9},
			{ID: "second", Author: "B", Likes: 9},
		}
		favorite := stats.FavoriteBlog(tied)
		assert.NotNil(t, favorite)
		assert.Equal(t, "first", favorite.ID)
	})

	t.Run("all-zero likes still yields a favorite", func(t *testing.T) {
		zeros := []models.Blog{
			{ID: "z1", Author: "A", Likes: 0},
			{ID: "z2", Author: "B", Likes: 0},
		}
		favorite := stats.FavoriteBlog(zeros)
		assert.NotNil(t, favorite)
		assert.Equal(t, "z1", favorite.ID)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("of empty list is nil", func(t *testing.T) {
		assert.Nil(t, stats.MostBlogs(nil))
	})

	t.Run("when list has only one blog, returns the author with count one", func(t *testing.T) {
		result := stats.MostBlogs(listWithOneBlog)
		assert.Equal(t, &stats.AuthorBlogs{Author: "Edsger W. Dijkstra", Blogs: 1}, result)
	})

	t.Run("when list has many blogs, returns the author with the highest count", func(t *testing.T) {
		result := stats.MostBlogs(listWithManyBlogs)
		assert.Equal(t, &stats.AuthorBlogs{Author: "Robert C. Martin", Blogs: 3}, result)
	})

	t.Run("counts two of three for a repeated author", func(t *testing.T) {
		blogs := []models.Blog{
			{Author: "A"}, {Author: "A"}, {Author: "B"},
		}
		result := stats.MostBlogs(blogs)
		assert.Equal(t, &stats.AuthorBlogs{Author: "A", Blogs: 2}, result)
	})

	t.Run("on a tie the author seen first wins", func(t *testing.T) {
		blogs := []models.Blog{
			{Author: "A"}, {Author: "B"}, {Author: "B"}, {Author: "A"},
		}
		result := stats.MostBlogs(blogs)
		assert.Equal(t, &stats.AuthorBlogs{Author: "A", Blogs: 2}, result)
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("of empty list is nil", func(t *testing.T) {
		assert.Nil(t, stats.MostLikes(nil))
	})

	t.Run("when list has only one blog, returns the author with its likes", func(t *testing.T) {
		result := stats.MostLikes(listWithOneBlog)
		assert.Equal(t, &stats.AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 5}, result)
	})

	t.Run("when list has many blogs, returns the author with the most summed likes", func(t *testing.T) {
		result := stats.MostLikes(listWithManyBlogs)
		assert.Equal(t, &stats.AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, result)
	})

	t.Run("many small posts outscore one big post", func(t *testing.T) {
		blogs := []models.Blog{
			{Author: "Prolific", Likes: 4},
			{Author: "OneHit", Likes: 10},
			{Author: "Prolific", Likes: 4},
			{Author: "Prolific", Likes: 4},
		}
		result := stats.MostLikes(blogs)
		assert.Equal(t, &stats.AuthorLikes{Author: "Prolific", Likes: 12}, result)
	})

	t.Run("on a tie the author seen first wins", func(t *testing.T) {
		blogs := []models.Blog{
			{Author: "A", Likes: 6},
			{Author: "B", Likes: 6},
		}
		result := stats.MostLikes(blogs)
		assert.Equal(t, &stats.AuthorLikes{Author: "A", Likes: 6}, result)
	})
}

func TestAggregationScenario(t *testing.T) {
	blogs := []models.Blog{
		{ID: "s1", Author: "A", Likes: 7},
		{ID: "s2", Author: "B", Likes: 5},
		{ID: "s3", Author: "A", Likes: 12},
	}

	assert.Equal(t, 24, stats.TotalLikes(blogs))

	favorite := stats.FavoriteBlog(blogs)
	assert.NotNil(t, favorite)
	assert.Equal(t, "s3", favorite.ID)

	assert.Equal(t, &stats.AuthorBlogs{Author: "A", Blogs: 2}, stats.MostBlogs(blogs))
	assert.Equal(t, &stats.AuthorLikes{Author: "A", Likes: 19}, stats.MostLikes(blogs))
}
