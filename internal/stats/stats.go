// Package stats computes aggregate statistics over blog collections. All
// functions are pure: they take a slice of blogs and return a value, never
// touching persistence. Absence is reported as a nil pointer, not a zero
// value, so an all-zero-likes list still has a favorite.
package stats

import "bloglist/internal/models"

// AuthorBlogs pairs an author with their number of blogs.
type AuthorBlogs struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// AuthorLikes pairs an author with the sum of likes across their blogs.
type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

// TotalLikes returns the sum of likes across all blogs; 0 for an empty list.
func TotalLikes(blogs []models.Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}
	return total
}

// FavoriteBlog returns the blog with the most likes, or nil for an empty
// list. On a tie the earliest blog in the list wins: only a strictly greater
// like count displaces the current favorite.
func FavoriteBlog(blogs []models.Blog) *models.Blog {
	if len(blogs) == 0 {
		return nil
	}
	favorite := &blogs[0]
	for i := 1; i < len(blogs); i++ {
		if blogs[i].Likes > favorite.Likes {
			favorite = &blogs[i]
		}
	}
	return favorite
}

// MostBlogs returns the author with the most blogs, or nil for an empty
// list. Ties go to the author whose first blog appears earliest in the list.
func MostBlogs(blogs []models.Blog) *AuthorBlogs {
	counts, order := groupByAuthor(blogs, func(models.Blog) int { return 1 })
	if len(order) == 0 {
		return nil
	}

	best := AuthorBlogs{Author: order[0], Blogs: counts[order[0]]}
	for _, author := range order[1:] {
		if counts[author] > best.Blogs {
			best = AuthorBlogs{Author: author, Blogs: counts[author]}
		}
	}
	return &best
}

// MostLikes returns the author whose blogs sum to the most likes, or nil for
// an empty list. Same tie-break as MostBlogs.
func MostLikes(blogs []models.Blog) *AuthorLikes {
	sums, order := groupByAuthor(blogs, func(b models.Blog) int { return b.Likes })
	if len(order) == 0 {
		return nil
	}

	best := AuthorLikes{Author: order[0], Likes: sums[order[0]]}
	for _, author := range order[1:] {
		if sums[author] > best.Likes {
			best = AuthorLikes{Author: author, Likes: sums[author]}
		}
	}
	return &best
}

// groupByAuthor folds a per-blog metric into per-author totals, remembering
// the order in which each author was first seen.
func groupByAuthor(blogs []models.Blog, metric func(models.Blog) int) (map[string]int, []string) {
	totals := make(map[string]int, len(blogs))
	var order []string
	for _, b := range blogs {
		if _, seen := totals[b.Author]; !seen {
			order = append(order, b.Author)
		}
		totals[b.Author] += metric(b)
	}
	return totals, order
}
