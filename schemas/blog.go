package schemas

import (
	"time"

	"github.com/FrankCasanova/fastapi-blog/models"
	"github.com/FrankCasanova/fastapi-blog/utils"
)

type BlogCreate struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// Slug derives the blog's slug from its title.
func (b BlogCreate) Slug() string {
	return utils.Slugify(b.Title)
}

type BlogUpdate = BlogCreate

type ShowBlog struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"author_id"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func NewShowBlog(blog *models.Blog) ShowBlog {
	return ShowBlog{
		ID:        blog.ID,
		Title:     blog.Title,
		Slug:      blog.Slug,
		Content:   blog.Content,
		AuthorID:  blog.AuthorID,
		IsActive:  blog.IsActive,
		CreatedAt: blog.CreatedAt,
	}
}

func NewShowBlogList(blogs []models.Blog) []ShowBlog {
	out := make([]ShowBlog, 0, len(blogs))
	for i := range blogs {
		out = append(out, NewShowBlog(&blogs[i]))
	}
	return out
}
