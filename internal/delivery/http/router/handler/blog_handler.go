// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"blog/internal/domain/entity"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BlogPage is the data for blog.html.
type BlogPage struct {
	Posts []*entity.Post
}

// NewPostPage is the data for newpost.html.
type NewPostPage struct {
	Subject string
	Content string
	Error   string
}

// PostPage is the data for post.html.
type PostPage struct {
	Post *entity.Post
}

type newPostForm struct {
	Subject string `form:"subject"`
	Content string `form:"content"`
}

// BlogHandler holds dependencies for post-related handlers.
type BlogHandler struct {
	posts usecase.PostUsecase
}

// NewBlogHandler is the constructor for BlogHandler, injected by Fx.
func NewBlogHandler(posts usecase.PostUsecase) *BlogHandler {
	return &BlogHandler{posts: posts}
}

// ListPosts renders the front page with the most recent posts.
func (h *BlogHandler) ListPosts(c echo.Context) error {
	posts, err := h.posts.ListRecent(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "blog.html", BlogPage{Posts: posts})
}

// NewPostForm renders an empty post form.
func (h *BlogHandler) NewPostForm(c echo.Context) error {
	return c.Render(http.StatusOK, "newpost.html", NewPostPage{})
}

// CreatePost stores the post and redirects to its permalink, or re-renders the form.
func (h *BlogHandler) CreatePost(c echo.Context) error {
	var form newPostForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form submission.")
	}

	post, err := h.posts.Create(c.Request().Context(), &usecase.CreatePostInput{
		Subject: form.Subject,
		Content: form.Content,
	})
	if err != nil {
		var errs domainerrors.ValidationErrors
		if errors.As(err, &errs) {
			return c.Render(errs.HTTPCode(), "newpost.html", NewPostPage{
				Subject: form.Subject,
				Content: form.Content,
				Error:   errs[domainerrors.FieldForm].Message,
			})
		}

		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/post/"+strconv.FormatInt(post.ID, 10))
}

// ShowPost renders a single post at its permalink.
func (h *BlogHandler) ShowPost(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return domainerrors.ErrPostNotFound
	}

	post, err := h.posts.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Render(http.StatusOK, "post.html", PostPage{Post: post})
}
