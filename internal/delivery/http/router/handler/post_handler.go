package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/delivery/http/response"
	"scribe/internal/domain/entity"
	"scribe/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for post-related handlers.
type PostHandler struct {
	uc     usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(uc usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:     uc,
		logger: logger,
	}
}

type addPostRequest struct {
	Text string `json:"text" validate:"required"`
}

// postView is the wire representation of a post.
type postView struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

func toPostView(post *entity.Post) postView {
	return postView{
		ID:        post.ID,
		Text:      post.Text,
		UserID:    post.UserID,
		CreatedAt: post.CreatedAt,
	}
}

// AddPost handles the post creation request.
func (h *PostHandler) AddPost(c echo.Context) error {
	var req addPostRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", "Post text is required")
	}

	post, err := h.uc.AddPost(c.Request().Context(), &usecase.AddPostInput{
		Subject: deliverycontext.GetSubject(c),
		Text:    req.Text,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toPostView(post), "Post created successfully")
}

// ListPosts handles the request to list the caller's posts.
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.uc.ListPosts(c.Request().Context(), &usecase.ListPostsInput{
		Subject: deliverycontext.GetSubject(c),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	// Empty list, not null, when the caller has no posts yet.
	views := make([]postView, 0, len(posts))
	for _, post := range posts {
		views = append(views, toPostView(post))
	}

	return response.Success(c, http.StatusOK, views, "Posts retrieved successfully")
}

// DeletePost handles the post deletion request.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Post ID must be numeric")
	}

	if err := h.uc.DeletePost(c.Request().Context(), &usecase.DeletePostInput{
		Subject: deliverycontext.GetSubject(c),
		PostID:  postID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Post deleted"}, "Post deleted successfully")
}
