package impl

import (
	"context"
	"log/slog"

	deliverycontext "scribe/internal/delivery/context"
	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/usecase"

	"github.com/pkg/errors"
)

// postService implements the PostUsecase interface.
type postService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	postRepo  repository.PostRepository
	logger    *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	logger *slog.Logger,
) usecase.PostUsecase {
	return &postService{
		txManager: txManager,
		userRepo:  userRepo,
		postRepo:  postRepo,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// resolveUser maps the token subject to a stored user record. This is
// the identity chokepoint: every protected operation starts here.
func (srv *postService) resolveUser(ctx context.Context, userRepo repository.UserRepository, subject string) (*entity.User, error) {
	user, err := userRepo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token subject has no user record")
		}

		return nil, errors.Wrap(err, "failed to resolve token subject")
	}

	return user, nil
}

// AddPost creates a post owned by the resolved caller.
func (srv *postService) AddPost(ctx context.Context, input *usecase.AddPostInput) (*entity.Post, error) {
	user, err := srv.resolveUser(ctx, srv.userRepo, input.Subject)
	if err != nil {
		srv.log(ctx).Warn("AddPost identity resolution failed", slog.Any("error", err))

		return nil, err
	}

	newPost := &entity.Post{
		Text:   input.Text,
		UserID: user.ID,
	}

	// Single insert; no multi-step transaction needed.
	if err := srv.postRepo.Create(ctx, newPost); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", newPost.ID), slog.Int64("userID", user.ID))

	return newPost, nil
}

// ListPosts returns the resolved caller's posts, and only theirs.
func (srv *postService) ListPosts(ctx context.Context, input *usecase.ListPostsInput) ([]*entity.Post, error) {
	user, err := srv.resolveUser(ctx, srv.userRepo, input.Subject)
	if err != nil {
		srv.log(ctx).Warn("ListPosts identity resolution failed", slog.Any("error", err))

		return nil, err
	}

	posts, err := srv.postRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to list posts", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list posts")
	}

	return posts, nil
}

// DeletePost deletes the identified post after an ownership check.
// Lookup, ownership check and delete share one transaction so the row
// cannot change owner between the check and the delete.
func (srv *postService) DeletePost(ctx context.Context, input *usecase.DeletePostInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, resolveErr := srv.resolveUser(ctx, repoFactory.UserRepo(), input.Subject)
		if resolveErr != nil {
			return resolveErr
		}

		postRepo := repoFactory.PostRepo()

		post, findErr := postRepo.FindByID(ctx, input.PostID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrPostNotFound) {
				return errors.Wrap(domainerrors.ErrPostNotFound, "delete failed")
			}

			return errors.Wrap(findErr, "failed to find post for deletion")
		}

		if post.UserID != user.ID {
			return errors.Wrap(domainerrors.ErrPostOwnership, "post belongs to another user")
		}

		if deleteErr := postRepo.Delete(ctx, post.ID); deleteErr != nil {
			return errors.Wrap(deleteErr, "failed to delete post")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("DeletePost failed", slog.Int64("postID", input.PostID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Post deleted", slog.Int64("postID", input.PostID))

	return nil
}
