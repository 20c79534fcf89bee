package postgres

import (
	"context"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/domain/repository"
	"scribe/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postRepository implements the domain.PostRepository interface using GORM.
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository is the constructor for postRepository.
func NewPostRepository(db *gorm.DB) repository.PostRepository {
	return &postRepository{db: db}
}

// FindByID retrieves a single post by its unique ID.
func (repo *postRepository) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	var postM model.PostModel
	if err := repo.db.WithContext(ctx).First(&postM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPostNotFound
		}

		return nil, errors.Wrap(err, "failed to find post by id")
	}

	return toPostDomain(&postM), nil
}

// FindByUserID retrieves all posts owned by the given user in primary key
// order, which matches insertion order for sequence-generated IDs.
func (repo *postRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&postModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find posts by user id")
	}

	posts := make([]*entity.Post, 0, len(postModels))
	for i := range postModels {
		posts = append(posts, toPostDomain(&postModels[i]))
	}

	return posts, nil
}

// Create persists a new post entity to the database.
func (repo *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postM := fromPostDomain(post)

	if err := repo.db.WithContext(ctx).Create(postM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required post information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create post")
	}

	post.ID = postM.ID
	post.CreatedAt = postM.CreatedAt

	return nil
}

// Delete removes the post with the given ID. Deleting an absent row is
// reported as ErrPostNotFound so callers need no separate existence check.
func (repo *postRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PostModel{}, id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete post")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPostNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPostDomain(data *model.PostModel) *entity.Post {
	if data == nil {
		return nil
	}

	return &entity.Post{
		ID:        data.ID,
		Text:      data.Text,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
	}
}

func fromPostDomain(data *entity.Post) *model.PostModel {
	if data == nil {
		return nil
	}

	return &model.PostModel{
		ID:     data.ID,
		Text:   data.Text,
		UserID: data.UserID,
	}
}
