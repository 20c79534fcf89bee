package impl

import (
	"context"
	"testing"

	"scribe/internal/domain/entity"
	domainerrors "scribe/internal/domain/errors"
	"scribe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	userRepo  *fakeUserRepo
	postRepo  *fakePostRepo
	txManager *fakeTxManager
	service   usecase.PostUsecase
}

func newPostFixture() *postFixture {
	userRepo := newFakeUserRepo()
	postRepo := newFakePostRepo()
	txManager := &fakeTxManager{userRepo: userRepo, postRepo: postRepo}

	return &postFixture{
		userRepo:  userRepo,
		postRepo:  postRepo,
		txManager: txManager,
		service:   NewPostService(txManager, userRepo, postRepo, discardLogger()),
	}
}

func (f *postFixture) seedUser(t *testing.T, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, PasswordHash: "digest:irrelevant"}
	require.NoError(t, f.userRepo.Create(context.Background(), user))

	return user
}

func TestPostService_AddPost(t *testing.T) {
	fixture := newPostFixture()
	user := fixture.seedUser(t, "alice@example.com")

	post, err := fixture.service.AddPost(context.Background(), &usecase.AddPostInput{
		Subject: "alice@example.com",
		Text:    "hello world",
	})
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
	assert.Equal(t, "hello world", post.Text)
	assert.Equal(t, user.ID, post.UserID)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestPostService_AddPost_UnknownSubject(t *testing.T) {
	fixture := newPostFixture()

	_, err := fixture.service.AddPost(context.Background(), &usecase.AddPostInput{
		Subject: "ghost@example.com",
		Text:    "hello",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestPostService_ListPosts_OnlyOwnPosts(t *testing.T) {
	fixture := newPostFixture()
	fixture.seedUser(t, "alice@example.com")
	fixture.seedUser(t, "bob@example.com")

	for _, entry := range []struct {
		subject string
		text    string
	}{
		{"alice@example.com", "alice first"},
		{"bob@example.com", "bob first"},
		{"alice@example.com", "alice second"},
	} {
		_, err := fixture.service.AddPost(context.Background(), &usecase.AddPostInput{
			Subject: entry.subject,
			Text:    entry.text,
		})
		require.NoError(t, err)
	}

	posts, err := fixture.service.ListPosts(context.Background(), &usecase.ListPostsInput{
		Subject: "alice@example.com",
	})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "alice first", posts[0].Text)
	assert.Equal(t, "alice second", posts[1].Text)
}

func TestPostService_ListPosts_Empty(t *testing.T) {
	fixture := newPostFixture()
	fixture.seedUser(t, "alice@example.com")

	posts, err := fixture.service.ListPosts(context.Background(), &usecase.ListPostsInput{
		Subject: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_DeletePost(t *testing.T) {
	fixture := newPostFixture()
	fixture.seedUser(t, "alice@example.com")

	post, err := fixture.service.AddPost(context.Background(), &usecase.AddPostInput{
		Subject: "alice@example.com",
		Text:    "to be deleted",
	})
	require.NoError(t, err)

	err = fixture.service.DeletePost(context.Background(), &usecase.DeletePostInput{
		Subject: "alice@example.com",
		PostID:  post.ID,
	})
	require.NoError(t, err)

	posts, err := fixture.service.ListPosts(context.Background(), &usecase.ListPostsInput{
		Subject: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestPostService_DeletePost_NotFound(t *testing.T) {
	fixture := newPostFixture()
	fixture.seedUser(t, "alice@example.com")

	err := fixture.service.DeletePost(context.Background(), &usecase.DeletePostInput{
		Subject: "alice@example.com",
		PostID:  9999,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestPostService_DeletePost_NotOwner(t *testing.T) {
	fixture := newPostFixture()
	fixture.seedUser(t, "alice@example.com")
	fixture.seedUser(t, "bob@example.com")

	post, err := fixture.service.AddPost(context.Background(), &usecase.AddPostInput{
		Subject: "alice@example.com",
		Text:    "alice's post",
	})
	require.NoError(t, err)

	err = fixture.service.DeletePost(context.Background(), &usecase.DeletePostInput{
		Subject: "bob@example.com",
		PostID:  post.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostOwnership))

	// The post must survive the rejected attempt.
	posts, err := fixture.service.ListPosts(context.Background(), &usecase.ListPostsInput{
		Subject: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Len(t, posts, 1)
}
