package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	"scribe/internal/domain/entity"
	"scribe/internal/domain/repository"
	"scribe/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeUserRepo is an in-memory UserRepository for exercising the
// services without a database.
type fakeUserRepo struct {
	byID    map[int64]*entity.User
	byEmail map[string]*entity.User
	nextID  int64

	findErr   error
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[int64]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	stored := *user
	r.byID[stored.ID] = &stored
	r.byEmail[stored.Email] = &stored

	return nil
}

// fakePostRepo is an in-memory PostRepository.
type fakePostRepo struct {
	posts  map[int64]*entity.Post
	nextID int64

	createErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[int64]*entity.Post)}
}

func (r *fakePostRepo) FindByID(ctx context.Context, id int64) (*entity.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}

	return post, nil
}

func (r *fakePostRepo) FindByUserID(ctx context.Context, userID int64) ([]*entity.Post, error) {
	var result []*entity.Post
	for _, post := range r.posts {
		if post.UserID == userID {
			result = append(result, post)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

func (r *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	stored := *post
	r.posts[stored.ID] = &stored

	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.posts[id]; !ok {
		return repository.ErrPostNotFound
	}
	delete(r.posts, id)

	return nil
}

// fakeTxManager hands the shared fakes to the transactional closure so
// assertions can run against the same state the service mutated.
type fakeTxManager struct {
	userRepo *fakeUserRepo
	postRepo *fakePostRepo

	beginErr error
}

func (m *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if m.beginErr != nil {
		return m.beginErr
	}

	return fn(&fakeRepoFactory{userRepo: m.userRepo, postRepo: m.postRepo})
}

type fakeRepoFactory struct {
	userRepo *fakeUserRepo
	postRepo *fakePostRepo
}

func (f *fakeRepoFactory) UserRepo() repository.UserRepository { return f.userRepo }
func (f *fakeRepoFactory) PostRepo() repository.PostRepository { return f.postRepo }

// fakeHasher records digests as a reversible marker so tests can assert
// the plaintext never reaches the repository.
type fakeHasher struct {
	hashErr error
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "digest:" + password, nil
}

func (h *fakeHasher) Check(password, hash string) bool {
	return hash == "digest:"+password
}

// fakeTokenService issues predictable tokens keyed by subject.
type fakeTokenService struct {
	issueErr error
}

func (s *fakeTokenService) Issue(subject string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "token:" + subject, nil
}

func (s *fakeTokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	return s.Issue(subject)
}

func (s *fakeTokenService) Decode(token string) (*service.Claims, error) {
	subject, found := strings.CutPrefix(token, "token:")
	if !found {
		return nil, errors.New("invalid token")
	}

	return &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: subject},
	}, nil
}
