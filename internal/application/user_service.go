package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/heshafoods/hesha-api/internal/domain/entity"
	repo "github.com/heshafoods/hesha-api/internal/domain/repository"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService covers signup, login and address management.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger}
}

// SignUp creates the user. The credential is stored verbatim; hashing it
// would break existing rows, so the legacy scheme stays (see DESIGN.md).
func (s *UserService) SignUp(ctx context.Context, name, email, password string) (*entity.User, error) {
	u := &entity.User{Name: name, Email: email, Password: password}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user created")
	return u, nil
}

// LogIn authenticates by byte-for-byte credential comparison. Unknown email
// and wrong credential are indistinguishable to the caller.
func (s *UserService) LogIn(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if u.Password != password {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// UpdateAddresses overwrites the user's stored address blob with the given
// payload, last write wins. An unknown user id updates nothing and still
// succeeds; whether that should be a NotFound is an open question recorded
// in DESIGN.md.
func (s *UserService) UpdateAddresses(ctx context.Context, userID int64, addresses json.RawMessage) error {
	return s.Repo.UpdateAddress(ctx, userID, addresses)
}
