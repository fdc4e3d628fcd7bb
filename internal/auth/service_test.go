package auth_test

import (
	"crypto/rand"
	"crypto/rsa"
	"log/slog"
	"os"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	errors "github.com/frahmantamala/dorm-management/internal"
	"github.com/frahmantamala/dorm-management/internal/auth"
	usermodel "github.com/frahmantamala/dorm-management/internal/core/datamodel/user"
	"github.com/frahmantamala/dorm-management/internal/user"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Module Suite")
}

type mockUserService struct {
	byEmail map[string]*usermodel.User
}

func newMockUserService() *mockUserService {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserService{
		byEmail: map[string]*usermodel.User{
			"admin@dorm.edu": {
				ID:           1,
				Email:        "admin@dorm.edu",
				PasswordHash: string(hash),
				Role:         usermodel.RoleAdmin,
				IsActive:     true,
			},
			"student@dorm.edu": {
				ID:           2,
				Email:        "student@dorm.edu",
				PasswordHash: string(hash),
				Role:         usermodel.RoleStudent,
				IsActive:     true,
			},
			"former@dorm.edu": {
				ID:           3,
				Email:        "former@dorm.edu",
				PasswordHash: string(hash),
				Role:         usermodel.RoleStudent,
				IsActive:     false,
			},
		},
	}
}

func (m *mockUserService) GetByID(id int64) (*usermodel.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.ErrUserNotFound
}

func (m *mockUserService) GetByEmail(email string) (*usermodel.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.ErrUserNotFound
}

func (m *mockUserService) ListPayers() ([]*usermodel.User, error) {
	return nil, nil
}

func (m *mockUserService) Register(dto user.RegisterDTO) (*usermodel.User, error) {
	return nil, nil
}

var _ = Describe("Auth Service", func() {
	var (
		service *auth.Service
		tokens  *auth.TokenManager
		users   *mockUserService
	)

	BeforeEach(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		Expect(err).NotTo(HaveOccurred())

		tokens = auth.NewTokenManager(key, &key.PublicKey, 15*time.Minute)
		users = newMockUserService()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelError,
		}))
		service = auth.NewService(users, tokens, logger)
	})

	Describe("Login", func() {
		It("should return a verifiable token for valid credentials", func() {
			token, err := service.Login("student@dorm.edu", "correct_password")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())

			claims, err := service.VerifyToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal(int64(2)))
			Expect(claims.Role).To(Equal(usermodel.RoleStudent))
		})

		It("should embed the admin role for admin users", func() {
			token, err := service.Login("admin@dorm.edu", "correct_password")
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.VerifyToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Role).To(Equal(usermodel.RoleAdmin))
		})

		It("should reject a wrong password", func() {
			_, err := service.Login("student@dorm.edu", "wrong_password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("should reject an unknown email", func() {
			_, err := service.Login("nobody@dorm.edu", "correct_password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("should reject inactive users even with the right password", func() {
			_, err := service.Login("former@dorm.edu", "correct_password")
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})
	})

	Describe("VerifyToken", func() {
		It("should reject garbage tokens", func() {
			_, err := service.VerifyToken("not.a.token")
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("should reject expired tokens", func() {
			key, err := rsa.GenerateKey(rand.Reader, 2048)
			Expect(err).NotTo(HaveOccurred())

			shortLived := auth.NewTokenManager(key, &key.PublicKey, -time.Minute)
			service = auth.NewService(users, shortLived, slog.Default())

			token, err := service.Login("student@dorm.edu", "correct_password")
			Expect(err).NotTo(HaveOccurred())

			_, err = service.VerifyToken(token)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("should reject tokens signed by a different key", func() {
			otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
			Expect(err).NotTo(HaveOccurred())

			otherManager := auth.NewTokenManager(otherKey, &otherKey.PublicKey, 15*time.Minute)
			foreign, err := otherManager.Issue(2, usermodel.RoleStudent)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.VerifyToken(foreign)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})
	})
})
