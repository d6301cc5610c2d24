package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	users         map[string]string // email -> password hash
	userIDs       map[string]string // email -> userID
	usersByID     map[int64]*User   // userID -> User with permissions
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost)

	return &mockUserRepository{
		users: map[string]string{
			"employee@example.com":   string(hashedPassword),
			"admin@example.com":      string(hashedPassword),
			"hr.manager@example.com": string(hashedPassword),
		},
		userIDs: map[string]string{
			"employee@example.com":   "1",
			"admin@example.com":      "2",
			"hr.manager@example.com": "3",
		},
		usersByID: map[int64]*User{
			1: {ID: 1, Email: "employee@example.com", Permissions: []string{PermSubmitLoans, PermViewOwnLoans}},
			2: {ID: 2, Email: "admin@example.com", Permissions: []string{PermAdmin, PermManageUsers, PermViewAllLoans}},
			3: {ID: 3, Email: "hr.manager@example.com", Permissions: []string{PermViewAllLoans, PermFinalizeLoans}},
		},
	}
}

func (m *mockUserRepository) GetPasswordForUsername(username string) (string, string, error) {
	if m.returnError {
		return "", "", m.errorToReturn
	}

	if hash, exists := m.users[username]; exists {
		if userID, userExists := m.userIDs[username]; userExists {
			return hash, userID, nil
		}
	}
	return "", "", errors.New("user not found")
}

func (m *mockUserRepository) GetUserWithPermissions(userID int64) (*User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}

	if user, exists := m.usersByID[userID]; exists {
		return user, nil
	}
	return nil, errors.New("user not found")
}

func (m *mockUserRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service       *Service
		mockRepo      *mockUserRepository
		tokenGen      *JWTTokenGenerator
		accessSecret  string        = "test-access-secret"
		refreshSecret string        = "test-refresh-secret"
		accessTTL     time.Duration = 15 * time.Minute
		refreshTTL    time.Duration = 24 * time.Hour
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		tokenGen = NewJWTTokenGenerator(accessSecret, refreshSecret, accessTTL, refreshTTL)
		service = NewService(mockRepo, tokenGen, bcrypt.DefaultCost)
	})

	ginkgo.Describe("Authenticate", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return access and refresh tokens", func() {
				// Given
				dto := LoginDTO{
					Email:    "employee@example.com",
					Password: "correct_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).ToNot(gomega.BeEmpty())
				gomega.Expect(tokens.AccessToken).ToNot(gomega.Equal(tokens.RefreshToken))
			})

			ginkgo.It("should generate valid JWT tokens", func() {
				// Given
				dto := LoginDTO{
					Email:    "admin@example.com",
					Password: "correct_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// Validate access token
				claims, err := service.ValidateAccessToken(tokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("2"))
				gomega.Expect(claims.Email).To(gomega.Equal("admin@example.com"))
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return error for invalid email", func() {
				// Given
				dto := LoginDTO{
					Email:    "nonexistent@example.com",
					Password: "any_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).To(gomega.BeEmpty())
			})

			ginkgo.It("should return error for invalid password", func() {
				// Given
				dto := LoginDTO{
					Email:    "employee@example.com",
					Password: "wrong_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should return validation error for empty email", func() {
				// Given
				dto := LoginDTO{
					Email:    "",
					Password: "password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("email is required"))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})

			ginkgo.It("should return validation error for empty password", func() {
				// Given
				dto := LoginDTO{
					Email:    "employee@example.com",
					Password: "",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("password is required"))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when repository returns error", func() {
			ginkgo.It("should return invalid credentials error", func() {
				// Given
				mockRepo.setError(errors.New("database error"))
				dto := LoginDTO{
					Email:    "employee@example.com",
					Password: "correct_password",
				}

				// When
				tokens, err := service.Authenticate(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Describe("RefreshTokens", func() {
		var validRefreshToken string

		ginkgo.BeforeEach(func() {
			// Create a valid refresh token first
			dto := LoginDTO{
				Email:    "employee@example.com",
				Password: "correct_password",
			}
			tokens, err := service.Authenticate(dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			validRefreshToken = tokens.RefreshToken
		})

		ginkgo.Context("when refresh token is valid", func() {
			ginkgo.It("should return new access and refresh tokens", func() {
				// Add a small delay to ensure different timestamps
				time.Sleep(time.Millisecond)

				// When
				newTokens, err := service.RefreshTokens(validRefreshToken)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(newTokens.AccessToken).ToNot(gomega.BeEmpty())
				gomega.Expect(newTokens.RefreshToken).ToNot(gomega.BeEmpty())
			})

			ginkgo.It("should preserve user information in new tokens", func() {
				// When
				newTokens, err := service.RefreshTokens(validRefreshToken)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// Validate new access token contains correct user info
				claims, err := service.ValidateAccessToken(newTokens.AccessToken)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("1"))
				gomega.Expect(claims.Email).To(gomega.Equal("employee@example.com"))
			})
		})

		ginkgo.Context("when refresh token is invalid", func() {
			ginkgo.It("should return error for malformed token", func() {
				// When
				tokens, err := service.RefreshTokens("invalid.token.format")

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
				gomega.Expect(tokens.RefreshToken).To(gomega.BeEmpty())
			})

			ginkgo.It("should return error for expired token", func() {
				// Create an expired token generator
				expiredTokenGen := NewJWTTokenGenerator(accessSecret, refreshSecret, -1*time.Hour, -1*time.Hour)
				expiredToken, err := expiredTokenGen.GenerateRefreshToken("1", "employee@example.com")
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// When
				tokens, err := service.RefreshTokens(expiredToken)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.Or(gomega.Equal(ErrTokenExpired), gomega.Equal(ErrInvalidToken)))
				gomega.Expect(tokens.AccessToken).To(gomega.BeEmpty())
			})
		})
	})

	ginkgo.Describe("ValidateAccessToken", func() {
		var validAccessToken string

		ginkgo.BeforeEach(func() {
			// Create a valid access token first
			dto := LoginDTO{
				Email:    "hr.manager@example.com",
				Password: "correct_password",
			}
			tokens, err := service.Authenticate(dto)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			validAccessToken = tokens.AccessToken
		})

		ginkgo.Context("when access token is valid", func() {
			ginkgo.It("should return claims with user information", func() {
				// When
				claims, err := service.ValidateAccessToken(validAccessToken)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims).ToNot(gomega.BeNil())
				gomega.Expect(claims.UserID).To(gomega.Equal("3"))
				gomega.Expect(claims.Email).To(gomega.Equal("hr.manager@example.com"))
				gomega.Expect(claims.ExpiresAt).ToNot(gomega.BeNil())
			})
		})

		ginkgo.Context("when access token is invalid", func() {
			ginkgo.It("should return error for malformed token", func() {
				// When
				claims, err := service.ValidateAccessToken("invalid.token")

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(claims).To(gomega.BeNil())
			})

			ginkgo.It("should return error for empty token", func() {
				// When
				claims, err := service.ValidateAccessToken("")

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(claims).To(gomega.BeNil())
			})

			ginkgo.It("should return error for expired token", func() {
				// Create an expired token
				expiredTokenGen := NewJWTTokenGenerator(accessSecret, refreshSecret, -1*time.Hour, refreshTTL)
				expiredToken, err := expiredTokenGen.GenerateAccessToken("1", "employee@example.com")
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// When
				claims, err := service.ValidateAccessToken(expiredToken)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
				gomega.Expect(claims).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Describe("GetUserWithPermissions", func() {
		ginkgo.Context("when user exists", func() {
			ginkgo.It("should return user with permissions", func() {
				// When
				user, err := service.GetUserWithPermissions(3)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(user).ToNot(gomega.BeNil())
				gomega.Expect(user.ID).To(gomega.Equal(int64(3)))
				gomega.Expect(user.Email).To(gomega.Equal("hr.manager@example.com"))
				gomega.Expect(user.Permissions).To(gomega.ContainElements(PermViewAllLoans, PermFinalizeLoans))
			})
		})

		ginkgo.Context("when user does not exist", func() {
			ginkgo.It("should return error", func() {
				// When
				user, err := service.GetUserWithPermissions(999)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(user).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when repository returns error", func() {
			ginkgo.It("should return repository error", func() {
				// Given
				mockRepo.setError(errors.New("database error"))

				// When
				user, err := service.GetUserWithPermissions(1)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.Equal("database error"))
				gomega.Expect(user).To(gomega.BeNil())
			})
		})
	})

	ginkgo.Describe("HashPassword", func() {
		ginkgo.Context("when password is valid", func() {
			ginkgo.It("should return hashed password", func() {
				// Given
				password := "test_password_123"

				// When
				hash, err := service.HashPassword(password)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(hash).ToNot(gomega.BeEmpty())
				gomega.Expect(hash).ToNot(gomega.Equal(password))

				// Verify the hash can be compared
				err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			})

			ginkgo.It("should generate different hashes for same password", func() {
				// Given
				password := "same_password"

				// When
				hash1, err1 := service.HashPassword(password)
				hash2, err2 := service.HashPassword(password)

				// Then
				gomega.Expect(err1).ToNot(gomega.HaveOccurred())
				gomega.Expect(err2).ToNot(gomega.HaveOccurred())
				gomega.Expect(hash1).ToNot(gomega.Equal(hash2)) // Salts make them different
			})
		})
	})
})

var _ = ginkgo.Describe("JWTTokenGenerator", func() {
	var (
		tokenGen      *JWTTokenGenerator
		accessSecret  string        = "test-access-secret-key"
		refreshSecret string        = "test-refresh-secret-key"
		accessTTL     time.Duration = 15 * time.Minute
		refreshTTL    time.Duration = 24 * time.Hour
	)

	ginkgo.BeforeEach(func() {
		tokenGen = NewJWTTokenGenerator(accessSecret, refreshSecret, accessTTL, refreshTTL)
	})

	ginkgo.Describe("GenerateAccessToken", func() {
		ginkgo.It("should generate valid access token", func() {
			// Given
			userID := "123"
			email := "test@example.com"

			// When
			token, err := tokenGen.GenerateAccessToken(userID, email)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())

			// Validate the token can be parsed
			claims, err := tokenGen.ValidateToken(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal(userID))
			gomega.Expect(claims.Email).To(gomega.Equal(email))
		})
	})

	ginkgo.Describe("GenerateRefreshToken", func() {
		ginkgo.It("should generate valid refresh token", func() {
			// Given
			userID := "456"
			email := "refresh@example.com"

			// When
			token, err := tokenGen.GenerateRefreshToken(userID, email)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())

			// Validate the token can be parsed
			claims, err := tokenGen.ValidateToken(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal(userID))
			gomega.Expect(claims.Email).To(gomega.Equal(email))
		})
	})

	ginkgo.Describe("ValidateToken", func() {
		ginkgo.Context("with valid access token", func() {
			ginkgo.It("should return valid claims", func() {
				// Given
				userID := "789"
				email := "validate@example.com"
				token, err := tokenGen.GenerateAccessToken(userID, email)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// When
				claims, err := tokenGen.ValidateToken(token)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(userID))
				gomega.Expect(claims.Email).To(gomega.Equal(email))
				gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", time.Now().Add(accessTTL), time.Minute))
			})
		})

		ginkgo.Context("with valid refresh token", func() {
			ginkgo.It("should return valid claims", func() {
				// Given
				userID := "101"
				email := "refresh-validate@example.com"
				token, err := tokenGen.GenerateRefreshToken(userID, email)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// When
				claims, err := tokenGen.ValidateToken(token)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal(userID))
				gomega.Expect(claims.Email).To(gomega.Equal(email))
				gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", time.Now().Add(refreshTTL), time.Minute))
			})
		})

		ginkgo.Context("with invalid token", func() {
			ginkgo.It("should return error for malformed token", func() {
				// When
				claims, err := tokenGen.ValidateToken("invalid.token.here")

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(claims).To(gomega.BeNil())
			})

			ginkgo.It("should return error for empty token", func() {
				// When
				claims, err := tokenGen.ValidateToken("")

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(claims).To(gomega.BeNil())
			})
		})

		ginkgo.Context("with expired token", func() {
			ginkgo.It("should return ErrTokenExpired", func() {
				// Given expired token generator
				expiredGen := NewJWTTokenGenerator(accessSecret, refreshSecret, -1*time.Hour, -1*time.Hour)
				token, err := expiredGen.GenerateAccessToken("123", "expired@example.com")
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				// When
				claims, err := tokenGen.ValidateToken(token)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
				gomega.Expect(claims).To(gomega.BeNil())
			})
		})
	})
})

var _ = ginkgo.Describe("PermissionChecker", func() {
	var checker PermissionChecker

	ginkgo.BeforeEach(func() {
		checker = NewPermissionChecker()
	})

	ginkgo.Describe("CanRecommendLoans", func() {
		ginkgo.Context("when user holds the recommend permission", func() {
			ginkgo.It("should allow recommending", func() {
				perms := []string{PermViewAllLoans, PermRecommendLoans}

				allowed, err := checker.CanRecommendLoansCtx(context.Background(), perms)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(allowed).To(gomega.BeTrue())
			})
		})

		ginkgo.Context("when user only submits loans", func() {
			ginkgo.It("should deny recommending", func() {
				perms := []string{PermSubmitLoans, PermViewOwnLoans}

				allowed, err := checker.CanRecommendLoansCtx(context.Background(), perms)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(allowed).To(gomega.BeFalse())
			})
		})
	})

	ginkgo.Describe("CanFinalizeLoans", func() {
		ginkgo.It("should allow a finalizer and deny a recommender", func() {
			managerPerms := []string{PermViewAllLoans, PermFinalizeLoans}
			officerPerms := []string{PermViewAllLoans, PermRecommendLoans}

			allowed, err := checker.CanFinalizeLoansCtx(context.Background(), managerPerms)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeTrue())

			allowed, err = checker.CanFinalizeLoansCtx(context.Background(), officerPerms)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("IsHRStaff", func() {
		ginkgo.It("should treat recommenders and finalizers as HR staff", func() {
			allowed, err := checker.IsHRStaffCtx(context.Background(), []string{PermRecommendLoans})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeTrue())

			allowed, err = checker.IsHRStaffCtx(context.Background(), []string{PermFinalizeLoans})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeTrue())

			allowed, err = checker.IsHRStaffCtx(context.Background(), []string{PermSubmitLoans})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("IsAdmin", func() {
		ginkgo.It("should recognize the admin permission", func() {
			allowed, err := checker.IsAdminCtx(context.Background(), []string{PermAdmin})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeTrue())

			allowed, err = checker.IsAdminCtx(context.Background(), []string{PermManageUsers})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(allowed).To(gomega.BeFalse())
		})
	})
})

var _ = ginkgo.Describe("User", func() {
	ginkgo.Describe("HasPermission", func() {
		ginkgo.It("should report held permissions only", func() {
			user := &User{
				ID:          7,
				Email:       "officer@example.com",
				Permissions: []string{PermViewAllLoans, PermRecommendLoans},
			}

			gomega.Expect(user.HasPermission(PermRecommendLoans)).To(gomega.BeTrue())
			gomega.Expect(user.HasPermission(PermFinalizeLoans)).To(gomega.BeFalse())
		})
	})

	ginkgo.Describe("IsHRStaff", func() {
		ginkgo.It("should be false for a plain employee", func() {
			user := &User{
				ID:          8,
				Email:       "employee@example.com",
				Permissions: []string{PermSubmitLoans, PermViewOwnLoans},
			}

			gomega.Expect(user.IsHRStaff()).To(gomega.BeFalse())
		})
	})
})

// DTO Tests
var _ = ginkgo.Describe("LoginDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.Context("when all fields are valid", func() {
			ginkgo.It("should not return error", func() {
				// Given
				dto := LoginDTO{
					Email:    "employee@example.com",
					Password: "secure_password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			})
		})

		ginkgo.Context("when email is empty", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := LoginDTO{
					Email:    "",
					Password: "password",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.Equal("email is required"))
			})
		})

		ginkgo.Context("when password is empty", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := LoginDTO{
					Email:    "employee@example.com",
					Password: "",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.Equal("password is required"))
			})
		})
	})
})

var _ = ginkgo.Describe("RefreshTokenDTO", func() {
	ginkgo.Describe("Validate", func() {
		ginkgo.Context("when refresh token is provided", func() {
			ginkgo.It("should not return error", func() {
				// Given
				dto := RefreshTokenDTO{
					RefreshToken: "valid.jwt.token",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
			})
		})

		ginkgo.Context("when refresh token is empty", func() {
			ginkgo.It("should return validation error", func() {
				// Given
				dto := RefreshTokenDTO{
					RefreshToken: "",
				}

				// When
				err := dto.Validate()

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.Equal("refresh_token is required"))
			})
		})
	})
})
