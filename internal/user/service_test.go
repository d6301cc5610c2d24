package user

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/dagimg/loan-management/internal/auth"
)

func TestUser(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "User Module Suite")
}

type mockUserRepo struct {
	usersByID    map[int64]*User
	usersByEmail map[string]*User
	permissions  map[int64][]string
	nextID       int64
	failCreate   bool
	failGrant    bool
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[int64]*User),
		usersByEmail: make(map[string]*User),
		permissions:  make(map[int64][]string),
		nextID:       1,
	}
}

func (m *mockUserRepo) GetByID(userID int64) (*User, error) {
	if u, ok := m.usersByID[userID]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (m *mockUserRepo) GetByEmail(email string) (*User, error) {
	if u, ok := m.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (m *mockUserRepo) GetPermissions(userID int64) ([]string, error) {
	return m.permissions[userID], nil
}

func (m *mockUserRepo) Create(u *User) error {
	if m.failCreate {
		return errors.New("insert failed")
	}
	u.ID = m.nextID
	m.nextID++
	m.usersByID[u.ID] = u
	m.usersByEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GrantPermissions(userID int64, permissionNames []string, grantedBy *int64) error {
	if m.failGrant {
		return errors.New("grant failed")
	}
	m.permissions[userID] = append(m.permissions[userID], permissionNames...)
	return nil
}

func (m *mockUserRepo) UpdatePassword(userID int64, passwordHash string) error {
	u, ok := m.usersByID[userID]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (m *mockUserRepo) List() ([]*User, error) {
	users := make([]*User, 0, len(m.usersByID))
	for _, u := range m.usersByID {
		users = append(users, u)
	}
	return users, nil
}

type mockHasher struct {
	fail bool
}

func (m *mockHasher) HashPassword(password string) (string, error) {
	if m.fail {
		return "", errors.New("hash failed")
	}
	return "hashed:" + password, nil
}

type mockProfileCreator struct {
	created map[int64]SeedProfile
	fail    bool
}

func newMockProfileCreator() *mockProfileCreator {
	return &mockProfileCreator{created: make(map[int64]SeedProfile)}
}

func (m *mockProfileCreator) CreateSeedProfile(userID int64, p SeedProfile) error {
	if m.fail {
		return errors.New("profile insert failed")
	}
	m.created[userID] = p
	return nil
}

var _ = ginkgo.Describe("UserService", func() {
	var (
		service  *Service
		repo     *mockUserRepo
		hasher   *mockHasher
		profiles *mockProfileCreator
	)

	ginkgo.BeforeEach(func() {
		repo = newMockUserRepo()
		hasher = &mockHasher{}
		profiles = newMockProfileCreator()
		service = NewService(repo, hasher, profiles, slog.Default())
	})

	ginkgo.Describe("CreateUser", func() {
		ginkgo.Context("with a valid payload", func() {
			ginkgo.It("should create the user and grant the role's permissions", func() {
				dto := CreateUserDTO{
					Email:      "officer@example.com",
					Name:       "HR Officer",
					Password:   "strong-password",
					Department: "HR",
					Role:       RoleHROfficer,
				}

				u, err := service.CreateUser(dto, 1)

				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(u.ID).ToNot(gomega.BeZero())
				gomega.Expect(u.PasswordHash).To(gomega.Equal("hashed:strong-password"))
				gomega.Expect(u.Permissions).To(gomega.ConsistOf(auth.PermViewAllLoans, auth.PermRecommendLoans))
			})
		})

		ginkgo.Context("when the email is already registered", func() {
			ginkgo.It("should return a conflict error", func() {
				dto := CreateUserDTO{
					Email:    "dup@example.com",
					Name:     "First",
					Password: "strong-password",
					Role:     RoleEmployee,
				}
				_, err := service.CreateUser(dto, 1)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())

				dto.Name = "Second"
				_, err = service.CreateUser(dto, 1)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("email already registered"))
			})
		})

		ginkgo.Context("with an unknown role", func() {
			ginkgo.It("should return a validation error", func() {
				dto := CreateUserDTO{
					Email:    "x@example.com",
					Name:     "X",
					Password: "strong-password",
					Role:     "SUPERVISOR",
				}

				_, err := service.CreateUser(dto, 1)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("role must be one of"))
			})
		})

		ginkgo.Context("with a short password", func() {
			ginkgo.It("should return a validation error", func() {
				dto := CreateUserDTO{
					Email:    "x@example.com",
					Name:     "X",
					Password: "short",
					Role:     RoleEmployee,
				}

				_, err := service.CreateUser(dto, 1)

				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("password must be at least 8 characters"))
			})
		})
	})

	ginkgo.Describe("ResetPassword", func() {
		ginkgo.BeforeEach(func() {
			_, err := service.CreateUser(CreateUserDTO{
				Email:    "employee@example.com",
				Name:     "Employee",
				Password: "old-password",
				Role:     RoleEmployee,
			}, 1)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
		})

		ginkgo.It("should replace the stored hash", func() {
			err := service.ResetPassword(ResetPasswordDTO{
				Email:       "employee@example.com",
				NewPassword: "new-password",
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			u, _ := repo.GetByEmail("employee@example.com")
			gomega.Expect(u.PasswordHash).To(gomega.Equal("hashed:new-password"))
		})

		ginkgo.It("should return not found for unknown email", func() {
			err := service.ResetPassword(ResetPasswordDTO{
				Email:       "nobody@example.com",
				NewPassword: "new-password",
			})

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("user not found"))
		})
	})

	ginkgo.Describe("SeedEmployees", func() {
		validRow := SeedEmployeeDTO{
			Email: "seed1@example.com",
			Name:  "Seed One",
			Profile: SeedProfile{
				FullName:       "Seed One",
				Department:     "Finance",
				GrossSalary:    15000,
				EmploymentYear: 2015,
				RetirementYear: 2045,
			},
		}

		ginkgo.It("should create user, permissions and profile per row", func() {
			results, err := service.SeedEmployees(SeedEmployeesDTO{
				Employees: []SeedEmployeeDTO{validRow},
			}, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(results).To(gomega.HaveLen(1))
			gomega.Expect(results[0].Success).To(gomega.BeTrue())
			gomega.Expect(results[0].UserID).ToNot(gomega.BeZero())

			gomega.Expect(repo.permissions[results[0].UserID]).To(gomega.ConsistOf(auth.PermSubmitLoans, auth.PermViewOwnLoans))
			gomega.Expect(profiles.created).To(gomega.HaveKey(results[0].UserID))
		})

		ginkgo.It("should apply the default password when none is given", func() {
			results, err := service.SeedEmployees(SeedEmployeesDTO{
				Employees: []SeedEmployeeDTO{validRow},
			}, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			u, _ := repo.GetByEmail(validRow.Email)
			gomega.Expect(u.PasswordHash).To(gomega.Equal("hashed:" + DefaultSeedPassword))
			gomega.Expect(results[0].Success).To(gomega.BeTrue())
		})

		ginkgo.It("should continue past failing rows", func() {
			badRow := SeedEmployeeDTO{
				Email: "seed2@example.com",
				Name:  "Seed Two",
				Profile: SeedProfile{
					GrossSalary:    0, // invalid
					EmploymentYear: 2015,
					RetirementYear: 2045,
				},
			}

			results, err := service.SeedEmployees(SeedEmployeesDTO{
				Employees: []SeedEmployeeDTO{badRow, validRow},
			}, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(results).To(gomega.HaveLen(2))
			gomega.Expect(results[0].Success).To(gomega.BeFalse())
			gomega.Expect(results[0].Error).To(gomega.ContainSubstring("gross_salary"))
			gomega.Expect(results[1].Success).To(gomega.BeTrue())
		})

		ginkgo.It("should report duplicate emails per row without aborting", func() {
			results, err := service.SeedEmployees(SeedEmployeesDTO{
				Employees: []SeedEmployeeDTO{validRow, validRow},
			}, 1)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(results[0].Success).To(gomega.BeTrue())
			gomega.Expect(results[1].Success).To(gomega.BeFalse())
			gomega.Expect(results[1].Error).To(gomega.ContainSubstring("already registered"))
		})

		ginkgo.It("should reject an empty batch", func() {
			_, err := service.SeedEmployees(SeedEmployeesDTO{}, 1)

			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("employees is required"))
		})
	})

	ginkgo.Describe("PermissionsForRole", func() {
		ginkgo.It("should resolve each workflow role", func() {
			perms, ok := PermissionsForRole(RoleHRManager)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(perms).To(gomega.ConsistOf(auth.PermViewAllLoans, auth.PermFinalizeLoans))

			_, ok = PermissionsForRole("UNKNOWN")
			gomega.Expect(ok).To(gomega.BeFalse())
		})
	})
})
