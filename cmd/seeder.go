package cmd

import (
	"fmt"
	"log"

	"github.com/dagimg/loan-management/internal/user"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := initGorm(sqlDB)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		if clearData {
			for _, table := range []string{"notifications", "loan_requests", "loan_counters", "employee_profiles", "user_permissions", "users"} {
				if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		permissions := []struct {
			Name string
			Desc string
		}{
			{"admin", "full administrator"},
			{"manage_users", "Can manage user accounts"},
			{"submit_loans", "Can submit loan requests"},
			{"view_own_loans", "Can view own loan requests"},
			{"view_all_loans", "Can view all loan requests"},
			{"recommend_loans", "Can recommend pending loan requests"},
			{"finalize_loans", "Can approve or reject reviewed loan requests"},
		}

		for _, p := range permissions {
			var pid int64
			row := db.Raw("SELECT id FROM permissions WHERE name = ?", p.Name).Row()
			if err := row.Scan(&pid); err != nil {
				if err := db.Exec("INSERT INTO permissions (name, description, created_at) VALUES (?, ?, now())", p.Name, p.Desc).Error; err != nil {
					log.Fatalf("failed to insert permission %s: %v", p.Name, err)
				}
			}
		}

		accounts := []struct {
			Email      string
			Name       string
			Department string
			Role       string
		}{
			{"admin@loan.local", "System Administrator", "IT", user.RoleAdmin},
			{"hr.officer@loan.local", "Hana Officer", "Human Resources", user.RoleHROfficer},
			{"hr.manager@loan.local", "Meron Manager", "Human Resources", user.RoleHRManager},
			{"abebe@loan.local", "Abebe Kebede", "Finance", user.RoleEmployee},
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

		for _, acc := range accounts {
			userID, err := ensureUser(db, acc.Email, acc.Name, acc.Department, string(hash))
			if err != nil {
				log.Fatalf("failed to seed user %s: %v", acc.Email, err)
			}

			perms, ok := user.PermissionsForRole(acc.Role)
			if !ok {
				log.Fatalf("unknown role %s", acc.Role)
			}
			for _, permName := range perms {
				if err := grantPermission(db, userID, permName); err != nil {
					log.Fatalf("failed to grant %s to %s: %v", permName, acc.Email, err)
				}
			}
			fmt.Printf("Seeded %s user: %s\n", acc.Role, acc.Email)
		}

		// Employee profile so the sample employee can submit requests
		var employeeID int64
		if err := db.Raw("SELECT id FROM users WHERE email = ?", "abebe@loan.local").Row().Scan(&employeeID); err != nil {
			log.Fatalf("failed to lookup employee user id: %v", err)
		}

		var exists int
		if err := db.Raw("SELECT 1 FROM employee_profiles WHERE user_id = ?", employeeID).Row().Scan(&exists); err != nil {
			if err := db.Exec(`INSERT INTO employee_profiles
				(user_id, full_name, year_of_birth, job_level, department, gross_salary, employment_year, retirement_year, sub_city, woreda, house_number, phone_number, guarantor_name, guarantor_phone, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, now(), now())`,
				employeeID, "Abebe Kebede", 1990, "Senior Accountant", "Finance", 15000, 2015, 2050,
				"Bole", "03", "B-112", "+251911000000", "Kebede Alemu", "+251911000001").Error; err != nil {
				log.Fatalf("failed to insert employee profile: %v", err)
			}
			fmt.Println("Seeded employee profile for abebe@loan.local")
		}

		fmt.Println("Database seeded successfully")
	},
}

func ensureUser(db *gorm.DB, email, name, department, passwordHash string) (int64, error) {
	var id int64
	if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&id); err == nil {
		return id, nil
	}

	if err := db.Exec("INSERT INTO users (email, name, department, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())", email, name, department, passwordHash).Error; err != nil {
		return 0, err
	}

	if err := db.Raw("SELECT id FROM users WHERE email = ?", email).Row().Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func grantPermission(db *gorm.DB, userID int64, permName string) error {
	var pid int64
	if err := db.Raw("SELECT id FROM permissions WHERE name = ?", permName).Row().Scan(&pid); err != nil {
		return fmt.Errorf("permission not found %s: %w", permName, err)
	}

	var exists int
	if err := db.Raw("SELECT 1 FROM user_permissions WHERE user_id = ? AND permission_id = ?", userID, pid).Row().Scan(&exists); err == nil {
		return nil
	}

	return db.Exec("INSERT INTO user_permissions (user_id, permission_id, granted_by, created_at) VALUES (?, ?, NULL, now())", userID, pid).Error
}
