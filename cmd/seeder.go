package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{
				"payment_records", "hall_fees", "dining_fees", "fee_schedules",
				"seat_applications", "seats", "rooms", "menu_entries", "complaints", "users",
			} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		users := []struct {
			name      string
			email     string
			role      string
			residency string
		}{
			{"Hall Admin", "admin@dorm.edu", "admin", "resident"},
			{"Rahim Uddin", "rahim@dorm.edu", "student", "resident"},
			{"Karim Hossain", "karim@dorm.edu", "student", "attached"},
		}
		for _, u := range users {
			_, err := db.Exec(`
				INSERT INTO users (name, email, password_hash, role, residency_type, session_year, is_active, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, 2026, true, now(), now())
				ON CONFLICT (email) DO NOTHING`,
				u.name, u.email, string(hash), u.role, u.residency)
			if err != nil {
				log.Fatalf("failed to seed user %s: %v", u.email, err)
			}
			fmt.Println("Seeded user:", u.email)
		}

		schedules := []struct {
			category  string
			residency string
			amount    string
		}{
			{"hall", "resident", "5000.00"},
			{"hall", "attached", "2000.00"},
			{"dining", "resident", "3500.00"},
			{"dining", "attached", "3500.00"},
		}
		for _, s := range schedules {
			_, err := db.Exec(`
				INSERT INTO fee_schedules (category, year, residency_type, amount, created_at)
				VALUES ($1, 2026, $2, $3, now())
				ON CONFLICT (category, year, residency_type) DO NOTHING`,
				s.category, s.residency, s.amount)
			if err != nil {
				log.Fatalf("failed to seed fee schedule %s/%s: %v", s.category, s.residency, err)
			}
		}
		fmt.Println("Seeded fee schedules for 2026")

		if _, err := db.Exec(`
			INSERT INTO rooms (number, floor, capacity, description, created_at, updated_at)
			VALUES ('A-101', 1, 4, 'North block, ground floor', now(), now())
			ON CONFLICT (number) DO NOTHING`); err != nil {
			log.Fatalf("failed to seed room: %v", err)
		}
		fmt.Println("Seeded room A-101")
	},
}
