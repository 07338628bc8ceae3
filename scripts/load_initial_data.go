package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"firmdesk-backend/internal/config"
	"firmdesk-backend/internal/database"
	"firmdesk-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type OrganizationData struct {
	Name        string                 `yaml:"name"`
	DisplayName string                 `yaml:"display_name"`
	Description string                 `yaml:"description"`
	Settings    map[string]interface{} `yaml:"settings,omitempty"`
}

type UserData struct {
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name"`
	Password string `yaml:"password,omitempty"`
	IsActive bool   `yaml:"is_active"`
}

type MembershipData struct {
	OrganizationName string `yaml:"organization_name"`
	UserEmail        string `yaml:"user_email"`
	Role             string `yaml:"role"`
}

type ClientData struct {
	OrganizationName string `yaml:"organization_name"`
	Name             string `yaml:"name"`
	Email            string `yaml:"email,omitempty"`
	Phone            string `yaml:"phone,omitempty"`
	Address          string `yaml:"address,omitempty"`
	TIN              string `yaml:"tin,omitempty"`
	ClientType       string `yaml:"client_type"`
	Status           string `yaml:"status"`
	Notes            string `yaml:"notes,omitempty"`
}

// File structures
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type MembershipsFile struct {
	Memberships []MembershipData `yaml:"memberships"`
}

type ClientsFile struct {
	Clients []ClientData `yaml:"clients"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	memberships, err := loadMemberships(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load memberships: %w", err)
	}

	clients, err := loadClients(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clients: %w", err)
	}

	// Create organizations first
	orgMap := make(map[string]*models.Organization)
	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		orgMap[orgData.Name] = org
		if created {
			orgCreated++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	// Create users
	userMap := make(map[string]*models.User)
	userCreated := 0
	for _, userData := range users {
		user, created, err := createUser(db, userData)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.Email, err)
		}
		userMap[userData.Email] = user
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(users))

	// Create memberships
	membershipCreated := 0
	for _, membershipData := range memberships {
		_, created, err := createMembership(db, membershipData, orgMap, userMap)
		if err != nil {
			return fmt.Errorf("failed to create membership %s/%s: %w", membershipData.OrganizationName, membershipData.UserEmail, err)
		}
		if created {
			membershipCreated++
		}
	}
	log.Printf("📋 Memberships: %d created, %d total", membershipCreated, len(memberships))

	// Create clients
	clientCreated := 0
	for _, clientData := range clients {
		_, created, err := createClient(db, clientData, orgMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create client %s: %v", clientData.Name, err)
			continue // Continue with other clients
		}
		if created {
			clientCreated++
		}
	}
	log.Printf("📋 Clients: %d created, %d total", clientCreated, len(clients))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func loadUsers(dataDir string) ([]UserData, error) {
	var allUsers []UserData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "users") {
			var file UsersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allUsers = append(allUsers, file.Users...)
		}
		return nil
	})

	return allUsers, err
}

func loadMemberships(dataDir string) ([]MembershipData, error) {
	var allMemberships []MembershipData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "memberships") {
			var file MembershipsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMemberships = append(allMemberships, file.Memberships...)
		}
		return nil
	})

	return allMemberships, err
}

func loadClients(dataDir string) ([]ClientData, error) {
	var allClients []ClientData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "clients") {
			var file ClientsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allClients = append(allClients, file.Clients...)
		}
		return nil
	})

	return allClients, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	var org models.Organization
	if err := db.Where("name = ?", orgData.Name).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			settings := models.DefaultOrganizationSettings()
			settingsJSON, _ := json.Marshal(settings)
			if len(orgData.Settings) > 0 {
				settingsJSON, _ = json.Marshal(orgData.Settings)
			}

			org = models.Organization{
				Name:        orgData.Name,
				DisplayName: orgData.DisplayName,
				Description: orgData.Description,
				IsActive:    true,
				Settings:    settingsJSON,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil // created = true
		}
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	return &org, false, nil // created = false (existing)
}

func createUser(db *gorm.DB, userData UserData) (*models.User, bool, error) {
	var user models.User
	if err := db.Where("email = ?", userData.Email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			var passwordHash string
			if userData.Password != "" {
				hash, err := bcrypt.GenerateFromPassword([]byte(userData.Password), bcrypt.DefaultCost)
				if err != nil {
					return nil, false, fmt.Errorf("failed to hash password: %w", err)
				}
				passwordHash = string(hash)
			}

			user = models.User{
				Email:        userData.Email,
				FullName:     userData.FullName,
				PasswordHash: passwordHash,
				IsActive:     userData.IsActive,
			}

			if err := db.Create(&user).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create user: %w", err)
			}
			return &user, true, nil
		}
		return nil, false, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, false, nil
}

func createMembership(db *gorm.DB, membershipData MembershipData, orgMap map[string]*models.Organization, userMap map[string]*models.User) (*models.OrganizationMembership, bool, error) {
	org := orgMap[membershipData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for membership", membershipData.OrganizationName)
	}
	user := userMap[membershipData.UserEmail]
	if user == nil {
		return nil, false, fmt.Errorf("user %s not found for membership", membershipData.UserEmail)
	}

	role := models.MembershipRole(membershipData.Role)
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", membershipData.Role)
	}

	var membership models.OrganizationMembership
	if err := db.Where("organization_id = ? AND user_id = ?", org.ID, user.ID).First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			membership = models.OrganizationMembership{
				OrganizationID: org.ID,
				UserID:         user.ID,
				Role:           role,
			}

			if err := db.Create(&membership).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create membership: %w", err)
			}
			return &membership, true, nil
		}
		return nil, false, fmt.Errorf("failed to query membership: %w", err)
	}

	return &membership, false, nil
}

func createClient(db *gorm.DB, clientData ClientData, orgMap map[string]*models.Organization) (*models.Client, bool, error) {
	org := orgMap[clientData.OrganizationName]
	if org == nil {
		return nil, false, fmt.Errorf("organization %s not found for client %s", clientData.OrganizationName, clientData.Name)
	}

	clientType := models.ClientType(clientData.ClientType)
	if clientData.ClientType == "" {
		clientType = models.ClientTypeIndividual
	}
	status := models.ClientStatus(clientData.Status)
	if clientData.Status == "" {
		status = models.ClientStatusActive
	}

	var client models.Client
	if err := db.Where("name = ? AND organization_id = ?", clientData.Name, org.ID).First(&client).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			client = models.Client{
				TenantModel: models.TenantModel{OrganizationID: org.ID},
				Name:        clientData.Name,
				Email:       clientData.Email,
				Phone:       clientData.Phone,
				Address:     clientData.Address,
				TIN:         clientData.TIN,
				ClientType:  clientType,
				Status:      status,
				Notes:       clientData.Notes,
			}

			if err := db.Create(&client).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create client: %w", err)
			}
			return &client, true, nil
		}
		return nil, false, fmt.Errorf("failed to query client: %w", err)
	}

	return &client, false, nil
}
