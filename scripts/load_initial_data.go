package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"coffee-shop-backend/internal/auth"
	"coffee-shop-backend/internal/config"
	"coffee-shop-backend/internal/database"
	"coffee-shop-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type PositionData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type UserData struct {
	Username string `yaml:"username"`
	FullName string `yaml:"full_name"`
	Email    string `yaml:"email"`
	Role     string `yaml:"role"`
	Password string `yaml:"password"`
	Position string `yaml:"position,omitempty"`
	Active   *bool  `yaml:"active,omitempty"`
}

type ShiftRuleData struct {
	Position      string `yaml:"position"`
	Allowed       bool   `yaml:"allowed"`
	RequiredCount int    `yaml:"required_count"`
}

type ShiftData struct {
	Name      string          `yaml:"name"`
	StartTime string          `yaml:"start_time"`
	EndTime   string          `yaml:"end_time"`
	Rules     []ShiftRuleData `yaml:"rules,omitempty"`
}

type RecurrencePatternData struct {
	Type         string  `yaml:"type"`
	IntervalDays *int    `yaml:"interval_days,omitempty"`
	DayOfWeek    *string `yaml:"day_of_week,omitempty"`
}

// SeedFile is the layout of every YAML file under the data directory; sections may be omitted
type SeedFile struct {
	Positions          []PositionData          `yaml:"positions"`
	Users              []UserData              `yaml:"users"`
	Shifts             []ShiftData             `yaml:"shifts"`
	RecurrencePatterns []RecurrencePatternData `yaml:"recurrence_patterns"`
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

	seed, err := loadSeedFiles("scripts/data")
	if err != nil {
		log.Fatalf("Failed to read seed files: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return loadData(tx, seed)
	}); err != nil {
		log.Fatalf("Failed to load initial data: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
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

func loadSeedFiles(dataDir string) (*SeedFile, error) {
	merged := &SeedFile{}

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		var file SeedFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		merged.Positions = append(merged.Positions, file.Positions...)
		merged.Users = append(merged.Users, file.Users...)
		merged.Shifts = append(merged.Shifts, file.Shifts...)
		merged.RecurrencePatterns = append(merged.RecurrencePatterns, file.RecurrencePatterns...)
		return nil
	})

	return merged, err
}

func loadData(db *gorm.DB, seed *SeedFile) error {
	positionMap := make(map[string]*models.Position)
	positionCreated := 0
	for _, data := range seed.Positions {
		position, created, err := createPosition(db, data)
		if err != nil {
			return fmt.Errorf("failed to create position %s: %w", data.Name, err)
		}
		positionMap[data.Name] = position
		if created {
			positionCreated++
		}
	}
	log.Printf("📋 Positions: %d created, %d total", positionCreated, len(seed.Positions))

	userCreated := 0
	for _, data := range seed.Users {
		created, err := createUser(db, data, positionMap)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", data.Username, err)
		}
		if created {
			userCreated++
		}
	}
	log.Printf("📋 Users: %d created, %d total", userCreated, len(seed.Users))

	shiftCreated := 0
	for _, data := range seed.Shifts {
		created, err := createShift(db, data, positionMap)
		if err != nil {
			return fmt.Errorf("failed to create shift %s: %w", data.Name, err)
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("📋 Shifts: %d created, %d total", shiftCreated, len(seed.Shifts))

	patternCreated := 0
	for _, data := range seed.RecurrencePatterns {
		created, err := createRecurrencePattern(db, data)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create %s recurrence pattern: %v", data.Type, err)
			continue
		}
		if created {
			patternCreated++
		}
	}
	log.Printf("📋 Recurrence patterns: %d created, %d total", patternCreated, len(seed.RecurrencePatterns))

	return nil
}

func createPosition(db *gorm.DB, data PositionData) (*models.Position, bool, error) {
	var position models.Position
	err := db.Where("name = ?", data.Name).First(&position).Error
	if err == nil {
		return &position, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to query position: %w", err)
	}

	position = models.Position{Name: data.Name, Description: data.Description}
	if err := db.Create(&position).Error; err != nil {
		return nil, false, err
	}
	return &position, true, nil
}

func createUser(db *gorm.DB, data UserData, positionMap map[string]*models.Position) (bool, error) {
	var existing models.User
	err := db.Where("username = ?", data.Username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query user: %w", err)
	}

	role := models.Role(strings.ToUpper(data.Role))
	if role == "" {
		role = models.RoleStaff
	}
	if !role.IsValid() {
		return false, fmt.Errorf("invalid role %q", data.Role)
	}

	hash, err := auth.HashPassword(data.Password, auth.DefaultArgon2idParams)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username:     data.Username,
		FullName:     data.FullName,
		Email:        data.Email,
		Role:         role,
		PasswordHash: hash,
		Active:       data.Active == nil || *data.Active,
	}
	if data.Position != "" {
		position := positionMap[data.Position]
		if position == nil {
			return false, fmt.Errorf("position %s not found", data.Position)
		}
		user.PositionID = &position.ID
	}

	if err := db.Create(&user).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createShift(db *gorm.DB, data ShiftData, positionMap map[string]*models.Position) (bool, error) {
	var existing models.Shift
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query shift: %w", err)
	}

	shift := models.Shift{
		Name:      data.Name,
		StartTime: data.StartTime,
		EndTime:   data.EndTime,
		Active:    true,
	}
	for _, rule := range data.Rules {
		position := positionMap[rule.Position]
		if position == nil {
			return false, fmt.Errorf("position %s not found", rule.Position)
		}
		shift.PositionRules = append(shift.PositionRules, models.ShiftPositionRule{
			PositionID:    position.ID,
			Allowed:       rule.Allowed,
			RequiredCount: rule.RequiredCount,
		})
	}

	if err := db.Create(&shift).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createRecurrencePattern(db *gorm.DB, data RecurrencePatternData) (bool, error) {
	pattern := models.RecurrencePattern{Type: models.ParseRecurrenceType(data.Type)}
	query := db.Where("type = ?", pattern.Type)

	switch pattern.Type {
	case models.RecurrenceDaily:
		if data.IntervalDays == nil {
			return false, fmt.Errorf("interval_days is required for DAILY")
		}
		pattern.IntervalDays = data.IntervalDays
		query = query.Where("interval_days = ?", *data.IntervalDays)
	case models.RecurrenceWeekly:
		if data.DayOfWeek == nil {
			return false, fmt.Errorf("day_of_week is required for WEEKLY")
		}
		day := strings.ToUpper(*data.DayOfWeek)
		pattern.DayOfWeek = &day
		query = query.Where("day_of_week = ?", day)
	default:
		return false, fmt.Errorf("unknown type %q", data.Type)
	}

	var existing models.RecurrencePattern
	err := query.First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("failed to query recurrence pattern: %w", err)
	}

	if err := db.Create(&pattern).Error; err != nil {
		return false, err
	}
	return true, nil
}
