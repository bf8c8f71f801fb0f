package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jakupie/backend/internal/domain/listing"
	"github.com/jakupie/backend/internal/infrastructure/config"
	"github.com/jakupie/backend/internal/infrastructure/logger"
	"github.com/jakupie/backend/internal/infrastructure/persistence"
	"github.com/jakupie/backend/internal/infrastructure/persistence/models"
)

// defaultCategories seeds the marketplace taxonomy on first run.
var defaultCategories = []struct {
	Name      string
	Slug      string
	Icon      string
	SortOrder int
}{
	{"Elektronika", "elektronika", "laptop", 1},
	{"Motoryzacja", "motoryzacja", "car", 2},
	{"Dom i ogród", "dom-i-ogrod", "home", 3},
	{"Moda", "moda", "shirt", 4},
	{"Sport i hobby", "sport-i-hobby", "dumbbell", 5},
	{"Dla dzieci", "dla-dzieci", "baby", 6},
	{"Zwierzęta", "zwierzeta", "paw-print", 7},
	{"Nieruchomości", "nieruchomosci", "building", 8},
	{"Usługi", "uslugi", "wrench", 9},
	{"Inne", "inne", "package", 10},
}

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log := logger.New(config.LogConfig{Level: logLevel, Format: "console", Output: "stdout"})
	defer func() {
		_ = log.Sync()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	switch command {
	case "up":
		if err := migrateUp(db.DB); err != nil {
			log.Fatal("Migration failed", zap.Error(err))
		}
		log.Info("Schema migrated")
	case "seed":
		created, err := seedCategories(db.DB)
		if err != nil {
			log.Fatal("Seeding failed", zap.Error(err))
		}
		log.Info("Categories seeded", zap.Int("created", created))
	default:
		printUsage()
		os.Exit(1)
	}
}

func migrateUp(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.UserModel{},
		&models.CategoryModel{},
		&models.AdModel{},
		&models.AdResponseModel{},
		&models.RatingModel{},
	)
}

// seedCategories inserts the default categories, skipping slugs that
// already exist so reruns are safe.
func seedCategories(db *gorm.DB) (int, error) {
	created := 0
	for _, c := range defaultCategories {
		category, err := listing.NewCategory(c.Name, c.Slug, c.Icon, c.SortOrder)
		if err != nil {
			return created, err
		}

		model := models.CategoryModelFromDomain(category)
		result := db.Where("slug = ?", c.Slug).FirstOrCreate(model)
		if result.Error != nil {
			return created, result.Error
		}
		if result.RowsAffected > 0 {
			created++
		}
	}
	return created, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate [flags] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  up      Apply the database schema")
	fmt.Fprintln(os.Stderr, "  seed    Insert the default categories")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Flags:")
	flag.PrintDefaults()
}
