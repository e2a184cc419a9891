package main

import (
	"log"
	"os"

	"portfolio-be/internal/model"
	"portfolio-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate for the key-value table...")
	if err := database.Migrate(db, &model.KeyValueEntry{}); err != nil {
		log.Fatal("Error: ", err)
	}

	var count int64
	if err := db.Model(&model.KeyValueEntry{}).Count(&count).Error; err != nil {
		log.Fatal("Error: Failed to count entries:", err)
	}
	log.Printf("Migration complete. %s holds %d entries.", model.KeyValueEntry{}.TableName(), count)
}
