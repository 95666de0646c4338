package main

import (
	"fmt"
	"log"
	"os"
	"stafftrack-backend/config"
	"stafftrack-backend/models"
	"stafftrack-backend/routes"
	"stafftrack-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database handle: %v", err)
	}
	defer sqlDB.Close()

	if err := db.AutoMigrate(
		&models.Business{},
		&models.User{},
		&models.Department{},
		&models.Employee{},
		&models.EmployeeGroup{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	counts := services.NewCountService(db)
	counts.StartScheduler()
	defer counts.Stop()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(db)
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
