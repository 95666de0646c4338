package routes

import (
	"stafftrack-backend/config"
	"stafftrack-backend/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	authController := controllers.NewAuthController(db)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
	}

	departmentController := controllers.NewDepartmentController(db)
	departments := r.Group("/departments")
	{
		departments.GET("", departmentController.GetDepartments)
		departments.POST("", departmentController.CreateDepartment)
		departments.GET("/:id", departmentController.GetDepartment)
		departments.PUT("/:id", departmentController.UpdateDepartment)
		departments.DELETE("/:id", departmentController.DeleteDepartment)
	}

	employeeController := controllers.NewEmployeeController(db)
	employees := r.Group("/employees")
	{
		employees.GET("", employeeController.GetEmployees)
		employees.POST("", employeeController.CreateEmployee)
		employees.GET("/:id", employeeController.GetEmployee)
		employees.PUT("/:id", employeeController.UpdateEmployee)
		employees.DELETE("/:id", employeeController.DeleteEmployee)
	}

	groupController := controllers.NewEmployeeGroupController(db)
	groups := r.Group("/employee-groups")
	{
		groups.GET("", groupController.GetEmployeeGroups)
		groups.POST("", groupController.CreateEmployeeGroup)
		groups.GET("/:id", groupController.GetEmployeeGroup)
		groups.PUT("/:id", groupController.UpdateEmployeeGroup)
		groups.DELETE("/:id", groupController.DeleteEmployeeGroup)
	}

	userController := controllers.NewUserController(db)
	r.GET("/users", userController.SearchUsers)

	dashboardController := controllers.NewDashboardController(db)
	r.GET("/dashboard", dashboardController.GetDashboardOverview)

	return r
}
