package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"supportdesk-backend/config"
	"supportdesk-backend/controllers"
	"supportdesk-backend/models"
	"supportdesk-backend/utils"
)

// Controllers bundles everything the router needs. Built in main, passed
// down explicitly; nothing here reaches for globals.
type Controllers struct {
	Auth        *controllers.AuthController
	Customers   *controllers.CustomerController
	Attendants  *controllers.AttendantController
	Attendances *controllers.AttendanceController
	Dashboard   *controllers.DashboardController
	Profile     *controllers.ProfileController
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
			_, ok := models.CanonicalStatus(fl.Field().String())
			return ok
		})
		v.RegisterValidation("attendance_priority", func(fl validator.FieldLevel) bool {
			return models.ValidPriority(fl.Field().String())
		})
	}
}

func SetupRouter(ctl Controllers) *gin.Engine {
	registerValidators()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	// credential endpoints get a per-IP budget
	limiter := utils.NewRateLimiter(1, 5)

	auth := r.Group("/auth")
	{
		auth.POST("/register", limiter.Middleware(), ctl.Auth.Register)
		auth.POST("/login", limiter.Middleware(), ctl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.POST("/logout", ctl.Auth.Logout)
		auth.GET("/me", ctl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		customers := api.Group("/customers")
		{
			customers.POST("", ctl.Customers.CreateCustomer)
			customers.GET("", ctl.Customers.GetCustomers)
			customers.GET("/:id", ctl.Customers.GetCustomer)
			customers.PUT("/:id", ctl.Customers.UpdateCustomer)
			customers.DELETE("/:id", ctl.Customers.DeleteCustomer)
		}

		attendances := api.Group("/attendances")
		{
			attendances.POST("", ctl.Attendances.CreateAttendance)
			attendances.GET("", ctl.Attendances.GetAttendances)
			attendances.GET("/:id", ctl.Attendances.GetAttendance)
			attendances.PUT("/:id", ctl.Attendances.UpdateAttendance)
			attendances.DELETE("/:id", ctl.Attendances.DeleteAttendance)
			attendances.GET("/:id/comments", ctl.Attendances.GetComments)
			attendances.POST("/:id/comments", ctl.Attendances.AddComment)
		}

		// Attendant management is admin-only; the delete path removes the
		// identity record as well.
		attendants := api.Group("/attendants")
		attendants.Use(utils.RequireAdmin())
		{
			attendants.GET("", ctl.Attendants.GetAttendants)
			attendants.POST("", ctl.Attendants.CreateAttendant)
			attendants.PUT("/:id", ctl.Attendants.UpdateAttendant)
			attendants.DELETE("/:id", ctl.Attendants.DeleteAttendant)
		}

		api.GET("/dashboard", ctl.Dashboard.GetDashboardSummary)

		profile := api.Group("/profile")
		{
			profile.GET("", ctl.Profile.GetProfile)
			profile.PUT("", ctl.Profile.UpdateProfile)
			profile.PUT("/password", ctl.Profile.UpdatePassword)
		}
	}

	return r
}
