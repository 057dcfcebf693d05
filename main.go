package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"supportdesk-backend/config"
	"supportdesk-backend/controllers"
	"supportdesk-backend/models"
	"supportdesk-backend/remote"
	"supportdesk-backend/routes"
	"supportdesk-backend/services"
	"supportdesk-backend/store"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	db.AutoMigrate(
		&models.Identity{},
		&models.User{},
		&models.Customer{},
		&models.Attendance{},
		&models.Comment{},
	)

	// remote gateways
	customers := remote.NewCustomers(db)
	users := remote.NewUsers(db)
	attendances := remote.NewAttendances(db)
	comments := remote.NewComments(db)
	identities := remote.NewIdentities(db)

	// identity provider + entity stores
	auth := services.NewAuthService(identities, users)
	customerStore := store.NewCustomerStore(customers)
	attendantStore := store.NewAttendantStore(users, auth)
	attendanceStore := store.NewAttendanceStore(attendances, comments)
	dashboardStore := store.NewDashboardStore(attendances)

	auth.Subscribe(func(session *services.Session) {
		if session == nil {
			log.Println("Session ended")
			return
		}
		log.Printf("Session started for %s (%s)", session.Email, session.Role)
	})

	escalation := services.NewEscalationService(attendances)
	escalation.StartScheduler()

	r := routes.SetupRouter(routes.Controllers{
		Auth:        &controllers.AuthController{Auth: auth, Attendants: attendantStore, Users: users},
		Customers:   &controllers.CustomerController{Store: customerStore},
		Attendants:  &controllers.AttendantController{Store: attendantStore},
		Attendances: &controllers.AttendanceController{Store: attendanceStore},
		Dashboard:   &controllers.DashboardController{Store: dashboardStore},
		Profile:     &controllers.ProfileController{Auth: auth, Attendants: attendantStore, Users: users},
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
