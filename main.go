package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"prayerhub/config"
	"prayerhub/database"
	adminRoutes "prayerhub/routers/adminRoutes"
	authRoutes "prayerhub/routers/authRoutes"
	bookRoutes "prayerhub/routers/bookRoutes"
	cartRoutes "prayerhub/routers/cartRoutes"
	donationRoutes "prayerhub/routers/donationRoutes"
	eventRoutes "prayerhub/routers/eventRoutes"
	prayerRoutes "prayerhub/routers/prayerRoutes"
	projectRoutes "prayerhub/routers/projectRoutes"
	subscriberRoutes "prayerhub/routers/subscriberRoutes"
	trainingRoutes "prayerhub/routers/trainingRoutes"
	uploadRoutes "prayerhub/routers/uploadRoutes"
	"prayerhub/session"
	"prayerhub/utils"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	session.Init(config.AppConfig.SessionStore, database.Database.Db)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded media
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	trainingRoutes.SetupTrainingRoutes(app)
	trainingRoutes.SetupAdminTrainingRoutes(app)
	eventRoutes.SetupEventRoutes(app)
	projectRoutes.SetupProjectRoutes(app)
	prayerRoutes.SetupPrayerRoutes(app)
	bookRoutes.SetupBookRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	donationRoutes.SetupDonationRoutes(app)
	subscriberRoutes.SetupSubscriberRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	uploadRoutes.SetupUploadRoutes(app)

	utils.StartEventReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
