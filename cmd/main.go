package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/rohanks-dev/coursebay/internal/config"
	"github.com/rohanks-dev/coursebay/internal/db"
	"github.com/rohanks-dev/coursebay/internal/gateway"
	"github.com/rohanks-dev/coursebay/internal/handlers"
	"github.com/rohanks-dev/coursebay/internal/middleware"
	"github.com/rohanks-dev/coursebay/internal/services"
	"github.com/rohanks-dev/coursebay/internal/storage"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg := config.Load()

	// Initialize Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowCredentials: true,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
	}))

	// External collaborators
	db.ConnectMongoDB(cfg.MongoURI, cfg.MongoDB)
	storage.InitMinio(cfg)
	gateway.InitRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)

	services.InitAuth(cfg.JWTUserSecret, cfg.JWTAdminSecret)
	middleware.Init(cfg.JWTUserSecret, cfg.JWTAdminSecret)
	handlers.Init(cfg)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "Server Running"})
	})

	api := app.Group("/api/v1")

	// User routes
	user := api.Group("/user")
	user.Post("/signup", handlers.UserSignup)
	user.Post("/login", handlers.UserLogin)
	user.Post("/logout", handlers.UserLogout)
	user.Get("/purchased", middleware.UserMiddleware, handlers.UserPurchases)

	// Admin routes
	admin := api.Group("/admin")
	admin.Post("/signup", handlers.AdminSignup)
	admin.Post("/login", handlers.AdminLogin)
	admin.Post("/logout", handlers.AdminLogout)

	// Course routes; the static /courses path is registered before the
	// :courseId wildcard
	course := api.Group("/course")
	course.Post("/create", middleware.AdminMiddleware, handlers.CreateCourse)
	course.Put("/update/:courseId", middleware.AdminMiddleware, handlers.UpdateCourse)
	course.Delete("/delete/:courseId", middleware.AdminMiddleware, handlers.DeleteCourse)
	course.Get("/courses", handlers.GetCourses)
	course.Post("/buy/:courseId", middleware.UserMiddleware, handlers.BuyCourse)
	course.Post("/verify-payment", middleware.UserMiddleware, handlers.VerifyPayment)
	course.Get("/:courseId", handlers.CourseDetails)

	// Start server
	log.Fatal(app.Listen(":" + cfg.Port))
}
