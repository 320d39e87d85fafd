package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"pantry-manager/core/config"
	"pantry-manager/core/database"
	"pantry-manager/core/loader"
	"pantry-manager/core/logger"
	"pantry-manager/core/middleware/auth"
	"pantry-manager/core/middleware/rayid"
	"pantry-manager/core/storage"

	"pantry-manager/feature/inventory"
	invmodels "pantry-manager/feature/inventory/models"
	"pantry-manager/feature/planner"
	plannermodels "pantry-manager/feature/planner/models"
	"pantry-manager/feature/recipes"
	recipemodels "pantry-manager/feature/recipes/models"
	"pantry-manager/feature/shopping"
	shoppingmodels "pantry-manager/feature/shopping/models"
	"pantry-manager/feature/users"
	usermodels "pantry-manager/feature/users/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pantry-manager/docs/swagger"
)

// @title Pantry Manager API
// @version 1.0
// @description API for managing a personal kitchen: inventory, recipes, meal planning and the shopping list.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pantry manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to database", zap.Error(err))
		}

		err = db.AutoMigrate(
			&usermodels.User{},
			&invmodels.InventoryItem{},
			&recipemodels.Recipe{},
			&recipemodels.RecipeIngredient{},
			&recipemodels.RecipeStep{},
			&shoppingmodels.ShoppingListLine{},
			&plannermodels.PlannedRecipe{},
		)
		if err != nil {
			logg.Fatal("Failed to migrate schema", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Storage (export archive)
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 3. Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Account routes (Public: registration and login issue the tokens)
		usersFeature := users.NewFeature(db, logg, cfg.Server)
		if err := usersFeature.Load(app); err != nil {
			logg.Fatal("Failed to load users feature", zap.Error(err))
		}

		// 5. Auth (everything below is owner-scoped)
		app.Use(auth.New(auth.Config{Secret: cfg.Server.JWTSecret}))

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		inventoryFeature := inventory.NewFeature(db, logg)
		shoppingFeature := shopping.NewFeature(db, logg, store, cfg.Storage.Bucket)
		recipesFeature := recipes.NewFeature(db, logg, cfg.Reconcile,
			inventoryFeature.Service(), shoppingFeature.Service())

		mgr.Register(inventoryFeature)
		mgr.Register(recipesFeature)
		mgr.Register(shoppingFeature)
		mgr.Register(planner.NewFeature(db, logg, recipesFeature.Service()))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
