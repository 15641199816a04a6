package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	userservice "github.com/edenbercier/userservice"
	"github.com/edenbercier/userservice/middleware/jwtware"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.toml"
	}

	cfg, err := userservice.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := openDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	repo := userservice.NewRepositoryManager(db)
	repo.MustValidate()

	provider := userservice.NewUserProvider(repo.Users())
	auther := userservice.NewAuthenticator(provider, cfg)
	registrar := userservice.NewRegisterUserHandler(repo)

	controller := userservice.NewUsersController(
		userservice.WithAuthenticator(auther),
		userservice.WithRegistrar(registrar),
		userservice.WithFinder(repo.Users()),
	)
	controller.Debug = cfg.Debug

	app := fiber.New(fiber.Config{
		AppName:      "userservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})

	app.Use(jwtware.New(jwtware.Config{
		TokenValidator:  userservice.JWTValidator(auther.TokenService()),
		ContextKey:      cfg.GetContextKey(),
		TokenLookup:     cfg.GetTokenLookup(),
		AuthScheme:      cfg.GetAuthScheme(),
		ContextEnricher: userservice.ContextEnricherAdapter,
	}))

	guard := jwtware.Protected(jwtware.Config{
		ContextKey: cfg.GetContextKey(),
	})

	userservice.RegisterRoutes(app, controller, guard)

	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Fatalf("server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func openDatabase(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.NewCreateTable().
		Model((*userservice.User)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
