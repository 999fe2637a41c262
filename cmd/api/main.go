package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loantrack/internal/adapter/http"
	appmw "loantrack/internal/adapter/middleware"
	"loantrack/internal/adapter/repository/sqlite"
	"loantrack/internal/adapter/session"
	"loantrack/internal/config"
	"loantrack/internal/domain/user"
	"loantrack/internal/infrastructure/cache"
	"loantrack/internal/infrastructure/db"
	authuc "loantrack/internal/usecase/auth"
	loanuc "loantrack/internal/usecase/loan"
	reportuc "loantrack/internal/usecase/report"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenSQLite(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	if err := db.Seed(gdb); err != nil {
		log.Fatalf("seed: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("open redis: %v", err)
	}
	sessions := session.NewRedisStore(rdb)

	userRepo := sqlite.NewUserRepository(gdb)
	loanRepo := sqlite.NewLoanRepository(gdb)

	authHandler := httpadp.NewAuthHandler(authuc.NewUsecase(userRepo), sessions)
	loanHandler := httpadp.NewLoanHandler(loanuc.NewUsecase(loanRepo))
	reportHandler := httpadp.NewReportHandler(reportuc.NewUsecase(loanRepo))

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())
	e.Validator = httpadp.NewValidator()

	renderer, err := httpadp.NewRenderer("web/templates/*.html")
	if err != nil {
		log.Fatalf("templates: %v", err)
	}
	e.Renderer = renderer

	adminOnly := appmw.RequireRole(sessions, user.RoleAdmin)
	collectorOnly := appmw.RequireRole(sessions, user.RoleCollector)
	loggedIn := appmw.RequireSession(sessions)

	// routes
	e.GET("/", authHandler.LoginForm)
	e.POST("/", authHandler.Login)
	e.POST("/apply", loanHandler.Apply)
	e.GET("/admin", loanHandler.AdminBoard, adminOnly)
	e.GET("/assign/:id/:collector", loanHandler.Assign, adminOnly)
	e.GET("/collector", loanHandler.CollectorBoard, collectorOnly)
	e.GET("/paid/:id", loanHandler.MarkPaid, loggedIn)
	e.GET("/download_financials", reportHandler.Download, adminOnly)
	e.GET("/logout", authHandler.Logout)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
