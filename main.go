package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/yethan4/shop-backend/internal/config"
	"github.com/yethan4/shop-backend/internal/database"
	"github.com/yethan4/shop-backend/internal/models"
	"github.com/yethan4/shop-backend/internal/router"
	"github.com/yethan4/shop-backend/internal/util"
)

func main() {
	createAdmin := flag.Bool("create-admin", false, "create a superuser and exit")
	adminUsername := flag.String("admin-username", "", "superuser username")
	adminEmail := flag.String("admin-email", "", "superuser email")
	adminPhone := flag.String("admin-phone", "", "superuser phone number")
	adminFirstName := flag.String("admin-first-name", "", "superuser first name")
	adminLastName := flag.String("admin-last-name", "", "superuser last name")
	adminPassword := flag.String("admin-password", "", "superuser password")
	flag.Parse()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	util.InitLogger(cfg.Log.Level)
	defer util.Logger.Sync()

	// ensure data directory exists
	if err := ensureDir(filepath.Dir(cfg.Database.Path)); err != nil {
		log.Fatalf("create data dir: %v", err)
	}

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if *createAdmin {
		user := models.User{
			Username:    *adminUsername,
			Email:       util.NormalizeEmail(*adminEmail),
			PhoneNumber: *adminPhone,
			FirstName:   *adminFirstName,
			LastName:    *adminLastName,
			IsActive:    true,
			IsStaff:     true,
			IsSuperuser: true,
		}
		if err := provisionAdmin(db, &user, *adminPassword, cfg.Security.BcryptCost); err != nil {
			log.Fatalf("create admin: %v", err)
		}
		log.Printf("superuser %q created", user.Username)
		return
	}

	// setup router
	r := router.SetupRouter(cfg, db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
