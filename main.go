package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/panchald9/roospark/configs"
	"github.com/panchald9/roospark/repository"
	"github.com/panchald9/roospark/routes"
	"github.com/panchald9/roospark/utils"
)

func main() {
	cfg := configs.LoadConfig()

	lg := utils.NewLogger("roospark")
	defer lg.Sync()

	// Storage — เลือก variant ตาม config ไม่มี singleton แอบแฝง
	var store repository.Storage
	switch cfg.DBDriver {
	case "memory":
		mem, err := repository.NewMemStorage()
		if err != nil {
			lg.Fatal("init memory storage failed", zap.Error(err))
		}
		store = mem
		// เผื่อ config ตั้ง admin คนละชื่อกับ seed default
		if err := repository.SeedAdmin(store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			lg.Fatal("seed failed", zap.Error(err))
		}
	default:
		db, err := configs.OpenDB(cfg)
		if err != nil {
			lg.Fatal("connect database failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
		}
		if err := configs.SetupDatabase(db); err != nil {
			lg.Fatal("migrate failed", zap.Error(err))
		}
		store = repository.NewDatabaseStorage(db, lg)
		if err := repository.SeedAdmin(store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
			lg.Fatal("seed failed", zap.Error(err))
		}
	}

	lg.Info("storage ready", zap.String("driver", cfg.DBDriver))

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, store)

	addr := fmt.Sprintf(":%s", cfg.Port)
	lg.Info("listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
