package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"bookshelf_web/internal/api"
	"bookshelf_web/internal/middleware"
	"bookshelf_web/internal/models"
	"bookshelf_web/internal/repository"
	"bookshelf_web/internal/service"
	"bookshelf_web/internal/storage"
	"bookshelf_web/pkg/config"
)

func main() {
	// 載入應用程式配置
	// 從配置文件中讀取伺服器監聽地址等設置，找不到配置時使用預設值
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化記憶體書庫
	// 服務啟動時載入固定的種子資料，程序結束後資料不保留
	store := storage.NewMemoryStore(models.SeedBooks()...)

	// 初始化 repositories
	repos := repository.NewRepositories(store)

	// 初始化 services
	services := service.NewServices(repos)

	// 設置 Gin 路由
	// 創建一個默認的 Gin 路由器，附加請求 ID 中間件並設置路由
	r := gin.Default()
	r.Use(middleware.RequestID())
	api.SetupRoutes(r, services)

	// 啟動伺服器
	// 使用配置中指定的地址啟動 HTTP 服務器
	if err := r.Run(cfg.Server.Address); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
