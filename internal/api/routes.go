package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf_web/internal/api/handlers"
	"bookshelf_web/internal/service"
)

func SetupRoutes(r *gin.Engine, services *service.Services) {
	// 初始化 handlers
	bookHandler := handlers.NewBookHandler(services.Book)

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "找不到該路徑",
		})
	})

	// 基本的健康檢查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// 書籍相關路由
	books := r.Group("/books")
	{
		// 基本操作
		books.GET("", bookHandler.ListBooks)   // 獲取書籍列表
		books.POST("", bookHandler.CreateBook) // 新增書籍
		books.GET("/:id", bookHandler.GetBook) // 獲取單本書籍

		// 修改與刪除
		books.PUT("/:id", bookHandler.UpdateBook)    // 更新書籍
		books.DELETE("/:id", bookHandler.DeleteBook) // 刪除書籍
	}
}
