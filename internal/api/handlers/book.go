package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookshelf_web/internal/service"
)

// BookHandler 處理與書籍相關的請求
type BookHandler struct {
	bookService *service.BookService
}

// NewBookHandler 創建一個新的 BookHandler 實例
func NewBookHandler(bookService *service.BookService) *BookHandler {
	return &BookHandler{bookService: bookService}
}

// CreateBookInput 定義新增書籍請求的結構
type CreateBookInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// UpdateBookInput 定義更新書籍請求的結構
// 使用指標欄位區分「未提供」與「提供空值」
type UpdateBookInput struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
}

// ListBooks 處理獲取書籍列表的請求
func (h *BookHandler) ListBooks(c *gin.Context) {
	books, err := h.bookService.ListBooks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "無法取得書籍列表"})
		return
	}

	c.JSON(http.StatusOK, books)
}

// GetBook 處理獲取單本書籍的請求
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.bookService.GetBook(c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "找不到該書籍"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "伺服器發生錯誤"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// CreateBook 處理新增書籍的請求
func (h *BookHandler) CreateBook(c *gin.Context) {
	var input CreateBookInput
	// 解析並驗證請求體
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book, err := h.bookService.CreateBook(input.Title, input.Author)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "書名與作者為必填欄位"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "建立書籍失敗"})
		return
	}

	c.JSON(http.StatusCreated, book)
}

// UpdateBook 處理更新書籍的請求
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var input UpdateBookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	book, err := h.bookService.UpdateBook(c.Param("id"), input.Title, input.Author)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "找不到該書籍"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "更新書籍失敗"})
		return
	}

	c.JSON(http.StatusOK, book)
}

// DeleteBook 處理刪除書籍的請求
func (h *BookHandler) DeleteBook(c *gin.Context) {
	if err := h.bookService.DeleteBook(c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "找不到該書籍"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "刪除書籍失敗"})
		return
	}

	c.Status(http.StatusNoContent)
}
