package service

import (
	"errors"

	"github.com/google/uuid"

	"bookshelf_web/internal/models"
	"bookshelf_web/internal/repository"
	"bookshelf_web/internal/storage"
)

var (
	// ErrBookNotFound 表示指定 ID 的書籍不存在
	ErrBookNotFound = errors.New("book not found")
	// ErrInvalidInput 表示必填欄位缺漏
	ErrInvalidInput = errors.New("title and author are required")
)

type BookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) *BookService {
	return &BookService{bookRepo: bookRepo}
}

// ListBooks 依插入順序回傳所有書籍
func (s *BookService) ListBooks() ([]models.Book, error) {
	return s.bookRepo.FindAll()
}

// GetBook 取得指定 ID 的書籍
func (s *BookService) GetBook(id string) (*models.Book, error) {
	book, err := s.bookRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// CreateBook 建立一本新書並產生唯一 ID
func (s *BookService) CreateBook(title, author string) (*models.Book, error) {
	if title == "" || author == "" {
		return nil, ErrInvalidInput
	}

	book := models.Book{
		ID:     uuid.NewString(),
		Title:  title,
		Author: author,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return nil, err
	}
	return &book, nil
}

// UpdateBook 更新書籍欄位
// 欄位為 nil 或空字串時維持原值不變
// 整個查找與覆寫在儲存引擎的單一臨界區內完成，併發更新不會互相覆蓋
func (s *BookService) UpdateBook(id string, title, author *string) (*models.Book, error) {
	book, err := s.bookRepo.Update(id, func(book *models.Book) {
		if title != nil && *title != "" {
			book.Title = *title
		}
		if author != nil && *author != "" {
			book.Author = *author
		}
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return book, nil
}

// DeleteBook 刪除指定 ID 的書籍
func (s *BookService) DeleteBook(id string) error {
	if err := s.bookRepo.Delete(id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrBookNotFound
		}
		return err
	}
	return nil
}
