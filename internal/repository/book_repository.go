package repository

import (
	"bookshelf_web/internal/models"
	"bookshelf_web/internal/storage"
)

type BookRepository interface {
	Create(book models.Book) error
	FindByID(id string) (*models.Book, error)
	Update(id string, mutate func(*models.Book)) (*models.Book, error)
	Delete(id string) error
	FindAll() ([]models.Book, error) // 簡單的列表查詢
}

type bookRepository struct {
	store *storage.MemoryStore
}

func NewBookRepository(store *storage.MemoryStore) BookRepository {
	return &bookRepository{store: store}
}

func (r *bookRepository) Create(book models.Book) error {
	r.store.Insert(book)
	return nil
}

func (r *bookRepository) FindByID(id string) (*models.Book, error) {
	book, err := r.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Update 把欄位修改委派給儲存引擎，在單一臨界區內完成
func (r *bookRepository) Update(id string, mutate func(*models.Book)) (*models.Book, error) {
	book, err := r.store.Update(id, mutate)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) Delete(id string) error {
	return r.store.Remove(id)
}

// FindAll 查詢所有書籍
func (r *bookRepository) FindAll() ([]models.Book, error) {
	return r.store.List(), nil
}
