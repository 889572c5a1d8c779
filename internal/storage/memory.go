package storage

import (
	"errors"
	"sync"

	"bookshelf_web/internal/models"
)

// ErrNotFound 表示查無對應的紀錄
var ErrNotFound = errors.New("record not found")

// MemoryStore 是書庫的記憶體儲存引擎
// 所有讀寫都經過同一把鎖，避免併發請求造成更新遺失
type MemoryStore struct {
	mu    sync.RWMutex
	books []models.Book
}

// NewMemoryStore 建立一個新的 MemoryStore 並載入種子資料
func NewMemoryStore(seed ...models.Book) *MemoryStore {
	books := make([]models.Book, len(seed))
	copy(books, seed)
	return &MemoryStore{books: books}
}

// List 依插入順序回傳所有書籍的副本
func (s *MemoryStore) List() []models.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Book, len(s.books))
	copy(out, s.books)
	return out
}

// FindByID 查詢指定 ID 的書籍
func (s *MemoryStore) FindByID(id string) (models.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, book := range s.books {
		if book.ID == id {
			return book, nil
		}
	}
	return models.Book{}, ErrNotFound
}

// Insert 在序列尾端加入一本書
func (s *MemoryStore) Insert(book models.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.books = append(s.books, book)
}

// Update 在同一個鎖範圍內查找並原地修改指定 ID 的書籍，
// 讓讀取、修改、寫回構成單一臨界區，避免併發更新互相覆蓋。
// 回傳修改後的副本，排列順序不變
func (s *MemoryStore) Update(id string, mutate func(*models.Book)) (models.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			mutate(&s.books[i])
			return s.books[i], nil
		}
	}
	return models.Book{}, ErrNotFound
}

// Remove 移除指定 ID 的書籍
func (s *MemoryStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
