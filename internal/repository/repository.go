package repository

import "bookshelf_web/internal/storage"

type Repositories struct {
	Book BookRepository
}

func NewRepositories(store *storage.MemoryStore) *Repositories {
	return &Repositories{
		Book: NewBookRepository(store),
	}
}
