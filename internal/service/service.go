package service

import (
	"bookshelf_web/internal/repository"
)

type Services struct {
	Book *BookService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Book: NewBookService(repos.Book),
	}
}
