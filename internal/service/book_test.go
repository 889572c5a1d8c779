package service

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf_web/internal/models"
	"bookshelf_web/internal/repository"
	"bookshelf_web/internal/storage"
)

func newTestService(seed ...models.Book) *BookService {
	store := storage.NewMemoryStore(seed...)
	return NewBookService(repository.NewBookRepository(store))
}

func strPtr(s string) *string {
	return &s
}

func TestCreateThenGetRoundtrip(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateBook("Dune", "Frank Herbert")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.GetBook(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
}

func TestCreateMissingFields(t *testing.T) {
	svc := newTestService(models.SeedBooks()...)

	_, err := svc.CreateBook("", "Frank Herbert")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateBook("Dune", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	// 驗證失敗時書庫不應該變長
	books, err := svc.ListBooks()
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestCreateGeneratesUniqueIDs(t *testing.T) {
	svc := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		book, err := svc.CreateBook("Title", "Author")
		require.NoError(t, err)
		assert.False(t, seen[book.ID], "duplicate id %s", book.ID)
		seen[book.ID] = true
	}
}

func TestGetUnknownID(t *testing.T) {
	svc := newTestService(models.SeedBooks()...)

	_, err := svc.GetBook("no-such-id")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestUpdatePartialFields(t *testing.T) {
	svc := newTestService(models.SeedBooks()...)

	// 只更新書名，作者維持原值
	updated, err := svc.UpdateBook("2", strPtr("P&P Rev."), nil)
	require.NoError(t, err)
	assert.Equal(t, "P&P Rev.", updated.Title)
	assert.Equal(t, "Jane Austen", updated.Author)

	// 空字串同樣不覆寫既有值
	updated, err = svc.UpdateBook("2", strPtr(""), strPtr(""))
	require.NoError(t, err)
	assert.Equal(t, "P&P Rev.", updated.Title)
	assert.Equal(t, "Jane Austen", updated.Author)
}

func TestUpdateUnknownID(t *testing.T) {
	svc := newTestService(models.SeedBooks()...)

	_, err := svc.UpdateBook("no-such-id", strPtr("x"), nil)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestConcurrentPartialUpdates(t *testing.T) {
	svc := newTestService(models.Book{ID: "1", Title: "t0", Author: "a0"})

	// 一個 goroutine 只改書名、另一個只改作者
	// 任何一輪結束後兩邊的寫入都必須同時留存
	for i := 0; i < 1000; i++ {
		title := fmt.Sprintf("t-%d", i)
		author := fmt.Sprintf("a-%d", i)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := svc.UpdateBook("1", &title, nil)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := svc.UpdateBook("1", nil, &author)
			assert.NoError(t, err)
		}()
		wg.Wait()

		book, err := svc.GetBook("1")
		require.NoError(t, err)
		require.Equal(t, title, book.Title, "iteration %d: title write lost", i)
		require.Equal(t, author, book.Author, "iteration %d: author write lost", i)
	}
}

func TestDeleteThenGet(t *testing.T) {
	svc := newTestService(models.SeedBooks()...)

	require.NoError(t, svc.DeleteBook("3"))

	_, err := svc.GetBook("3")
	assert.ErrorIs(t, err, ErrBookNotFound)

	assert.ErrorIs(t, svc.DeleteBook("3"), ErrBookNotFound)

	books, err := svc.ListBooks()
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestListBooksKeepsSeedOrder(t *testing.T) {
	svc := newTestService(models.SeedBooks()...)

	books, err := svc.ListBooks()
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "The Hitchhiker's Guide to the Galaxy", books[0].Title)
	assert.Equal(t, "Pride and Prejudice", books[1].Title)
	assert.Equal(t, "Nineteen Eighty-Four", books[2].Title)
}
