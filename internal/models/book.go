package models

// Book 表示書庫中的一本書
type Book struct {
	ID     string `json:"id"`     // 唯一識別字串，建立時由系統產生
	Title  string `json:"title"`  // 書名，必填
	Author string `json:"author"` // 作者，必填
}

// SeedBooks 回傳服務啟動時載入的預設書籍
func SeedBooks() []Book {
	return []Book{
		{ID: "1", Title: "The Hitchhiker's Guide to the Galaxy", Author: "Douglas Adams"},
		{ID: "2", Title: "Pride and Prejudice", Author: "Jane Austen"},
		{ID: "3", Title: "Nineteen Eighty-Four", Author: "George Orwell"},
	}
}
