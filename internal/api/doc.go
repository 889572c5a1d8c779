// Package api 處理 HTTP 請求路由和處理。
//
// 這個包包含了書籍 API 的所有 HTTP 處理器（handlers）。
// 它負責將 HTTP 請求轉換為適當的服務調用，並將結果轉換回 HTTP 響應，
// 包括把核心錯誤（找不到、欄位缺漏）翻譯成對應的狀態碼與 JSON 訊息。
package api
