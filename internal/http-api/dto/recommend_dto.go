package dto

// RentedCount is a book recommended for how often it was rented.
type RentedCount struct {
	BookID      int64  `json:"bookId"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	RentedCount int64  `json:"rentedCount"`
}

// ReviewRate is a book recommended for its average review rate.
type ReviewRate struct {
	BookID      int64   `json:"bookId"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Publisher   string  `json:"publisher"`
	ReviewRate  float64 `json:"reviewRate"`
	ReviewCount int64   `json:"reviewCount"`
}
