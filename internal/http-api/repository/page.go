package repository

// Page is a 0-based page request.
type Page struct {
	Number int
	Size   int
}

func NewPage(number, size int) Page {
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return p.Number * p.Size
}
