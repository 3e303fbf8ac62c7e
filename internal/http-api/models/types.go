package models

// MemberRentalStatus says whether a member may borrow more books.
type MemberRentalStatus string

const (
	RentalAvailable   MemberRentalStatus = "RENTAL_AVAILABLE"
	RentalUnavailable MemberRentalStatus = "RENTAL_UNAVAILABLE"
)

func (s MemberRentalStatus) Valid() bool {
	return s == RentalAvailable || s == RentalUnavailable
}

// Authority is the role carried in access tokens.
type Authority string

const (
	RoleMember Authority = "ROLE_MEMBER"
	RoleAdmin  Authority = "ROLE_ADMIN"
)

// BookStatus is a book's availability for lending.
type BookStatus string

const (
	BookAvailable BookStatus = "AVAILABLE"
	BookRental    BookStatus = "RENTAL"
	BookLost      BookStatus = "LOST"
)

func (s BookStatus) Valid() bool {
	switch s {
	case BookAvailable, BookRental, BookLost:
		return true
	}
	return false
}

// RentalStatus tracks a single lending.
type RentalStatus string

const (
	RentalProceeding RentalStatus = "PROCEEDING"
	RentalReturned   RentalStatus = "RETURNED"
)

// RequestStatus is the state of a new-book request.
type RequestStatus string

const (
	RequestWaiting  RequestStatus = "WAITING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestWaiting, RequestAccepted, RequestRejected:
		return true
	}
	return false
}

// Resolved reports whether an administrator has answered the request.
func (s RequestStatus) Resolved() bool {
	return s == RequestAccepted || s == RequestRejected
}
