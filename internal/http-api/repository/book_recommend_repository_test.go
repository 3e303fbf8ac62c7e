package repository

import (
	"time"

	"librarymgmt/internal/http-api/models"
)

func (s *repositorySuite) rent(member *models.Member, book *models.Book, times int) {
	for i := 0; i < times; i++ {
		s.insert(&models.Rental{
			MemberID: member.ID,
			BookID:   book.ID,
			Status:   models.RentalReturned,
			RentedAt: time.Now().UTC(),
		})
	}
}

func (s *repositorySuite) review(member *models.Member, book *models.Book, rates ...int) {
	for _, rate := range rates {
		s.insert(&models.BookReview{
			BookID:        book.ID,
			MemberID:      member.ID,
			ReviewTitle:   "title",
			ReviewContent: "content",
			ReviewRate:    rate,
		})
	}
}

func (s *repositorySuite) TestRecommend_TopByRentalCount() {
	member := newMember("kim", models.RentalAvailable, "123456")
	a := newBook("A", "a", models.BookAvailable)
	b := newBook("B", "b", models.BookAvailable)
	c := newBook("C", "c", models.BookAvailable)
	d := newBook("D", "d", models.BookAvailable)
	s.insert(member, a, b, c, d)
	s.rent(member, a, 1)
	s.rent(member, b, 3)
	s.rent(member, c, 3)
	repo := NewBookRecommendRepository(s.db)

	rows, err := repo.TopByRentalCount(s.ctx, 10)

	s.Require().NoError(err)
	s.Require().Len(rows, 3, "books never rented are left out")
	s.Equal([]int64{b.ID, c.ID, a.ID}, []int64{rows[0].BookID, rows[1].BookID, rows[2].BookID})
	s.EqualValues(3, rows[0].RentedCount)
	s.Equal("B", rows[0].Title)
	s.Equal("publisher1", rows[0].Publisher)
	s.EqualValues(1, rows[2].RentedCount)
}

func (s *repositorySuite) TestRecommend_TopByRentalCount_Limit() {
	member := newMember("kim", models.RentalAvailable, "123456")
	a := newBook("A", "a", models.BookAvailable)
	b := newBook("B", "b", models.BookAvailable)
	s.insert(member, a, b)
	s.rent(member, a, 1)
	s.rent(member, b, 2)
	repo := NewBookRecommendRepository(s.db)

	rows, err := repo.TopByRentalCount(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(b.ID, rows[0].BookID)
}

func (s *repositorySuite) TestRecommend_TopByReviewRate() {
	member := newMember("kim", models.RentalAvailable, "123456")
	a := newBook("A", "a", models.BookAvailable)
	b := newBook("B", "b", models.BookAvailable)
	c := newBook("C", "c", models.BookAvailable)
	d := newBook("D", "d", models.BookAvailable)
	s.insert(member, a, b, c, d)
	s.review(member, a, 5)
	s.review(member, b, 5, 5)
	s.review(member, c, 4, 3)
	repo := NewBookRecommendRepository(s.db)

	rows, err := repo.TopByReviewRate(s.ctx, 10)

	s.Require().NoError(err)
	s.Require().Len(rows, 3)
	s.Equal([]int64{b.ID, a.ID, c.ID}, []int64{rows[0].BookID, rows[1].BookID, rows[2].BookID})
	s.InDelta(5.0, rows[0].ReviewRate, 0.001)
	s.EqualValues(2, rows[0].ReviewCount)
	s.InDelta(3.5, rows[2].ReviewRate, 0.001)
}

func (s *repositorySuite) TestRecommend_QueriesArePrepared() {
	sql, args, err := rentedCountQuery(5).ToSQL()
	s.Require().NoError(err)
	s.Contains(sql, `COUNT("r"."id") AS "rented_count"`)
	s.Contains(sql, "LIMIT ?")
	s.Len(args, 1)

	sql, _, err = reviewRateQuery(5).ToSQL()
	s.Require().NoError(err)
	s.Contains(sql, `CAST(AVG("rv"."review_rate") AS FLOAT) AS "review_rate"`)
}
