package service

import (
	"errors"

	"librarymgmt/internal/http-api/dto"
)

func (s *serviceSuite) TestCreateAndReadReview() {
	member := s.register("kim")
	book := s.shelve("Learning Go")

	created, err := s.reviews.CreateReview(s.ctx, member.MemberCode, book.ID, dto.ReviewCreateRequest{
		ReviewTitle: "great", ReviewContent: "worth it", ReviewRate: 5,
	})
	s.Require().NoError(err)
	s.Equal("Learning Go", created.BookTitle)
	s.Equal("kim", created.MemberName)

	detail, err := s.reviews.GetReviewData(s.ctx, book.ID, created.ID)
	s.Require().NoError(err)
	s.Equal("worth it", detail.ReviewContent)
	s.Equal("Learning Go", detail.BookTitle)

	list, err := s.reviews.GetBookReviewList(s.ctx, book.ID, 0, 10)
	s.Require().NoError(err)
	s.Equal(1, list.PageInfo.TotalElements)
	s.Equal("kim", list.Data[0].MemberName)
}

func (s *serviceSuite) TestGetReviewData_WrongBook() {
	member := s.register("kim")
	book := s.shelve("Learning Go")
	other := s.shelve("Clean Code")
	created, err := s.reviews.CreateReview(s.ctx, member.MemberCode, book.ID, dto.ReviewCreateRequest{
		ReviewTitle: "great", ReviewContent: "worth it", ReviewRate: 4,
	})
	s.Require().NoError(err)

	_, err = s.reviews.GetReviewData(s.ctx, other.ID, created.ID)

	s.True(errors.Is(err, ErrNotFound))
}

func (s *serviceSuite) TestReviewUnknownBook() {
	member := s.register("kim")

	_, err := s.reviews.CreateReview(s.ctx, member.MemberCode, 42, dto.ReviewCreateRequest{
		ReviewTitle: "t", ReviewContent: "c", ReviewRate: 3,
	})
	s.True(errors.Is(err, ErrNotFound))

	_, err = s.reviews.GetBookReviewList(s.ctx, 42, 0, 10)
	s.True(errors.Is(err, ErrNotFound))
}
