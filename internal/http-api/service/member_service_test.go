package service

import (
	"errors"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
)

func (s *serviceSuite) TestRegister_GeneratesSequentialCodes() {
	first := s.register("kim")
	second := s.register("park")

	s.Equal(FirstMemberCode, first.MemberCode)
	s.Equal("100001", second.MemberCode)
	s.Equal(models.RentalAvailable, first.MemberRentalStatus)
}

func (s *serviceSuite) TestRegister_ContinuesFromLatestCode() {
	s.Require().NoError(s.db.Create(&models.Member{
		Name: "lee", MemberCode: "123461", BirthdayCode: "980101",
		Password: "x", RentalStatus: models.RentalAvailable, Authority: models.RoleMember,
	}).Error)

	member := s.register("kim")

	s.Equal("123462", member.MemberCode)
}

func (s *serviceSuite) TestGetByMemberCode() {
	created := s.register("kim")

	found, err := s.members.GetByMemberCode(s.ctx, created.MemberCode)
	s.Require().NoError(err)
	s.Equal("kim", found.Name)
	s.Equal("김해시", found.Address.City)

	_, err = s.members.GetByMemberCode(s.ctx, "999999")
	s.True(errors.Is(err, ErrNotFound))
}

func (s *serviceSuite) TestListByRentalStatus() {
	for _, name := range []string{"kim", "park", "lee"} {
		s.register(name)
	}
	s.Require().NoError(s.db.Model(&models.Member{}).
		Where("name = ?", "park").
		Update("rental_status", models.RentalUnavailable).Error)

	page, err := s.members.ListByRentalStatus(s.ctx, models.RentalAvailable, 0, 1)

	s.Require().NoError(err)
	s.Len(page.Data, 1)
	s.Equal(2, page.PageInfo.TotalElements)
	s.Equal(2, page.PageInfo.TotalPages)
}

func (s *serviceSuite) TestFindByNameAndAddress() {
	s.register("kim")
	park := s.register("park")

	found, err := s.members.FindByNameAndAddress(s.ctx, dto.MemberSearchQuery{
		Name: "park", Legion: "경상남도", City: "김해시", Street: "삼계로",
	})
	s.Require().NoError(err)
	s.Equal(park.MemberCode, found.MemberCode)

	_, err = s.members.FindByNameAndAddress(s.ctx, dto.MemberSearchQuery{
		Name: "um", Legion: "경상남도", City: "김해시", Street: "삼계로",
	})
	s.True(errors.Is(err, ErrNotFound))
}

func (s *serviceSuite) TestMemberLogin() {
	member := s.register("kim")

	pair, err := s.members.Login(s.ctx, member.MemberCode, "1234")
	s.Require().NoError(err)
	claims, err := s.tokens.Validate(pair.AccessToken)
	s.Require().NoError(err)
	s.Equal(member.MemberCode, claims.Subject)
	s.Equal(models.RoleMember, claims.Role)

	_, err = s.members.Login(s.ctx, member.MemberCode, "0000")
	s.True(errors.Is(err, ErrInvalidCredentials))
}
