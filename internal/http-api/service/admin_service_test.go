package service

import (
	"errors"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
)

func (s *serviceSuite) TestCreateAdmin() {
	admin, err := s.admins.CreateAdmin(s.ctx, dto.AdminCreateRequest{
		Email: "admin1@test.com", Name: "admin1", Password: "1234",
	})

	s.Require().NoError(err)
	s.NotZero(admin.ID)
	s.Equal("admin1", admin.Name)
	s.Equal("admin1@test.com", admin.Email)

	var stored models.Administrator
	s.Require().NoError(s.db.First(&stored, admin.ID).Error)
	s.NotEqual("1234", stored.Password, "password must be stored hashed")
}

func (s *serviceSuite) TestCreateAdmin_Duplicate() {
	req := dto.AdminCreateRequest{Email: "admin1@test.com", Name: "admin1", Password: "1234"}
	_, err := s.admins.CreateAdmin(s.ctx, req)
	s.Require().NoError(err)

	_, err = s.admins.CreateAdmin(s.ctx, req)

	s.True(errors.Is(err, ErrDuplicate))
	var count int64
	s.db.Model(&models.Administrator{}).Count(&count)
	s.EqualValues(1, count)
}

func (s *serviceSuite) TestAdminLogin() {
	_, err := s.admins.CreateAdmin(s.ctx, dto.AdminCreateRequest{
		Email: "admin1@test.com", Name: "admin1", Password: "1234",
	})
	s.Require().NoError(err)

	pair, err := s.admins.Login(s.ctx, "admin1@test.com", "1234")
	s.Require().NoError(err)

	claims, err := s.tokens.Validate(pair.AccessToken)
	s.Require().NoError(err)
	s.Equal("admin1@test.com", claims.Subject)
	s.Equal(models.RoleAdmin, claims.Role)

	_, err = s.admins.Login(s.ctx, "admin1@test.com", "wrong")
	s.True(errors.Is(err, ErrInvalidCredentials))
	_, err = s.admins.Login(s.ctx, "nobody@test.com", "1234")
	s.True(errors.Is(err, ErrInvalidCredentials))
}
