package repository

import (
	"errors"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

func (s *repositorySuite) newRequest(member *models.Member, title string) *models.NewBookRequest {
	request := &models.NewBookRequest{
		MemberID:         member.ID,
		RequestBookTitle: title,
		RequestContent:   "please buy " + title,
		RequestStatus:    models.RequestWaiting,
	}
	s.insert(request)
	return request
}

func (s *repositorySuite) TestRequest_FindAllNewestFirst() {
	member := newMember("kim", models.RentalAvailable, "123456")
	s.insert(member)
	first := s.newRequest(member, "Learning Go")
	second := s.newRequest(member, "Concurrency in Go")
	s.Require().NoError(s.db.Model(first).Update("request_status", models.RequestRejected).Error)
	repo := NewNewBookRequestRepository(s.db)

	all, total, err := repo.FindAll(s.ctx, "", NewPage(0, 10))
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Equal(second.ID, all[0].ID)
	s.Require().NotNil(all[0].Member)
	s.Equal("kim", all[0].Member.Name)

	waiting, total, err := repo.FindAll(s.ctx, models.RequestWaiting, NewPage(0, 10))
	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Equal(second.ID, waiting[0].ID)
}

func (s *repositorySuite) TestRequest_FindByID() {
	member := newMember("kim", models.RentalAvailable, "123456")
	s.insert(member)
	request := s.newRequest(member, "Learning Go")
	repo := NewNewBookRequestRepository(s.db)

	found, err := repo.FindByID(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal("Learning Go", found.RequestBookTitle)
	s.Require().NotNil(found.Member)
	s.Equal("123456", found.Member.MemberCode)

	_, err = repo.FindByID(s.ctx, request.ID+100)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *repositorySuite) TestRequestResult_CreateAndFind() {
	member := newMember("kim", models.RentalAvailable, "123456")
	admin := &models.Administrator{Email: "admin1@test.com", Name: "admin1", Password: "x"}
	s.insert(member, admin)
	request := s.newRequest(member, "Learning Go")
	repo := NewNewBookRequestResultRepository(s.db)

	result := &models.NewBookRequestResult{
		NewBookRequestID:  request.ID,
		AdministratorID:   admin.ID,
		ResultStatus:      models.RequestAccepted,
		ResultPostContent: "ordered",
	}
	s.Require().NoError(repo.Create(s.ctx, result))
	s.NotZero(result.ID)

	var stored models.NewBookRequest
	s.Require().NoError(s.db.First(&stored, request.ID).Error)
	s.Equal(models.RequestAccepted, stored.RequestStatus)

	found, err := repo.FindByRequestID(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(result.ID, found.ID)
	s.Equal("ordered", found.ResultPostContent)
	s.Require().NotNil(found.NewBookRequest)
	s.Equal("Learning Go", found.NewBookRequest.RequestBookTitle)
	s.Require().NotNil(found.Administrator)
	s.Equal("admin1@test.com", found.Administrator.Email)
}

func (s *repositorySuite) TestRequestResult_SecondResultRejected() {
	member := newMember("kim", models.RentalAvailable, "123456")
	admin := &models.Administrator{Email: "admin1@test.com", Name: "admin1", Password: "x"}
	s.insert(member, admin)
	request := s.newRequest(member, "Learning Go")
	repo := NewNewBookRequestResultRepository(s.db)

	s.Require().NoError(repo.Create(s.ctx, &models.NewBookRequestResult{
		NewBookRequestID: request.ID, AdministratorID: admin.ID, ResultStatus: models.RequestRejected,
	}))
	err := repo.Create(s.ctx, &models.NewBookRequestResult{
		NewBookRequestID: request.ID, AdministratorID: admin.ID, ResultStatus: models.RequestAccepted,
	})

	s.True(errors.Is(err, ErrStateChanged))
	var stored models.NewBookRequest
	s.Require().NoError(s.db.First(&stored, request.ID).Error)
	s.Equal(models.RequestRejected, stored.RequestStatus)
}

func (s *repositorySuite) TestRequestResult_FindByRequestID_NotFound() {
	repo := NewNewBookRequestResultRepository(s.db)

	_, err := repo.FindByRequestID(s.ctx, 42)

	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *repositorySuite) TestRequestResult_FindByAdminEmail() {
	member := newMember("kim", models.RentalAvailable, "123456")
	admin1 := &models.Administrator{Email: "admin1@test.com", Name: "admin1", Password: "x"}
	admin2 := &models.Administrator{Email: "admin2@test.com", Name: "admin2", Password: "x"}
	s.insert(member, admin1, admin2)
	repo := NewNewBookRequestResultRepository(s.db)

	for i, admin := range []*models.Administrator{admin1, admin1, admin2} {
		request := s.newRequest(member, []string{"A", "B", "C"}[i])
		s.Require().NoError(repo.Create(s.ctx, &models.NewBookRequestResult{
			NewBookRequestID: request.ID, AdministratorID: admin.ID, ResultStatus: models.RequestAccepted,
		}))
	}

	results, total, err := repo.FindByAdminEmail(s.ctx, "admin1@test.com", NewPage(0, 10))
	s.Require().NoError(err)
	s.EqualValues(2, total)
	s.Require().Len(results, 2)
	s.Equal("B", results[0].NewBookRequest.RequestBookTitle)
	s.Equal("A", results[1].NewBookRequest.RequestBookTitle)
	for _, r := range results {
		s.Equal("admin1@test.com", r.Administrator.Email)
	}

	results, total, err = repo.FindByAdminEmail(s.ctx, "nobody@test.com", NewPage(0, 10))
	s.Require().NoError(err)
	s.Zero(total)
	s.Empty(results)
}
