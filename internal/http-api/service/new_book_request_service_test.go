package service

import (
	"errors"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
)

func (s *serviceSuite) adminAndRequest() (*dto.AdminResponse, *dto.NewBookRequestResponse) {
	admin, err := s.admins.CreateAdmin(s.ctx, dto.AdminCreateRequest{
		Email: "admin1@test.com", Name: "admin1", Password: "1234",
	})
	s.Require().NoError(err)
	member := s.register("kim")

	request, err := s.requests.CreateRequest(s.ctx, member.MemberCode, dto.NewBookRequestCreateRequest{
		RequestBookTitle: "Learning Go", RequestContent: "please",
	})
	s.Require().NoError(err)
	return admin, request
}

func (s *serviceSuite) TestCreateRequest() {
	_, request := s.adminAndRequest()

	s.Equal(models.RequestWaiting, request.RequestStatus)
	s.Equal("kim", request.MemberName)

	found, err := s.requests.GetRequest(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal("Learning Go", found.RequestBookTitle)
	s.Equal(FirstMemberCode, found.MemberCode)
}

func (s *serviceSuite) TestResolveRequest() {
	admin, request := s.adminAndRequest()

	result, err := s.requests.ResolveRequest(s.ctx, admin.Email, request.ID, dto.RequestResultCreateRequest{
		ResultStatus: models.RequestAccepted, ResultPostContent: "ordered",
	})
	s.Require().NoError(err)
	s.Equal(request.ID, result.RequestID)
	s.Equal("admin1", result.AdminName)

	found, err := s.requests.GetRequest(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(models.RequestAccepted, found.RequestStatus)

	byRequest, err := s.requests.GetResultByRequestID(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(result.ID, byRequest.ID)
	s.Equal("ordered", byRequest.ResultPostContent)
	s.Equal("admin1@test.com", byRequest.AdminEmail)

	mine, err := s.requests.ListResultsByAdmin(s.ctx, admin.Email, 0, 10)
	s.Require().NoError(err)
	s.Equal(1, mine.PageInfo.TotalElements)
	s.Equal("Learning Go", mine.Data[0].RequestBookTitle)

	_, err = s.requests.ResolveRequest(s.ctx, admin.Email, request.ID, dto.RequestResultCreateRequest{
		ResultStatus: models.RequestRejected,
	})
	s.True(errors.Is(err, ErrAlreadyResolved))
}

func (s *serviceSuite) TestResolveRequest_WaitingIsNotADecision() {
	admin, request := s.adminAndRequest()

	_, err := s.requests.ResolveRequest(s.ctx, admin.Email, request.ID, dto.RequestResultCreateRequest{
		ResultStatus: models.RequestWaiting,
	})

	s.Error(err)
	found, err := s.requests.GetRequest(s.ctx, request.ID)
	s.Require().NoError(err)
	s.Equal(models.RequestWaiting, found.RequestStatus)
}

func (s *serviceSuite) TestListRequests_FilterByStatus() {
	admin, request := s.adminAndRequest()
	_, err := s.requests.CreateRequest(s.ctx, FirstMemberCode, dto.NewBookRequestCreateRequest{
		RequestBookTitle: "Clean Code", RequestContent: "please",
	})
	s.Require().NoError(err)
	_, err = s.requests.ResolveRequest(s.ctx, admin.Email, request.ID, dto.RequestResultCreateRequest{
		ResultStatus: models.RequestRejected,
	})
	s.Require().NoError(err)

	waiting, err := s.requests.ListRequests(s.ctx, models.RequestWaiting, 0, 10)
	s.Require().NoError(err)
	s.Equal(1, waiting.PageInfo.TotalElements)
	s.Equal("Clean Code", waiting.Data[0].RequestBookTitle)

	all, err := s.requests.ListRequests(s.ctx, "", 0, 10)
	s.Require().NoError(err)
	s.Equal(2, all.PageInfo.TotalElements)
}

func (s *serviceSuite) TestResultLookup_NotFound() {
	_, request := s.adminAndRequest()

	_, err := s.requests.GetResultByRequestID(s.ctx, request.ID)
	s.True(errors.Is(err, ErrNotFound))
	_, err = s.requests.GetRequest(s.ctx, request.ID+100)
	s.True(errors.Is(err, ErrNotFound))
}
