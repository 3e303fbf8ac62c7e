package service

import (
	"context"
	"errors"
	"fmt"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/repository"

	"gorm.io/gorm"
)

type NewBookRequestService interface {
	CreateRequest(ctx context.Context, memberCode string, req dto.NewBookRequestCreateRequest) (*dto.NewBookRequestResponse, error)
	GetRequest(ctx context.Context, requestID int64) (*dto.NewBookRequestResponse, error)
	ListRequests(ctx context.Context, status models.RequestStatus, page, size int) (*dto.PagedResponse[dto.NewBookRequestResponse], error)
	ResolveRequest(ctx context.Context, adminEmail string, requestID int64, req dto.RequestResultCreateRequest) (*dto.RequestResultResponse, error)
	GetResultByRequestID(ctx context.Context, requestID int64) (*dto.RequestResultResponse, error)
	ListResultsByAdmin(ctx context.Context, adminEmail string, page, size int) (*dto.PagedResponse[dto.RequestResultResponse], error)
}

type newBookRequestService struct {
	requestRepo repository.NewBookRequestRepository
	resultRepo  repository.NewBookRequestResultRepository
	memberRepo  repository.MemberRepository
	adminRepo   repository.AdminRepository
}

func NewNewBookRequestService(
	requestRepo repository.NewBookRequestRepository,
	resultRepo repository.NewBookRequestResultRepository,
	memberRepo repository.MemberRepository,
	adminRepo repository.AdminRepository,
) NewBookRequestService {
	return &newBookRequestService{
		requestRepo: requestRepo,
		resultRepo:  resultRepo,
		memberRepo:  memberRepo,
		adminRepo:   adminRepo,
	}
}

func (s *newBookRequestService) CreateRequest(ctx context.Context, memberCode string, req dto.NewBookRequestCreateRequest) (*dto.NewBookRequestResponse, error) {
	member, err := s.memberRepo.FindByMemberCode(ctx, memberCode)
	if err != nil {
		return nil, translate(err, "member "+memberCode)
	}

	request := &models.NewBookRequest{
		MemberID:         member.ID,
		RequestBookTitle: req.RequestBookTitle,
		RequestContent:   req.RequestContent,
		RequestStatus:    models.RequestWaiting,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	request.Member = member
	resp := dto.FromNewBookRequest(request)
	return &resp, nil
}

func (s *newBookRequestService) GetRequest(ctx context.Context, requestID int64) (*dto.NewBookRequestResponse, error) {
	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("new book request %d", requestID))
	}
	resp := dto.FromNewBookRequest(request)
	return &resp, nil
}

func (s *newBookRequestService) ListRequests(ctx context.Context, status models.RequestStatus, page, size int) (*dto.PagedResponse[dto.NewBookRequestResponse], error) {
	requests, total, err := s.requestRepo.FindAll(ctx, status, repository.NewPage(page, size))
	if err != nil {
		return nil, err
	}

	data := make([]dto.NewBookRequestResponse, 0, len(requests))
	for i := range requests {
		data = append(data, dto.FromNewBookRequest(&requests[i]))
	}
	return dto.NewPagedResponse(data, page, size, total), nil
}

// ResolveRequest records an administrator's decision. Each request is
// answered once; later attempts yield ErrAlreadyResolved.
func (s *newBookRequestService) ResolveRequest(ctx context.Context, adminEmail string, requestID int64, req dto.RequestResultCreateRequest) (*dto.RequestResultResponse, error) {
	what := fmt.Sprintf("new book request %d", requestID)

	if !req.ResultStatus.Resolved() {
		return nil, fmt.Errorf("%s: result status %q is not a decision", what, req.ResultStatus)
	}

	admin, err := s.adminRepo.FindByEmail(ctx, adminEmail)
	if err != nil {
		return nil, translate(err, "administrator "+adminEmail)
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, translate(err, what)
	}
	if request.RequestStatus.Resolved() {
		return nil, fmt.Errorf("%s: %w", what, ErrAlreadyResolved)
	}

	result := &models.NewBookRequestResult{
		NewBookRequestID:  request.ID,
		AdministratorID:   admin.ID,
		ResultStatus:      req.ResultStatus,
		ResultPostContent: req.ResultPostContent,
	}
	err = s.resultRepo.Create(ctx, result)
	if errors.Is(err, repository.ErrStateChanged) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, fmt.Errorf("%s: %w", what, ErrAlreadyResolved)
	}
	if err != nil {
		return nil, err
	}

	request.RequestStatus = req.ResultStatus
	result.NewBookRequest = request
	result.Administrator = admin
	resp := dto.FromRequestResult(result)
	return &resp, nil
}

func (s *newBookRequestService) GetResultByRequestID(ctx context.Context, requestID int64) (*dto.RequestResultResponse, error) {
	result, err := s.resultRepo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("result of new book request %d", requestID))
	}
	resp := dto.FromRequestResult(result)
	return &resp, nil
}

func (s *newBookRequestService) ListResultsByAdmin(ctx context.Context, adminEmail string, page, size int) (*dto.PagedResponse[dto.RequestResultResponse], error) {
	results, total, err := s.resultRepo.FindByAdminEmail(ctx, adminEmail, repository.NewPage(page, size))
	if err != nil {
		return nil, err
	}

	data := make([]dto.RequestResultResponse, 0, len(results))
	for i := range results {
		data = append(data, dto.FromRequestResult(&results[i]))
	}
	return dto.NewPagedResponse(data, page, size, total), nil
}
