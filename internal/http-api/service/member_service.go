package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"librarymgmt/internal/http-api/dto"
	"librarymgmt/internal/http-api/models"
	"librarymgmt/internal/http-api/repository"
	"librarymgmt/internal/middleware/auth"

	"gorm.io/gorm"
)

// FirstMemberCode is handed to the first member ever registered.
const FirstMemberCode = "100000"

const memberCodeAttempts = 3

type MemberService interface {
	Register(ctx context.Context, req dto.MemberCreateRequest) (*dto.MemberResponse, error)
	GetByMemberCode(ctx context.Context, memberCode string) (*dto.MemberResponse, error)
	ListByRentalStatus(ctx context.Context, status models.MemberRentalStatus, page, size int) (*dto.PagedResponse[dto.MemberResponse], error)
	FindByNameAndAddress(ctx context.Context, q dto.MemberSearchQuery) (*dto.MemberResponse, error)
	Login(ctx context.Context, memberCode, password string) (*TokenPair, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	tokens     *TokenManager
}

func NewMemberService(memberRepo repository.MemberRepository, tokens *TokenManager) MemberService {
	return &memberService{memberRepo: memberRepo, tokens: tokens}
}

// Register stores a new member under the next free member code.
func (s *memberService) Register(ctx context.Context, req dto.MemberCreateRequest) (*dto.MemberResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := &models.Member{
		Name:         req.Name,
		BirthdayCode: req.BirthdayCode,
		Address: models.Address{
			Legion: req.Address.Legion,
			City:   req.Address.City,
			Street: req.Address.Street,
		},
		Password:     hashed,
		RentalStatus: models.RentalAvailable,
		Authority:    models.RoleMember,
	}

	for attempt := 0; attempt < memberCodeAttempts; attempt++ {
		code, err := s.nextMemberCode(ctx)
		if err != nil {
			return nil, err
		}
		member.ID = 0
		member.MemberCode = code

		err = s.memberRepo.Create(ctx, member)
		if err == nil {
			resp := dto.FromMember(member)
			return &resp, nil
		}
		// another registration took the code; read the latest again
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("member code: %w", ErrDuplicate)
}

func (s *memberService) nextMemberCode(ctx context.Context) (string, error) {
	latest, err := s.memberRepo.FindLatestMemberCode(ctx)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return FirstMemberCode, nil
	}
	if err != nil {
		return "", fmt.Errorf("latest member code: %w", err)
	}

	n, err := strconv.ParseInt(latest, 10, 64)
	if err != nil {
		return "", fmt.Errorf("malformed member code %q: %w", latest, err)
	}
	return strconv.FormatInt(n+1, 10), nil
}

func (s *memberService) GetByMemberCode(ctx context.Context, memberCode string) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindByMemberCode(ctx, memberCode)
	if err != nil {
		return nil, translate(err, "member "+memberCode)
	}
	resp := dto.FromMember(member)
	return &resp, nil
}

func (s *memberService) ListByRentalStatus(ctx context.Context, status models.MemberRentalStatus, page, size int) (*dto.PagedResponse[dto.MemberResponse], error) {
	members, total, err := s.memberRepo.FindAllByRentalStatus(ctx, status, repository.NewPage(page, size))
	if err != nil {
		return nil, err
	}

	data := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		data = append(data, dto.FromMember(&members[i]))
	}
	return dto.NewPagedResponse(data, page, size, total), nil
}

func (s *memberService) FindByNameAndAddress(ctx context.Context, q dto.MemberSearchQuery) (*dto.MemberResponse, error) {
	member, err := s.memberRepo.FindByNameAndAddress(ctx, q.Name, q.Legion, q.City, q.Street)
	if err != nil {
		return nil, translate(err, "member "+q.Name)
	}
	resp := dto.FromMember(member)
	return &resp, nil
}

func (s *memberService) Login(ctx context.Context, memberCode, password string) (*TokenPair, error) {
	member, err := s.memberRepo.FindByMemberCode(ctx, memberCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		auth.BurnPassword(password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := auth.VerifyPassword(member.Password, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokens.Issue(member.MemberCode, models.RoleMember)
}
