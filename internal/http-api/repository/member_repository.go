package repository

import (
	"context"
	"fmt"

	"librarymgmt/internal/http-api/models"

	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	Update(ctx context.Context, member *models.Member) error
	FindByID(ctx context.Context, id int64) (*models.Member, error)
	FindByMemberCode(ctx context.Context, memberCode string) (*models.Member, error)
	FindAllByRentalStatus(ctx context.Context, status models.MemberRentalStatus, page Page) ([]models.Member, int64, error)
	FindByNameAndAddress(ctx context.Context, name, legion, city, street string) (*models.Member, error)
	FindLatestMemberCode(ctx context.Context) (string, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Create(member).Error; err != nil {
		return fmt.Errorf("create member: %w", err)
	}
	return nil
}

func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	if err := r.db.WithContext(ctx).Save(member).Error; err != nil {
		return fmt.Errorf("update member: %w", err)
	}
	return nil
}

func (r *memberRepository) FindByID(ctx context.Context, id int64) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).First(&member, id).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindByMemberCode(ctx context.Context, memberCode string) (*models.Member, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Where("member_code = ?", memberCode).First(&member).Error; err != nil {
		// never hand back a zero-value member together with a nil error
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAllByRentalStatus(ctx context.Context, status models.MemberRentalStatus, page Page) ([]models.Member, int64, error) {
	var members []models.Member
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Member{}).
		Where("rental_status = ?", status).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count members: %w", err)
	}

	if err := r.db.WithContext(ctx).
		Where("rental_status = ?", status).
		Order("id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&members).Error; err != nil {
		return nil, 0, fmt.Errorf("list members: %w", err)
	}

	return members, total, nil
}

func (r *memberRepository) FindByNameAndAddress(ctx context.Context, name, legion, city, street string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Where("name = ? AND address_legion = ? AND address_city = ? AND address_street = ?", name, legion, city, street).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// FindLatestMemberCode returns the code of the member with the highest id.
func (r *memberRepository) FindLatestMemberCode(ctx context.Context) (string, error) {
	var member models.Member
	if err := r.db.WithContext(ctx).Select("member_code").Order("id DESC").First(&member).Error; err != nil {
		return "", err
	}
	return member.MemberCode, nil
}
