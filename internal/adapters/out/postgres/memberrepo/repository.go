package memberrepo

import (
	"context"
	"errors"
	"fmt"

	"bookshop/internal/core/domain/model/kernel"
	"bookshop/internal/core/domain/model/member"
	"bookshop/internal/core/ports"
	"bookshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMemberRepository implements ports.MemberRepository.
type GormMemberRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormMemberRepository(db *gorm.DB, tracker aggregateTracker) *GormMemberRepository {
	return &GormMemberRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the member row. A duplicate name violates the unique index on
// members.name; with gorm's TranslateError on it is reported as
// ports.ErrMemberNameTaken.
func (r *GormMemberRepository) Add(ctx context.Context, aggregate *member.Member) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %w", ports.ErrMemberNameTaken, err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormMemberRepository) Get(ctx context.Context, id kernel.UUID) (*member.Member, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MemberDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("member", id.String())
		}
		return nil, err
	}

	orderIDs, err := r.orderIDs(ctx, dto.ID)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, orderIDs)
}

func (r *GormMemberRepository) FindByName(ctx context.Context, name string) ([]*member.Member, error) {
	var dtos []MemberDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "name = ?", name).Error; err != nil {
		return nil, err
	}

	members := make([]*member.Member, 0, len(dtos))
	for _, dto := range dtos {
		orderIDs, err := r.orderIDs(ctx, dto.ID)
		if err != nil {
			return nil, err
		}

		m, err := toDomain(dto, orderIDs)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}

	return members, nil
}

func (r *GormMemberRepository) orderIDs(ctx context.Context, memberID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("orders").
		Where("member_id = ?", memberID).
		Order("ordered_at").
		Pluck("id", &ids).Error
	return ids, err
}
