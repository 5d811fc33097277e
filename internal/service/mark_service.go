package service

import (
	"context"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/etec-portal-api/internal/dto"
	"github.com/noah-isme/etec-portal-api/internal/identity"
	"github.com/noah-isme/etec-portal-api/internal/models"
)

type markRepository interface {
	Append(ctx context.Context, mark models.Mark) error
	List(ctx context.Context) ([]models.Mark, error)
}

// MarkService records exam results and resolves a student's marks history.
type MarkService struct {
	repo      markRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewMarkService constructs a MarkService instance.
func NewMarkService(repo markRepository, validate *validator.Validate, logger *zap.Logger) *MarkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewValidator()
	}
	return &MarkService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Record appends a mark with the normalized registration number and a server
// timestamp in milliseconds, matching the stored collection's shape.
func (s *MarkService) Record(ctx context.Context, req dto.MarkRequest) (*models.Mark, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, invalid(err, "invalid mark payload")
	}

	mark := models.Mark{
		RegNo:     identity.Normalize(req.RegNo),
		Subject:   req.Subject,
		Exam:      req.Exam,
		Score:     *req.Score,
		OutOf:     *req.OutOf,
		CreatedAt: s.now().UnixMilli(),
	}
	if err := s.repo.Append(ctx, mark); err != nil {
		return nil, err
	}

	s.logger.Info("mark recorded", zap.String("regNo", mark.RegNo), zap.String("exam", mark.Exam))
	return &mark, nil
}

// MarksFor returns the marks belonging to the given registration number,
// oldest first. Ownership is a read-time match on the normalized regNo.
func (s *MarkService) MarksFor(ctx context.Context, regNo string) ([]models.Mark, error) {
	marks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	id := identity.Normalize(regNo)
	mine := make([]models.Mark, 0, len(marks))
	for _, mark := range marks {
		if identity.Normalize(mark.RegNo) == id {
			mine = append(mine, mark)
		}
	}
	sort.SliceStable(mine, func(i, j int) bool { return mine[i].CreatedAt < mine[j].CreatedAt })
	return mine, nil
}
