package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/labtrack/labtrack/internal/db/models"
)

// AcademicInfoRepository handles database operations for academic records
type AcademicInfoRepository struct {
	Repository[models.AcademicInfo]
}

// NewAcademicInfoRepository creates a new instance of AcademicInfoRepository
func NewAcademicInfoRepository(db *gorm.DB) *AcademicInfoRepository {
	return &AcademicInfoRepository{newRepository[models.AcademicInfo](db, "academic info", "degree", "institution", "field")}
}

// List retrieves academic records, optionally for one member
func (r *AcademicInfoRepository) List(ctx context.Context, memberID *uint, opts *models.ListOptions) ([]models.AcademicInfo, error) {
	return r.list(ctx, opts, eq("member_id", memberID))
}
