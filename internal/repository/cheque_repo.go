package repository

import (
	"context"
	"time"

	"chequeflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// unlockedCheque matches a cheque that was never printed or has been unlocked since.
const unlockedCheque = "id = ? AND (print_count = 0 OR print_unlocked = ?)"

// ChequeFilter narrows a cheque listing. Zero values mean "no filter".
type ChequeFilter struct {
	DocumentID *uuid.UUID
	Status     model.ChequeStatus
	Page       int
	Limit      int
}

type ChequeRepository interface {
	CreateBatch(ctx context.Context, cheques []model.Cheque) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cheque, error)
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]model.Cheque, error)
	List(ctx context.Context, filter ChequeFilter) ([]model.Cheque, int64, error)
	ListAll(ctx context.Context) ([]model.Cheque, error)
	UpdateStatus(ctx context.Context, cheque *model.Cheque) error
	IncrementPrintCount(ctx context.Context, id uuid.UUID) error
	UnlockPrintedCheque(ctx context.Context, id uuid.UUID, reason string) error
	UpdateIssueDate(ctx context.Context, id uuid.UUID, date time.Time) error
}

type chequeRepository struct {
	db *gorm.DB
}

func NewChequeRepository(db *gorm.DB) ChequeRepository {
	return &chequeRepository{db: db}
}

func (r *chequeRepository) CreateBatch(ctx context.Context, cheques []model.Cheque) error {
	if len(cheques) == 0 {
		return nil
	}
	return GetDB(ctx, r.db).CreateInBatches(&cheques, 200).Error
}

func (r *chequeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Cheque, error) {
	var cheque model.Cheque
	db := GetDB(ctx, r.db)
	if InTx(ctx) {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := db.First(&cheque, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "cheque "+id.String())
	}
	return &cheque, nil
}

func (r *chequeRepository) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]model.Cheque, error) {
	var cheques []model.Cheque
	err := GetDB(ctx, r.db).
		Where("document_id = ?", documentID).
		Order("created_at asc, cheque_number asc").
		Find(&cheques).Error
	if err != nil {
		return nil, err
	}
	return cheques, nil
}

func (r *chequeRepository) List(ctx context.Context, filter ChequeFilter) ([]model.Cheque, int64, error) {
	var cheques []model.Cheque
	var total int64

	query := GetDB(ctx, r.db).Model(&model.Cheque{})
	if filter.DocumentID != nil {
		query = query.Where("document_id = ?", *filter.DocumentID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	if err := query.Order("created_at desc, cheque_number asc").Find(&cheques).Error; err != nil {
		return nil, 0, err
	}

	return cheques, total, nil
}

func (r *chequeRepository) ListAll(ctx context.Context) ([]model.Cheque, error) {
	var cheques []model.Cheque
	if err := GetDB(ctx, r.db).Order("created_at asc, cheque_number asc").Find(&cheques).Error; err != nil {
		return nil, err
	}
	return cheques, nil
}

// UpdateStatus writes the approval fields of cheque: status, remarks and both signature slots.
func (r *chequeRepository) UpdateStatus(ctx context.Context, cheque *model.Cheque) error {
	res := GetDB(ctx, r.db).Model(&model.Cheque{}).
		Where(unlockedCheque, cheque.ID, true).
		Updates(map[string]interface{}{
			"status":                   cheque.Status,
			"remarks":                  cheque.Remarks,
			"current_signatures":       cheque.CurrentSignatures,
			"first_signature_user_id":  cheque.FirstSignatureUserID,
			"second_signature_user_id": cheque.SecondSignatureUserID,
		})
	return requireUnlocked(res, cheque.ID, cheque.DocumentID)
}

func (r *chequeRepository) IncrementPrintCount(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Model(&model.Cheque{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"print_count":    gorm.Expr("print_count + 1"),
			"print_unlocked": false,
		})
	return requireAffected(res, "cheque "+id.String())
}

func (r *chequeRepository) UnlockPrintedCheque(ctx context.Context, id uuid.UUID, reason string) error {
	res := GetDB(ctx, r.db).Model(&model.Cheque{}).
		Where("id = ? AND print_count > 0", id).
		Updates(map[string]interface{}{
			"print_unlocked": true,
			"unlock_reason":  reason,
		})
	return requireAffected(res, "printed cheque "+id.String())
}

func (r *chequeRepository) UpdateIssueDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	res := GetDB(ctx, r.db).Model(&model.Cheque{}).
		Where(unlockedCheque, id, true).
		Update("issue_date", date)
	return requireUnlocked(res, id, uuid.Nil)
}
