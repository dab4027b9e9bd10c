package repository

import (
	"context"

	"chequeflow/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *model.Document) error
	FindByID(ctx context.Context, id uuid.UUID, withCheques bool) (*model.Document, error)
	List(ctx context.Context, page, limit int) ([]model.Document, int64, error)
	Rename(ctx context.Context, id uuid.UUID, fileName string) error
	Delete(ctx context.Context, id uuid.UUID) error
	LockDocument(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// Create inserts the document row only; cheques are written through ChequeRepository.CreateBatch.
func (r *documentRepository) Create(ctx context.Context, doc *model.Document) error {
	return GetDB(ctx, r.db).Omit("Cheques").Create(doc).Error
}

func (r *documentRepository) FindByID(ctx context.Context, id uuid.UUID, withCheques bool) (*model.Document, error) {
	var doc model.Document
	db := GetDB(ctx, r.db)
	if withCheques {
		db = db.Preload("Cheques", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at asc, cheque_number asc")
		})
	}
	if err := db.First(&doc, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "document "+id.String())
	}
	return &doc, nil
}

func (r *documentRepository) List(ctx context.Context, page, limit int) ([]model.Document, int64, error) {
	var docs []model.Document
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Document{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&docs).Error; err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

func (r *documentRepository) Rename(ctx context.Context, id uuid.UUID, fileName string) error {
	res := GetDB(ctx, r.db).Model(&model.Document{}).Where("id = ?", id).Update("file_name", fileName)
	return requireAffected(res, "document "+id.String())
}

func (r *documentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	if err := db.Where("document_id = ?", id).Delete(&model.Cheque{}).Error; err != nil {
		return err
	}
	res := db.Where("id = ? AND is_locked = ?", id, false).Delete(&model.Document{})
	return requireAffected(res, "unlocked document "+id.String())
}

// LockDocument is idempotent: locking an already locked document succeeds.
func (r *documentRepository) LockDocument(ctx context.Context, id uuid.UUID) error {
	res := GetDB(ctx, r.db).Model(&model.Document{}).Where("id = ?", id).Update("is_locked", true)
	return requireAffected(res, "document "+id.String())
}
