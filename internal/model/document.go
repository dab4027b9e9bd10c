package model

import (
	"time"

	"github.com/google/uuid"
)

// Document is a batch of cheques originating from one spreadsheet upload.
// IsLocked is set once any contained cheque has been printed and blocks deletion.
type Document struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	FileName  string    `gorm:"type:varchar(255);not null" json:"file_name"`
	IsLocked  bool      `gorm:"not null;default:false;index" json:"is_locked"`
	Cheques   []Cheque  `gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE" json:"cheques,omitempty"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
