package persistent

import (
	"time"

	"inkwell/internal/entity"
	"inkwell/internal/model"

	"gorm.io/gorm"
)

type UploadFileRepository interface {
	Create(file *entity.UploadFile) error
	GetByID(id int64) (*entity.UploadFile, error)
	ListByPostIDAndStatus(postID int64, status entity.UploadStatus) ([]*entity.UploadFile, error)
	// ListByStatusCreatedBefore pages TEMP rows by id so sweeps hold a
	// bounded number of rows at a time.
	ListByStatusCreatedBefore(status entity.UploadStatus, cutoff time.Time, afterID int64, limit int) ([]*entity.UploadFile, error)
	ListByStatusDeletedBefore(status entity.UploadStatus, cutoff time.Time, afterID int64, limit int) ([]*entity.UploadFile, error)
	SaveAll(files []*entity.UploadFile) error
	DeleteByIDs(ids []int64) error
}

type uploadFileRepository struct {
	db *gorm.DB
}

func NewUploadFileRepository(db *gorm.DB) UploadFileRepository {
	return &uploadFileRepository{db: db}
}

func (r *uploadFileRepository) Create(file *entity.UploadFile) error {
	fileModel := ToUploadFileModel(file)
	if err := r.db.Create(fileModel).Error; err != nil {
		return err
	}
	*file = *ToUploadFileEntity(fileModel)
	return nil
}

func (r *uploadFileRepository) GetByID(id int64) (*entity.UploadFile, error) {
	var fileModel model.UploadFileModel
	if err := r.db.Where("id = ?", id).First(&fileModel).Error; err != nil {
		return nil, err
	}
	return ToUploadFileEntity(&fileModel), nil
}

func (r *uploadFileRepository) ListByPostIDAndStatus(postID int64, status entity.UploadStatus) ([]*entity.UploadFile, error) {
	var fileModels []model.UploadFileModel
	err := r.db.
		Where("post_id = ? AND status = ?", postID, string(status)).
		Order("id ASC").
		Find(&fileModels).Error
	if err != nil {
		return nil, err
	}
	return toUploadFileEntities(fileModels), nil
}

func (r *uploadFileRepository) ListByStatusCreatedBefore(status entity.UploadStatus, cutoff time.Time, afterID int64, limit int) ([]*entity.UploadFile, error) {
	var fileModels []model.UploadFileModel
	err := r.db.
		Where("status = ? AND created_at < ? AND id > ?", string(status), cutoff, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&fileModels).Error
	if err != nil {
		return nil, err
	}
	return toUploadFileEntities(fileModels), nil
}

func (r *uploadFileRepository) ListByStatusDeletedBefore(status entity.UploadStatus, cutoff time.Time, afterID int64, limit int) ([]*entity.UploadFile, error) {
	var fileModels []model.UploadFileModel
	err := r.db.
		Where("status = ? AND deleted_at < ? AND id > ?", string(status), cutoff, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&fileModels).Error
	if err != nil {
		return nil, err
	}
	return toUploadFileEntities(fileModels), nil
}

func (r *uploadFileRepository) SaveAll(files []*entity.UploadFile) error {
	if len(files) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, file := range files {
			fileModel := ToUploadFileModel(file)
			if err := tx.Save(fileModel).Error; err != nil {
				return err
			}
			// Save skips nil columns; detaching must clear post_id.
			if fileModel.PostID == nil {
				err := tx.Model(&model.UploadFileModel{}).
					Where("id = ?", fileModel.ID).
					Update("post_id", nil).Error
				if err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func (r *uploadFileRepository) DeleteByIDs(ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&model.UploadFileModel{}, "id IN ?", ids).Error
}

func toUploadFileEntities(models []model.UploadFileModel) []*entity.UploadFile {
	files := make([]*entity.UploadFile, len(models))
	for i := range models {
		files[i] = ToUploadFileEntity(&models[i])
	}
	return files
}
