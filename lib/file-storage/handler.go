package filestorage

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"recruitment-backend/config"
	"recruitment-backend/db"
	filesdbstorage "recruitment-backend/lib/file-storage/store"
	dbmodels "recruitment-backend/models/db"
	s3client "recruitment-backend/s3"
)

type Provider interface {
	UploadResume(ctx context.Context, applicantID string, file []byte, fileName, contentType string) error
	GetResume(ctx context.Context, applicantID string) (body []byte, fileName string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3client: s3client.Client,
		store:    filesdbstorage.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filesdbstorage.Provider
}

func (i impl) UploadResume(ctx context.Context, applicantID string, file []byte, fileName, contentType string) error {
	logger := log.WithField("applicant_id", applicantID).WithField("file_name", fileName)
	rec := dbmodels.FileStorage{
		Name:        fileName,
		ApplicantID: applicantID,
		Type:        dbmodels.ApplicantResume,
		ContentType: contentType,
	}
	fileID, err := i.store.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения сведений о файле резюме")
		return errors.New("ошибка сохранения резюме")
	}
	_, err = i.s3client.PutObject(ctx, config.Conf.S3.BucketName, fileID,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки файла резюме в хранилище")
		return errors.New("ошибка сохранения резюме")
	}
	return nil
}

func (i impl) GetResume(ctx context.Context, applicantID string) (body []byte, fileName string, err error) {
	logger := log.WithField("applicant_id", applicantID)
	rec, err := i.store.GetFileByType(applicantID, dbmodels.ApplicantResume)
	if err != nil {
		logger.WithError(err).Error("ошибка получения сведений о файле резюме")
		return nil, "", errors.New("ошибка получения резюме")
	}
	if rec == nil {
		return nil, "", errors.New("резюме не найдено")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ID, minio.GetObjectOptions{})
	if err != nil {
		logger.WithError(err).Error("ошибка получения файла резюме из хранилища")
		return nil, "", errors.New("ошибка получения резюме")
	}
	defer object.Close()
	body, err = io.ReadAll(object)
	if err != nil {
		logger.WithError(err).Error("ошибка чтения файла резюме из хранилища")
		return nil, "", errors.New("ошибка получения резюме")
	}
	return body, rec.Name, nil
}
