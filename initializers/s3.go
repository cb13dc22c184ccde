package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	s3client "recruitment-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("Ошибка инициализации клиента S3")
		return
	}

	// Проверка соединения
	err = s3client.MakeBucket(context.Background(), minioClient)
	if err != nil {
		log.WithError(err).Error("S3 соединение не удалось, бакет не создан")
	}

	s3client.Client = minioClient
	log.Info("S3 клиент успешно инициализирован")
}
