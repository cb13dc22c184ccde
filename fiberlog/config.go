package fiberlog

import "github.com/sirupsen/logrus"

// Config настройки журналирования запросов api отбора
type Config struct {
	Logger *logrus.Logger
	Tags   []string
}

// ConfigDefault набор полей, который собирает инициализатор логгера
var ConfigDefault Config = Config{
	Logger: nil,
	Tags: []string{
		TagBody,
		TagResBody,
		TagMethod,
		TagPath,
		TagStatus,
		RequestID,
	},
}
