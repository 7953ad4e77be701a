package service

import (
	"github.com/MKhiriev/go-translator/internal/logger"
	"github.com/MKhiriev/go-translator/internal/store"
)

// Services groups the business operations exposed over gRPC.
type Services struct {
	TranslatorService TranslatorService
	ShutdownService   ShutdownService
}

// NewServices wires every service over its dependencies. Each service gets
// its own child of logger.
func NewServices(dictionary store.Dictionary, requester ShutdownRequester, logger *logger.Logger) *Services {
	return &Services{
		TranslatorService: NewTranslatorService(dictionary, logger.GetChildLogger()),
		ShutdownService:   NewShutdownService(requester, logger.GetChildLogger()),
	}
}
