package service

import (
	"github.com/taskdeck/taskdeck/internal/adapter"
	"github.com/taskdeck/taskdeck/internal/logger"
	"github.com/taskdeck/taskdeck/internal/store"
)

// ClientServices bundles every client-side service behind one value.
type ClientServices struct {
	AuthService ClientAuthService
	TaskService ClientTaskService
	SessionJob  SessionCheckJob
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(localStore, serverAdapter, log),
		TaskService: NewClientTaskService(serverAdapter, log),
		SessionJob:  NewSessionCheckJob(serverAdapter, log),
	}
}
