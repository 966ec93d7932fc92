package tui

import "github.com/taskdeck/taskdeck/models"

// sessionRestoredMsg finishes the startup loading state.
type sessionRestoredMsg struct {
	session models.Session
	err     error
}

// authDoneMsg reports a successful login or registration.
type authDoneMsg struct {
	session models.Session
}

// authFailedMsg reports a failed login or registration attempt.
type authFailedMsg struct {
	err error
}

type tasksLoadedMsg struct {
	buckets []models.TaskBucket
	err     error
}

type taskSavedMsg struct {
	err error
}

type taskDeletedMsg struct {
	err error
}

type loggedOutMsg struct{}

type copiedMsg struct{}

type clearStatusMsg struct{}
