package domain

import "errors"

var (
	// ErrConfig marks a missing, unreadable or invalid configuration file.
	ErrConfig = errors.New("configuration error")
	// ErrPrivilege marks a run that needs root but does not have it.
	ErrPrivilege = errors.New("insufficient privilege")
	// ErrMissingCredentials is returned by the notifier when the bot token or chat id is empty.
	ErrMissingCredentials = errors.New("missing telegram bot token or chat id")
	// ErrDispatch marks a message the chat API did not accept.
	ErrDispatch = errors.New("dispatch failed")
	// ErrSensorUnavailable is returned when no temperature source can be read.
	ErrSensorUnavailable = errors.New("temperature sensor unavailable")
)
