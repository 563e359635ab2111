package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrNoFieldRecord = errors.New("no field record provided for requested kind")

	ErrEmptyPayload = errors.New("refusing to work with an empty payload")
)
