package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs means the remote store settings are unusable,
	// such as a missing HTTP address or zero request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs means the replica cache path is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs means an application-level setting the client
	// needs is missing, such as the transport hash key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs means the deferred sync drain interval is zero.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
