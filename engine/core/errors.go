package core

import "errors"

var (
	ErrProviderInit  = errors.New("core: provider init failed")
	ErrSurfaceCreate = errors.New("core: surface creation failed")
	ErrLoaderInit    = errors.New("core: graphics loader init failed")
	ErrTerminated    = errors.New("core: platform terminated")
	ErrWindowExists  = errors.New("core: a window is already open")
	ErrInvalidConfig = errors.New("core: invalid config")
)
