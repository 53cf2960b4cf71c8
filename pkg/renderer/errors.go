package renderer

import "errors"

var (
	ErrSceneNotDefined        = errors.New("renderer: no scene defined")
	ErrInterrupted            = errors.New("renderer: interrupted while rendering")
	ErrInvalidDimensions      = errors.New("renderer: frame dimensions must be positive")
	ErrInvalidSampleCount     = errors.New("renderer: sample count must be at least 1")
	ErrInvalidReflectionLimit = errors.New("renderer: reflection limit must not be negative")
	ErrInvalidTileSize        = errors.New("renderer: tile size must be positive")
	ErrUnknownBackend         = errors.New("renderer: unknown backend")
	ErrTilePanic              = errors.New("renderer: panic while rendering tile")
)
