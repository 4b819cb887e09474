package combat

import "errors"

// Errors returned by session operations. None of them leave the session
// modified: every check runs before the first write.
var (
	ErrNotActive            = errors.New("combat session is not active")
	ErrUnknownEnemy         = errors.New("unknown enemy")
	ErrUnknownAction        = errors.New("unknown action")
	ErrOnCooldown           = errors.New("action on cooldown")
	ErrInsufficientResource = errors.New("insufficient resources")
	ErrBusy                 = errors.New("combat session is resolving another request")
	ErrSessionInProgress    = errors.New("a combat session is already in progress")
	ErrPlayerDestroyed      = errors.New("player ship is destroyed")
)
