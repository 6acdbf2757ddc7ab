package bindfeed

import "errors"

var (
	ErrOutboxClosed  = errors.New("outbox is closed")
	ErrUnknownFormat = errors.New("unknown frame format")
	// ErrFrameGap is returned by Replica when a frame does not directly follow the previous one.
	ErrFrameGap = errors.New("frame sequence gap")
	// ErrDiverged is returned by Replica when its size no longer matches the frame's count.
	ErrDiverged = errors.New("replica diverged from source")
)
