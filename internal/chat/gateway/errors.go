package gateway

import "errors"

var (
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrEmptyReply  = errors.New("upstream returned an empty reply")
)
