package assistant

import "errors"

var (
	ErrEmptyMessage          = errors.New("message text is empty")
	ErrMissingConversationID = errors.New("conversation id is required")
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrDuplicateMessage      = errors.New("message already stored")
	ErrInvalidRetention      = errors.New("retention must be positive")
)
