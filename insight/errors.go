package insight

import "errors"

// ErrEmptyMessage is returned when the advisor is asked to classify a blank
// message.
var ErrEmptyMessage = errors.New("message is required")
