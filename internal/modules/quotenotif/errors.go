package quotenotif

import "errors"

var ErrNotificationNotFound = errors.New("quote notification not found")
