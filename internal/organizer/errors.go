package organizer

import "errors"

var ErrEventNotFound = errors.New("organizer event not found")
