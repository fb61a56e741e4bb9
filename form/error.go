package form

import "errors"

var ErrNotText = errors.New("body is not valid text")
