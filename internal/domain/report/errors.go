package report

import "errors"

var ErrInvalidRange = errors.New("from must be before to")
