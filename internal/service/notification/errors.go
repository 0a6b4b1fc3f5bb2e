package notification

import "errors"

var ErrMissingPackageID = errors.New("package id is required")
