package commons

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicate = errors.New("Record already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
