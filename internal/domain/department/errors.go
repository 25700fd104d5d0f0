package department

import "errors"

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentNotEmpty = errors.New("department still has employees assigned")
	ErrNameExists         = errors.New("department name already exists")
)
