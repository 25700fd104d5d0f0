package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrEmailExists            = errors.New("email already registered")
	ErrUserInactive           = errors.New("user account is deactivated")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
	ErrWrongCurrentPassword   = errors.New("current password is incorrect")
)
