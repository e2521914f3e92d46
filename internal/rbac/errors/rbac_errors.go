package rbacerrors

import (
	"net/http"

	"go-agency/internal/shared/apperror"
)

var (
	ErrInvalidAgencyID   = apperror.New(apperror.CodeInvalidInput, "Invalid agency ID", http.StatusBadRequest)
	ErrInvalidRoleID     = apperror.New(apperror.CodeInvalidInput, "Invalid role ID", http.StatusBadRequest)
	ErrInvalidUserID     = apperror.New(apperror.CodeInvalidInput, "Invalid user ID", http.StatusBadRequest)
	ErrUnknownPermission = apperror.New(apperror.CodeInvalidInput, "One or more permissions do not exist", http.StatusBadRequest)

	ErrRoleNotFound  = apperror.New(apperror.CodeNotFound, "Role not found", http.StatusNotFound)
	ErrRoleNameTaken = apperror.New(apperror.CodeConflict, "Role name already exists in this agency", http.StatusConflict)
	ErrRoleInUse     = apperror.New(apperror.CodeConflict, "Role is still assigned to users", http.StatusConflict)
)
