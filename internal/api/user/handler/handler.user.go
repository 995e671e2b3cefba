// Package userhdl chứa HTTP handler cho domain user.
package userhdl

import (
	"fmt"

	basehdl "aqua_commerce/internal/api/base/handler"
	userdto "aqua_commerce/internal/api/user/dto"
	usermodels "aqua_commerce/internal/api/user/models"
	usersvc "aqua_commerce/internal/api/user/service"
)

// UserHandler xử lý các request liên quan đến khách hàng
type UserHandler struct {
	basehdl.BaseHandler[usermodels.User, userdto.UserCreateInput, userdto.UserUpdateInput]
	UserService *usersvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := usersvc.NewUserService()
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[usermodels.User, userdto.UserCreateInput, userdto.UserUpdateInput](userService)
	h := &UserHandler{
		BaseHandler: *baseHandler,
		UserService: userService,
	}
	return h, nil
}
