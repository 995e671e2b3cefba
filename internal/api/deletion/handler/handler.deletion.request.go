// Package deletionhdl chứa HTTP handler cho domain deletion.
package deletionhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "aqua_commerce/internal/api/base/handler"
	deletiondto "aqua_commerce/internal/api/deletion/dto"
	deletionmodels "aqua_commerce/internal/api/deletion/models"
	deletionsvc "aqua_commerce/internal/api/deletion/service"
	"aqua_commerce/internal/common"
)

// DeletionRequestHandler xử lý các request liên quan đến yêu cầu xóa tài khoản
type DeletionRequestHandler struct {
	basehdl.BaseHandler[deletionmodels.DeletionRequest, deletiondto.DeletionRequestCreateInput, deletiondto.DeletionRequestUpdateInput]
	DeletionService *deletionsvc.DeletionRequestService
}

// NewDeletionRequestHandler tạo mới DeletionRequestHandler
func NewDeletionRequestHandler() (*DeletionRequestHandler, error) {
	deletionService, err := deletionsvc.NewDeletionRequestService()
	if err != nil {
		return nil, fmt.Errorf("failed to create deletion request service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[deletionmodels.DeletionRequest, deletiondto.DeletionRequestCreateInput, deletiondto.DeletionRequestUpdateInput](deletionService)
	return &DeletionRequestHandler{
		BaseHandler:     *baseHandler,
		DeletionService: deletionService,
	}, nil
}

// handleStatusChange xử lý chung cho duyệt/từ chối yêu cầu
func (h *DeletionRequestHandler) handleStatusChange(c fiber.Ctx, approve bool) error {
	return h.SafeHandler(c, func() error {
		id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"ID không hợp lệ",
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		adminUID, _ := c.Locals("firebase_uid").(string)

		var data deletionmodels.DeletionRequest
		if approve {
			data, err = h.DeletionService.Approve(c.Context(), id, adminUID)
		} else {
			data, err = h.DeletionService.Reject(c.Context(), id, adminUID)
		}
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Approve duyệt yêu cầu xóa tài khoản
func (h *DeletionRequestHandler) Approve(c fiber.Ctx) error {
	return h.handleStatusChange(c, true)
}

// Reject từ chối yêu cầu xóa tài khoản
func (h *DeletionRequestHandler) Reject(c fiber.Ctx) error {
	return h.handleStatusChange(c, false)
}
