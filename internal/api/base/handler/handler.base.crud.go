package basehdl

// Base CRUD handlers: parse request → validate → transform → gọi BaseService.

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"aqua_commerce/internal/common"
)

// InsertOne thêm mới một document vào database.
// Dữ liệu được parse từ request body (DTO CreateInput) và transform sang Model trước khi thêm vào DB.
func (h *BaseHandler[T, CreateInput, UpdateInput]) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input CreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON hoặc không khớp với cấu trúc yêu cầu. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		model, err := h.transformCreateInputToModel(&input)
		if err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Lỗi transform dữ liệu: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		data, err := h.BaseService.InsertOne(c.Context(), *model)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOne tìm một document theo điều kiện filter (query string `filter` dạng JSON).
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.FindOne(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindOneById tìm một document theo ObjectID trong URI params.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
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

		data, err := h.BaseService.FindOneById(c.Context(), id)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// Find tìm tất cả document theo điều kiện filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.Find(c.Context(), filter, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// FindWithPagination tìm document theo filter với phân trang (query `page`, `limit`).
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, limit := h.ParsePagination(c)
		data, err := h.BaseService.FindWithPagination(c.Context(), filter, page, limit, nil)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// UpdateById cập nhật một document theo ObjectID với dữ liệu từ body (DTO UpdateInput).
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
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

		var input UpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
				common.StatusBadRequest,
				err,
			))
			return nil
		}

		if err := h.validateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		data, err := h.BaseService.UpdateById(c.Context(), id, &input)
		h.HandleResponse(c, data, err)
		return nil
	})
}

// DeleteById xóa một document theo ObjectID.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
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

		err = h.BaseService.DeleteById(c.Context(), id)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// CountDocuments đếm số document theo điều kiện filter.
func (h *BaseHandler[T, CreateInput, UpdateInput]) CountDocuments(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		count, err := h.BaseService.CountDocuments(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"count": count}, err)
		return nil
	})
}

// DocumentExists kiểm tra document có tồn tại theo điều kiện filter không.
func (h *BaseHandler[T, CreateInput, UpdateInput]) DocumentExists(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter, err := h.processFilter(c)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		exists, err := h.BaseService.DocumentExists(c.Context(), filter)
		h.HandleResponse(c, fiber.Map{"exists": exists}, err)
		return nil
	})
}
