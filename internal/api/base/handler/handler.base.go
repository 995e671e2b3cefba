// Package basehdl chứa các handler xử lý request HTTP trong ứng dụng.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "aqua_commerce/internal/api/base/service"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
)

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"key",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// SetFilterOptions cho phép domain handler tùy chỉnh cấu hình validate filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) SetFilterOptions(opts FilterOptions) {
	h.filterOptions = opts
}

// validateInput thực hiện validate dữ liệu đầu vào với validator từ global
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// ParseRequestBody parse dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	if len(body) == 0 {
		return fmt.Errorf("request body rỗng")
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return err
	}
	return nil
}

// transformCreateInputToModel transform CreateInput (DTO) sang Model (T) qua JSON round-trip.
// DTO và Model dùng chung json tag nên các field trùng tên sẽ được map tự động.
func (h *BaseHandler[T, CreateInput, UpdateInput]) transformCreateInputToModel(input *CreateInput) (*T, error) {
	jsonBytes, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("lỗi transform DTO: %w", err)
	}
	model := new(T)
	if err := json.Unmarshal(jsonBytes, model); err != nil {
		return nil, fmt.Errorf("lỗi transform DTO sang model: %w", err)
	}
	return model, nil
}

// processFilter parse filter JSON từ query string và validate theo filterOptions
func (h *BaseHandler[T, CreateInput, UpdateInput]) processFilter(c fiber.Ctx) (map[string]interface{}, error) {
	filterStr := c.Query("filter", "")
	if filterStr == "" {
		return map[string]interface{}{}, nil
	}

	var filter map[string]interface{}
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(common.ErrCodeValidationInput, "Filter không đúng định dạng JSON", common.StatusBadRequest, err)
	}

	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return h.normalizeFilter(filter), nil
}

// validateFilter kiểm tra filter theo DeniedFields/AllowedOperators/MaxFields
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	if len(filter) > h.filterOptions.MaxFields {
		return common.NewError(
			common.ErrCodeValidationInput,
			fmt.Sprintf("Filter vượt quá %d field cho phép", h.filterOptions.MaxFields),
			common.StatusBadRequest,
			nil,
		)
	}

	for field, value := range filter {
		for _, denied := range h.filterOptions.DeniedFields {
			if strings.EqualFold(field, denied) {
				return common.NewError(
					common.ErrCodeValidationInput,
					fmt.Sprintf("Không được phép filter theo trường %s", field),
					common.StatusBadRequest,
					nil,
				)
			}
		}

		// Kiểm tra operator nếu value là map
		if valueMap, ok := value.(map[string]interface{}); ok {
			for op := range valueMap {
				if !strings.HasPrefix(op, "$") {
					continue
				}
				allowed := false
				for _, allowedOp := range h.filterOptions.AllowedOperators {
					if op == allowedOp {
						allowed = true
						break
					}
				}
				if !allowed {
					return common.NewError(
						common.ErrCodeValidationInput,
						fmt.Sprintf("Operator %s không được phép", op),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// normalizeFilter chuyển các giá trị _id dạng hex string thành ObjectID
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	for field, value := range filter {
		if field != "_id" && !strings.HasSuffix(field, "Id") {
			continue
		}
		if strValue, ok := value.(string); ok {
			if objID, err := primitive.ObjectIDFromHex(strValue); err == nil {
				filter[field] = objID
			}
		}
	}
	return filter
}

// ParsePagination lấy thông tin phân trang từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParsePagination(c fiber.Ctx) (int64, int64) {
	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		page = 1
	}

	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 10
	}

	return page, limit
}

// GetIDFromContext lấy ID từ URI params của request
func (h *BaseHandler[T, CreateInput, UpdateInput]) GetIDFromContext(c fiber.Ctx) string {
	return c.Params("id")
}
