// Package ordersvc chứa service data access cho domain order.
package ordersvc

import (
	"context"
	"fmt"

	basesvc "aqua_commerce/internal/api/base/service"
	ordermodels "aqua_commerce/internal/api/order/models"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
)

// OrderService là service quản lý đơn giao nước (CRUD).
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
	}, nil
}

// InsertOne tạo mới đơn hàng với các giá trị mặc định:
// quantity thiếu = 1 bình (payload kiểu cũ lấy theo items[0].quantity),
// status thiếu = pending, total = quantity * đơn giá.
func (s *OrderService) InsertOne(ctx context.Context, data ordermodels.Order) (ordermodels.Order, error) {
	if data.Quantity <= 0 {
		data.Quantity = data.JarCount()
	}
	if data.Status == "" {
		data.Status = ordermodels.StatusPending
	}
	if data.Total <= 0 {
		data.Total = data.Quantity * ordermodels.JarUnitPrice
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}
