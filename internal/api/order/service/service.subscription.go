package ordersvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "aqua_commerce/internal/api/base/service"
	ordermodels "aqua_commerce/internal/api/order/models"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
)

// SubscriptionService là service quản lý gói giao nước định kỳ.
type SubscriptionService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Subscription]
}

// NewSubscriptionService tạo mới SubscriptionService
func NewSubscriptionService() (*SubscriptionService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscriptions)
	if !exist {
		return nil, fmt.Errorf("failed to get subscriptions collection: %v", common.ErrNotFound)
	}

	return &SubscriptionService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Subscription](collection),
	}, nil
}

// FindActiveByUser tìm các gói còn hiệu lực của một khách hàng
func (s *SubscriptionService) FindActiveByUser(ctx context.Context, userID primitive.ObjectID) ([]ordermodels.Subscription, error) {
	return s.Find(ctx, bson.M{"userId": userID, "active": true}, nil)
}
