// Package deletionsvc chứa service data access cho domain deletion.
package deletionsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "aqua_commerce/internal/api/base/service"
	deletionmodels "aqua_commerce/internal/api/deletion/models"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
)

// DeletionRequestService là service quản lý yêu cầu xóa tài khoản.
type DeletionRequestService struct {
	*basesvc.BaseServiceMongoImpl[deletionmodels.DeletionRequest]
}

// NewDeletionRequestService tạo mới DeletionRequestService
func NewDeletionRequestService() (*DeletionRequestService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.DeletionRequests)
	if !exist {
		return nil, fmt.Errorf("failed to get account_deletion_requests collection: %v", common.ErrNotFound)
	}

	return &DeletionRequestService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[deletionmodels.DeletionRequest](collection),
	}, nil
}

// InsertOne tạo mới yêu cầu xóa tài khoản, mặc định status = pending
func (s *DeletionRequestService) InsertOne(ctx context.Context, data deletionmodels.DeletionRequest) (deletionmodels.DeletionRequest, error) {
	if data.Status == "" {
		data.Status = deletionmodels.RequestPending
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// setStatus chuyển trạng thái yêu cầu và ghi audit log.
// Chỉ yêu cầu đang pending mới được duyệt/từ chối.
func (s *DeletionRequestService) setStatus(ctx context.Context, id primitive.ObjectID, adminUID string, status string) (deletionmodels.DeletionRequest, error) {
	existing, err := s.FindOneById(ctx, id)
	if err != nil {
		return deletionmodels.DeletionRequest{}, err
	}
	if existing.Status != deletionmodels.RequestPending {
		return deletionmodels.DeletionRequest{}, common.ErrInvalidState
	}

	updated, err := s.UpdateById(ctx, id, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return deletionmodels.DeletionRequest{}, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"requestId": id.Hex(),
		"adminUid":  adminUID,
		"status":    status,
	}).Info("Cập nhật trạng thái yêu cầu xóa tài khoản")
	return updated, nil
}

// Approve duyệt yêu cầu xóa tài khoản
func (s *DeletionRequestService) Approve(ctx context.Context, id primitive.ObjectID, adminUID string) (deletionmodels.DeletionRequest, error) {
	return s.setStatus(ctx, id, adminUID, deletionmodels.RequestApproved)
}

// Reject từ chối yêu cầu xóa tài khoản
func (s *DeletionRequestService) Reject(ctx context.Context, id primitive.ObjectID, adminUID string) (deletionmodels.DeletionRequest, error) {
	return s.setStatus(ctx, id, adminUID, deletionmodels.RequestRejected)
}
