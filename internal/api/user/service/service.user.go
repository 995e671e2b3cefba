// Package usersvc chứa service data access cho domain user.
// File: service.user.go - theo cấu trúc service.<domain>.go.
package usersvc

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "aqua_commerce/internal/api/base/service"
	usermodels "aqua_commerce/internal/api/user/models"
	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
)

// UserService là service quản lý khách hàng (CRUD + sinh mã khách hàng).
type UserService struct {
	*basesvc.BaseServiceMongoImpl[usermodels.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[usermodels.User](collection),
	}, nil
}

// newCustomerCode sinh mã khách hàng dạng KH-XXXXXXXX từ uuid
func newCustomerCode() string {
	id := uuid.NewString()
	return "KH-" + strings.ToUpper(strings.ReplaceAll(id, "-", "")[:8])
}

// InsertOne tạo mới user, tự động gán customerCode nếu chưa có
func (s *UserService) InsertOne(ctx context.Context, data usermodels.User) (usermodels.User, error) {
	if data.CustomerCode == "" {
		data.CustomerCode = newCustomerCode()
	}
	return s.BaseServiceMongoImpl.InsertOne(ctx, data)
}

// FindByUID tìm user theo Firebase UID
func (s *UserService) FindByUID(ctx context.Context, uid string) (usermodels.User, error) {
	return s.FindOne(ctx, bson.M{"uid": uid}, nil)
}

// SetAdmin cập nhật quyền quản trị cho user theo Firebase UID
func (s *UserService) SetAdmin(ctx context.Context, uid string, isAdmin bool) (usermodels.User, error) {
	return s.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": bson.M{"isAdmin": isAdmin}}, nil)
}
