// Package middleware chứa các middleware xác thực cho API admin.
package middleware

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"aqua_commerce/internal/common"
	"aqua_commerce/internal/global"
	"aqua_commerce/internal/logger"
	"aqua_commerce/internal/utility"
)

// adminCacheTTL là thời gian cache kết quả kiểm tra isAdmin theo uid
const adminCacheTTL = 5 * time.Minute

type adminCacheEntry struct {
	isAdmin   bool
	userIDHex string
	expiresAt time.Time
}

// AuthManager quản lý xác thực Firebase và kiểm tra quyền quản trị
type AuthManager struct {
	cache   map[string]adminCacheEntry
	cacheMu sync.Mutex
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		authManagerInstance = &AuthManager{
			cache: make(map[string]adminCacheEntry),
		}
	})
	return authManagerInstance
}

// lookupUser tìm user theo firebase uid trong collection users.
// Trả về (userIdHex, isAdmin, error).
func (am *AuthManager) lookupUser(ctx context.Context, uid string) (string, bool, error) {
	am.cacheMu.Lock()
	if entry, ok := am.cache[uid]; ok && time.Now().Before(entry.expiresAt) {
		am.cacheMu.Unlock()
		return entry.userIDHex, entry.isAdmin, nil
	}
	am.cacheMu.Unlock()

	col, exists := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exists {
		return "", false, common.ErrConnection
	}

	var doc struct {
		ID      primitive.ObjectID `bson:"_id"`
		IsAdmin bool               `bson:"isAdmin"`
	}
	err := col.FindOne(ctx, bson.M{"uid": uid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, common.ErrUserNotFound
		}
		return "", false, common.ConvertMongoError(err)
	}

	userIDHex := doc.ID.Hex()

	am.cacheMu.Lock()
	am.cache[uid] = adminCacheEntry{
		isAdmin:   doc.IsAdmin,
		userIDHex: userIDHex,
		expiresAt: time.Now().Add(adminCacheTTL),
	}
	am.cacheMu.Unlock()

	return userIDHex, doc.IsAdmin, nil
}

// InvalidateUser xóa cache quyền của một uid (gọi khi cập nhật isAdmin)
func (am *AuthManager) InvalidateUser(uid string) {
	am.cacheMu.Lock()
	delete(am.cache, uid)
	am.cacheMu.Unlock()
}

// authError trả về JSON error response theo format chuẩn của ứng dụng
func authError(c fiber.Ctx, err error) error {
	customErr, ok := err.(*common.Error)
	if !ok {
		customErr = common.NewError(common.ErrCodeAuth, err.Error(), common.StatusUnauthorized, nil).(*common.Error)
	}
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(customErr.StatusCode).JSON(fiber.Map{
		"code":    customErr.Code.Code,
		"message": customErr.Message,
		"status":  "error",
	})
}

// AuthMiddleware xác thực Firebase ID token từ header Authorization (Bearer).
// Nếu requireAdmin=true, user phải có isAdmin=true trong collection users.
// Sau khi xác thực, lưu firebase_uid và user_id vào Locals cho handler phía sau.
func AuthMiddleware(requireAdmin bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return authError(c, common.ErrTokenMissing)
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return authError(c, common.ErrTokenInvalid)
		}

		token, err := utility.VerifyIDToken(c.Context(), parts[1])
		if err != nil {
			logger.GetAppLogger().WithError(err).Warn("Xác thực Firebase ID token thất bại")
			return authError(c, common.ErrTokenInvalid)
		}

		am := GetAuthManager()
		userIDHex, isAdmin, err := am.lookupUser(c.Context(), token.UID)
		if err != nil {
			return authError(c, err)
		}

		if requireAdmin && !isAdmin {
			logger.GetAuditLogger().WithField("uid", token.UID).Warn("Từ chối truy cập: user không có quyền quản trị")
			return authError(c, common.ErrNotAdmin)
		}

		c.Locals("firebase_uid", token.UID)
		c.Locals("user_id", userIDHex)
		c.Locals("is_admin", isAdmin)
		return c.Next()
	}
}
