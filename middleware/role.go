package middleware

import (
	"context"
	"errors"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// errNotAdmin rejects identities whose user record lacks the admin role.
var errNotAdmin = errors.New("caller is not an admin")

// AdminGuard checks that the verified identity maps to a user record carrying
// the admin role. Role lookups go through the Redis auth cache when it is
// available and fall back to the database on a miss or cache outage.
type AdminGuard struct {
	Users userRepo.UserRepository
	Cache *redis.Client
}

// NewAdminGuard builds the guard with the shared auth cache client.
func NewAdminGuard(users userRepo.UserRepository) *AdminGuard {
	return &AdminGuard{Users: users, Cache: utils.GetAuthCacheClient()}
}

func (g *AdminGuard) Check(c *gin.Context, identity string) error {
	role, err := g.lookupRole(identity)
	if err != nil {
		return err
	}
	if role != models.RoleAdmin {
		return errNotAdmin
	}
	return nil
}

func (g *AdminGuard) lookupRole(email string) (string, error) {
	ctx := context.Background()
	cacheKey := utils.RoleCachePrefix + email

	if g.Cache != nil {
		role, err := g.Cache.Get(ctx, cacheKey).Result()
		if err == nil {
			return role, nil
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("Role cache lookup failed, falling back to DB",
				zap.String("email", email), zap.Error(err))
		}
	}

	usr, err := g.Users.GetByEmail(email)
	if err != nil {
		return "", err
	}
	if usr == nil {
		return "", errNotAdmin
	}

	if g.Cache != nil {
		if err := g.Cache.Set(ctx, cacheKey, usr.Role, utils.RoleCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("Failed to populate role cache",
				zap.String("email", email), zap.Error(err))
		}
	}
	return usr.Role, nil
}

// InvalidateRoleCache drops the cached role for an email, e.g. after an
// admin grant.
func InvalidateRoleCache(email string) {
	cache := utils.GetAuthCacheClient()
	if cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = cache.Del(ctx, utils.RoleCachePrefix+email).Err()
}
