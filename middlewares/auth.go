package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"backend/entity"
	"backend/utils"
)

// AuthMiddleware checks the bearer token and (when given) enforces roles.
// The account is re-fetched on every request so tokens for deleted or
// rejected accounts stop working immediately.
func AuthMiddleware(db *gorm.DB, secret string, requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		if !accountExists(db, claims.Role, claims.UserID) {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "user not found"})
			c.Abort()
			return
		}

		c.Set(utils.CtxUserID, claims.UserID)
		c.Set(utils.CtxRole, claims.Role)

		if len(requiredRoles) > 0 {
			allowed := false
			for _, r := range requiredRoles {
				if claims.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func accountExists(db *gorm.DB, role string, id uint) bool {
	var count int64
	switch role {
	case "pilot":
		db.Model(&entity.Pilot{}).Where("id = ?", id).Count(&count)
	case "editor":
		db.Model(&entity.Editor{}).Where("id = ?", id).Count(&count)
	default:
		db.Model(&entity.User{}).Where("id = ?", id).Count(&count)
	}
	return count > 0
}
