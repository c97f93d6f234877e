package public

import (
	handlershared "github.com/modahaus-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getUserID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUintWithKeys(c, "user_id", "error.user_id_invalid", "error.user_id_type_invalid")
}

func getUserRole(c *gin.Context) string {
	role, _ := handlershared.GetContextString(c, "user_role")
	return role
}

// optionalUserID 读取可选登录态的用户 ID，未登录时返回 0。
func optionalUserID(c *gin.Context) uint {
	value, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	if id, ok := value.(uint); ok {
		return id
	}
	return 0
}
