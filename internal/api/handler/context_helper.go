package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"blog-school/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return 0, false
	}
	id, ok := v.(int64)
	if !ok || id == 0 {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return 0, false
	}
	return id, true
}

// MustGetIsAdmin 从 Gin 上下文中安全提取 is_admin。
func MustGetIsAdmin(c *gin.Context) (bool, bool) {
	v, exists := c.Get("is_admin")
	if !exists {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return false, false
	}
	admin, ok := v.(bool)
	if !ok {
		response.Unauthorized(c, response.CodeUnauthorized, "未认证")
		return false, false
	}
	return admin, true
}

// parseIDParam 解析路径参数 :id，非正整数时写入 400 响应并返回 false
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, response.CodeInvalidParams, "无效的资源 ID")
		return 0, false
	}
	return id, true
}
