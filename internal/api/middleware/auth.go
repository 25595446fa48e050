package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"blog-school/backend/pkg/jwt"
	"blog-school/backend/pkg/response"
)

// JWTAuth JWT 认证中间件
// 从 Authorization 头中提取并验证会话令牌，把身份注入上下文
//
// 令牌取自头部按空格切分后的第二段（沿用原系统 split(' ')[1] 的行为）：
// 不校验 scheme 名称，缺少空格时取到空串并落入统一的无效令牌分支
func JWTAuth(jwtMgr *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "缺少认证头")
			c.Abort()
			return
		}

		var tokenString string
		if parts := strings.Split(authHeader, " "); len(parts) > 1 {
			tokenString = parts[1]
		}

		// 签名错误、载荷损坏与过期统一为同一种 401
		claims, err := jwtMgr.ParseToken(tokenString)
		if err != nil {
			response.Unauthorized(c, response.CodeUnauthorized, "Token 无效或已过期")
			c.Abort()
			return
		}

		// 身份字段逐项取自令牌载荷，不回查存储：
		// 已删除或被降权的用户在令牌过期前仍持有原有权限（沿用原系统行为）
		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("is_admin", claims.IsAdmin)

		c.Next()
	}
}

// RoleAuth 角色权限中间件
// 管理员无条件放行；否则要求当前角色属于允许集合
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, response.CodeUnauthorized, "未认证")
			c.Abort()
			return
		}

		if v, _ := c.Get("is_admin"); v != nil {
			if admin, ok := v.(bool); ok && admin {
				c.Next()
				return
			}
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, response.CodeForbidden, "无权限访问")
		c.Abort()
	}
}

// AdminOnly 仅管理员中间件
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("is_admin")
		if !exists {
			response.Unauthorized(c, response.CodeUnauthorized, "未认证")
			c.Abort()
			return
		}

		if admin, ok := isAdmin.(bool); !ok || !admin {
			response.Forbidden(c, response.CodeForbidden, "仅管理员可以访问")
			c.Abort()
			return
		}

		c.Next()
	}
}
