package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/service"
	"blog-school/backend/pkg/response"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login 用户登录
// POST /api/v1/auth/login
//
// 登出没有服务端接口：令牌到期前一直有效，客户端删除本地令牌即完成登出
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败：邮箱格式或密码长度不符合要求")
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.Error(c, http.StatusUnauthorized, response.CodeAuthFailed, "用户不存在")
		case errors.Is(err, service.ErrWrongPassword):
			response.Error(c, http.StatusUnauthorized, response.CodeAuthFailed, "密码错误")
		case errors.Is(err, service.ErrServerMisconfigured):
			response.Error(c, http.StatusInternalServerError, response.CodeMisconfigured, "服务端配置缺失")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
