package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
// 邮箱格式与密码最小长度在进入业务逻辑前校验
type LoginRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
