package dto

// ── 教师模块 DTO ──

// CreateTeacherRequest 创建教师请求（仅管理员）
type CreateTeacherRequest struct {
	Name     string `json:"name"     binding:"required,min=3"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	IsAdmin  bool   `json:"is_admin"`
}

// UpdateTeacherRequest 更新教师请求（仅管理员）
// 原系统的更新接口不修改密码
type UpdateTeacherRequest struct {
	Name    *string `json:"name"     binding:"omitempty,min=3"`
	Email   *string `json:"email"    binding:"omitempty,email"`
	IsAdmin *bool   `json:"is_admin"`
}

// TeacherResponse 教师信息响应（脱敏）
type TeacherResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
