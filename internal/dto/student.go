package dto

// ── 学生模块 DTO ──

// CreateStudentRequest 创建学生请求（仅管理员）
type CreateStudentRequest struct {
	Name     string `json:"name"     binding:"required,min=3"`
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateStudentRequest 更新学生请求（仅管理员）
type UpdateStudentRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=3"`
	Email *string `json:"email" binding:"omitempty,email"`
}

// StudentResponse 学生信息响应（脱敏）
type StudentResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ImportStudentResponse 批量导入结果
type ImportStudentResponse struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors,omitempty"`
}

// ImportRowError 单行导入失败信息
type ImportRowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}
