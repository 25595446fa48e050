package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ── 角色常量 ──
// 角色只有两种；管理员不是角色，而是教师记录上的 is_admin 标记
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)
