package model

// Teacher 教师表 — 对应 teachers
// 密码明文存储是沿用原系统的已知缺陷，见 README「与生产实践的偏差」
type Teacher struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"              json:"id"`
	Name     string `gorm:"type:varchar(100);not null"            json:"name"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_teachers_email" json:"email"`
	Password string `gorm:"type:varchar(255);not null"            json:"-"`
	IsAdmin  bool   `gorm:"not null;default:false"                json:"is_admin"`
	BaseModel
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }
