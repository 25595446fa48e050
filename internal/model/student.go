package model

// Student 学生表 — 对应 students
type Student struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Email    string `gorm:"type:varchar(255);not null;uniqueIndex:idx_students_email" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	BaseModel
}

// TableName 指定表名
func (Student) TableName() string { return "students" }
