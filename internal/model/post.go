package model

// Post 文章表 — 对应 posts
// AuthorID 为对 teachers 的弱引用：教师删除后文章保留，不做级联
// AuthorName 为冗余字段，创建时从教师记录快照
type Post struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"   json:"id"`
	Title      string `gorm:"type:varchar(255);not null" json:"title"`
	Content    string `gorm:"type:text;not null"         json:"content"`
	AuthorID   int64  `gorm:"not null;index:idx_posts_author_id" json:"author_id"`
	AuthorName string `gorm:"type:varchar(100);not null" json:"author_name"`
	BaseModel
}

// TableName 指定表名
func (Post) TableName() string { return "posts" }
