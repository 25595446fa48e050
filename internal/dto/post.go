package dto

// ── 文章模块 DTO ──

// CreatePostRequest 创建文章请求（仅教师）
// 作者信息取自当前身份，不接受请求体指定
type CreatePostRequest struct {
	Title   string `json:"title"   binding:"required,min=5"`
	Content string `json:"content" binding:"required,min=10"`
}

// UpdatePostRequest 更新文章请求（作者本人或管理员）
type UpdatePostRequest struct {
	Title   string `json:"title"   binding:"required,min=5"`
	Content string `json:"content" binding:"required,min=10"`
}

// PostListRequest 文章列表查询参数
type PostListRequest struct {
	PaginationRequest
}

// PostResponse 文章响应
type PostResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorID   int64  `json:"author_id"`
	AuthorName string `json:"author_name"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
