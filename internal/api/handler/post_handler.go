package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/service"
	"blog-school/backend/pkg/response"
)

// PostHandler 文章模块 HTTP 处理器
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler 创建 PostHandler
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// List 文章列表（公开）
// GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	var req dto.PostListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "分页参数无效")
		return
	}

	list, total, err := h.postSvc.List(c.Request.Context(), &req.PaginationRequest)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, req.GetPage(), req.GetPageSize())
}

// Get 文章详情（公开）
// GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.postSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, response.CodeNotFound, "文章不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create 创建文章（仅教师；作者取自令牌身份）
// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败：标题至少 5 个字符，内容至少 10 个字符")
		return
	}

	result, err := h.postSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.NotFound(c, response.CodeNotFound, "教师不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Update 编辑文章（作者本人或管理员）
// PUT /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	isAdmin, ok := MustGetIsAdmin(c)
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败：标题至少 5 个字符，内容至少 10 个字符")
		return
	}

	result, err := h.postSvc.Update(c.Request.Context(), id, &req, callerID, isAdmin)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			response.NotFound(c, response.CodeNotFound, "文章不存在")
		case errors.Is(err, service.ErrNotPostOwner):
			response.Forbidden(c, response.CodeForbidden, "仅作者或管理员可以编辑该文章")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除文章（作者本人或管理员）
// DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	isAdmin, ok := MustGetIsAdmin(c)
	if !ok {
		return
	}

	if err := h.postSvc.Delete(c.Request.Context(), id, callerID, isAdmin); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			response.NotFound(c, response.CodeNotFound, "文章不存在")
		case errors.Is(err, service.ErrNotPostOwner):
			response.Forbidden(c, response.CodeForbidden, "仅作者或管理员可以删除该文章")
		default:
			response.InternalError(c)
		}
		return
	}

	response.NoContent(c)
}
