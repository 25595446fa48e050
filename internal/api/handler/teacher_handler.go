package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/service"
	"blog-school/backend/pkg/response"
)

// TeacherHandler 教师管理 HTTP 处理器（路由层已限定仅管理员）
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler 创建 TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// List 教师列表
// GET /api/v1/teachers
func (h *TeacherHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "分页参数无效")
		return
	}

	list, total, err := h.teacherSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// Get 教师详情
// GET /api/v1/teachers/:id
func (h *TeacherHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.teacherSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.NotFound(c, response.CodeNotFound, "教师不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create 创建教师
// POST /api/v1/teachers
func (h *TeacherHandler) Create(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	result, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			response.Error(c, http.StatusConflict, response.CodeInvalidParams, "邮箱已被占用")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Update 更新教师
// PUT /api/v1/teachers/:id
func (h *TeacherHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	result, err := h.teacherSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			response.NotFound(c, response.CodeNotFound, "教师不存在")
		case errors.Is(err, service.ErrEmailExists):
			response.Error(c, http.StatusConflict, response.CodeInvalidParams, "邮箱已被占用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除教师
// DELETE /api/v1/teachers/:id
func (h *TeacherHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTeacherNotFound) {
			response.NotFound(c, response.CodeNotFound, "教师不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}
