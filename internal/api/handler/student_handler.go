package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/service"
	"blog-school/backend/pkg/response"
)

// StudentHandler 学生管理 HTTP 处理器
type StudentHandler struct {
	studentSvc service.StudentService
}

// NewStudentHandler 创建 StudentHandler
func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

// List 学生列表（教师与管理员可见）
// GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "分页参数无效")
		return
	}

	list, total, err := h.studentSvc.List(c.Request.Context(), &page)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, list, total, page.GetPage(), page.GetPageSize())
}

// Get 学生详情
// GET /api/v1/students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result, err := h.studentSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, response.CodeNotFound, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Create 创建学生
// POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	result, err := h.studentSvc.Create(c.Request.Context(), &req)
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

// Update 更新学生
// PUT /api/v1/students/:id
func (h *StudentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "参数校验失败")
		return
	}

	result, err := h.studentSvc.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			response.NotFound(c, response.CodeNotFound, "学生不存在")
		case errors.Is(err, service.ErrEmailExists):
			response.Error(c, http.StatusConflict, response.CodeInvalidParams, "邮箱已被占用")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete 删除学生
// DELETE /api/v1/students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.studentSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			response.NotFound(c, response.CodeNotFound, "学生不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.NoContent(c)
}

// Import 批量导入学生（xlsx 上传，表单字段名 file）
// POST /api/v1/students/import
func (h *StudentHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "缺少上传文件（字段名 file）")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "无法读取上传文件")
		return
	}
	defer f.Close()

	result, err := h.studentSvc.Import(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, service.ErrImportEmpty) {
			response.BadRequest(c, response.CodeInvalidParams, "导入文件没有有效数据行")
			return
		}
		response.BadRequest(c, response.CodeInvalidParams, "导入文件解析失败")
		return
	}

	response.OK(c, result)
}
