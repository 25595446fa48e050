package handler

import "blog-school/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth    *AuthHandler
	Teacher *TeacherHandler
	Student *StudentHandler
	Post    *PostHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(svc.Auth),
		Teacher: NewTeacherHandler(svc.Teacher),
		Student: NewStudentHandler(svc.Student),
		Post:    NewPostHandler(svc.Post),
	}
}
