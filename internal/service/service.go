package service

import (
	"go.uber.org/zap"

	"blog-school/backend/internal/repository"
	"blog-school/backend/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth    AuthService
	Teacher TeacherService
	Student StudentService
	Post    PostService
}

// NewService 创建 Service 聚合
func NewService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(repo, jwtMgr, logger),
		Teacher: NewTeacherService(repo, logger),
		Student: NewStudentService(repo, logger),
		Post:    NewPostService(repo, logger),
	}
}
