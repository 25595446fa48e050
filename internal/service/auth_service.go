package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/model"
	"blog-school/backend/internal/repository"
	"blog-school/backend/pkg/jwt"
)

// ── 认证模块业务错误 ──
// 用户不存在与密码错误同为 401，仅以 message 区分，调用方不得据此分支

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrWrongPassword       = errors.New("密码错误")
	ErrServerMisconfigured = errors.New("服务端缺少 JWT 密钥配置")
)

// AuthService 认证业务接口
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		jwtMgr: jwtMgr,
		logger: logger,
	}
}

// Login 邮箱 + 密码登录
// 查找顺序：先教师表后学生表，首个命中生效。两种记录共用一个邮箱时
// 教师优先 —— 这是沿用原系统的兼容行为，不是设计意图
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	var (
		id      int64
		name    string
		email   string
		role    string
		isAdmin bool
	)

	teacher, err := s.repo.Teacher.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		id, name, email = teacher.ID, teacher.Name, teacher.Email
		role, isAdmin = model.RoleTeacher, teacher.IsAdmin
		if teacher.Password != req.Password {
			s.logger.Warn("登录失败：密码错误", zap.String("email", req.Email))
			return nil, ErrWrongPassword
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		student, serr := s.repo.Student.GetByEmail(ctx, req.Email)
		if serr != nil {
			if errors.Is(serr, gorm.ErrRecordNotFound) {
				s.logger.Warn("登录失败：邮箱未注册", zap.String("email", req.Email))
				return nil, ErrUserNotFound
			}
			s.logger.Error("查询学生失败", zap.Error(serr))
			return nil, serr
		}
		id, name, email = student.ID, student.Name, student.Email
		role, isAdmin = model.RoleStudent, false
		// 与原系统一致：明文逐字节比较
		if student.Password != req.Password {
			s.logger.Warn("登录失败：密码错误", zap.String("email", req.Email))
			return nil, ErrWrongPassword
		}
	default:
		s.logger.Error("查询教师失败", zap.Error(err))
		return nil, err
	}

	// 密钥缺失按配置错误处理，不让进程崩溃
	if !s.jwtMgr.Ready() {
		s.logger.Error("JWT 密钥未配置，无法签发令牌")
		return nil, ErrServerMisconfigured
	}

	token, err := s.jwtMgr.GenerateToken(id, role, isAdmin)
	if err != nil {
		s.logger.Error("签发令牌失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("登录成功",
		zap.String("email", email),
		zap.String("role", role),
		zap.Bool("is_admin", isAdmin),
	)

	return &dto.LoginResponse{
		Token: token,
		User: dto.UserSummary{
			ID:      id,
			Name:    name,
			Email:   email,
			Role:    role,
			IsAdmin: isAdmin,
		},
	}, nil
}
