package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/model"
	"blog-school/backend/internal/repository"
)

// ── 教师模块业务错误 ──

var (
	ErrTeacherNotFound = errors.New("教师不存在")
	ErrEmailExists     = errors.New("邮箱已被占用")
)

// TeacherService 教师管理业务接口（路由层已限定仅管理员可写）
type TeacherService interface {
	Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.IDResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.TeacherResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.TeacherResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error)
	Delete(ctx context.Context, id int64) error
}

type teacherService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTeacherService 创建 TeacherService 实例
func NewTeacherService(repo *repository.Repository, logger *zap.Logger) TeacherService {
	return &teacherService{repo: repo, logger: logger}
}

func (s *teacherService) Create(ctx context.Context, req *dto.CreateTeacherRequest) (*dto.IDResponse, error) {
	// 邮箱唯一性仅在教师表内检查；与学生表重名是原系统遗留的歧义，不在此处拦截
	if _, err := s.repo.Teacher.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	teacher := &model.Teacher{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	}

	if err := s.repo.Teacher.Create(ctx, teacher); err != nil {
		s.logger.Error("创建教师失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("教师已创建", zap.Int64("id", teacher.ID), zap.String("email", teacher.Email))
	return &dto.IDResponse{ID: teacher.ID}, nil
}

func (s *teacherService) GetByID(ctx context.Context, id int64) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询教师失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toTeacherResponse(teacher), nil
}

func (s *teacherService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.TeacherResponse, int64, error) {
	teachers, total, err := s.repo.Teacher.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("查询教师列表失败", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.TeacherResponse, 0, len(teachers))
	for i := range teachers {
		list = append(list, *toTeacherResponse(&teachers[i]))
	}
	return list, total, nil
}

func (s *teacherService) Update(ctx context.Context, id int64, req *dto.UpdateTeacherRequest) (*dto.TeacherResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTeacherNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != teacher.Email {
		if _, err := s.repo.Teacher.GetByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		teacher.Email = *req.Email
	}
	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.IsAdmin != nil {
		teacher.IsAdmin = *req.IsAdmin
	}

	if err := s.repo.Teacher.Update(ctx, teacher); err != nil {
		s.logger.Error("更新教师失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toTeacherResponse(teacher), nil
}

func (s *teacherService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Teacher.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTeacherNotFound
		}
		return err
	}

	// 该教师名下的文章保留（author_id 为弱引用，不做级联删除）
	if err := s.repo.Teacher.Delete(ctx, id); err != nil {
		s.logger.Error("删除教师失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("教师已删除", zap.Int64("id", id))
	return nil
}

func toTeacherResponse(t *model.Teacher) *dto.TeacherResponse {
	return &dto.TeacherResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		IsAdmin:   t.IsAdmin,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		UpdatedAt: t.UpdatedAt.Format(time.RFC3339),
	}
}
