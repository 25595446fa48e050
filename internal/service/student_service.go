package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-school/backend/internal/dto"
	"blog-school/backend/internal/model"
	"blog-school/backend/internal/repository"
)

// ── 学生模块业务错误 ──

var (
	ErrStudentNotFound = errors.New("学生不存在")
	ErrImportEmpty     = errors.New("导入文件没有有效数据行")
)

// StudentService 学生管理业务接口（写操作由路由层限定仅管理员）
type StudentService interface {
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.IDResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.StudentResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	Delete(ctx context.Context, id int64) error
	Import(ctx context.Context, reader io.Reader) (*dto.ImportStudentResponse, error)
}

type studentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStudentService 创建 StudentService 实例
func NewStudentService(repo *repository.Repository, logger *zap.Logger) StudentService {
	return &studentService{repo: repo, logger: logger}
}

func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*dto.IDResponse, error) {
	if _, err := s.repo.Student.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	student := &model.Student{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := s.repo.Student.Create(ctx, student); err != nil {
		s.logger.Error("创建学生失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("学生已创建", zap.Int64("id", student.ID), zap.String("email", student.Email))
	return &dto.IDResponse{ID: student.ID}, nil
}

func (s *studentService) GetByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		s.logger.Error("查询学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toStudentResponse(student), nil
}

func (s *studentService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.StudentResponse, int64, error) {
	students, total, err := s.repo.Student.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("查询学生列表失败", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.StudentResponse, 0, len(students))
	for i := range students {
		list = append(list, *toStudentResponse(&students[i]))
	}
	return list, total, nil
}

func (s *studentService) Update(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.repo.Student.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}

	if req.Email != nil && *req.Email != student.Email {
		if _, err := s.repo.Student.GetByEmail(ctx, *req.Email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		student.Email = *req.Email
	}
	if req.Name != nil {
		student.Name = *req.Name
	}

	if err := s.repo.Student.Update(ctx, student); err != nil {
		s.logger.Error("更新学生失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toStudentResponse(student), nil
}

func (s *studentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Student.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrStudentNotFound
		}
		return err
	}

	if err := s.repo.Student.Delete(ctx, id); err != nil {
		s.logger.Error("删除学生失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("学生已删除", zap.Int64("id", id))
	return nil
}

// ────────────────────── 批量导入 ──────────────────────

// Import 解析 xlsx 的第一个工作表并批量创建学生
// 期望列：姓名 | 邮箱 | 初始密码，首行为表头
// 单行失败不中断整体导入，逐行记录原因
func (s *studentService) Import(ctx context.Context, reader io.Reader) (*dto.ImportStudentResponse, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("解析 Excel 文件失败: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	if len(rows) <= 1 {
		return nil, ErrImportEmpty
	}

	result := &dto.ImportStudentResponse{}
	for i, row := range rows[1:] {
		rowNum := i + 2 // 表头占第 1 行

		if len(row) < 3 {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: "列数不足（需要 姓名/邮箱/密码）"})
			continue
		}

		name := strings.TrimSpace(row[0])
		email := strings.TrimSpace(row[1])
		password := strings.TrimSpace(row[2])

		switch {
		case len(name) < 3:
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: "姓名不足 3 个字符"})
			continue
		case !strings.Contains(email, "@"):
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: "邮箱格式无效"})
			continue
		case len(password) < 6:
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: "密码不足 6 位"})
			continue
		}

		// 已存在的邮箱跳过，不算失败
		if _, err := s.repo.Student.GetByEmail(ctx, email); err == nil {
			result.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		student := &model.Student{Name: name, Email: email, Password: password}
		if err := s.repo.Student.Create(ctx, student); err != nil {
			result.Errors = append(result.Errors, dto.ImportRowError{Row: rowNum, Reason: "写入失败"})
			s.logger.Error("导入学生失败", zap.Int("row", rowNum), zap.Error(err))
			continue
		}
		result.Created++
	}

	s.logger.Info("学生批量导入完成",
		zap.Int("created", result.Created),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", len(result.Errors)),
	)
	return result, nil
}

func toStudentResponse(st *model.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:        st.ID,
		Name:      st.Name,
		Email:     st.Email,
		CreatedAt: st.CreatedAt.Format(time.RFC3339),
		UpdatedAt: st.UpdatedAt.Format(time.RFC3339),
	}
}
