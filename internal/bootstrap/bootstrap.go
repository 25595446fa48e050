package bootstrap

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"blog-school/backend/internal/model"
	"blog-school/backend/internal/repository"
)

// 首次启动的种子数据，与原系统保持一致
const (
	seedAdminName     = "Admin"
	seedAdminEmail    = "admin@school.com"
	seedAdminPassword = "admin123"

	seedStudentName     = "Estudante Teste"
	seedStudentEmail    = "student@school.com"
	seedStudentPassword = "student123"

	seedPostTitle   = "Primeiro Post de Teste"
	seedPostContent = "Bem-vindo ao nosso blog!"
)

// Seed 创建初始数据：管理员教师、测试学生、第一篇文章
// 各表非空时跳过对应条目，重复启动安全
func Seed(ctx context.Context, repo *repository.Repository, logger *zap.Logger) error {
	teacherCount, err := repo.Teacher.Count(ctx)
	if err != nil {
		return fmt.Errorf("统计教师数量失败: %w", err)
	}
	if teacherCount == 0 {
		admin := &model.Teacher{
			Name:     seedAdminName,
			Email:    seedAdminEmail,
			Password: seedAdminPassword,
			IsAdmin:  true,
		}
		if err := repo.Teacher.Create(ctx, admin); err != nil {
			return fmt.Errorf("创建初始管理员失败: %w", err)
		}
		logger.Info("初始管理员已创建", zap.String("email", seedAdminEmail))
	}

	studentCount, err := repo.Student.Count(ctx)
	if err != nil {
		return fmt.Errorf("统计学生数量失败: %w", err)
	}
	if studentCount == 0 {
		student := &model.Student{
			Name:     seedStudentName,
			Email:    seedStudentEmail,
			Password: seedStudentPassword,
		}
		if err := repo.Student.Create(ctx, student); err != nil {
			return fmt.Errorf("创建初始学生失败: %w", err)
		}
		logger.Info("初始学生已创建", zap.String("email", seedStudentEmail))
	}

	postCount, err := repo.Post.Count(ctx)
	if err != nil {
		return fmt.Errorf("统计文章数量失败: %w", err)
	}
	if postCount == 0 {
		admin, err := repo.Teacher.GetByEmail(ctx, seedAdminEmail)
		if err != nil {
			return fmt.Errorf("查询初始管理员失败: %w", err)
		}
		post := &model.Post{
			Title:      seedPostTitle,
			Content:    seedPostContent,
			AuthorID:   admin.ID,
			AuthorName: admin.Name,
		}
		if err := repo.Post.Create(ctx, post); err != nil {
			return fmt.Errorf("创建初始文章失败: %w", err)
		}
		logger.Info("初始文章已创建", zap.Int64("author_id", admin.ID))
	}

	return nil
}
