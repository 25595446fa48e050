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

// ── 文章模块业务错误 ──

var (
	ErrPostNotFound = errors.New("文章不存在")
	ErrNotPostOwner = errors.New("仅作者或管理员可以操作该文章")
)

// PostService 文章业务接口
// 读操作公开；写操作的角色校验在路由层，归属校验在本层
type PostService interface {
	Create(ctx context.Context, req *dto.CreatePostRequest, authorID int64) (*dto.IDResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.PostResponse, error)
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.PostResponse, int64, error)
	Update(ctx context.Context, id int64, req *dto.UpdatePostRequest, callerID int64, isAdmin bool) (*dto.PostResponse, error)
	Delete(ctx context.Context, id int64, callerID int64, isAdmin bool) error
}

type postService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewPostService 创建 PostService 实例
func NewPostService(repo *repository.Repository, logger *zap.Logger) PostService {
	return &postService{repo: repo, logger: logger}
}

// Create 创建文章
// 作者取自令牌身份；author_name 从教师记录快照，不接受客户端指定
func (s *postService) Create(ctx context.Context, req *dto.CreatePostRequest, authorID int64) (*dto.IDResponse, error) {
	teacher, err := s.repo.Teacher.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 令牌仍有效但教师记录已被删除（令牌过期前无法吊销）
			return nil, ErrTeacherNotFound
		}
		s.logger.Error("查询作者失败", zap.Int64("author_id", authorID), zap.Error(err))
		return nil, err
	}

	post := &model.Post{
		Title:      req.Title,
		Content:    req.Content,
		AuthorID:   teacher.ID,
		AuthorName: teacher.Name,
	}

	if err := s.repo.Post.Create(ctx, post); err != nil {
		s.logger.Error("创建文章失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("文章已创建", zap.Int64("id", post.ID), zap.Int64("author_id", teacher.ID))
	return &dto.IDResponse{ID: post.ID}, nil
}

func (s *postService) GetByID(ctx context.Context, id int64) (*dto.PostResponse, error) {
	post, err := s.repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		s.logger.Error("查询文章失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}
	return toPostResponse(post), nil
}

func (s *postService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.PostResponse, int64, error) {
	posts, total, err := s.repo.Post.List(ctx, page.GetOffset(), page.GetPageSize())
	if err != nil {
		s.logger.Error("查询文章列表失败", zap.Error(err))
		return nil, 0, err
	}

	list := make([]dto.PostResponse, 0, len(posts))
	for i := range posts {
		list = append(list, *toPostResponse(&posts[i]))
	}
	return list, total, nil
}

// Update 更新文章：归属规则为 管理员 或 作者本人
func (s *postService) Update(ctx context.Context, id int64, req *dto.UpdatePostRequest, callerID int64, isAdmin bool) (*dto.PostResponse, error) {
	post, err := s.repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	if !isAdmin && post.AuthorID != callerID {
		s.logger.Warn("越权编辑文章被拒绝",
			zap.Int64("post_id", id),
			zap.Int64("caller_id", callerID),
			zap.Int64("author_id", post.AuthorID),
		)
		return nil, ErrNotPostOwner
	}

	post.Title = req.Title
	post.Content = req.Content

	if err := s.repo.Post.Update(ctx, post); err != nil {
		s.logger.Error("更新文章失败", zap.Int64("id", id), zap.Error(err))
		return nil, err
	}

	return toPostResponse(post), nil
}

// Delete 删除文章：归属规则与 Update 相同
func (s *postService) Delete(ctx context.Context, id int64, callerID int64, isAdmin bool) error {
	post, err := s.repo.Post.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return err
	}

	if !isAdmin && post.AuthorID != callerID {
		s.logger.Warn("越权删除文章被拒绝",
			zap.Int64("post_id", id),
			zap.Int64("caller_id", callerID),
		)
		return ErrNotPostOwner
	}

	if err := s.repo.Post.Delete(ctx, id); err != nil {
		s.logger.Error("删除文章失败", zap.Int64("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("文章已删除", zap.Int64("id", id))
	return nil
}

func toPostResponse(p *model.Post) *dto.PostResponse {
	return &dto.PostResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		AuthorID:   p.AuthorID,
		AuthorName: p.AuthorName,
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  p.UpdatedAt.Format(time.RFC3339),
	}
}
