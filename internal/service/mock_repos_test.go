package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"blog-school/backend/internal/model"
)

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[int64]*model.Teacher
	nextID   int64
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[int64]*model.Teacher), nextID: 1}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.ID == 0 {
		teacher.ID = m.nextID
		m.nextID++
	}
	now := time.Now()
	teacher.CreatedAt = now
	teacher.UpdatedAt = now
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id int64) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	if _, ok := m.teachers[teacher.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	teacher.UpdatedAt = time.Now()
	m.teachers[teacher.ID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id int64) error {
	delete(m.teachers, id)
	return nil
}

func (m *mockTeacherRepo) List(_ context.Context, offset, limit int) ([]model.Teacher, int64, error) {
	all := make([]model.Teacher, 0, len(m.teachers))
	for id := int64(1); id < m.nextID; id++ {
		if t, ok := m.teachers[id]; ok {
			all = append(all, *t)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockTeacherRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.teachers)), nil
}

// ── Mock StudentRepository ──

type mockStudentRepo struct {
	students map[int64]*model.Student
	nextID   int64
}

func newMockStudentRepo() *mockStudentRepo {
	return &mockStudentRepo{students: make(map[int64]*model.Student), nextID: 1}
}

func (m *mockStudentRepo) Create(_ context.Context, student *model.Student) error {
	if student.ID == 0 {
		student.ID = m.nextID
		m.nextID++
	}
	now := time.Now()
	student.CreatedAt = now
	student.UpdatedAt = now
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) GetByID(_ context.Context, id int64) (*model.Student, error) {
	if s, ok := m.students[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(_ context.Context, email string) (*model.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) Update(_ context.Context, student *model.Student) error {
	if _, ok := m.students[student.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	student.UpdatedAt = time.Now()
	m.students[student.ID] = student
	return nil
}

func (m *mockStudentRepo) Delete(_ context.Context, id int64) error {
	delete(m.students, id)
	return nil
}

func (m *mockStudentRepo) List(_ context.Context, offset, limit int) ([]model.Student, int64, error) {
	all := make([]model.Student, 0, len(m.students))
	for id := int64(1); id < m.nextID; id++ {
		if s, ok := m.students[id]; ok {
			all = append(all, *s)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockStudentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.students)), nil
}

// ── Mock PostRepository ──

type mockPostRepo struct {
	posts  map[int64]*model.Post
	nextID int64
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[int64]*model.Post), nextID: 1}
}

func (m *mockPostRepo) Create(_ context.Context, post *model.Post) error {
	if post.ID == 0 {
		post.ID = m.nextID
		m.nextID++
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(_ context.Context, id int64) (*model.Post, error) {
	if p, ok := m.posts[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPostRepo) Update(_ context.Context, post *model.Post) error {
	if _, ok := m.posts[post.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	post.UpdatedAt = time.Now()
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) Delete(_ context.Context, id int64) error {
	delete(m.posts, id)
	return nil
}

func (m *mockPostRepo) List(_ context.Context, offset, limit int) ([]model.Post, int64, error) {
	all := make([]model.Post, 0, len(m.posts))
	for id := int64(1); id < m.nextID; id++ {
		if p, ok := m.posts[id]; ok {
			all = append(all, *p)
		}
	}
	return paginate(all, offset, limit), int64(len(all)), nil
}

func (m *mockPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.posts)), nil
}

// paginate 简单分页切片
func paginate[T any](all []T, offset, limit int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}
