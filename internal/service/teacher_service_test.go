package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"blog-school/backend/internal/dto"
)

func setupTestTeacherService() (TeacherService, *mockTeacherRepo, *mockStudentRepo) {
	repo, teacherRepo, studentRepo, _ := setupTestRepo()
	svc := NewTeacherService(repo, zap.NewNop())
	return svc, teacherRepo, studentRepo
}

func TestTeacherCreate_Success(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()

	result, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		Name:     "新教师",
		Email:    "new@school.com",
		Password: "secret123",
	})

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	created, err := teacherRepo.GetByID(context.Background(), result.ID)
	if err != nil {
		t.Fatalf("创建后应能查到教师: %v", err)
	}
	if created.IsAdmin {
		t.Error("未指定 is_admin 时应默认为 false")
	}
}

func TestTeacherCreate_AdminFlag(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()

	result, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		Name:     "二号管理员",
		Email:    "admin2@school.com",
		Password: "secret123",
		IsAdmin:  true,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	created, _ := teacherRepo.GetByID(context.Background(), result.ID)
	if !created.IsAdmin {
		t.Error("is_admin=true 应被持久化")
	}
}

func TestTeacherCreate_DuplicateEmail(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	seedTeacher(teacherRepo, "在职教师", "dup@school.com", "secret123", false)

	_, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		Name:     "重复邮箱",
		Email:    "dup@school.com",
		Password: "secret456",
	})

	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

// 唯一性仅在教师表内检查，与学生邮箱重复不拦截
func TestTeacherCreate_StudentEmailNotBlocked(t *testing.T) {
	svc, _, studentRepo := setupTestTeacherService()
	seedStudent(studentRepo, "在读学生", "shared@school.com", "secret123")

	_, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		Name:     "同邮箱教师",
		Email:    "shared@school.com",
		Password: "secret456",
	})

	if err != nil {
		t.Errorf("教师邮箱与学生重复不应拦截，实际: %v", err)
	}
}

func TestTeacherUpdate_PartialFields(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	teacher := seedTeacher(teacherRepo, "原名", "keep@school.com", "secret123", false)

	newName := "改过的名字"
	updated, err := svc.Update(context.Background(), teacher.ID, &dto.UpdateTeacherRequest{
		Name: &newName,
	})

	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.Name != "改过的名字" {
		t.Errorf("期望名字已更新，实际=%s", updated.Name)
	}
	if updated.Email != "keep@school.com" {
		t.Errorf("未提交的字段不应变化，实际邮箱=%s", updated.Email)
	}
}

func TestTeacherUpdate_PromoteToAdmin(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	teacher := seedTeacher(teacherRepo, "普通教师", "promote@school.com", "secret123", false)

	isAdmin := true
	updated, err := svc.Update(context.Background(), teacher.ID, &dto.UpdateTeacherRequest{
		IsAdmin: &isAdmin,
	})

	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if !updated.IsAdmin {
		t.Error("is_admin 应已更新为 true")
	}
}

func TestTeacherUpdate_DuplicateEmail(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	seedTeacher(teacherRepo, "甲", "a@school.com", "secret123", false)
	b := seedTeacher(teacherRepo, "乙", "b@school.com", "secret123", false)

	taken := "a@school.com"
	_, err := svc.Update(context.Background(), b.ID, &dto.UpdateTeacherRequest{
		Email: &taken,
	})

	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

// 提交与当前相同的邮箱不应触发占用错误
func TestTeacherUpdate_SameEmailNoop(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	teacher := seedTeacher(teacherRepo, "自己", "self@school.com", "secret123", false)

	same := "self@school.com"
	_, err := svc.Update(context.Background(), teacher.ID, &dto.UpdateTeacherRequest{
		Email: &same,
	})

	if err != nil {
		t.Errorf("提交原邮箱不应报错: %v", err)
	}
}

func TestTeacherUpdate_NotFound(t *testing.T) {
	svc, _, _ := setupTestTeacherService()

	name := "无主更新"
	_, err := svc.Update(context.Background(), 42, &dto.UpdateTeacherRequest{Name: &name})
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("期望 ErrTeacherNotFound，实际: %v", err)
	}
}

func TestTeacherDelete_Success(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	teacher := seedTeacher(teacherRepo, "离职教师", "leave@school.com", "secret123", false)

	if err := svc.Delete(context.Background(), teacher.ID); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := teacherRepo.GetByID(context.Background(), teacher.ID); err == nil {
		t.Error("删除后教师不应存在")
	}
}

func TestTeacherDelete_NotFound(t *testing.T) {
	svc, _, _ := setupTestTeacherService()

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrTeacherNotFound) {
		t.Errorf("期望 ErrTeacherNotFound，实际: %v", err)
	}
}

func TestTeacherList(t *testing.T) {
	svc, teacherRepo, _ := setupTestTeacherService()
	seedTeacher(teacherRepo, "教师一号", "t1@school.com", "secret123", false)
	seedTeacher(teacherRepo, "教师二号", "t2@school.com", "secret123", true)

	list, total, err := svc.List(context.Background(), &dto.PaginationRequest{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("期望 2 条记录，实际 total=%d len=%d", total, len(list))
	}
}
