package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"blog-school/backend/internal/dto"
)

func setupTestStudentService() (StudentService, *mockStudentRepo) {
	repo, _, studentRepo, _ := setupTestRepo()
	svc := NewStudentService(repo, zap.NewNop())
	return svc, studentRepo
}

func TestStudentCreate_Success(t *testing.T) {
	svc, studentRepo := setupTestStudentService()

	result, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:     "新同学",
		Email:    "new@school.com",
		Password: "secret123",
	})

	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := studentRepo.GetByID(context.Background(), result.ID); err != nil {
		t.Fatalf("创建后应能查到学生: %v", err)
	}
}

func TestStudentCreate_DuplicateEmail(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	seedStudent(studentRepo, "在读学生", "dup@school.com", "secret123")

	_, err := svc.Create(context.Background(), &dto.CreateStudentRequest{
		Name:     "重复邮箱",
		Email:    "dup@school.com",
		Password: "secret456",
	})

	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("期望 ErrEmailExists，实际: %v", err)
	}
}

func TestStudentUpdate_PartialFields(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	student := seedStudent(studentRepo, "原名", "keep@school.com", "secret123")

	newName := "改过的名字"
	updated, err := svc.Update(context.Background(), student.ID, &dto.UpdateStudentRequest{
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

func TestStudentDelete_NotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	err := svc.Delete(context.Background(), 42)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

func TestStudentGetByID_NotFound(t *testing.T) {
	svc, _ := setupTestStudentService()

	_, err := svc.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrStudentNotFound) {
		t.Errorf("期望 ErrStudentNotFound，实际: %v", err)
	}
}

// ── 批量导入 ──

// buildImportFile 构造导入用的 xlsx：首行表头，其后为数据行
func buildImportFile(t *testing.T, rows [][]interface{}) io.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := []interface{}{"姓名", "邮箱", "初始密码"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("写入表头失败: %v", err)
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("写入数据行失败: %v", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("生成 xlsx 失败: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestStudentImport_Success(t *testing.T) {
	svc, studentRepo := setupTestStudentService()

	reader := buildImportFile(t, [][]interface{}{
		{"学生甲", "a@school.com", "secret123"},
		{"学生乙", "b@school.com", "secret456"},
	})

	result, err := svc.Import(context.Background(), reader)
	if err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}
	if result.Created != 2 {
		t.Errorf("期望 Created=2，实际=%d", result.Created)
	}
	if result.Skipped != 0 || len(result.Errors) != 0 {
		t.Errorf("期望无跳过无错误，实际 Skipped=%d Errors=%d", result.Skipped, len(result.Errors))
	}
	if _, err := studentRepo.GetByEmail(context.Background(), "a@school.com"); err != nil {
		t.Error("导入的学生应可按邮箱查到")
	}
}

func TestStudentImport_SkipExisting(t *testing.T) {
	svc, studentRepo := setupTestStudentService()
	seedStudent(studentRepo, "已有学生", "exists@school.com", "secret123")

	reader := buildImportFile(t, [][]interface{}{
		{"已有学生", "exists@school.com", "secret123"},
		{"新来学生", "fresh@school.com", "secret456"},
	})

	result, err := svc.Import(context.Background(), reader)
	if err != nil {
		t.Fatalf("Import 应成功: %v", err)
	}
	if result.Created != 1 {
		t.Errorf("期望 Created=1，实际=%d", result.Created)
	}
	if result.Skipped != 1 {
		t.Errorf("已存在邮箱应计入 Skipped，实际=%d", result.Skipped)
	}
}

func TestStudentImport_RowValidation(t *testing.T) {
	svc, _ := setupTestStudentService()

	reader := buildImportFile(t, [][]interface{}{
		{"ab", "a@school.com", "secret123"}, // 姓名太短
		{"学生乙", "not-an-email", "secret123"}, // 邮箱无效
		{"学生丙", "c@school.com", "123"},      // 密码太短
		{"学生丁", "d@school.com", "secret123"}, // 有效
	})

	result, err := svc.Import(context.Background(), reader)
	if err != nil {
		t.Fatalf("单行失败不应中断导入: %v", err)
	}
	if result.Created != 1 {
		t.Errorf("期望 Created=1，实际=%d", result.Created)
	}
	if len(result.Errors) != 3 {
		t.Fatalf("期望 3 条行级错误，实际=%d", len(result.Errors))
	}
	// 行号从 2 开始（首行为表头）
	if result.Errors[0].Row != 2 {
		t.Errorf("期望首条错误在第 2 行，实际=%d", result.Errors[0].Row)
	}
}

func TestStudentImport_EmptyFile(t *testing.T) {
	svc, _ := setupTestStudentService()

	reader := buildImportFile(t, nil)

	_, err := svc.Import(context.Background(), reader)
	if !errors.Is(err, ErrImportEmpty) {
		t.Errorf("期望 ErrImportEmpty，实际: %v", err)
	}
}

func TestStudentImport_NotAnExcelFile(t *testing.T) {
	svc, _ := setupTestStudentService()

	_, err := svc.Import(context.Background(), strings.NewReader("这不是一个 xlsx 文件"))
	if err == nil {
		t.Error("非 xlsx 内容应返回解析错误")
	}
}
