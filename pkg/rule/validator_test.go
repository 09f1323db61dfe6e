package rule_test

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/yeisme/uploadvault/pkg/rule"
)

// createFileInput 用于测试 ValidateStruct.
type createFileInput struct {
	Filename string `rule:"required,max=16"`
	Size     int64  `rule:"gte=0"`
}

// TestEngine 测试 Engine 函数返回非 nil 实例.
func TestEngine(t *testing.T) {
	engine := rule.Engine()
	if engine == nil {
		t.Error("Engine() returned nil")
	}
}

// TestValidateStruct 测试 ValidateStruct 对有效和无效结构体的验证.
func TestValidateStruct(t *testing.T) {
	// 有效结构体
	valid := createFileInput{Filename: "report.pdf", Size: 1024}

	err := rule.ValidateStruct(valid)
	if err != nil {
		t.Errorf("Expected no error for valid struct, got %v", err)
	}

	// 无效结构体：缺少 Filename
	invalid1 := createFileInput{Filename: "", Size: 1024}

	err = rule.ValidateStruct(invalid1)
	if err == nil {
		t.Error("Expected error for invalid struct (missing filename), got nil")
	}

	// 无效结构体：Size 为负
	invalid2 := createFileInput{Filename: "a.txt", Size: -1}

	err = rule.ValidateStruct(invalid2)
	if err == nil {
		t.Error("Expected error for invalid struct (negative size), got nil")
	}
}

// TestValidateVar 测试 ValidateVar 对变量的验证.
func TestValidateVar(t *testing.T) {
	// 有效 email
	err := rule.ValidateVar("user@example.com", "required,email")
	if err != nil {
		t.Errorf("Expected no error for valid email, got %v", err)
	}

	// 无效 email
	err = rule.ValidateVar("invalid-email", "required,email")
	if err == nil {
		t.Error("Expected error for invalid email, got nil")
	}
}

// TestRegisterValidation 测试注册自定义验证.
func TestRegisterValidation(t *testing.T) {
	// 注册自定义验证：存储键必须为三段式
	err := rule.RegisterValidation("storage_key", func(fl validator.FieldLevel) bool {
		str, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}

		segments := 1
		for _, r := range str {
			if r == '/' {
				segments++
			}
		}

		return segments == 3
	})
	if err != nil {
		t.Fatalf("Failed to register validation: %v", err)
	}

	err = rule.ValidateVar("owner/file/name.txt", "storage_key")
	if err != nil {
		t.Errorf("Expected no error for three segment key, got %v", err)
	}

	err = rule.ValidateVar("owner/name.txt", "storage_key")
	if err == nil {
		t.Error("Expected error for two segment key, got nil")
	}
}

// TestRegisterAlias 测试注册别名.
func TestRegisterAlias(t *testing.T) {
	rule.RegisterAlias("short_name", "required,max=8")

	err := rule.ValidateVar("a.txt", "short_name")
	if err != nil {
		t.Errorf("Expected no error for valid string with alias, got %v", err)
	}

	err = rule.ValidateVar("very-long-filename.txt", "short_name")
	if err == nil {
		t.Error("Expected error for invalid string with alias, got nil")
	}
}
