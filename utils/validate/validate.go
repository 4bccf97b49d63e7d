package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 允許轉發的模型前綴
var modelPrefixes = []string{
	"gpt-3.5",
	"gpt-4",
	"gpt-",
	"o1",
	"o3",
	"o4",
	"chatgpt-",
	"text-",
	"dall-e",
	"whisper",
	"tts",
	"davinci",
	"babbage",
}

// IsValidModelName 檢查模型名稱是否為已知的 OpenAI 模型家族
func IsValidModelName(model string) bool {
	model = strings.TrimSpace(model)
	if model == "" || strings.ContainsAny(model, " \t\r\n/") {
		return false
	}
	for _, prefix := range modelPrefixes {
		if strings.HasPrefix(model, prefix) {
			return true
		}
	}
	return false
}

// NotBlank 字串去除空白後不可為空
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

func ModelName(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return IsValidModelName(field.String())
}

// JSONTagName 讓 validator 錯誤使用 json 欄位名稱
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// Register 將自訂規則掛到 validator（gin binding 的 engine 亦同）
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(JSONTagName)
	if err := v.RegisterValidation("notblank", NotBlank); err != nil {
		return fmt.Errorf("register notblank: %w", err)
	}
	if err := v.RegisterValidation("modelname", ModelName); err != nil {
		return fmt.Errorf("register modelname: %w", err)
	}
	return nil
}

// ValidationErrorMessage 格式化 validator error（欄位 json 名/規則）
func ValidationErrorMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return fmt.Sprintf("%s is required", fe.Field())
		case "min":
			return fmt.Sprintf("%s must contain at least %s item(s)", fe.Field(), fe.Param())
		case "oneof":
			return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
		case "modelname":
			return fmt.Sprintf("%s %q is not a supported model", fe.Field(), fe.Value())
		default:
			return fmt.Sprintf("%s failed the '%s' validation", fe.Field(), fe.Tag())
		}
	}
	return fmt.Sprintf("validation error: %s", err.Error())
}
