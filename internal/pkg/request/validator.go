package request

import (
	"errors"
	"io"
	"regexp"
	"sync"

	cErr "gateway/internal/pkg/error"
	"gateway/utils/validate"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Validator interface {
	GetMessages() ValidatorMessages
}

// Defaulter 綁定前先填入預設值；JSON 中未出現的欄位會保留預設
type Defaulter interface {
	SetDefaults()
}

type ValidatorMessages map[string]string

var reg = regexp.MustCompile(`\[\d+\]`)

var registerOnce sync.Once

// RegisterValidations 將自訂規則掛到 gin 的 validator engine（只執行一次）
func RegisterValidations() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = errors.New("unexpected gin validator engine")
			return
		}
		err = validate.Register(v)
	})
	return err
}

// GetError 從請求和錯誤中獲取錯誤信息
func GetError(request interface{}, err error) *cErr.Error {
	if errors.Is(err, io.EOF) {
		return cErr.InvalidInput("request body is required")
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		if v, isValidator := request.(Validator); isValidator {
			for _, fe := range validationErrors {
				field := reg.ReplaceAllString(fe.StructField(), ".*")
				if message, exist := v.GetMessages()[field+"."+fe.Tag()]; exist {
					return cErr.InvalidInput(message)
				}
			}
		}
		return cErr.InvalidInput(validate.ValidationErrorMessage(validationErrors))
	}
	return cErr.InvalidInput("malformed JSON body").Wrap(err)
}
