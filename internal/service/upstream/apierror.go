package upstream

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// APIError OpenAI 的錯誤格式 {"error":{"message","type","code","param"}}
type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
	Param   string `json:"param"`
}

type apiErrorEnvelope struct {
	Error json.RawMessage `json:"error"`
}

// 只允許 snake_case 識別字出現在對外訊息中
var safeIdentifier = regexp.MustCompile(`^[a-z0-9_]{1,64}$`)

func parseAPIError(body []byte) APIError {
	var env apiErrorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || len(env.Error) == 0 {
		return APIError{}
	}
	var out APIError
	if err := json.Unmarshal(env.Error, &out); err == nil {
		return out
	}
	// 部分相容服務的 code 為數字
	var loose struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	}
	if err := json.Unmarshal(env.Error, &loose); err != nil {
		return APIError{}
	}
	return APIError{Message: loose.Message, Type: loose.Type, Code: fmt.Sprint(loose.Code)}
}

// sanitizedMessage 只帶 status 與錯誤類型識別字，不帶上游原文
func sanitizedMessage(prefix string, status int, apiErr APIError) string {
	msg := fmt.Sprintf("%s (status %d", prefix, status)
	if safeIdentifier.MatchString(apiErr.Type) {
		msg += ", type " + apiErr.Type
	}
	if safeIdentifier.MatchString(apiErr.Code) {
		msg += ", code " + apiErr.Code
	}
	return msg + ")"
}
