package path

import (
	"os"
	"path/filepath"
	"runtime"
)

// RootPath 傳回專案根目錄的絕對路徑
func RootPath() string {
	// 透過 runtime.Caller(0) 回推到此檔案，再往上兩層：/project/utils/path/path.go → /project
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		panic("❌ 無法取得 caller 位置")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
}

// Resolve 相對路徑優先以工作目錄解析，不存在時退回專案根目錄
func Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if abs, err := filepath.Abs(p); err == nil {
		if ok, _ := Exists(abs); ok {
			return abs
		}
	}
	return filepath.Join(RootPath(), p)
}

// Exists 路径是否存在
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
