package config

import "strconv"

type App struct {
	// 當前開發環境
	Env string `mapstructure:"ENV" json:"env" yaml:"env"`
	// 服務端口
	Port uint32 `mapstructure:"PORT" json:"port" yaml:"port"`
	// 服務名稱
	Name string `mapstructure:"NAME" json:"name" yaml:"name"`
	// 服務版本
	Version        string `mapstructure:"VERSION" json:"version" yaml:"version"`
	SwaggerEnabled bool   `mapstructure:"SWAGGER_ENABLED" json:"swagger_enabled" yaml:"swagger_enabled"`
	// 前端靜態檔目錄（空字串則不掛載）
	StaticDir string `mapstructure:"STATIC_DIR" json:"static_dir" yaml:"static_dir"`
}

func (a *App) setDefaults() {
	if a.Port == 0 {
		a.Port = 8000
	}
	if a.Name == "" {
		a.Name = "gateway"
	}
	if a.Version == "" {
		a.Version = "1.0.0"
	}
}

func parsePort(v string) uint32 {
	p, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(p)
}
