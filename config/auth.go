package config

type Auth struct {
	// 共用存取金鑰，/auth 成功時直接回傳作為 bearer token
	AccessKey string `mapstructure:"ACCESS_KEY" json:"-" yaml:"access_key"`
}
