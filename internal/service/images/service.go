package images

import (
	"context"

	"gateway/internal/pkg/request"
)

// 圖片生成固定使用 dall-e-3、一次一張
const (
	Model = "dall-e-3"
	Count = 1
)

// 圖片尺寸（dall-e-3 支援）
type ImageSize string

const (
	ImageSize1024      ImageSize = "1024x1024"
	ImageSize1792x1024 ImageSize = "1792x1024"
	ImageSize1024x1792 ImageSize = "1024x1792"
)

// 圖片品質
type ImageQuality string

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
)

// Request POST /images/generate
type Request struct {
	Prompt  string       `json:"prompt" binding:"notblank" example:"A lighthouse at dusk"`
	Size    ImageSize    `json:"size" binding:"required,oneof=1024x1024 1792x1024 1024x1792" example:"1024x1024"`
	Quality ImageQuality `json:"quality" binding:"required,oneof=standard hd" example:"standard"`
	N       *int         `json:"n" binding:"omitempty,eq=1" example:"1"`
}

func (r *Request) SetDefaults() {
	r.Size = ImageSize1024
	r.Quality = ImageQualityStandard
}

func (r *Request) GetMessages() request.ValidatorMessages {
	return request.ValidatorMessages{
		"Prompt.notblank": "prompt must not be empty",
		"N.eq":            "n must be 1",
	}
}

// Payload 送往 /v1/images/generations
type Payload struct {
	Model   string       `json:"model"`
	Prompt  string       `json:"prompt"`
	N       int          `json:"n"`
	Size    ImageSize    `json:"size"`
	Quality ImageQuality `json:"quality"`
}

type Result struct {
	Created int64  `json:"created"`
	Data    []Data `json:"data"`
}

type Data struct {
	URL           string `json:"url,omitempty"`
	B64Json       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

type Reply struct {
	URL           string       `json:"url" example:"https://example.com/image.png"`
	Prompt        string       `json:"prompt" example:"A lighthouse at dusk"`
	Size          ImageSize    `json:"size" example:"1024x1024"`
	Quality       ImageQuality `json:"quality" example:"standard"`
	RevisedPrompt *string      `json:"revised_prompt"`
}

type Service interface {
	Generate(ctx context.Context, req *Request, apiKey string) (*Reply, error)
}
