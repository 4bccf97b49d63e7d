package core

// ProviderName
type ProviderName string

const (
	ProviderOpenAI ProviderName = "openai"
)

type OpenAIEndpoint string

const (
	OpenAiChatEndpoint          OpenAIEndpoint = "/chat/completions"
	OpenAICompletionEndpoint    OpenAIEndpoint = "/completions"
	OpenAIEmbeddingEndpoint     OpenAIEndpoint = "/embeddings"
	OpenAIImageGenerateEndpoint OpenAIEndpoint = "/images/generations"
	OpenAIModelsEndpoint        OpenAIEndpoint = "/models"
)

// UpstreamOperation 對應 adapter 的每一個能力，用於 metric label 與 span 名稱
type UpstreamOperation string

const (
	OperationChatCompletion  UpstreamOperation = "chat_completion"
	OperationTextCompletion  UpstreamOperation = "text_completion"
	OperationGenerateImage   UpstreamOperation = "generate_image"
	OperationCreateEmbedding UpstreamOperation = "create_embedding"
	OperationListModels      UpstreamOperation = "list_models"
	OperationHealthProbe     UpstreamOperation = "health_probe"
)
