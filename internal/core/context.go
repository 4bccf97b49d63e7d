package core

// gin.Context 共用鍵
const (
	ContextRequestStartKey = "requestDuration"
	ContextPayloadKey      = "payload"
	ContextAuthorizedKey   = "authorized"
	ContextRequestIDKey    = "requestID"
)
