package response

// Resp is the JSON body for error responses.
// Successful responses are written bare so the frontend reads tasks and chat
// replies directly.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// MessageResp is the body of endpoints that only acknowledge an operation.
type MessageResp struct {
	Message string `json:"message"`
}
