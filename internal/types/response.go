package types

// Stable error codes returned to clients inside the response envelope.
const (
	CodeInvalidBody = "INVALID_BODY"
	CodeNotFound    = "NOT_FOUND"
	CodeServerError = "SERVER_ERROR"
)

// Envelope is the uniform response wrapper for every project and expense
// endpoint: {ok:true, data} on success, {ok:true} for bare acknowledgments,
// {ok:false, code} on failure, with error detail only on the 500 path.
type Envelope struct {
	Ok    bool        `json:"ok"`
	Data  interface{} `json:"data,omitempty"`
	Code  string      `json:"code,omitempty"`
	Error string      `json:"error,omitempty"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
