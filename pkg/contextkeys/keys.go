package contextkeys

type contextKey string

const (
	TokenKey     contextKey = "BearerToken"
	UserNameKey  contextKey = "UserName"
	RequestIDKey contextKey = "RequestID"
)
