package contextkeys

type ContextKey string

const (
	RequestIDContextKey ContextKey = "request_id"
	UserIDContextKey    ContextKey = "userID"
	RoleContextKey      ContextKey = "role"
)
