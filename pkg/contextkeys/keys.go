package contextkeys

type contextKey string

const (
	AccesoIDKey  contextKey = "AccesoID"
	RolIDKey     contextKey = "RolID"
	RequestIDKey contextKey = "RequestID"
)
