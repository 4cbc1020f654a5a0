package domain

// Roles carried in the JWT "role" claim. Mutating endpoints require one of
// the operator roles; read endpoints accept any authenticated caller.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleViewer   = "viewer"
)
