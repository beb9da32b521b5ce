package entity

// User representa un usuario del POS (cajero o administrador).
// DashboardPasswordHash es un segundo candado opcional para el panel de métricas.
type User struct {
	ID                    int64
	Username              string  // único, sensible a mayúsculas
	PasswordHash          string  // bcrypt hash, nunca plano en dominio después de persistir
	DashboardPasswordHash *string // nil cuando no está configurado
}
