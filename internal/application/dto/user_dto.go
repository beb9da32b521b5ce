package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse usuario expuesto al frontend (nunca incluye hashes).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginResponse token de sesión + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ChangePasswordRequest cambio de contraseña de login.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UnlockDashboardRequest candado secundario del panel de métricas.
type UnlockDashboardRequest struct {
	Password string `json:"password"`
}

// ChangeDashboardPasswordRequest establece o reemplaza el candado del dashboard.
type ChangeDashboardPasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// UnlockDashboardResponse resultado del desbloqueo.
type UnlockDashboardResponse struct {
	Success bool `json:"success"`
}
