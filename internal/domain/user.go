package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfis de acesso dos usuários do CRM.
const (
	RoleAdmin    = 1
	RoleManager  = 2
	RoleSalesRep = 3
)

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"password"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	VendorCode   *int       `json:"cod_vendedor"`
	AvatarURL    *string    `json:"avatar_url"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsAdmin indica se o usuário enxerga dados de todos os vendedores.
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}

type UpdateUserRequest struct {
	ID         int     `json:"id"`
	Name       *string `json:"name"`
	Lastname   *string `json:"lastname"`
	Email      *string `json:"email"`
	Active     *bool   `json:"active"`
	RoleID     *int    `json:"role_id"`
	VendorCode *int    `json:"cod_vendedor"`
	AvatarURL  *string `json:"avatar_url"`
	Deleted    *bool   `json:"deleted"`
}

type Claims struct {
	UserID         int
	UserName       string
	UserLastname   string
	UserEmail      string
	UserActive     bool
	UserRoleID     int
	UserVendorCode *int
	jwt.RegisteredClaims
}

// IsAdmin indica se o portador do token tem perfil de administrador.
func (c *Claims) IsAdmin() bool {
	return c.UserRoleID == RoleAdmin
}
