package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário do hub: admin da rede, publisher de uma publicação
// local ou anunciante.
type User struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Lastname           string     `json:"lastname"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"password,omitempty"`
	Active             bool       `json:"active"`
	RoleID             int        `json:"role_id"`
	LinkedPublications []string   `json:"linked_publications"`
	Deleted            bool       `json:"deleted"`
	DeletedAt          *time.Time `json:"deleted_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// UpdateUserRequest carrega edições parciais de um usuário. Campos nulos
// são preservados.
type UpdateUserRequest struct {
	ID                 int       `json:"id"`
	Name               *string   `json:"name,omitempty"`
	Lastname           *string   `json:"lastname,omitempty"`
	Email              *string   `json:"email,omitempty"`
	Active             *bool     `json:"active,omitempty"`
	RoleID             *int      `json:"role_id,omitempty"`
	LinkedPublications *[]string `json:"linked_publications,omitempty"`
	Deleted            *bool     `json:"deleted,omitempty"`
}

// Claims são as claims do token JWT emitido no login.
type Claims struct {
	UserID           int
	UserName         string
	UserEmail        string
	UserRoleID       int
	UserPublications []string
	jwt.RegisteredClaims
}
