package dto

// LoginRequest registers or refreshes a user record and issues a token.
// Identity assertion happens upstream; the service trusts this endpoint.
type LoginRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
	Name  string `json:"name" form:"name" binding:"required"`
}

type LoginDTO struct {
	UID   int64  `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

type UserDTO struct {
	UID   int64  `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
