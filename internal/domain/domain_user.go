package domain

import "context"

type User struct {
	UID   int64
	Email string
	Name  string
}

type UserRepository interface {
	GetByUID(ctx context.Context, uid int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) (*User, error)
	Update(ctx context.Context, user *User) error
}
