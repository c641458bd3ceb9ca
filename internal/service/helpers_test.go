package service

import (
	"errors"

	"github.com/tams-cso/tams-club-cal-sub000/pkg/code"

	"gorm.io/gorm"
)

func errNotFound() error {
	return gorm.ErrRecordNotFound
}

func asCode(err error, target **code.Code) bool {
	return errors.As(err, target)
}
