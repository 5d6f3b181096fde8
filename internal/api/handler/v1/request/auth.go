package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/schoolhub/portal/internal/domain"
)

type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required.Error("กรุณากรอกชื่อผู้ใช้"), validation.Length(1, 100)),
		validation.Field(&req.Password, validation.Required.Error("กรุณากรอกรหัสผ่าน"), validation.Length(1, 200)),
	)
}

func (req *LoginRequest) Credentials() domain.Credentials {
	return domain.Credentials{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	}
}
