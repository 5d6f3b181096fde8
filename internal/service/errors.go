package service

import (
	"errors"

	"github.com/schoolhub/portal/internal/repository"
)

// Error texts are shown to the user as-is.
var (
	ErrAddressIncomplete = errors.New("กรุณากรอกข้อมูลที่อยู่ให้ครบถ้วน")
	ErrNotLoggedIn       = errors.New("กรุณาเข้าสู่ระบบ")
	ErrInFlight          = errors.New("กำลังดำเนินการ กรุณารอสักครู่")
	ErrProvincesNotFound = errors.New("ไม่พบข้อมูลจังหวัด")
	ErrInvalidFormat     = errors.New("ข้อมูลไม่ถูกต้อง")

	errInvalidHomePhone      = errors.New("เบอร์โทรศัพท์บ้านไม่ถูกต้อง")
	errInvalidHouseRegNumber = errors.New("เลขทะเบียนบ้านไม่ถูกต้อง")
	errInvalidAddressType    = errors.New("ประเภทที่อยู่ไม่ถูกต้อง")

	ErrUnreachable = repository.ErrUnreachable
	ErrNoData      = repository.ErrNoData
	ErrMalformed   = repository.ErrMalformed
)

type APIError = repository.APIError
