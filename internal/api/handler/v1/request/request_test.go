package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/service"
)

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{Username: "teacher01", Password: "pass123", RememberMe: true}
	require.NoError(t, req.Validate())
	assert.Equal(t, domain.Credentials{Username: "teacher01", Password: "pass123", RememberMe: true}, req.Credentials())

	err := (&LoginRequest{Password: "x"}).Validate()
	require.Error(t, err)
	assert.Equal(t, "กรุณากรอกชื่อผู้ใช้", Message(err))
}

func TestMessage_AddressFormatErrors(t *testing.T) {
	err := service.ValidateFormats(domain.AddressDraft{
		HomePhone:      "1234",
		HouseRegNumber: "12--34",
		Type:           domain.AddressCurrent,
	})
	require.Error(t, err)

	assert.Equal(t, "เบอร์โทรศัพท์บ้านไม่ถูกต้อง; เลขทะเบียนบ้านไม่ถูกต้อง", Message(err))
}

func TestAddressRequest_Input(t *testing.T) {
	req := AddressRequest{FreeText: "99", ProvinceID: 1, DistrictID: 10, SubdistrictID: 100, Type: "permanent"}

	in := req.Input()

	assert.Equal(t, 100, in.SubdistrictID)
	assert.Equal(t, domain.AddressPermanent, in.Type)
}

func TestMessage_BindingErrors(t *testing.T) {
	v := validator.New()
	v.SetTagName("binding")
	err := v.Struct(LoginRequest{})

	assert.Equal(t, "กรุณากรอกชื่อผู้ใช้; กรุณากรอกรหัสผ่าน", Message(err))
}
