package request

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-playground/validator/v10"
)

var fieldNames = map[string]string{
	"Username":      "ชื่อผู้ใช้",
	"Password":      "รหัสผ่าน",
	"ProvinceID":    "จังหวัด",
	"DistrictID":    "อำเภอ/เขต",
	"SubdistrictID": "ตำบล/แขวง",
}

// Message turns a binding or validation error into text for the user.
func Message(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		messages := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			messages = append(messages, fieldMessage(fe))
		}
		return strings.Join(messages, "; ")
	}

	var ozzoErrs validation.Errors
	if errors.As(err, &ozzoErrs) {
		// Errors renders "field: message"; only the messages are shown.
		fields := make([]string, 0, len(ozzoErrs))
		for field := range ozzoErrs {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		messages := make([]string, 0, len(fields))
		for _, field := range fields {
			messages = append(messages, ozzoErrs[field].Error())
		}
		return strings.Join(messages, "; ")
	}

	return "ข้อมูลไม่ถูกต้อง"
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	if name, ok := fieldNames[field]; ok {
		field = name
	}

	switch fe.Tag() {
	case "required":
		return "กรุณากรอก" + field
	case "min":
		return fmt.Sprintf("%s ต้องไม่น้อยกว่า %s", field, fe.Param())
	default:
		return field + " ไม่ถูกต้อง"
	}
}
