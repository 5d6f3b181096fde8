package profile

import "github.com/schoolhub/portal/internal/domain"

const (
	NotSpecified = "ไม่ระบุ"
	NoData       = "ไม่มีข้อมูล"
	NoNationalID = "-"

	summaryTitle = "ข้อมูลผู้ใช้งาน"
)

var roleLabels = map[domain.RoleTag]string{
	domain.RoleAdmin:     "ผู้ดูแลระบบ",
	domain.RoleTeacher:   "ครู",
	domain.RoleParent:    "ผู้ปกครอง",
	domain.RoleStudent:   "นักเรียน",
	domain.RoleExecutive: "ผู้บริหาร",
	domain.RoleRegistrar: "เจ้าหน้าที่ทะเบียน",
}

// RoleLabel returns the localized name of a role. Unknown roles are
// returned as-is.
func RoleLabel(tag domain.RoleTag) string {
	if label, ok := roleLabels[tag]; ok {
		return label
	}

	return string(tag)
}
