// Package profile turns a logged-in user into the localized summary shown
// after login. Rendering is pure and never fails on missing data.
package profile

import (
	"strings"

	"github.com/schoolhub/portal/internal/domain"
)

const (
	lineSep  = "\n"
	blockSep = "\n\n"
)

// Summary is the localized role and profile overview of a logged-in user.
type Summary struct {
	Title      string   `json:"title"`
	Username   string   `json:"username"`
	NationalID string   `json:"national_id"`
	Roles      []string `json:"roles"`
	Details    string   `json:"details"`
}

// Text renders the whole summary as one block of text.
func (s Summary) Text() string {
	lines := []string{
		"ชื่อผู้ใช้: " + s.Username,
		"เลขประจำตัวประชาชน: " + s.NationalID,
		"สิทธิ์การใช้งาน:",
	}
	for _, role := range s.Roles {
		lines = append(lines, "- "+role)
	}

	text := strings.Join(lines, lineSep)
	if s.Details != "" {
		text += blockSep + s.Details
	}

	return text
}

// Render builds the summary of user. Missing data yields sentinels, never errors.
func Render(user domain.User) Summary {
	roles := make([]string, 0, len(user.Roles))
	for _, tag := range user.Roles {
		roles = append(roles, RoleLabel(tag))
	}

	nationalID := user.NationalID
	if nationalID == "" {
		nationalID = NoNationalID
	}

	return Summary{
		Title:      summaryTitle,
		Username:   user.Username,
		NationalID: nationalID,
		Roles:      roles,
		Details:    Details(user),
	}
}

// Details renders one block per profile present on the user, in
// domain.ProfileOrder, separated by a blank line.
func Details(user domain.User) string {
	r := renderer{
		fullName: fullName(user.FirstName, user.LastName),
		contact:  contactLines(user),
	}

	p := user.Profiles
	blocks := make([]string, 0, len(domain.ProfileOrder))
	for _, kind := range p.Kinds() {
		switch kind {
		case domain.RoleAdmin:
			blocks = append(blocks, r.admin(p.Admin))
		case domain.RoleTeacher:
			blocks = append(blocks, r.teacher(p.Teacher))
		case domain.RoleExecutive:
			blocks = append(blocks, r.executive(p.Executive))
		case domain.RoleRegistrar:
			blocks = append(blocks, r.registrar(p.Registrar))
		case domain.RoleParent:
			blocks = append(blocks, r.parent(p.Parent))
		case domain.RoleStudent:
			blocks = append(blocks, r.student(p.Student))
		}
	}

	return strings.Join(blocks, blockSep)
}

type renderer struct {
	fullName string
	contact  []string
}

func (r renderer) block(heading string, fields ...string) string {
	lines := make([]string, 0, len(fields)+len(r.contact)+2)
	lines = append(lines, heading, "ชื่อ-นามสกุล: "+r.fullName)
	lines = append(lines, r.contact...)
	lines = append(lines, fields...)

	return strings.Join(lines, lineSep)
}

func (r renderer) admin(p *domain.AdminProfile) string {
	return r.block("ข้อมูลผู้ดูแลระบบ:",
		"รหัสผู้ดูแลระบบ: "+p.ID,
	)
}

func (r renderer) teacher(p *domain.TeacherProfile) string {
	labels := make([]string, 0, len(p.Classes))
	for _, class := range p.Classes {
		if label := teacherClassLabel(class); label != "" {
			labels = append(labels, label)
		}
	}

	return r.block("ข้อมูลครู:",
		"รหัสครู: "+p.ID,
		"ประจำชั้น: "+orSentinel(strings.Join(labels, ", "), NotSpecified),
	)
}

func (r renderer) executive(p *domain.ExecutiveProfile) string {
	return r.block("ข้อมูลผู้บริหาร:",
		"รหัสผู้บริหาร: "+p.ID,
		"ตำแหน่ง: "+p.Position,
	)
}

func (r renderer) registrar(p *domain.RegistrarProfile) string {
	return r.block("ข้อมูลเจ้าหน้าที่ทะเบียน:",
		"รหัสเจ้าหน้าที่: "+p.ID,
	)
}

func (r renderer) parent(p *domain.ParentProfile) string {
	return r.block("ข้อมูลผู้ปกครอง:",
		"รหัสผู้ปกครอง: "+p.ID,
		"นักเรียนในปกครอง:",
		orSentinel(bulletList(p.Students), NoData),
	)
}

func (r renderer) student(p *domain.StudentProfile) string {
	level, room := NotSpecified, ""
	if p.Class != nil {
		level = orSentinel(p.Class.Level, NotSpecified)
		room = p.Class.Room
	}

	teachers := make([]string, 0, len(p.Homerooms))
	for _, assignment := range p.Homerooms {
		if assignment.Teacher == nil {
			continue
		}
		teachers = append(teachers, fullName(assignment.Teacher.FirstName, assignment.Teacher.LastName))
	}

	return r.block("ข้อมูลนักเรียน:",
		"รหัสนักเรียน: "+p.Code,
		"เพศ: "+p.Gender,
		"สถานะการศึกษา: "+p.Status,
		"ระดับชั้น: "+level+" ห้อง "+room,
		"ครูประจำชั้น:",
		orSentinel(bulletList(teachers), NotSpecified),
		"ภาคเรียน: "+academicTerm(p.Homerooms),
		"ผู้ปกครอง:",
		orSentinel(bulletList(p.Parents), NotSpecified),
	)
}

// teacherClassLabel prefers the level/room pair and falls back to the
// pre-joined class name.
func teacherClassLabel(class domain.ClassRef) string {
	if class.Level == "" && class.Room == "" {
		return class.Name
	}

	return class.Level + " /" + class.Room
}

// academicTerm describes the term of the first homeroom assignment only.
func academicTerm(homerooms []domain.HomeroomAssignment) string {
	if len(homerooms) == 0 || homerooms[0].Term == nil {
		return NotSpecified
	}
	term := homerooms[0].Term

	return term.Name + " ปีการศึกษา " + term.AcademicYear
}

func contactLines(user domain.User) []string {
	var lines []string
	if user.Email != "" {
		lines = append(lines, "อีเมล: "+user.Email)
	}
	if user.Phone != "" {
		lines = append(lines, "เบอร์โทร: "+user.Phone)
	}

	return lines
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func bulletList(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}

	return strings.Join(lines, lineSep)
}

func orSentinel(s, sentinel string) string {
	if s == "" {
		return sentinel
	}

	return s
}
