package domain

// RoleTag is a role name as sent by the school API.
type RoleTag string

const (
	RoleAdmin     RoleTag = "admin"
	RoleTeacher   RoleTag = "teacher"
	RoleParent    RoleTag = "parent"
	RoleStudent   RoleTag = "student"
	RoleExecutive RoleTag = "executive"
	RoleRegistrar RoleTag = "registrar"
)

// ProfileOrder is the order profile blocks are rendered in.
var ProfileOrder = []RoleTag{
	RoleAdmin,
	RoleTeacher,
	RoleExecutive,
	RoleRegistrar,
	RoleParent,
	RoleStudent,
}

type User struct {
	Username   string    `json:"username"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	Roles      []RoleTag `json:"roles"`
	Profiles   Profiles  `json:"profiles"`
}

// Profiles holds at most one profile per role. A nil field means the
// server sent no profile for that role.
type Profiles struct {
	Admin     *AdminProfile     `json:"admin,omitempty"`
	Teacher   *TeacherProfile   `json:"teacher,omitempty"`
	Executive *ExecutiveProfile `json:"executive,omitempty"`
	Registrar *RegistrarProfile `json:"registrar,omitempty"`
	Parent    *ParentProfile    `json:"parent,omitempty"`
	Student   *StudentProfile   `json:"student,omitempty"`
}

// Kinds returns the roles that carry a profile, in ProfileOrder.
func (p Profiles) Kinds() []RoleTag {
	present := map[RoleTag]bool{
		RoleAdmin:     p.Admin != nil,
		RoleTeacher:   p.Teacher != nil,
		RoleExecutive: p.Executive != nil,
		RoleRegistrar: p.Registrar != nil,
		RoleParent:    p.Parent != nil,
		RoleStudent:   p.Student != nil,
	}

	kinds := make([]RoleTag, 0, len(ProfileOrder))
	for _, tag := range ProfileOrder {
		if present[tag] {
			kinds = append(kinds, tag)
		}
	}

	return kinds
}

type AdminProfile struct {
	ID string `json:"id"`
}

type TeacherProfile struct {
	ID      string     `json:"id"`
	Classes []ClassRef `json:"classes"`
}

type ExecutiveProfile struct {
	ID       string `json:"id"`
	Position string `json:"position"`
}

type RegistrarProfile struct {
	ID string `json:"id"`
}

type ParentProfile struct {
	ID       string   `json:"id"`
	Students []string `json:"students"`
}

type StudentProfile struct {
	Code      string               `json:"code"`
	Gender    string               `json:"gender"`
	Status    string               `json:"status"`
	Class     *ClassRef            `json:"class,omitempty"`
	Homerooms []HomeroomAssignment `json:"homerooms"`
	Parents   []string             `json:"parents"`
}

// ClassRef identifies a class either by level and room or by a
// pre-joined name, depending on the payload.
type ClassRef struct {
	Level string `json:"level,omitempty"`
	Room  string `json:"room,omitempty"`
	Name  string `json:"name,omitempty"`
}

// HomeroomAssignment links a class to the teacher responsible for it in a term.
// Teacher is nil when the assignment has no resolvable teacher user.
type HomeroomAssignment struct {
	Teacher *PersonName `json:"teacher,omitempty"`
	Term    *Term       `json:"term,omitempty"`
}

type PersonName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Term struct {
	Name         string `json:"name"`
	AcademicYear string `json:"academic_year"`
}
