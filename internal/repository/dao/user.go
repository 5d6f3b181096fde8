package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginData struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	Username   Text     `json:"user_uname"`
	FirstName  Text     `json:"user_fname"`
	LastName   Text     `json:"user_lname"`
	Email      Text     `json:"user_email"`
	Phone      Text     `json:"user_phone"`
	NationalID Text     `json:"user_nat_id"`
	Roles      []string `json:"roles"`
	Profiles   Profiles `json:"profiles"`
}

type Profiles struct {
	Admin     *Admin     `json:"admin"`
	Teacher   *Teacher   `json:"teacher"`
	Executive *Executive `json:"executive"`
	Registrar *Registrar `json:"registrar"`
	Parent    *Parent    `json:"parent"`
	Student   *Student   `json:"student"`
}

type Admin struct {
	ID Text `json:"adm_id"`
}

type Teacher struct {
	ID      Text           `json:"tea_id"`
	Classes []TeacherClass `json:"teacher_classes"`
}

type TeacherClass struct {
	Class     *Class `json:"class"`
	ClassName Text   `json:"class_name"`
}

type Class struct {
	Level    Text             `json:"class_level"`
	Room     Text             `json:"class_room"`
	Name     Text             `json:"class_name"`
	Homeroom []HomeroomRecord `json:"SchTeacherClass"`
}

type HomeroomRecord struct {
	Teacher *struct {
		User *PersonName `json:"user"`
	} `json:"teacher"`
	Term *Term `json:"term"`
}

type PersonName struct {
	FirstName Text `json:"user_fname"`
	LastName  Text `json:"user_lname"`
}

type Term struct {
	Name         Text `json:"term_name"`
	AcademicYear Text `json:"academic_year"`
}

type Executive struct {
	ID       Text `json:"exec_id"`
	Position Text `json:"position"`
}

type Registrar struct {
	ID Text `json:"reg_id"`
}

type Parent struct {
	ID       Text `json:"par_id"`
	Students []struct {
		Name Text `json:"student_name"`
	} `json:"students"`
}

type Student struct {
	Code    Text   `json:"std_code"`
	Gender  Text   `json:"std_gend"`
	Status  Text   `json:"std_state"`
	Class   *Class `json:"class"`
	Parents []struct {
		Name Text `json:"parent_name"`
	} `json:"parents"`
}

type UserDAO struct {
	client *Client
}

func NewUserDAO(client *Client) *UserDAO {
	return &UserDAO{
		client: client,
	}
}

// Login posts the credentials to /user/login and returns the server
// message along with the token and user.
func (d *UserDAO) Login(ctx context.Context, req LoginRequest) (LoginData, string, error) {
	env, err := d.client.do(ctx, http.MethodPost, "/user/login", "", req)
	if err != nil {
		return LoginData{}, "", err
	}

	var data LoginData
	if err = json.Unmarshal(env.Data, &data); err != nil {
		return LoginData{}, "", fmt.Errorf("json.Unmarshal login data -> %w: %w", ErrMalformed, err)
	}
	if data.Token == "" {
		return LoginData{}, "", fmt.Errorf("login data without token: %w", ErrNoData)
	}

	return data, env.Message, nil
}
