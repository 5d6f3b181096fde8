package repository

import (
	"context"
	"fmt"

	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/repository/dao"
)

var (
	ErrUnreachable = dao.ErrUnreachable
	ErrNoData      = dao.ErrNoData
	ErrMalformed   = dao.ErrMalformed
)

type APIError = dao.APIError

type UserDAO interface {
	Login(ctx context.Context, req dao.LoginRequest) (dao.LoginData, string, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Login(ctx context.Context, username, password string) (domain.LoginResult, error) {
	data, msg, err := r.dao.Login(ctx, dao.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return domain.LoginResult{}, fmt.Errorf("r.dao.Login -> %w", err)
	}

	return domain.LoginResult{
		Message: msg,
		Token:   data.Token,
		User:    r.daoToDomain(data.User),
	}, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	roles := make([]domain.RoleTag, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, domain.RoleTag(role))
	}

	return domain.User{
		Username:   string(u.Username),
		FirstName:  string(u.FirstName),
		LastName:   string(u.LastName),
		Email:      string(u.Email),
		Phone:      string(u.Phone),
		NationalID: string(u.NationalID),
		Roles:      roles,
		Profiles:   r.profilesDaoToDomain(u.Profiles),
	}
}

func (r *UserRepository) profilesDaoToDomain(p dao.Profiles) domain.Profiles {
	var profiles domain.Profiles

	if p.Admin != nil {
		profiles.Admin = &domain.AdminProfile{ID: string(p.Admin.ID)}
	}

	if p.Teacher != nil {
		classes := make([]domain.ClassRef, 0, len(p.Teacher.Classes))
		for _, tc := range p.Teacher.Classes {
			ref := domain.ClassRef{Name: string(tc.ClassName)}
			if tc.Class != nil {
				ref = r.classDaoToDomain(*tc.Class)
				if ref.Name == "" {
					ref.Name = string(tc.ClassName)
				}
			}
			classes = append(classes, ref)
		}
		profiles.Teacher = &domain.TeacherProfile{ID: string(p.Teacher.ID), Classes: classes}
	}

	if p.Executive != nil {
		profiles.Executive = &domain.ExecutiveProfile{
			ID:       string(p.Executive.ID),
			Position: string(p.Executive.Position),
		}
	}

	if p.Registrar != nil {
		profiles.Registrar = &domain.RegistrarProfile{ID: string(p.Registrar.ID)}
	}

	if p.Parent != nil {
		students := make([]string, 0, len(p.Parent.Students))
		for _, s := range p.Parent.Students {
			students = append(students, string(s.Name))
		}
		profiles.Parent = &domain.ParentProfile{ID: string(p.Parent.ID), Students: students}
	}

	if p.Student != nil {
		profiles.Student = r.studentDaoToDomain(*p.Student)
	}

	return profiles
}

func (r *UserRepository) studentDaoToDomain(s dao.Student) *domain.StudentProfile {
	student := &domain.StudentProfile{
		Code:   string(s.Code),
		Gender: string(s.Gender),
		Status: string(s.Status),
	}

	if s.Class != nil {
		class := r.classDaoToDomain(*s.Class)
		student.Class = &class

		// class -> homeroom assignment -> teacher -> user
		for _, hr := range s.Class.Homeroom {
			var assignment domain.HomeroomAssignment
			if hr.Teacher != nil && hr.Teacher.User != nil {
				assignment.Teacher = &domain.PersonName{
					FirstName: string(hr.Teacher.User.FirstName),
					LastName:  string(hr.Teacher.User.LastName),
				}
			}
			if hr.Term != nil {
				assignment.Term = &domain.Term{
					Name:         string(hr.Term.Name),
					AcademicYear: string(hr.Term.AcademicYear),
				}
			}
			student.Homerooms = append(student.Homerooms, assignment)
		}
	}

	for _, p := range s.Parents {
		student.Parents = append(student.Parents, string(p.Name))
	}

	return student
}

func (r *UserRepository) classDaoToDomain(c dao.Class) domain.ClassRef {
	return domain.ClassRef{
		Level: string(c.Level),
		Room:  string(c.Room),
		Name:  string(c.Name),
	}
}
