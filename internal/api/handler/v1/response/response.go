package response

import (
	"github.com/schoolhub/portal/internal/geo"
	"github.com/schoolhub/portal/internal/profile"
	"github.com/schoolhub/portal/internal/repository"
)

const (
	IconSuccess = "success"
	IconError   = "error"
	IconInfo    = "info"
)

var ErrUnreachable = repository.ErrUnreachable

type APIError = repository.APIError

// Notification mirrors the dialog the page pops up.
type Notification struct {
	Icon              string `json:"icon"`
	Title             string `json:"title"`
	Text              string `json:"text,omitempty"`
	ConfirmButtonText string `json:"confirm_button_text,omitempty"`
	TimerMS           int    `json:"timer_ms,omitempty"`
}

func Success(title, text string) Notification {
	return Notification{
		Icon:    IconSuccess,
		Title:   title,
		Text:    text,
		TimerMS: 1500,
	}
}

// Info is the dialog that presents a block of information to read.
func Info(title, text string) Notification {
	return Notification{
		Icon:              IconInfo,
		Title:             title,
		Text:              text,
		ConfirmButtonText: confirmButton,
	}
}

type LoginScreen struct {
	RememberedUsername string `json:"remembered_username"`
	RememberMe         bool   `json:"remember_me"`
	LoggedIn           bool   `json:"logged_in"`
}

// LoginResponse carries the success notification and, shown after it, the
// role summary dialog.
type LoginResponse struct {
	Notification Notification    `json:"notification"`
	RoleInfo     Notification    `json:"role_info"`
	Summary      profile.Summary `json:"summary"`
	SummaryText  string          `json:"summary_text"`
}

type LogoutResponse struct {
	Notification Notification `json:"notification"`
}

type ProvincesResponse struct {
	Options []geo.Option `json:"options"`
}

type AddressFormResponse struct {
	Form geo.View `json:"form"`
}

type AddressSubmitResponse struct {
	Notification Notification `json:"notification"`
	Form         geo.View     `json:"form"`
}
