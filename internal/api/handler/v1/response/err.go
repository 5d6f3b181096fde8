package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	titleError    = "เกิดข้อผิดพลาด"
	confirmButton = "ตกลง"

	MsgLoginFailed       = "ไม่สามารถเข้าสู่ระบบได้"
	MsgAddressFailed     = "ไม่สามารถบันทึกข้อมูลได้"
	MsgProvincesFailed   = "ไม่สามารถโหลดข้อมูลจังหวัดได้"
	MsgServerUnreachable = "ไม่สามารถติดต่อเซิร์ฟเวอร์ได้"
	MsgInternal          = "เกิดข้อผิดพลาดภายในระบบ"
)

// Err is an error response. The notification is what the page shows.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText   string       `json:"status_text"`
	Notification Notification `json:"notification"`
}

func (e *Err) Error() string {
	if e.Err == nil {
		return e.StatusText
	}

	return e.Err.Error()
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.StatusText,
			zap.Error(e.Err),
			zap.String("path", ctx.FullPath()),
			zap.String("request_id", ctx.Writer.Header().Get("X-Request-ID")),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(err error, status int, text string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
		Notification: Notification{
			Icon:              IconError,
			Title:             titleError,
			Text:              text,
			ConfirmButtonText: confirmButton,
		},
	}
}

// ErrBadRequest shows err's own text, for errors written for the user.
func ErrBadRequest(err error) *Err {
	return newErr(err, http.StatusBadRequest, err.Error())
}

func ErrValidation(err error, text string) *Err {
	return newErr(err, http.StatusBadRequest, text)
}

func ErrUnauthorized(err error) *Err {
	return newErr(err, http.StatusUnauthorized, err.Error())
}

func ErrConflict(err error) *Err {
	return newErr(err, http.StatusConflict, err.Error())
}

func ErrInternalServerError(err error) *Err {
	return newErr(err, http.StatusInternalServerError, MsgInternal)
}

// ErrRemote reports a failed call to the school API. The server message is
// preferred, then unreachableText when the API could not be reached, then
// fallback. An empty unreachableText skips that tier. Client errors of the
// school API keep their status, anything else is a bad gateway.
func ErrRemote(err error, apiErr *APIError, unreachableText, fallback string) *Err {
	status := http.StatusBadGateway
	text := fallback

	switch {
	case apiErr != nil:
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		if apiErr.Message != "" {
			text = apiErr.Message
		}
	case unreachableText != "" && errors.Is(err, ErrUnreachable):
		text = unreachableText
	}

	return newErr(err, status, text)
}
