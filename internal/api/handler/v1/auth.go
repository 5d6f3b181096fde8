package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolhub/portal/internal/api/handler/v1/request"
	"github.com/schoolhub/portal/internal/api/handler/v1/response"
	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/service"
	"github.com/schoolhub/portal/internal/session"
)

const (
	titleLoginSuccess  = "เข้าสู่ระบบสำเร็จ"
	titleLogoutSuccess = "ออกจากระบบสำเร็จ"
)

type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials, store session.Store) (service.LoginOutcome, error)
	Screen(store session.Store) service.LoginScreen
	Logout(store session.Store) error
}

// SessionStores hands out the durable client storage of a request.
type SessionStores interface {
	For(w http.ResponseWriter, r *http.Request) session.Store
}

type AuthHandler struct {
	svc      AuthService
	sessions SessionStores
}

func NewAuthHandler(svc AuthService, sessions SessionStores) *AuthHandler {
	return &AuthHandler{
		svc:      svc,
		sessions: sessions,
	}
}

// HandleLoginScreen godoc
// @Summary      Login screen state
// @Description  Returns the remembered username used to prefill the form.
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.LoginScreen
// @Router       /auth/login [get]
func (h *AuthHandler) HandleLoginScreen(ctx *gin.Context) {
	screen := h.svc.Screen(h.sessions.For(ctx.Writer, ctx.Request))

	ctx.JSON(http.StatusOK, response.LoginScreen{
		RememberedUsername: screen.RememberedUsername,
		RememberMe:         screen.RememberedUsername != "",
		LoggedIn:           screen.LoggedIn,
	})
}

// HandleLogin godoc
// @Summary      Login a user
// @Description  Authenticates against the school API, stores the session token and returns the role and profile summary.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err, request.Message(err)))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err, request.Message(err)))

		return
	}

	out, err := h.svc.Login(ctx.Request.Context(), req.Credentials(), h.sessions.For(ctx.Writer, ctx.Request))
	if err != nil {
		renderServiceErr(ctx, err, response.MsgLoginFailed, "")

		return
	}

	text := out.Summary.Text()
	ctx.JSON(http.StatusOK, response.LoginResponse{
		Notification: response.Success(titleLoginSuccess, out.Message),
		RoleInfo:     response.Info(out.Summary.Title, text),
		Summary:      out.Summary,
		SummaryText:  text,
	})
}

// HandleLogout godoc
// @Summary      Logout
// @Description  Forgets the session token. The remembered username is kept.
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.LogoutResponse
// @Failure      500      {object}   response.Err
// @Router       /auth/logout [post]
func (h *AuthHandler) HandleLogout(ctx *gin.Context) {
	if err := h.svc.Logout(h.sessions.For(ctx.Writer, ctx.Request)); err != nil {
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LogoutResponse{
		Notification: response.Success(titleLogoutSuccess, ""),
	})
}

// renderServiceErr maps service errors onto responses. fallback is shown
// when a failed remote call carries no message; unreachableText, when set,
// replaces it for transport failures.
func renderServiceErr(ctx *gin.Context, err error, fallback, unreachableText string) {
	var apiErr *service.APIError

	switch {
	case errors.Is(err, service.ErrInvalidFormat):
		response.RenderErr(ctx, response.ErrValidation(err, request.Message(err)))
	case errors.Is(err, service.ErrAddressIncomplete):
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrAddressIncomplete))
	case errors.Is(err, service.ErrNotLoggedIn):
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrNotLoggedIn))
	case errors.Is(err, service.ErrInFlight):
		response.RenderErr(ctx, response.ErrConflict(service.ErrInFlight))
	case errors.Is(err, service.ErrProvincesNotFound):
		response.RenderErr(ctx, response.ErrRemote(err, nil, "", service.ErrProvincesNotFound.Error()))
	case errors.As(err, &apiErr):
		response.RenderErr(ctx, response.ErrRemote(err, apiErr, unreachableText, fallback))
	case errors.Is(err, service.ErrUnreachable),
		errors.Is(err, service.ErrNoData),
		errors.Is(err, service.ErrMalformed):
		response.RenderErr(ctx, response.ErrRemote(err, nil, unreachableText, fallback))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
