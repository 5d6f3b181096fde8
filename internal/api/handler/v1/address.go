package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/schoolhub/portal/internal/api/handler/v1/request"
	"github.com/schoolhub/portal/internal/api/handler/v1/response"
	"github.com/schoolhub/portal/internal/domain"
	"github.com/schoolhub/portal/internal/geo"
	"github.com/schoolhub/portal/internal/service"
	"github.com/schoolhub/portal/internal/session"
)

const (
	titleAddressSaved = "บันทึกข้อมูลสำเร็จ"
	textAddressSaved  = "บันทึกข้อมูลที่อยู่เรียบร้อยแล้ว"
)

type GeoService interface {
	Provinces(ctx context.Context) ([]domain.Province, error)
	Form(ctx context.Context, provinceID, districtID, subdistrictID int) (geo.View, error)
}

type AddressService interface {
	Submit(ctx context.Context, in service.AddressInput, store session.Store) (service.SubmitResult, error)
}

type AddressHandler struct {
	geoSvc   GeoService
	svc      AddressService
	sessions SessionStores
}

func NewAddressHandler(geoSvc GeoService, svc AddressService, sessions SessionStores) *AddressHandler {
	return &AddressHandler{
		geoSvc:   geoSvc,
		svc:      svc,
		sessions: sessions,
	}
}

// HandleGetProvinces godoc
// @Summary      List provinces
// @Tags         address
// @Produce      json
// @Success      200      {object}   response.ProvincesResponse
// @Failure      502      {object}   response.Err
// @Router       /address/provinces [get]
func (h *AddressHandler) HandleGetProvinces(ctx *gin.Context) {
	provinces, err := h.geoSvc.Provinces(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, err, response.MsgProvincesFailed, "")

		return
	}

	options := make([]geo.Option, 0, len(provinces))
	for _, p := range provinces {
		options = append(options, geo.Option{ID: p.ID, Name: p.Name})
	}

	ctx.JSON(http.StatusOK, response.ProvincesResponse{Options: options})
}

// HandleGetForm godoc
// @Summary      Address form state
// @Description  Applies the province, district and subdistrict selection in order and returns the option lists and the derived postal code.
// @Tags         address
// @Produce      json
// @Param        province     query  int false "selected province id"
// @Param        district     query  int false "selected district id"
// @Param        subdistrict  query  int false "selected subdistrict id"
// @Success      200      {object}   response.AddressFormResponse
// @Failure      400      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /address/form [get]
func (h *AddressHandler) HandleGetForm(ctx *gin.Context) {
	var q request.AddressFormQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err, request.Message(err)))

		return
	}

	view, err := h.geoSvc.Form(ctx.Request.Context(), q.ProvinceID, q.DistrictID, q.SubdistrictID)
	if err != nil {
		renderServiceErr(ctx, err, response.MsgProvincesFailed, "")

		return
	}

	ctx.JSON(http.StatusOK, response.AddressFormResponse{Form: view})
}

// HandleSubmitAddress godoc
// @Summary      Save an address
// @Description  Validates the form, derives names and postal code from the selection and sends it to the school API with the session token.
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request   body      request.AddressRequest true "request body"
// @Success      200      {object}   response.AddressSubmitResponse
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      502      {object}   response.Err
// @Router       /address [post]
func (h *AddressHandler) HandleSubmitAddress(ctx *gin.Context) {
	var req request.AddressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrValidation(err, request.Message(err)))

		return
	}

	res, err := h.svc.Submit(ctx.Request.Context(), req.Input(), h.sessions.For(ctx.Writer, ctx.Request))
	if err != nil {
		renderServiceErr(ctx, err, response.MsgAddressFailed, response.MsgServerUnreachable)

		return
	}

	ctx.JSON(http.StatusOK, response.AddressSubmitResponse{
		Notification: response.Success(titleAddressSaved, textAddressSaved),
		Form:         res.Form,
	})
}
