package hall

import (
	"hallbook/infras/otel"
	"hallbook/internal/domains/hall/model/dto"
	"hallbook/internal/domains/hall/service"
	"hallbook/shared/constant"
	"hallbook/shared/failure"
	"hallbook/shared/validator"
	"hallbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgHallCreated = "Hall created"

type Handler struct {
	service service.Hall
	otel    otel.Otel
}

func New(service service.Hall, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/halls", handler.GetHalls)
	router.Post("/halls", handler.CreateHall)
}

// GetHalls lists every hall.
// @Summary List halls
// @Description Retrieve all halls in creation order.
// @Tags Hall
// @Produce json
// @Success 200 {array} dto.HallResponse
// @Failure 500 {object} response.Error
// @Router /halls [get]
func (handler *Handler) GetHalls(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHalls")
	defer scope.End()

	halls, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get halls")

		response.WithError(writer, err)

		return
	}

	scope.SetAttribute("halls.count", len(halls))

	response.WithJSON(writer, http.StatusOK, halls)
}

// CreateHall handles the creation of a new hall.
// @Summary Create a hall
// @Description Create a hall. Facilities and location default to an empty string.
// @Tags Hall
// @Accept json
// @Produce json
// @Param request body dto.CreateHallRequest true "Create Hall Request"
// @Success 201 {object} dto.CreateHallResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /halls [post]
func (handler *Handler) CreateHall(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHall")
	defer scope.End()

	req := dto.CreateHallRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)

		if failure.IsFailure(err) {
			log.Warn().Err(err).Msg("hall rejected")
		} else {
			log.Error().Err(err).Msg("failed to create hall")
		}

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Hall created")

	response.WithJSON(writer, http.StatusCreated, dto.CreateHallResponse{
		Message: msgHallCreated,
		HallID:  id,
	})
}
