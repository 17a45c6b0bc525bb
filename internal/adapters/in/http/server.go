// Package http is the inbound REST adapter. It translates HTTP requests into
// commands and queries, and domain results back into JSON payloads. Error
// mapping follows one rule set: validation failures become 400 with a generic
// Spanish message, missing records 404, bad credentials 401, and everything
// else 500 without leaking internals.
package http

import (
	"errors"
	"net/http"

	"logistica/internal/core/application/usecases/commands"
	"logistica/internal/core/application/usecases/queries"
	"logistica/internal/core/domain/model/delivery"
	"logistica/internal/core/domain/model/kernel"
	"logistica/internal/core/domain/model/user"
	"logistica/internal/core/ports"
	"logistica/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createDeliveryHandler   commands.CreateDeliveryCommandHandler
	updateDeliveryHandler   commands.UpdateDeliveryCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	deleteDeliveryHandler   commands.DeleteDeliveryCommandHandler
	changePasswordHandler   commands.ChangePasswordCommandHandler

	authenticateHandler     queries.AuthenticateUserQueryHandler
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler
	getByDateHandler        queries.GetDeliveriesByDateQueryHandler
	getStatsHandler         queries.GetDeliveryStatsQueryHandler
	searchHandler           queries.SearchDeliveryByDocumentQueryHandler

	tokens ports.TokenService
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDeliveryHandler commands.CreateDeliveryCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	deleteDeliveryHandler commands.DeleteDeliveryCommandHandler,
	changePasswordHandler commands.ChangePasswordCommandHandler,
	authenticateHandler queries.AuthenticateUserQueryHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
	getByDateHandler queries.GetDeliveriesByDateQueryHandler,
	getStatsHandler queries.GetDeliveryStatsQueryHandler,
	searchHandler queries.SearchDeliveryByDocumentQueryHandler,
	tokens ports.TokenService,
) *Server {
	return &Server{
		createDeliveryHandler:   createDeliveryHandler,
		updateDeliveryHandler:   updateDeliveryHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		deleteDeliveryHandler:   deleteDeliveryHandler,
		changePasswordHandler:   changePasswordHandler,
		authenticateHandler:     authenticateHandler,
		getAllDeliveriesHandler: getAllDeliveriesHandler,
		getByDateHandler:        getByDateHandler,
		getStatsHandler:         getStatsHandler,
		searchHandler:           searchHandler,
		tokens:                  tokens,
	}
}

// RegisterRoutes wires all REST routes onto the echo instance. Delivery and
// password routes sit behind the bearer middleware; login and the public
// tracking search do not.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	auth := BearerAuth(s.tokens)

	e.POST("/auth/login", s.Login)
	e.POST("/auth/change-password", s.ChangePassword, auth)

	e.GET("/deliveries", s.GetDeliveries, auth)
	e.GET("/deliveries/by-date/:date", s.GetDeliveriesByDate, auth)
	e.GET("/deliveries/stats", s.GetDeliveryStats, auth)
	e.POST("/deliveries", s.CreateDelivery, auth)
	e.PUT("/deliveries/:id", s.UpdateDelivery, auth)
	e.PATCH("/deliveries/:id/complete", s.CompleteDelivery, auth)
	e.DELETE("/deliveries/:id", s.DeleteDelivery, auth)

	e.POST("/public/search", s.SearchDelivery)
}

// Login handles POST /auth/login - exchanges credentials for a bearer token.
func (s *Server) Login(c echo.Context) error {
	var request LoginRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos inválidos"})
	}

	query, err := queries.NewAuthenticateUserQuery(request.Username, request.Password)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Usuario y contraseña son requeridos"})
	}

	result, err := s.authenticateHandler.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Credenciales inválidas"})
		}
		return internalError(c)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Token: result.Token,
		User: UserResponse{
			ID:       result.UserID.String(),
			Username: result.Username,
		},
	})
}

// ChangePassword handles POST /auth/change-password for the authenticated operator.
func (s *Server) ChangePassword(c echo.Context) error {
	claims, ok := ClaimsFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token requerido"})
	}

	var request ChangePasswordRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos inválidos"})
	}

	cmd, err := commands.NewChangePasswordCommand(claims.UserID, request.CurrentPassword, request.NewPassword)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Contraseña actual y nueva son requeridas"})
	}

	if err = s.changePasswordHandler.Handle(c.Request().Context(), cmd); err != nil {
		switch {
		case errors.Is(err, user.ErrPasswordMismatch):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Contraseña actual incorrecta"})
		case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsOutOfRange):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "La nueva contraseña debe tener al menos 6 caracteres"})
		case errors.Is(err, errs.ErrObjectNotFound):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Token inválido"})
		default:
			return internalError(c)
		}
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Contraseña actualizada correctamente"})
}

// GetDeliveries handles GET /deliveries - the full list, newest scheduled first.
func (s *Server) GetDeliveries(c echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery()

	deliveries, err := s.getAllDeliveriesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusOK, deliveryListResponse(deliveries))
}

// GetDeliveriesByDate handles GET /deliveries/by-date/:date.
func (s *Server) GetDeliveriesByDate(c echo.Context) error {
	day, err := kernel.NewDay(c.Param("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Fecha inválida"})
	}

	query, err := queries.NewGetDeliveriesByDateQuery(day)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Fecha inválida"})
	}

	deliveries, err := s.getByDateHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusOK, deliveryListResponse(deliveries))
}

// GetDeliveryStats handles GET /deliveries/stats - the delayed/unpaid dashboard.
func (s *Server) GetDeliveryStats(c echo.Context) error {
	query, err := queries.NewGetDeliveryStatsQuery(kernel.Today())
	if err != nil {
		return internalError(c)
	}

	stats, err := s.getStatsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return internalError(c)
	}

	total := stats.Unpaid.TotalAmount
	return c.JSON(http.StatusOK, StatsResponse{
		Delayed: StatsGroupResponse{
			Count:      stats.Delayed.Count,
			Deliveries: deliveryListResponse(stats.Delayed.Deliveries),
		},
		Unpaid: StatsGroupResponse{
			Count:       stats.Unpaid.Count,
			TotalAmount: &total,
			Deliveries:  deliveryListResponse(stats.Unpaid.Deliveries),
		},
	})
}

// CreateDelivery handles POST /deliveries - creates a new delivery record.
func (s *Server) CreateDelivery(c echo.Context) error {
	var request CreateDeliveryRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos inválidos"})
	}

	params, err := deliveryParamsFromRequest(request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos de entrega inválidos"})
	}

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), params)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos de entrega inválidos"})
	}

	created, err := s.createDeliveryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return internalError(c)
	}

	return c.JSON(http.StatusCreated, deliveryResponseFromAggregate(created))
}

// UpdateDelivery handles PUT /deliveries/:id - partial update of a record.
func (s *Server) UpdateDelivery(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido"})
	}

	var request UpdateDeliveryRequest
	if err = c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos inválidos"})
	}

	patch, err := deliveryPatchFromRequest(request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos de entrega inválidos"})
	}

	cmd, err := commands.NewUpdateDeliveryCommand(id, patch)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos de entrega inválidos"})
	}

	updated, err := s.updateDeliveryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entrega no encontrada"})
		case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos de entrega inválidos"})
		default:
			return internalError(c)
		}
	}

	return c.JSON(http.StatusOK, deliveryResponseFromAggregate(updated))
}

// CompleteDelivery handles PATCH /deliveries/:id/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido"})
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido"})
	}

	completed, err := s.completeDeliveryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entrega no encontrada"})
		}
		return internalError(c)
	}

	return c.JSON(http.StatusOK, deliveryResponseFromAggregate(completed))
}

// DeleteDelivery handles DELETE /deliveries/:id.
func (s *Server) DeleteDelivery(c echo.Context) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido"})
	}

	cmd, err := commands.NewDeleteDeliveryCommand(id)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Identificador inválido"})
	}

	if err = s.deleteDeliveryHandler.Handle(c.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entrega no encontrada"})
		}
		return internalError(c)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Entrega eliminada correctamente"})
}

// SearchDelivery handles POST /public/search - the unauthenticated tracking lookup.
func (s *Server) SearchDelivery(c echo.Context) error {
	var request SearchRequest
	if err := c.Bind(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Datos inválidos"})
	}

	query, err := queries.NewSearchDeliveryByDocumentQuery(request.DocumentNumber)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Número de documento requerido"})
	}

	result, err := s.searchHandler.Handle(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Entrega no encontrada"})
		}
		return internalError(c)
	}

	return c.JSON(http.StatusOK, publicDeliveryResponse(result))
}

func internalError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Error interno del servidor"})
}

func deliveryParamsFromRequest(request CreateDeliveryRequest) (delivery.Params, error) {
	scheduledDate, err := kernel.NewDay(request.ScheduledDate)
	if err != nil {
		return delivery.Params{}, err
	}

	scheduledTime, err := kernel.NewTimeOfDay(request.ScheduledTime)
	if err != nil {
		return delivery.Params{}, err
	}

	return delivery.Params{
		Address:              request.Address,
		Material:             request.Material,
		DocumentNumber:       request.DocumentNumber,
		Transporter:          request.Transporter,
		ScheduledDate:        scheduledDate,
		ScheduledTime:        scheduledTime,
		CustomerObservations: request.CustomerObservations,
		CustomerPhone:        request.CustomerPhone,
		HasPickup:            request.HasPickup,
		PickupItems:          request.PickupItems,
		DeliveredMaterials:   request.DeliveredMaterials,
		Status:               delivery.Status(request.Status),
		IsPaid:               request.IsPaid,
		PaymentAmount:        request.PaymentAmount,
	}, nil
}

func deliveryPatchFromRequest(request UpdateDeliveryRequest) (delivery.Patch, error) {
	patch := delivery.Patch{
		Address:              request.Address,
		Material:             request.Material,
		DocumentNumber:       request.DocumentNumber,
		Transporter:          request.Transporter,
		CustomerObservations: request.CustomerObservations,
		CustomerPhone:        request.CustomerPhone,
		HasPickup:            request.HasPickup,
		PickupItems:          request.PickupItems,
		DeliveredMaterials:   request.DeliveredMaterials,
		IsPaid:               request.IsPaid,
		PaymentAmount:        request.PaymentAmount,
	}

	if request.ScheduledDate != nil {
		day, err := kernel.NewDay(*request.ScheduledDate)
		if err != nil {
			return delivery.Patch{}, err
		}
		patch.ScheduledDate = &day
	}

	if request.ScheduledTime != nil {
		timeOfDay, err := kernel.NewTimeOfDay(*request.ScheduledTime)
		if err != nil {
			return delivery.Patch{}, err
		}
		patch.ScheduledTime = &timeOfDay
	}

	if request.Status != nil {
		status := delivery.Status(*request.Status)
		patch.Status = &status
	}

	return patch, nil
}
