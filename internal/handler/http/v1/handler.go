package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/emergency_alert_system/internal/config"
	"github.com/shenikar/emergency_alert_system/internal/geo"
	"github.com/shenikar/emergency_alert_system/internal/models"
	"github.com/shenikar/emergency_alert_system/internal/notification"
	"github.com/shenikar/emergency_alert_system/internal/service"
)

type Handler struct {
	emergencyService service.EmergencyService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(emergencyService service.EmergencyService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		emergencyService: emergencyService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// @Summary Open an emergency session
// @Description Open a new emergency session for a device. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param session body OpenSessionRequest false "Device platform"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Unknown platform"
// @Router /sessions [post]
func (h *Handler) openSession(c *gin.Context) {
	var input OpenSessionRequest
	log := h.logger.WithField("method", "openSession")

	if c.Request.ContentLength != 0 {
		if !h.bindJSON(c, log, &input) {
			return
		}
	}

	session, err := h.emergencyService.OpenSession(c.Request.Context(), input.Platform)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToSessionResponse(session))
}

// @Summary Get session by ID
// @Description Get the current state of an emergency session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id} [get]
func (h *Handler) getSession(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getSession").WithField("id", id)

	session, err := h.emergencyService.GetSession(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Select emergency type
// @Description Select the emergency category and load first-aid guidance. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param type body SelectTypeRequest true "Emergency category"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Invalid session state"
// @Failure 422 {object} map[string]string "Unknown category"
// @Router /sessions/{id}/type [post]
func (h *Handler) selectType(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "selectType").WithField("id", id)

	var input SelectTypeRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.emergencyService.SelectType(c.Request.Context(), id, input.Category)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Confirm emergency
// @Description Confirm the emergency and start the countdown. The alert is sent when the countdown reaches zero. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param patient body ConfirmRequest false "Patient details"
// @Success 202 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Invalid session state"
// @Router /sessions/{id}/confirm [post]
func (h *Handler) confirm(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "confirm").WithField("id", id)

	var input ConfirmRequest
	if c.Request.ContentLength != 0 {
		if !h.bindJSON(c, log, &input) {
			return
		}
	}

	session, err := h.emergencyService.Confirm(c.Request.Context(), id, DTOToPatientDetails(input))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ModelToSessionResponse(session))
}

// @Summary Push a location fix
// @Description Report the device position or a denied location permission. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param location body LocationRequest true "Location fix"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /sessions/{id}/location [post]
func (h *Handler) pushLocation(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "pushLocation").WithField("id", id)

	var input LocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	var (
		session models.Session
		err     error
	)
	if input.Accuracy != nil {
		log = log.WithField("accuracy", geo.AccuracyDescription(*input.Accuracy))
	}
	if input.PermissionDenied {
		session, err = h.emergencyService.DenyLocation(c.Request.Context(), id)
	} else {
		p := models.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
		session, err = h.emergencyService.PushLocation(c.Request.Context(), id, p)
	}
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	log.Debug("Location fix received")
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Share location with personal contacts
// @Description Send the current session position to up to five personal phone numbers. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param share body ShareLocationRequest true "Phone numbers"
// @Success 200 {object} ShareLocationResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "No location fix yet"
// @Failure 422 {object} map[string]string "Invalid phone number"
// @Router /sessions/{id}/share [post]
func (h *Handler) shareLocation(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "shareLocation").WithField("id", id)

	var input ShareLocationRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	result, err := h.emergencyService.ShareLocation(c.Request.Context(), id, input.Phones)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToShareLocationResponse(result))
}

// @Summary Toggle live tracking
// @Description Start or stop live location tracking of an active emergency. Requires API key.
// @Tags Sessions
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Param tracking body TrackingRequest true "Tracking switch"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session is not active"
// @Router /sessions/{id}/tracking [post]
func (h *Handler) setTracking(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "setTracking").WithField("id", id)

	var input TrackingRequest
	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.emergencyService.SetTracking(c.Request.Context(), id, *input.Enabled)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Alert police
// @Description Send the emergency alert to the nearest police stations. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 202 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session is not active"
// @Router /sessions/{id}/police [post]
func (h *Handler) alertPolice(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "alertPolice").WithField("id", id)

	session, err := h.emergencyService.AlertPolice(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusAccepted, ModelToSessionResponse(session))
}

// @Summary Cancel emergency
// @Description Cancel the countdown or the active emergency. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session already finished"
// @Router /sessions/{id}/cancel [post]
func (h *Handler) cancel(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "cancel").WithField("id", id)

	session, err := h.emergencyService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Complete emergency
// @Description Mark the active emergency as responded. Requires API key.
// @Tags Sessions
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid session ID"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Session is not active"
// @Router /sessions/{id}/complete [post]
func (h *Handler) complete(c *gin.Context) {
	id, ok := parseSessionID(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "complete").WithField("id", id)

	session, err := h.emergencyService.Complete(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary List emergencies
// @Description List emergency records created since the service started
// @Tags Emergencies
// @Produce json
// @Success 200 {array} EmergencyResponse
// @Router /emergencies [get]
func (h *Handler) listEmergencies(c *gin.Context) {
	records := h.emergencyService.ListEmergencies(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToEmergencyResponses(records))
}

// @Summary Nearest facilities
// @Description Rank hospitals or police stations by distance from a point
// @Tags Facilities
// @Produce json
// @Param kind query string true "Facility kind" Enums(hospital, police)
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param count query int false "Number of facilities" default(3)
// @Success 200 {array} models.RankedFacility
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /facilities/nearest [get]
func (h *Handler) nearestFacilities(c *gin.Context) {
	var input NearestQuery
	log := h.logger.WithField("method", "nearestFacilities")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from := models.GeoPoint{Latitude: *input.Latitude, Longitude: *input.Longitude}
	facilities, err := h.emergencyService.NearestFacilities(c.Request.Context(), models.FacilityKind(input.Kind), from, input.Count)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(facilities))
}

// @Summary Police emergency contacts
// @Description List police emergency contacts by priority
// @Tags Facilities
// @Produce json
// @Success 200 {array} models.PoliceEmergencyContact
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /contacts [get]
func (h *Handler) emergencyContacts(c *gin.Context) {
	log := h.logger.WithField("method", "emergencyContacts")

	contacts, err := h.emergencyService.EmergencyContacts(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, nonNil(contacts))
}

// @Summary First-aid guidance
// @Description Get first-aid guidance and severity for an emergency category
// @Tags Triage
// @Produce json
// @Param category query string true "Emergency category"
// @Success 200 {object} models.TriageReport
// @Failure 400 {object} map[string]string "Missing category"
// @Router /triage [get]
func (h *Handler) triage(c *gin.Context) {
	var input TriageQuery
	log := h.logger.WithField("method", "triage")

	if err := c.ShouldBindQuery(&input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.emergencyService.Triage(c.Request.Context(), input.Category))
}

// @Summary Emergency categories
// @Description List emergency categories in menu order
// @Tags Triage
// @Produce json
// @Success 200 {array} string
// @Router /triage/categories [get]
func (h *Handler) triageCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.emergencyService.EmergencyCategories(c.Request.Context()))
}

// @Summary Retry queue
// @Description List messages whose hand-off to the SMS composer failed. Requires API key.
// @Tags Queue
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} QueuedMessageResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /queue [get]
func (h *Handler) listQueue(c *gin.Context) {
	items := h.emergencyService.QueuedMessages(c.Request.Context())
	c.JSON(http.StatusOK, ModelsToQueuedMessageResponses(items))
}

// @Summary Retry queued messages
// @Description Retry every pending message below the retry limit. Requires API key.
// @Tags Queue
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} RetryReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /queue/retry [post]
func (h *Handler) retryQueue(c *gin.Context) {
	report := h.emergencyService.RetryQueue(c.Request.Context())
	c.JSON(http.StatusOK, ModelToRetryReportResponse(report))
}

// @Summary Clear retry queue
// @Description Drop every queued message. Requires API key.
// @Tags Queue
// @Security ApiKeyAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /queue [delete]
func (h *Handler) clearQueue(c *gin.Context) {
	h.emergencyService.ClearQueue(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// bindJSON разбирает и валидирует тело запроса, при ошибке отвечает 400
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// writeError сопоставляет ошибку сервиса с HTTP-статусом
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		log.WithError(err).Warn("Session not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
	case errors.Is(err, service.ErrInvalidTransition):
		log.WithError(err).Warn("Operation not allowed in current state")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrLocationUnavailable):
		log.WithError(err).Warn("Location unavailable")
		c.JSON(http.StatusConflict, gin.H{"error": "location unavailable"})
	case errors.Is(err, service.ErrInvalidCategory),
		errors.Is(err, service.ErrInvalidPlatform),
		errors.Is(err, service.ErrInvalidFacilityKind),
		errors.Is(err, notification.ErrInvalidPhoneNumber):
		log.WithError(err).Warn("Unprocessable request")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInvalidCoordinates):
		log.WithError(err).Warn("Invalid coordinates")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
	default:
		log.WithError(err).Error("Request failed in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return uuid.UUID{}, false
	}
	return id, true
}
