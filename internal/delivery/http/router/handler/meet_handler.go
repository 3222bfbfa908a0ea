package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"meetfind/internal/delivery/http/middleware"
	"meetfind/internal/delivery/http/response"
	"meetfind/internal/domain/entity"
	"meetfind/internal/domain/service"
	"meetfind/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// createMeetRequest is the wire payload for meet creation.
type createMeetRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Time        string  `json:"time"`
	Creator     string  `json:"creator" validate:"required"`
}

// participantRequest is the wire payload for join and leave operations.
type participantRequest struct {
	MeetID int64  `json:"meet_id" validate:"required"`
	User   string `json:"user" validate:"required"`
}

// meetResponse is the wire shape of a meet. Times use the legacy layout
// without a zone designator.
type meetResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Time         string   `json:"time"`
	Creator      string   `json:"creator"`
	TimeCreated  string   `json:"time_created"`
	Participants []string `json:"participants,omitempty"`
}

func toMeetResponse(meet *entity.Meet) meetResponse {
	return meetResponse{
		ID:          meet.ID,
		Name:        meet.Name,
		Description: meet.Description,
		Latitude:    meet.Latitude,
		Longitude:   meet.Longitude,
		Time:        meet.TimeScheduled.Format(service.TimeScheduledLayout),
		Creator:     meet.CreatorUsername,
		TimeCreated: meet.TimeCreated.Format(service.TimeScheduledLayout),
	}
}

// MeetHandler holds dependencies for meet-related handlers.
type MeetHandler struct {
	meetUC usecase.MeetUsecase
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewMeetHandler is the constructor for MeetHandler, injected by Fx.
func NewMeetHandler(meetUC usecase.MeetUsecase, userUC usecase.UserUsecase, logger *slog.Logger) *MeetHandler {
	return &MeetHandler{
		meetUC: meetUC,
		userUC: userUC,
		logger: logger,
	}
}

// CreateMeet handles meet creation. The token must belong to the declared
// creator.
func (h *MeetHandler) CreateMeet(c echo.Context) error {
	var input createMeetRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meet input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meet input")
	}

	token := middleware.TokenFromContext(c)
	if !h.userUC.IsTokenOwner(c.Request().Context(), token, input.Creator) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Token does not belong to the meet creator")
	}

	meet, err := h.meetUC.CreateMeet(c.Request().Context(), usecase.CreateMeetInput{
		Name:            input.Name,
		Description:     input.Description,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		Time:            input.Time,
		CreatorUsername: input.Creator,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMeetResponse(meet), "Meet created successfully")
}

// ListMeets returns all meets ordered by id.
func (h *MeetHandler) ListMeets(c echo.Context) error {
	meets, err := h.meetUC.ListMeets(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]meetResponse, 0, len(meets))
	for _, meet := range meets {
		result = append(result, toMeetResponse(meet))
	}

	return response.Success(c, http.StatusOK, result, "")
}

// GetMeet returns a single meet by id, including its participants.
func (h *MeetHandler) GetMeet(c echo.Context) error {
	id, err := parseMeetID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Meet id must be an integer")
	}

	ctx := c.Request().Context()
	meet, err := h.meetUC.GetMeetByID(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	participants, err := h.meetUC.ListParticipants(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	result := toMeetResponse(meet)
	result.Participants = participants

	return response.Success(c, http.StatusOK, result, "")
}

// DeleteMeet removes a meet. Only the creator's token may delete it.
func (h *MeetHandler) DeleteMeet(c echo.Context) error {
	id, err := parseMeetID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Meet id must be an integer")
	}

	ctx := c.Request().Context()
	meet, err := h.meetUC.GetMeetByID(ctx, id)
	if err != nil {
		return errors.WithStack(err)
	}

	token := middleware.TokenFromContext(c)
	if !h.userUC.IsTokenOwner(ctx, token, meet.CreatorUsername) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Only the creator can delete a meet")
	}

	if err := h.meetUC.DeleteMeet(ctx, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "deleted"}, "Meet deleted successfully")
}

// AddParticipant joins a user to a meet. The token must belong to the joining
// user.
func (h *MeetHandler) AddParticipant(c echo.Context) error {
	var input participantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid participant input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid participant input")
	}

	ctx := c.Request().Context()
	token := middleware.TokenFromContext(c)
	if !h.userUC.IsTokenOwner(ctx, token, input.User) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Token does not belong to the joining user")
	}

	if err := h.meetUC.AddParticipant(ctx, input.MeetID, input.User); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "joined"}, "Participant added successfully")
}

// RemoveParticipant removes a user from a meet. The token must belong to the
// leaving user.
func (h *MeetHandler) RemoveParticipant(c echo.Context) error {
	var input participantRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid participant input")
	}
	if err := c.Validate(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid participant input")
	}

	ctx := c.Request().Context()
	token := middleware.TokenFromContext(c)
	if !h.userUC.IsTokenOwner(ctx, token, input.User) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Token does not belong to the leaving user")
	}

	if err := h.meetUC.RemoveParticipant(ctx, input.MeetID, input.User); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "left"}, "Participant removed successfully")
}

// ListParticipants returns the usernames joined to a meet.
func (h *MeetHandler) ListParticipants(c echo.Context) error {
	id, err := parseMeetID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Meet id must be an integer")
	}

	participants, err := h.meetUC.ListParticipants(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, participants, "")
}

// ListUserMeets returns the ids of the meets the given user participates in.
// The token must belong to that user.
func (h *MeetHandler) ListUserMeets(c echo.Context) error {
	username := c.QueryParam("user")
	if username == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'user' is required")
	}

	ctx := c.Request().Context()
	token := middleware.TokenFromContext(c)
	if !h.userUC.IsTokenOwner(ctx, token, username) {
		return response.Unauthorized(c, "UNAUTHORIZED", "Token does not belong to the requested user")
	}

	ids, err := h.meetUC.ListUserMeets(ctx, username)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ids, "")
}

func parseMeetID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
