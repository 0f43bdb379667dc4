package handler

import (
	"encoding/json"
	"net/http"

	"vetclinic-backend/internal/delivery/dto"
	"vetclinic-backend/internal/delivery/http/middleware"
	"vetclinic-backend/internal/domain/entity"
	"vetclinic-backend/internal/usecase"
	"vetclinic-backend/pkg/response"
	"vetclinic-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase     usecase.ScheduleUsecase
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewScheduleHandler(
	scheduleUsecase usecase.ScheduleUsecase,
	availabilityUsecase usecase.AvailabilityUsecase,
	validator *validator.CustomValidator,
) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase:     scheduleUsecase,
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

func (h *ScheduleHandler) GetMyWeek(w http.ResponseWriter, r *http.Request) {
	veterinaryID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	week, err := h.scheduleUsecase.GetWeek(r.Context(), veterinaryID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", week)
}

func (h *ScheduleHandler) GetVeterinaryWeek(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	veterinaryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinary ID", nil)
		return
	}

	week, err := h.scheduleUsecase.GetWeek(r.Context(), veterinaryID)
	if err != nil {
		response.InternalServerError(w, "Failed to get schedule")
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", week)
}

func (h *ScheduleHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	veterinaryID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	day, err := h.scheduleUsecase.GetDay(r.Context(), veterinaryID, vars["weekday"])
	if err != nil {
		switch err {
		case entity.ErrInvalidWeekday:
			response.Error(w, http.StatusBadRequest, "Invalid weekday name", nil)
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "No schedule defined for this day")
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", day)
}

func (h *ScheduleHandler) SetDay(w http.ResponseWriter, r *http.Request) {
	veterinaryID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.SetDayScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	day, err := h.scheduleUsecase.SetDay(r.Context(), veterinaryID, &req)
	if err != nil {
		writeScheduleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule saved successfully", day)
}

func (h *ScheduleHandler) ReplaceWeek(w http.ResponseWriter, r *http.Request) {
	veterinaryID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	var req dto.ReplaceWeekScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	week, err := h.scheduleUsecase.ReplaceWeek(r.Context(), veterinaryID, &req)
	if err != nil {
		writeScheduleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Schedule replaced successfully", week)
}

// GetAvailableSlots serves the bookable start times for a veterinary on a
// given date (?date=YYYY-MM-DD).
func (h *ScheduleHandler) GetAvailableSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	veterinaryID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid veterinary ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		response.Error(w, http.StatusBadRequest, "Query parameter 'date' is required", nil)
		return
	}

	slots, err := h.availabilityUsecase.AvailableSlots(r.Context(), veterinaryID, date)
	if err != nil {
		switch err {
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get available slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available slots retrieved successfully", slots)
}

func writeScheduleError(w http.ResponseWriter, err error) {
	switch err {
	case entity.ErrInvalidWeekday:
		response.Error(w, http.StatusBadRequest, "Invalid weekday name", nil)
	case entity.ErrInvalidClock:
		response.Error(w, http.StatusBadRequest, "Invalid time, use HH:MM", nil)
	case usecase.ErrInvalidTimeRange:
		response.Error(w, http.StatusBadRequest, "Start time must be before end time", nil)
	case usecase.ErrInvalidSlotDuration:
		response.Error(w, http.StatusBadRequest, "Slot duration must be positive", nil)
	case usecase.ErrInvalidBreakDuration:
		response.Error(w, http.StatusBadRequest, "Break duration must not be negative", nil)
	case usecase.ErrDuplicateWeekday:
		response.Error(w, http.StatusBadRequest, "The same weekday appears more than once", nil)
	default:
		response.InternalServerError(w, "Failed to save schedule")
	}
}
