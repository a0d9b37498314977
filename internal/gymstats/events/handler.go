package events

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/gymcoach/internal/middleware"
	"github.com/2beens/gymcoach/internal/telemetry/tracing"
	"github.com/2beens/gymcoach/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=events_test

type service interface {
	AddWeightReport(ctx context.Context, wr WeightReport) (int, error)
}

type Handler struct {
	service service
	now     func() time.Time
}

func NewHandler(service service) *Handler {
	return &Handler{
		service: service,
		now:     time.Now,
	}
}

func (h *Handler) HandleAddWeightReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymstats.new.weightreport")
	defer span.End()

	if r.Header.Get("Content-Type") != pkg.ContentType.JSON {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var weightReport WeightReport
	if err := json.NewDecoder(r.Body).Decode(&weightReport); err != nil {
		log.Errorf("new weight report, unmarshal json params: %s", err)
		http.Error(w, "add weight report failed", http.StatusBadRequest)
		return
	}
	// the request identity wins over the body
	if requestUser := r.Header.Get(middleware.UserIDHeader); requestUser != "" {
		if weightReport.UserID != "" && weightReport.UserID != requestUser {
			http.Error(w, "user id mismatch", http.StatusBadRequest)
			return
		}
		weightReport.UserID = requestUser
	}
	if weightReport.UserID == "" {
		http.Error(w, "missing user id", http.StatusBadRequest)
		return
	}
	if weightReport.Timestamp.IsZero() {
		weightReport.Timestamp = h.now().UTC()
	}

	id, err := h.service.AddWeightReport(ctx, weightReport)
	if err != nil {
		if errors.Is(err, ErrInvalidWeight) {
			http.Error(w, "weight must be positive", http.StatusBadRequest)
			return
		}
		log.Errorf("new weight report: %s", err)
		http.Error(w, "add weight report failed", http.StatusInternalServerError)
		return
	}
	weightReport.ID = id

	pkg.WriteJSON(w, weightReport, http.StatusCreated)
}
