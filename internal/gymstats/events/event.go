package events

import (
	"fmt"
	"strconv"
	"time"
)

type WeightReport struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Weight    float64   `json:"weight"`
}

// Event (DB level type) is a generic timestamped report stored in gymstats_event,
// with type specific values kept in Data.
type Event struct {
	ID        int               `json:"id"`
	Type      EventType         `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Data      map[string]string `json:"data"`
}

func NewWeightReportEvent(wr WeightReport) Event {
	return Event{
		ID:        wr.ID,
		Type:      EventTypeWeightReport,
		Timestamp: wr.Timestamp,
		Data: map[string]string{
			"user_id": wr.UserID,
			"weight":  strconv.FormatFloat(wr.Weight, 'f', -1, 64),
		},
	}
}

func WeightReportFromEvent(e Event) (WeightReport, error) {
	if e.Type != EventTypeWeightReport {
		return WeightReport{}, fmt.Errorf("event %d is not a weight report: %s", e.ID, e.Type)
	}
	weight, err := strconv.ParseFloat(e.Data["weight"], 64)
	if err != nil {
		return WeightReport{}, fmt.Errorf("event %d weight: %w", e.ID, err)
	}
	return WeightReport{
		ID:        e.ID,
		UserID:    e.Data["user_id"],
		Timestamp: e.Timestamp,
		Weight:    weight,
	}, nil
}

// EventType names the kind of report kept in gymstats_event.
type EventType string

const EventTypeWeightReport EventType = "weight_report"

func (et EventType) String() string {
	return string(et)
}
