// File: /statistics/service.go
package statistics

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Summary holds the five derived volunteering metrics
type Summary struct {
	VolunteerFrequency     float64 `json:"volunteer_frequency"`
	YouthActivityFrequency float64 `json:"youth_activity_frequency"`
	OnlineFrequency        float64 `json:"online_frequency"`
	AverageHours           float64 `json:"average_hours"`
	MedianHours            int     `json:"median_hours"`
}

type Service struct {
	client *Client
	log    *logrus.Logger
}

func NewService(client *Client, log *logrus.Logger) *Service {
	return &Service{client: client, log: log}
}

// Summarize computes all five metrics from the census API. A field the API
// cannot serve degrades its metrics to zero rather than failing the caller;
// a page render must survive a census outage.
func (s *Service) Summarize(ctx context.Context) Summary {
	var out Summary

	if f, ok := s.fetch(ctx, FieldVolunteered); ok {
		out.VolunteerFrequency = VolunteerFrequency(f)
	}

	if f, ok := s.fetch(ctx, FieldYouthActivity); ok {
		out.YouthActivityFrequency = YouthActivityFrequency(f)
	}

	if f, ok := s.fetch(ctx, FieldOnlineShare); ok {
		out.OnlineFrequency = OnlineFrequency(f)
	}

	if f, ok := s.fetch(ctx, FieldAnnualHours); ok {
		out.AverageHours = AverageHours(f)
		out.MedianHours = MedianHours(f)
	}

	return out
}

func (s *Service) fetch(ctx context.Context, fieldKey string) (Frequencies, bool) {
	f, err := s.client.FetchField(ctx, fieldKey)
	if err != nil {
		s.log.WithError(err).WithField("field", fieldKey).Warn("statistics: census field unavailable, reporting zero")
		return nil, false
	}
	return f, true
}
