package mapping

import (
	"github.com/avasiliev/fx_ledger_app/internal/core/domain"
	"github.com/avasiliev/fx_ledger_app/internal/models"
)

// ToModelRateEvent converts a domain RateEvent to a model RateEvent
func ToModelRateEvent(d domain.RateEvent) models.RateEvent {
	return models.RateEvent{
		ID:            d.ID,
		CurrencyCode:  d.CurrencyCode,
		Rate:          d.Rate,
		OccurredAt:    d.OccurredAt,
		PolicyApplied: d.PolicyApplied,
		Source:        d.Source,
	}
}

// ToDomainRateEvent converts a model RateEvent to a domain RateEvent
func ToDomainRateEvent(m models.RateEvent) domain.RateEvent {
	return domain.RateEvent{
		ID:            m.ID,
		CurrencyCode:  m.CurrencyCode,
		Rate:          m.Rate,
		OccurredAt:    m.OccurredAt,
		PolicyApplied: m.PolicyApplied,
		Source:        m.Source,
	}
}

// ToDomainRateEventSlice converts a slice of model RateEvents to a slice of domain RateEvents
func ToDomainRateEventSlice(ms []models.RateEvent) []domain.RateEvent {
	ds := make([]domain.RateEvent, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRateEvent(m)
	}
	return ds
}
