package usecase

import (
	"context"

	"examprep-backend/internal/calendar"
	"examprep-backend/internal/model"
	"examprep-backend/pkg/gcalendar"
)

// HandleCallback runs the post-redirect half of the handoff:
//
//	Received -> CodeExchanged -> PlanRetrieved -> EventsCreated -> Redirected
//
// Every transition has a terminal error class; nothing propagates to the
// browser as a fault. The raw authorization code is used exactly once and
// never retried — the user retries by re-initiating the whole flow.
func (uc *implUseCase) HandleCallback(ctx context.Context, input calendar.CallbackInput) calendar.CallbackResult {
	// Received: provider-reported denial beats everything else.
	if input.Error != "" {
		reason := input.ErrorDescription
		if reason == "" {
			reason = input.Error
		}
		uc.l.Infof(ctx, "authorization denied by provider: %s", reason)
		return calendar.CallbackResult{Outcome: calendar.OutcomeDenied, Reason: reason}
	}
	if input.Code == "" {
		uc.l.Warn(ctx, "callback without authorization code")
		return calendar.CallbackResult{Outcome: calendar.OutcomeError}
	}
	if uc.cfg.ClientID == "" || uc.cfg.ClientSecret == "" || uc.cfg.RedirectURI == "" {
		uc.l.Error(ctx, "callback received but oauth client is not configured")
		return calendar.CallbackResult{Outcome: calendar.OutcomeError}
	}

	// CodeExchanged: bounded, single attempt.
	exCtx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	tok, err := uc.exchanger.Exchange(exCtx, input.Code)
	cancel()
	if err != nil {
		uc.l.Errorf(ctx, "token exchange failed: %v", err)
		return calendar.CallbackResult{Outcome: calendar.OutcomeError}
	}

	// PlanRetrieved: atomic get-and-remove. Absent is the distinguished
	// no_events outcome whether the token expired, was consumed, or was
	// issued by another instance.
	events, ok := uc.store.TakeOnce(input.State)
	if !ok {
		uc.l.Infof(ctx, "no pending plan for state token %q", input.State)
		return calendar.CallbackResult{Outcome: calendar.OutcomeNoEvents}
	}

	creator, err := uc.newCreator(ctx, tok)
	if err != nil {
		uc.l.Errorf(ctx, "calendar client init failed: %v", err)
		return calendar.CallbackResult{Outcome: calendar.OutcomeError}
	}

	// EventsCreated: strictly in order, one call per event, per-item failure
	// isolation. Partial success is expected; there is no rollback.
	created := 0
	for i, ev := range events {
		evCtx, cancel := context.WithTimeout(ctx, perEventTimeout)
		_, err := creator.CreateEvent(evCtx, uc.buildCreateRequest(ev))
		cancel()
		if err != nil {
			uc.l.Warnf(ctx, "event %d/%d %q failed: %v", i+1, len(events), ev.Title, err)
			continue
		}
		created++
	}

	uc.l.Infof(ctx, "calendar handoff complete: %d/%d events created", created, len(events))

	if created == 0 {
		return calendar.CallbackResult{Outcome: calendar.OutcomeError}
	}
	return calendar.CallbackResult{Outcome: calendar.OutcomeSuccess, Count: created}
}

// buildCreateRequest maps a plan descriptor onto the provider request. Dates
// and times are composed verbatim; range validation is left to the provider.
func (uc *implUseCase) buildCreateRequest(ev model.EventDescriptor) gcalendar.CreateEventRequest {
	description := "Study session"
	if ev.Subject != "" {
		description = "Study session: " + ev.Subject
	}

	return gcalendar.CreateEventRequest{
		CalendarID:    uc.cfg.CalendarID,
		Summary:       ev.Title,
		Description:   description,
		StartDateTime: ev.Date + "T" + ev.StartTime + ":00",
		EndDateTime:   ev.Date + "T" + ev.EndTime + ":00",
		Timezone:      uc.cfg.Timezone,
	}
}
