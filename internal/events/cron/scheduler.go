package cronjob

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/harshydv24/event-nexus-backend/internal/events/service"
)

type Scheduler struct {
	eventService *service.EventService
	cron         *cron.Cron
}

func NewScheduler(eventService *service.EventService) *Scheduler {
	return &Scheduler{eventService: eventService}
}

// Start schedules the nightly completion sweep (12:00 AM): events with
// a venue assigned and a date in the past are marked completed.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.runSweep()
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create cron job")
		return
	}

	log.Info().Msg("cron scheduler started (completion sweep nightly at 12:00AM)")
	c.Start()
	s.cron = c
}

// Stop halts the scheduler and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.eventService.CompletePastEvents(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("completion sweep failed")
		return
	}

	log.Info().Int("completed", n).Msg("completion sweep finished")
}
