package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/lmoreno/weather-dashboard/internal/weather"
)

// Scheduler periodically ingests weather data for the configured cities.
// Failures are isolated per city: one city's error is logged and the sweep
// moves on to the rest.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *weather.Service
	cities    []string
	interval  time.Duration
}

// New creates a new Scheduler. Nothing runs until Start is called.
func New(cities []string, interval time.Duration, service *weather.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		cities:    cities,
		interval:  interval,
	}
}

// Start schedules the periodic sweep and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no cities configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 30 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(s.sweep)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// sweep runs one ingestion per configured city. Each city gets its own
// bounded context and its own transaction.
func (s *Scheduler) sweep() {
	log.Println("scheduler: running weather ingestion sweep")

	var wg sync.WaitGroup
	for _, city := range s.cities {
		wg.Add(1)
		go func(city string) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := s.service.Ingest(ctx, city, nil); err != nil {
				log.Printf("scheduler: ingestion failed for %s: %v", city, err)
			}
		}(city)
	}
	wg.Wait()

	log.Println("scheduler: completed weather ingestion sweep")
}
