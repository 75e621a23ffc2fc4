package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"yatra-api/internal/domain/gateway/db"
	"yatra-api/internal/domain/gateway/queue"
	"yatra-api/pkg/log"
)

// SnapshotSweeper periodically looks for cities without a weather snapshot
// and enqueues them for refresh. Cities end up in that state when every
// persist attempt failed or when the fallback-persistence policy skipped a
// write after a provider outage.
type SnapshotSweeper struct {
	scheduler   gocron.Scheduler
	dbGateway   db.TravelGateway
	queueSender queue.Sender
	queueName   string
	batchSize   int
	interval    time.Duration
}

func NewSnapshotSweeper(dbGateway db.TravelGateway, queueSender queue.Sender, queueName string, batchSize int, interval time.Duration) (*SnapshotSweeper, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create sweep scheduler: %w", err)
	}

	if interval <= 0 {
		interval = time.Hour
	}

	return &SnapshotSweeper{
		scheduler:   scheduler,
		dbGateway:   dbGateway,
		queueSender: queueSender,
		queueName:   queueName,
		batchSize:   batchSize,
		interval:    interval,
	}, nil
}

// Start schedules the periodic sweep job.
func (s *SnapshotSweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.Sweep),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule snapshot sweep: %w", err)
	}

	s.scheduler.Start()
	log.Infof("Snapshot sweeper started with interval: %s", s.interval)
	return nil
}

// Sweep pages through all cities and enqueues the ones missing a snapshot.
func (s *SnapshotSweeper) Sweep() {
	page := 0
	enqueued := 0

	for {
		cities, err := s.dbGateway.FindAllCities(page, s.batchSize)
		if err != nil {
			log.Warnf("Snapshot sweep failed to fetch cities for page %d: %v", page, err)
			return
		}
		if len(cities) == 0 {
			break
		}

		var missing []queue.BatchMessage
		for _, city := range cities {
			_, err := s.dbGateway.FindWeatherSnapshotByCityID(city.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, db.ErrNotFound) {
				log.Warnf("Snapshot sweep lookup failed for city %s: %v", city.Name, err)
				continue
			}
			missing = append(missing, queue.BatchMessage{
				MessageID: fmt.Sprintf("sweep-city-%d", city.ID),
				Body:      city,
			})
		}

		if len(missing) > 0 {
			result, err := s.queueSender.SendMessageBatch(s.queueName, missing)
			if err != nil {
				log.Warnf("Snapshot sweep failed to enqueue batch for page %d: %v", page, err)
			} else {
				enqueued += len(result.Successful)
			}
		}

		page++
	}

	if enqueued > 0 {
		log.Infof("Snapshot sweep enqueued %d cities for refresh", enqueued)
	}
}

// Stop shuts down the scheduler.
func (s *SnapshotSweeper) Stop() {
	if err := s.scheduler.Shutdown(); err != nil {
		log.Warnf("Failed to shut down snapshot sweeper: %v", err)
	}
}
