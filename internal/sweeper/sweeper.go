// Package sweeper periodically reverts completed recurring todos whose
// period boundary has passed. Read-time evaluation in the list handler is
// authoritative; the sweep keeps stored state fresh for clients that hold a
// websocket open without refetching.
package sweeper

import (
	"context"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/tasknest-dev/tasknest/db"
	"github.com/tasknest-dev/tasknest/internal/handlers"
	"github.com/tasknest-dev/tasknest/internal/models"
	"github.com/tasknest-dev/tasknest/internal/recurrence"
)

const defaultInterval = 10 * time.Minute

type Sweeper struct {
	interval time.Duration
	ticker   *time.Ticker
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

func NewSweeper() *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())

	interval := defaultInterval

	if env := os.Getenv("SWEEP_INTERVAL"); env != "" {
		if seconds, err := strconv.Atoi(env); err == nil && seconds > 0 {
			interval = time.Duration(seconds) * time.Second
		} else {
			log.Printf("Invalid SWEEP_INTERVAL %q, using default", env)
		}
	}

	return &Sweeper{
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start runs an immediate sweep and then sweeps on every tick until Stop.
func (s *Sweeper) Start() {
	log.Printf("Starting recurrence sweeper (interval %s)", s.interval)

	s.ticker = time.NewTicker(s.interval)
	s.wg.Add(1)

	go func() {
		defer s.wg.Done()

		s.Sweep(time.Now())

		for {
			select {
			case <-s.ctx.Done():
				return
			case <-s.ticker.C:
				s.Sweep(time.Now())
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	log.Println("Stopping recurrence sweeper...")
	s.cancel()

	if s.ticker != nil {
		s.ticker.Stop()
	}

	s.wg.Wait()
	log.Println("Recurrence sweeper stopped")
}

// Sweep resets every completed recurring todo that has crossed its period
// boundary by now, and notifies the owners' open clients.
func (s *Sweeper) Sweep(now time.Time) {
	var todos []models.Todo

	err := db.DB.
		Where("completed = ? AND recurrence <> ?", true, "None").
		Find(&todos).Error

	if err != nil {
		log.Printf("Recurrence sweep query failed: %v", err)
		return
	}

	for _, todo := range todos {
		if !recurrence.ShouldReset(todo.Completed, todo.CompletedDate, todo.Recurrence, now) {
			continue
		}

		err := db.DB.Model(&models.Todo{}).
			Where("id = ? AND user_id = ?", todo.ID, todo.UserID).
			Updates(map[string]interface{}{"completed": false, "completed_date": nil}).Error

		if err != nil {
			log.Printf("Failed to reset recurring todo %d: %v", todo.ID, err)
			continue
		}

		handlers.BroadcastTodoEvent(todo.UserID, handlers.TodoReset, todo.ID)
	}
}
