package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"SmartSaver/internal/agent"
	"SmartSaver/internal/model"
	"SmartSaver/internal/pipeline"
	"SmartSaver/internal/session"
	"SmartSaver/internal/store"
)

// Scheduler manages all cron tasks: the weekly coaching run and the
// monthly bookkeeping rows.
type Scheduler struct {
	Cron      *cron.Cron
	Sessions  *session.Manager
	Registry  *agent.Registry
	Store     store.Store
	SessionID string
	UserID    string
}

// NewScheduler creates a Scheduler bound to the default session.
func NewScheduler(sm *session.Manager, reg *agent.Registry, st store.Store, sessionID, userID string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Sessions:  sm,
		Registry:  reg,
		Store:     st,
		SessionID: sessionID,
		UserID:    userID,
	}
}

// RegisterAll registers the weekly and monthly tasks.
func (s *Scheduler) RegisterAll(weeklyCron, monthlyCron string) error {
	if _, err := s.Cron.AddFunc(weeklyCron, s.weeklyTask); err != nil {
		return fmt.Errorf("register weekly task: %w", err)
	}
	if _, err := s.Cron.AddFunc(monthlyCron, s.monthlyTask); err != nil {
		return fmt.Errorf("register monthly task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunWeeklyNow executes the weekly task immediately (manual trigger /
// RUN_ON_START).
func (s *Scheduler) RunWeeklyNow() {
	s.weeklyTask()
}

// weeklyTask runs the full agent pipeline against the default session so
// alerts and goal progress stay fresh between dashboard visits.
func (s *Scheduler) weeklyTask() {
	log.Println("[INFO] running weekly coaching task")
	s.Sessions.Ensure(s.SessionID)

	err := s.Sessions.WithState(s.SessionID, func(state *model.UserState) *model.UserState {
		next, messages, warnings := pipeline.RunNames(s.Registry, agent.DefaultOrder, state)
		for _, w := range warnings {
			log.Printf("[WARN] weekly run: %s", w)
		}
		for _, m := range messages {
			log.Printf("[INFO] %s: %s", m.Agent, m.Content)
		}
		return next
	})
	if err != nil {
		log.Printf("[ERROR] weekly run: %v", err)
	}
}

// monthlyTask records the salary credit and, when the savings agent left a
// suggestion, the matching autosave transfer row.
func (s *Scheduler) monthlyTask() {
	log.Println("[INFO] running monthly bookkeeping task")
	s.Sessions.Ensure(s.SessionID)

	var income float64
	var autosave *float64
	err := s.Sessions.WithState(s.SessionID, func(state *model.UserState) *model.UserState {
		income = state.Income
		autosave = state.SuggestedAutosave
		return state
	})
	if err != nil {
		log.Printf("[ERROR] monthly task: %v", err)
		return
	}

	date := time.Now().Format("2006-01-02")
	if _, err := s.Store.AddTransaction(&model.Transaction{
		UserID:      s.UserID,
		Date:        date,
		Description: "Salary Credit",
		Amount:      income,
		Category:    "Income",
	}); err != nil {
		log.Printf("[ERROR] record salary: %v", err)
	}

	if autosave != nil && *autosave > 0 {
		if _, err := s.Store.AddTransaction(&model.Transaction{
			UserID:      s.UserID,
			Date:        date,
			Description: "Auto-transfer to Savings",
			Amount:      -*autosave,
			Category:    "Savings",
		}); err != nil {
			log.Printf("[ERROR] record autosave: %v", err)
		}
	}
}
