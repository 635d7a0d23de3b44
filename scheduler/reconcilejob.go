package scheduler

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofrs/uuid/v5"
	googleuuid "github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sethvargo/go-password/password"

	"github.com/corebridge/featuregate/config"
	"github.com/corebridge/featuregate/errs"
	"github.com/corebridge/featuregate/logging"
	"github.com/corebridge/featuregate/timewindow"
)

// ReconcileJob periodically reloads a set of feature-gate settings
// documents, re-validates every gate they describe with
// timewindow.Validate, and caches the result for callers to query. Its
// own schedule -- how often it reconciles, not the window it is
// reconciling -- is a crontab string validated with robfig/cron/v3: a
// distinct surface from this module's own crontab package, never
// consulted to decide feature activity.
type ReconcileJob struct {
	Name             string
	ReconcileCrontab string
	LoadOptions      config.LoadOptions

	jobPlanID uuid.UUID

	mu       sync.RWMutex
	statuses map[string]*GateStatus
}

// NewReconcileJob validates reconcileCrontab and assigns the job a stable
// identifier.
func NewReconcileJob(name, reconcileCrontab string, opts config.LoadOptions) (*ReconcileJob, error) {
	trimmed := strings.TrimSpace(reconcileCrontab)
	if trimmed == "" {
		return nil, errs.New("reconcile crontab is required")
	}
	if _, err := cron.ParseStandard(trimmed); err != nil {
		return nil, errs.Newf("invalid reconcile crontab %q: %w", trimmed, err)
	}

	jobPlanID, err := convertGoogleToGofrs(googleuuid.New())
	if err != nil {
		return nil, err
	}

	return &ReconcileJob{
		Name:             name,
		ReconcileCrontab: trimmed,
		LoadOptions:      opts,
		jobPlanID:        jobPlanID,
		statuses:         make(map[string]*GateStatus),
	}, nil
}

// JobPlanID returns the job's stable identifier.
func (rj *ReconcileJob) JobPlanID() uuid.UUID {
	return rj.jobPlanID
}

// Register adds the job to sched on its ReconcileCrontab schedule, in
// singleton mode so overlapping reconciles are rescheduled rather than
// queued.
func (rj *ReconcileJob) Register(sched gocron.Scheduler) (gocron.Job, error) {
	return sched.NewJob(
		gocron.CronJob(rj.ReconcileCrontab, false),
		gocron.NewTask(rj.Run),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
}

// Run performs one reconcile pass: reload the config documents, validate
// each described gate, and atomically swap in the new status map. If the
// documents fail to load or validate, the error is logged and the previous
// status map is left in place. Otherwise every gate gets a fresh status; a
// gate whose window fails to decode or validate carries that error and a
// nil Window, replacing any earlier status it had.
func (rj *ReconcileJob) Run() {
	logger := logging.Logger(logging.ChannelScheduler)

	runNonce, err := password.Generate(12, 4, 0, false, true)
	if err != nil {
		logger.Error().Err(err).Str("job", rj.Name).Msg("generate run nonce")
		return
	}

	var cfg config.Config
	if err := config.Load(&cfg, rj.LoadOptions); err != nil {
		logger.Error().Err(err).Str("job", rj.Name).Str("runNonce", runNonce).Msg("load config")
		return
	}
	if err := cfg.Validate(); err != nil {
		logger.Error().Err(err).Str("job", rj.Name).Str("runNonce", runNonce).Msg("validate config")
		return
	}

	now := time.Now().UTC()
	statuses := make(map[string]*GateStatus, len(cfg.Gates))
	for _, g := range cfg.Gates {
		status := &GateStatus{Name: g.Name, RunNonce: runNonce, ReconciledAt: now}

		settings, decodeErr := decodeWindow(g.Window)
		if decodeErr != nil {
			status.Err = decodeErr
			statuses[g.Name] = status
			continue
		}
		if ve := timewindow.Validate(settings); ve != nil {
			status.Err = ve
		} else {
			status.Window = settings
		}
		statuses[g.Name] = status
	}

	rj.mu.Lock()
	rj.statuses = statuses
	rj.mu.Unlock()

	logger.Info().Str("job", rj.Name).Str("runNonce", runNonce).Int("gates", len(statuses)).Msg("reconciled feature gates")
}

// Status returns the most recently reconciled status for the named gate,
// or nil if that gate has never been seen.
func (rj *ReconcileJob) Status(name string) *GateStatus {
	rj.mu.RLock()
	defer rj.mu.RUnlock()
	return rj.statuses[name]
}

// Statuses returns a snapshot of every gate's most recent status.
func (rj *ReconcileJob) Statuses() map[string]*GateStatus {
	rj.mu.RLock()
	defer rj.mu.RUnlock()
	out := make(map[string]*GateStatus, len(rj.statuses))
	for k, v := range rj.statuses {
		out[k] = v
	}
	return out
}

// decodeWindow converts a GateSource's loosely-typed Window payload into a
// timewindow.TimeWindowSettings, the boundary where the config package
// hands off to the core: config.Load never interprets Window itself.
func decodeWindow(raw interface{}) (*timewindow.TimeWindowSettings, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errs.Newf("marshal gate window: %w", err)
	}
	var settings timewindow.TimeWindowSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, errs.Newf("decode gate window: %w", err)
	}
	return &settings, nil
}
