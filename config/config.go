package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/corebridge/featuregate/errs"
	"github.com/corebridge/featuregate/logging"
)

// GateSource is one feature gate's raw settings as they arrive from a
// config document: an uninterpreted TimeWindowSettings-shaped payload
// (decoded later by the caller into timewindow.TimeWindowSettings) plus a
// reconciliation crontab string. ReconcileCrontab is only checked for
// presence; nothing in this module parses it or schedules by it (a
// scheduler.ReconcileJob runs on its own ReconcileCrontab). config itself
// never parses Window or performs calendar arithmetic -- that is
// timewindow's job.
type GateSource struct {
	Name             string      `json:"name" validate:"required"`
	Window           interface{} `json:"window" validate:"required"`
	ReconcileCrontab string      `json:"reconcileCrontab" validate:"required"`
}

// Config is the top-level, fully-typed settings record produced by
// merging and decoding one or more HJSON/JSON documents, in place of a
// dynamic configuration tree.
type Config struct {
	LoggingChannels logging.Channels `json:"loggingChannels" validate:"required,dive"`
	Gates           []GateSource     `json:"gates" validate:"dive"`
}

var structValidator = validator.New()

// Validate runs struct-tag validation only; it does not parse Window or
// ReconcileCrontab. Window is decoded and checked by timewindow.Validate in
// scheduler.ReconcileJob.Run; a gate's ReconcileCrontab is not parsed.
func (c *Config) Validate() error {
	if c == nil {
		return errs.New("config is nil")
	}
	if err := structValidator.Struct(c); err != nil {
		return errs.Newf("config validation failed: %w", err)
	}
	return nil
}
