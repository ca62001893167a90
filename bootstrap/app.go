package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/logger"
)

// App carries the typed config and lifecycle hooks of a seqkit binary.
// The type parameter C is the config type, which must satisfy Config.
type App[C Config] struct {
	Name    string
	Version string
	Cfg     C
	Logger  *logger.Logger

	gracefulTimeout time.Duration
	onStart         []Hook
	onStop          []Hook
}

// NewApp creates a new application instance from a typed config.
// It applies defaults, validates the config, and initializes the logger.
func NewApp[C Config](cfg C, opts ...Option) (*App[C], error) {
	cfg.ApplyDefaults()
	base := cfg.GetServiceConfig()
	if err := cfg.Validate(); err != nil {
		return nil, errors.InvalidConfig(base.Name, err)
	}

	app := &App[C]{
		Name:            base.Name,
		Version:         base.Version,
		Cfg:             cfg,
		gracefulTimeout: 15 * time.Second,
	}

	o := resolveOptions(opts)
	if o.gracefulTimeout != nil {
		app.gracefulTimeout = *o.gracefulTimeout
	}
	if o.logger != nil {
		app.Logger = o.logger
	} else {
		app.Logger = logger.Init(base.Logging, base.Name)
	}
	return app, nil
}

// RunTask executes a finite task with the full lifecycle:
// OnStart hooks, the task, then OnStop hooks.
// The task's context is canceled on SIGINT or SIGTERM. The task's error is
// returned unchanged and takes precedence over stop hook errors.
func (a *App[C]) RunTask(ctx context.Context, task func(ctx context.Context) error) error {
	start := time.Now()
	a.Logger.Info("starting", logger.Fields("name", a.Name, "version", a.Version))

	taskErr := a.runTask(ctx, task)

	if stopErr := a.stop(); stopErr != nil && taskErr == nil {
		return stopErr
	}
	if taskErr == nil {
		a.Logger.Info("finished", logger.DurationFields("task", time.Since(start)))
	}
	return taskErr
}

func (a *App[C]) runTask(ctx context.Context, task func(ctx context.Context) error) error {
	if err := runHooks(ctx, a.onStart); err != nil {
		return errors.Internal(err)
	}

	taskCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			a.Logger.Info("received signal, canceling task", logger.Fields("signal", sig.String()))
			cancel()
		case <-taskCtx.Done():
		}
	}()

	return task(taskCtx)
}

// stop runs the stop hooks within the graceful timeout. It uses a fresh
// context so hooks still run after the task context is canceled.
func (a *App[C]) stop() error {
	if len(a.onStop) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.gracefulTimeout)
	defer cancel()

	if err := runHooksReverse(ctx, a.onStop); err != nil {
		a.Logger.WithError(err).Error("shutdown completed with errors")
		return errors.Internal(err)
	}
	return nil
}
