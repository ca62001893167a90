// Package bootstrap runs a finite seqkit task with a uniform lifecycle.
//
// # Quick Start
//
//	app, err := bootstrap.NewApp(cfg)
//	if err != nil {
//	    return err
//	}
//	app.OnStop(providers.Shutdown)
//	return app.RunTask(ctx, runner.Run)
//
// NewApp applies defaults, validates the config and initializes the global
// logger. RunTask runs start hooks, cancels the task on SIGINT or SIGTERM
// and runs stop hooks within the graceful timeout.
package bootstrap
