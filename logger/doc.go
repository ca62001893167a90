// Package logger provides structured logging for seqkit binaries using
// zerolog.
//
// Logs go to stderr by default so they never interleave with rendered
// sequences on stdout.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.New(&cfg, "seqdemo").WithComponent("demo")
//	log.Info("section finished", logger.Fields("section", "Join", "size", 20))
package logger
