// Package config loads configuration for seqkit binaries.
//
// It uses Viper to read a config.yml, godotenv to load an optional .env
// file, and binds prefixed environment variables onto nested keys
// (SEQDEMO_SAMPLES_EVENS overrides samples.evens).
//
// # Usage
//
//	var cfg demo.Config
//	err := config.LoadConfig("seqdemo", &cfg, config.WithEnvPrefix("SEQDEMO"))
package config
