package config

import (
	"github.com/spf13/viper"
)

const DefaultDatabasePath = "./spotit.db"

type (
	Config struct {
		HTTP
		Database
		Backup
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Backup struct {
		Dir       string
		Schedule  string // Cron format: "0 3 * * *" = daily at 03:00
		Retention int    // Number of backup files to keep
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("backup_dir", "./backups")
	v.SetDefault("backup_schedule", "0 3 * * *") // Daily at 03:00
	v.SetDefault("backup_retention", 7)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Backup: Backup{
			Dir:       v.GetString("BACKUP_DIR"),
			Schedule:  v.GetString("BACKUP_SCHEDULE"),
			Retention: v.GetInt("BACKUP_RETENTION"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
	}
}
