package setup

import (
	"employee-attendance/app"
	"employee-attendance/database"
	"log/slog"
)

// InitDatabase opens the SQLite store and ensures both tables exist
func InitDatabase(dbPath string, logger *slog.Logger) (*database.DB, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return db, nil
}

// InitApp initializes the application with all dependencies
func InitApp(db *database.DB, logger *slog.Logger) *app.App {
	repo := database.NewRepository(db)

	application := app.New(repo, logger)
	logger.Info("application initialized")

	return application
}

// Shutdown releases the database handle
func Shutdown(db *database.DB, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if db != nil {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
