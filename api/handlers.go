package api

import (
	"time"

	"github.com/ajaiswal/portfolio-backend/config"
	"github.com/ajaiswal/portfolio-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg map[string]string, notifier ContactNotifier, startupTime time.Time) *routeHandlers {
	adminEmail, adminPassword := config.AdminCredentials(cfg)
	jwtSecret := config.JWTSecret(cfg)
	environment := config.GetString(cfg, "ENVIRONMENT", "development")

	return &routeHandlers{
		projectHandler:     newProjectHandler(db.ProjectRepo()),
		skillHandler:       newSkillHandler(db.SkillRepo()),
		certificateHandler: newCertificateHandler(db.CertificateRepo()),
		contactHandler:     newContactHandler(db.ContactRepo(), notifier),
		adminHandler: newAdminHandler(adminStores{
			projects:     db.ProjectRepo(),
			skills:       db.SkillRepo(),
			certificates: db.CertificateRepo(),
			contacts:     db.ContactRepo(),
		}, adminEmail, adminPassword, jwtSecret, environment, startupTime),
	}
}
