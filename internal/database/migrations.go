package database

import (
	"fmt"
	"log"

	"github.com/yukikurage/labourlink-api/internal/models"
	"gorm.io/gorm"
)

// requiredIndexes lists indexes declared on the models. AutoMigrate creates them on
// fresh tables; EnsureIndexes adds any that are missing from tables created before
// the index was declared.
var requiredIndexes = []struct {
	model interface{}
	name  string
}{
	// One application per (worker, job). Duplicate applies fail on this index.
	{&models.Application{}, "idx_applications_worker_job"},
	{&models.Application{}, "idx_applications_recruiter_id"},
	{&models.Application{}, "idx_applications_job_id"},
	{&models.Application{}, "idx_applications_created_at"},

	{&models.Job{}, "idx_jobs_recruiter_id"},
	{&models.Job{}, "idx_jobs_status"},
	{&models.Job{}, "idx_jobs_category"},

	{&models.ChatMessage{}, "idx_chat_messages_application_created"},

	{&models.User{}, "idx_users_email"},
	{&models.Profile{}, "idx_profiles_user_id"},
}

// EnsureIndexes creates missing indexes using the dialect-neutral migrator.
func EnsureIndexes(db *gorm.DB) error {
	migrator := db.Migrator()

	for _, idx := range requiredIndexes {
		if migrator.HasIndex(idx.model, idx.name) {
			continue
		}

		if err := migrator.CreateIndex(idx.model, idx.name); err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Printf("Created index %s", idx.name)
	}

	return nil
}
