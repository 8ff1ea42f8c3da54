package storage

import (
	"errors"
	"time"

	"github.com/been-going/PleaseCheckYourDays/internal/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another
// user.
var ErrNotFound = errors.New("not found")

// TemplateOrder is one entry of a batch reorder.
type TemplateOrder struct {
	ID    string
	Order int
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Users
	AddUser(models.User) error
	GetUserByEmail(email string) (models.User, error)

	// Templates
	AddTemplate(models.Template) error
	GetTemplate(id, userID string) (models.Template, error)
	GetAllTemplates(userID string, includeArchived bool) ([]models.Template, error)
	UpdateTemplate(models.Template) error
	ReorderTemplates(userID string, updates []TemplateOrder) error
	ArchiveTemplate(id, userID string, when time.Time) error
	RestoreTemplate(id, userID string) error
	PurgeTemplate(id, userID string) ([]string, error)

	// Daily tasks
	AddTask(models.DailyTask) error
	GetTask(id, userID string) (models.DailyTask, error)
	GetTaskForTemplate(userID, templateID, day string) (models.DailyTask, error)
	UpdateTask(models.DailyTask) error
	DeleteTask(id, userID string) (string, error)
	GetTasksForDay(userID, day string) ([]models.DailyTask, error)
	GetTasksForRange(userID, from, to string) ([]models.DailyTask, error)
	GetCheckedDays(templateID string) ([]string, error)

	// Day summaries
	UpsertDaySummary(models.DaySummary) error
	GetDaySummaries(userID, from, to string) ([]models.DaySummary, error)

	// Fixed costs
	AddFixedCost(models.FixedCost) error
	GetFixedCosts(userID string) ([]models.FixedCost, error)
	DeleteFixedCost(id, userID string) error

	// Utils
	GetPath() string
}
