// services/count_service.go
package services

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// CountService keeps the advisory employees_count column on departments in
// line with the actual Employee rows. The column is form-editable, so it
// drifts; list/get responses always compute the real count, this job just
// reconciles the stored value.
type CountService struct {
	db   *gorm.DB
	cron *cron.Cron
}

func NewCountService(db *gorm.DB) *CountService {
	return &CountService{
		db:   db,
		cron: cron.New(),
	}
}

func (s *CountService) StartScheduler() {
	// Run every day at 2 AM
	s.cron.AddFunc("0 2 * * *", func() {
		if err := s.RefreshDepartmentCounts(); err != nil {
			log.Printf("Failed to refresh department counts: %v", err)
		}
	})

	s.cron.Start()
	log.Println("Department count scheduler started")
}

func (s *CountService) Stop() {
	s.cron.Stop()
}

func (s *CountService) RefreshDepartmentCounts() error {
	return s.db.Exec(`
		UPDATE departments
		SET employees_count = (
			SELECT COUNT(*) FROM employees
			WHERE employees.department_id = departments.id
		)
	`).Error
}
