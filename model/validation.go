// model/validation.go
package model

import "time"

// ValidationRequest is a single access-validation call from a client that
// claims to be a Safe Exam Browser. At least one of ConfigKey and
// BrowserExamKey must be supplied.
type ValidationRequest struct {
	QuizModuleID   int    `json:"quiz_module_id" binding:"required"`
	OriginURL      string `json:"origin_url" binding:"required"`
	ConfigKey      string `json:"config_key,omitempty"`
	BrowserExamKey string `json:"browser_exam_key,omitempty"`
}

// HasKey reports whether the request carries at least one key proof.
func (r *ValidationRequest) HasKey() bool {
	return r.ConfigKey != "" || r.BrowserExamKey != ""
}

// ValidationResult is the verdict for a single validation call.
type ValidationResult struct {
	Valid bool `json:"valid"`
}

// AccessPreventedEvent is emitted exactly once per failed validation and
// never on success. It carries enough identity for the audit trail.
type AccessPreventedEvent struct {
	ID         string    `json:"id"`
	QuizID     string    `json:"quiz_id"`
	ModuleID   int       `json:"module_id"`
	CourseID   string    `json:"course_id"`
	UserID     string    `json:"user_id"`
	OriginURL  string    `json:"origin_url"`
	Reason     string    `json:"reason"`
	OccurredAt time.Time `json:"occurred_at"`
}
