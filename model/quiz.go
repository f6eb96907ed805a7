// model/quiz.go
package model

import "time"

// SEBRequirement describes how a quiz expects Safe Exam Browser to be used.
type SEBRequirement string

const (
	SEBRequirementNone           SEBRequirement = "none"
	SEBRequirementConfigManually SEBRequirement = "config_manually"
	SEBRequirementUseTemplate    SEBRequirement = "use_template"
	SEBRequirementUseSEBConfig   SEBRequirement = "use_seb_config"
	SEBRequirementUseClientKeys  SEBRequirement = "use_client_config"
)

// QuizExamPolicy is the exam-browser policy attached to a single quiz
// activity. ConfigKey is the quiz's private config secret; AllowedBrowserKeys
// holds the hashes of the approved SEB client builds.
type QuizExamPolicy struct {
	QuizID             string         `json:"quiz_id"`
	ModuleID           int            `json:"module_id"`
	CourseID           string         `json:"course_id"`
	QuizName           string         `json:"quiz_name"`
	RequireSEB         SEBRequirement `json:"require_seb"`
	ConfigKey          string         `json:"config_key,omitempty"`
	AllowedBrowserKeys []string       `json:"allowed_browser_keys,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// RequiresValidation reports whether requests to this quiz must carry a key
// proof at all. Quizzes with no SEB requirement skip key checks entirely.
func (p *QuizExamPolicy) RequiresValidation() bool {
	return p.RequireSEB != "" && p.RequireSEB != SEBRequirementNone
}
