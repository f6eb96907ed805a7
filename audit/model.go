// audit/model.go
package audit

import "time"

type AccessPreventedLog struct {
	EventID   string    `json:"event_id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"user_id"`
	QuizID    string    `json:"quiz_id"`
	ModuleID  int       `json:"module_id"`
	CourseID  string    `json:"course_id"`
	OriginURL string    `json:"origin_url"`
	Reason    string    `json:"reason"`
}
