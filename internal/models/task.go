package model

import (
	"time"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in_progress"
	StatusDone       TaskStatus = "done"
)

// ValidStatus reports whether s is one of the known task statuses.
func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Priority bounds. 1 is the most urgent, 5 the least; new tasks default
// to the middle value.
const (
	PriorityMin     = 1
	PriorityMax     = 5
	PriorityDefault = 3
)

func ValidPriority(p int) bool {
	return p >= PriorityMin && p <= PriorityMax
}

type Task struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Priority    int        `gorm:"not null;default:3" json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}

// Overdue reports whether the task's due date falls strictly before the
// day containing now and the task is not done. Tasks without a due date
// are never overdue.
func (t Task) Overdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	return t.DueDate.Before(DayStart(now))
}

// DueToday reports whether the task's due date falls within the day
// containing now and the task is not done.
func (t Task) DueToday(now time.Time) bool {
	if t.DueDate == nil || t.Status == StatusDone {
		return false
	}
	start := DayStart(now)
	end := start.AddDate(0, 0, 1)
	return !t.DueDate.Before(start) && t.DueDate.Before(end)
}

// DayStart truncates ts to midnight in its own location.
func DayStart(ts time.Time) time.Time {
	y, m, d := ts.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, ts.Location())
}
