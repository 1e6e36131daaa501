package dto

import (
	"time"

	"github.com/leadup-vn/leadup_backend/internal/core/domain"
)

// UpdateJourneyDayRequest marks a journey day complete (or not) with an
// optional reflection note.
type UpdateJourneyDayRequest struct {
	Completed *bool  `json:"completed" binding:"required"`
	Note      string `json:"note"`
}

// JourneyDayResponse is one day of the 30-day journey: the static task
// content merged with the user's progress.
type JourneyDayResponse struct {
	Day          int        `json:"day"`
	Week         int        `json:"week"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Action       string     `json:"action"`
	CoachMessage string     `json:"coachMessage"`
	Pillar       string     `json:"pillar"`
	Completed    bool       `json:"completed"`
	Note         string     `json:"note,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// JourneyResponse is the whole journey with completion stats.
type JourneyResponse struct {
	Days           []JourneyDayResponse `json:"days"`
	CompletedCount int                  `json:"completedCount"`
}

// ToJourneyResponse merges the static task list with a user's progress rows.
func ToJourneyResponse(progress []domain.JourneyProgress) JourneyResponse {
	byDay := make(map[int]domain.JourneyProgress, len(progress))
	for _, p := range progress {
		byDay[p.Day] = p
	}

	res := JourneyResponse{Days: make([]JourneyDayResponse, len(domain.JourneyTasks))}
	for i, task := range domain.JourneyTasks {
		day := JourneyDayResponse{
			Day:          task.Day,
			Week:         task.Week,
			Title:        task.Title,
			Description:  task.Description,
			Action:       task.Action,
			CoachMessage: task.CoachMessage,
			Pillar:       string(task.Pillar),
		}
		if p, ok := byDay[task.Day]; ok {
			day.Completed = p.Completed
			day.Note = p.Note
			day.CompletedAt = p.CompletedAt
			if p.Completed {
				res.CompletedCount++
			}
		}
		res.Days[i] = day
	}
	return res
}
