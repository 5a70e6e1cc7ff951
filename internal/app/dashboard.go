package app

import (
	"time"

	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/alexanderramin/dsatracker/internal/streak"
)

// DefaultRecentLimit is how many recent questions a dashboard lists.
const DefaultRecentLimit = 10

type DashboardRequest struct {
	// Today overrides the service clock. Nil means now.
	Today *domain.Date
	// Year and Month select the calendar page. A zero Month means today's month.
	Year        int
	Month       time.Month
	RecentLimit int
}

func NewDashboardRequest() DashboardRequest {
	return DashboardRequest{RecentLimit: DefaultRecentLimit}
}

// AtMonth returns a copy of the request showing the given calendar page.
func (r DashboardRequest) AtMonth(year int, month time.Month) DashboardRequest {
	r.Year, r.Month = year, month
	return r
}

type DashboardResponse struct {
	Today          domain.Date        `json:"today" yaml:"today"`
	MonthTitle     string             `json:"monthTitle" yaml:"monthTitle"`
	Stats          streak.Stats       `json:"stats" yaml:"stats"`
	Calendar       streak.Grid        `json:"calendar" yaml:"calendar"`
	TodayQuestions []*domain.Question `json:"todayQuestions" yaml:"todayQuestions"`
	Recent         []*domain.Question `json:"recent" yaml:"recent"`
}
