package httpapi

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/dsatracker/internal/app"
	"github.com/alexanderramin/dsatracker/internal/domain"
	"github.com/gofiber/fiber/v2"
)

type handlers struct {
	svcs Services
	now  func() time.Time
}

func (h *handlers) root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Backend server is running!"})
}

func (h *handlers) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "OK", "timestamp": h.now().UTC().Format(time.RFC3339Nano)})
}

func (h *handlers) apiTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "API is working!", "timestamp": h.now().UTC().Format(time.RFC3339Nano)})
}

func (h *handlers) dashboard(c *fiber.Ctx) error {
	req, err := h.dashboardRequest(c)
	if err != nil {
		return err
	}
	if v := c.Query("recent"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return badRequest("recent must be a positive integer")
		}
		req.RecentLimit = n
	}
	resp, err := h.svcs.Dashboard.GetDashboard(c.UserContext(), req)
	if err != nil {
		return err
	}
	return OK(c, resp)
}

func (h *handlers) stats(c *fiber.Ctx) error {
	today, err := todayParam(c)
	if err != nil {
		return err
	}
	stats, err := h.svcs.Dashboard.GetStats(c.UserContext(), today)
	if err != nil {
		return err
	}
	return OK(c, stats)
}

func (h *handlers) calendar(c *fiber.Ctx) error {
	req, err := h.dashboardRequest(c)
	if err != nil {
		return err
	}
	grid, err := h.svcs.Dashboard.GetCalendar(c.UserContext(), req)
	if err != nil {
		return err
	}
	return OK(c, grid, fiber.Map{"title": grid.Title()})
}

func (h *handlers) activity(c *fiber.Ctx) error {
	log, err := h.svcs.Activity.Snapshot(c.UserContext())
	if err != nil {
		return err
	}
	return OK(c, log.Keyed())
}

type setActivityRequest struct {
	Count *int `json:"count"`
}

func (h *handlers) setActivity(c *fiber.Ctx) error {
	day, err := domain.ParseDate(c.Params("date"))
	if err != nil {
		return err
	}
	var body setActivityRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest("invalid JSON body")
	}
	if body.Count == nil {
		return ValidationFailed(c, map[string]string{"count": "count is required"})
	}
	if err := h.svcs.Activity.SetActivity(c.UserContext(), day, *body.Count); err != nil {
		return err
	}
	return OK(c, fiber.Map{"date": day.Key(), "count": *body.Count})
}

func (h *handlers) tags(c *fiber.Ctx) error {
	counts, err := h.svcs.Bank.TagCounts(c.UserContext())
	if err != nil {
		return err
	}
	return OK(c, counts, fiber.Map{"difficulties": domain.Difficulties})
}

func (h *handlers) searchQuestions(c *fiber.Ctx) error {
	q, err := bankQuery(c)
	if err != nil {
		return err
	}
	res, err := h.svcs.Bank.Search(c.UserContext(), q)
	if err != nil {
		return err
	}
	return OK(c, res.Questions, fiber.Map{"total": res.Total, "matched": res.Matched})
}

type questionRequest struct {
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
	Approach    string   `json:"approach"`
	Solution    string   `json:"solution"`
	Notes       string   `json:"notes"`
	TimeSpent   *int     `json:"timeSpent"`
	Platform    string   `json:"platform"`
	CompletedOn string   `json:"completedOn"`
}

func (r questionRequest) input() (domain.QuestionInput, error) {
	in := domain.QuestionInput{
		Title:        r.Title,
		Difficulty:   r.Difficulty,
		Tags:         r.Tags,
		Approach:     r.Approach,
		Solution:     r.Solution,
		Notes:        r.Notes,
		TimeSpentMin: r.TimeSpent,
		Platform:     r.Platform,
	}
	if r.CompletedOn != "" {
		d, err := domain.ParseDate(r.CompletedOn)
		if err != nil {
			return in, &domain.ValidationError{Fields: map[string]string{"completedOn": err.Error()}}
		}
		in.CompletedOn = &d
	}
	return in, nil
}

func (h *handlers) addQuestion(c *fiber.Ctx) error {
	var body questionRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest("invalid JSON body")
	}
	in, err := body.input()
	if err != nil {
		return err
	}
	q, err := h.svcs.Questions.AddQuestion(c.UserContext(), in)
	if err != nil {
		return err
	}
	return Created(c, q)
}

func (h *handlers) todayQuestions(c *fiber.Ctx) error {
	today, err := todayParam(c)
	if err != nil {
		return err
	}
	day := h.svcs.Dashboard.Today()
	if today != nil {
		day = *today
	}
	qs, err := h.svcs.Questions.ListForDay(c.UserContext(), day)
	if err != nil {
		return err
	}
	if qs == nil {
		qs = []*domain.Question{}
	}
	return OK(c, qs, fiber.Map{"date": day.Key(), "count": len(qs)})
}

func (h *handlers) getQuestion(c *fiber.Ctx) error {
	q, err := h.svcs.Questions.GetQuestion(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return OK(c, q)
}

func (h *handlers) removeQuestion(c *fiber.Ctx) error {
	if err := h.svcs.Questions.RemoveQuestion(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return NoContent(c)
}

// todayParam reads the optional ?today=YYYY-MM-DD clock override.
func todayParam(c *fiber.Ctx) (*domain.Date, error) {
	raw := c.Query("today")
	if raw == "" {
		return nil, nil
	}
	d, err := domain.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// dashboardRequest reads ?today, ?year and ?month. Month alone keeps
// today's year.
func (h *handlers) dashboardRequest(c *fiber.Ctx) (app.DashboardRequest, error) {
	req := app.NewDashboardRequest()
	today, err := todayParam(c)
	if err != nil {
		return req, err
	}
	req.Today = today

	monthRaw, yearRaw := c.Query("month"), c.Query("year")
	if monthRaw == "" {
		if yearRaw != "" {
			return req, badRequest("year requires month")
		}
		return req, nil
	}
	month, err := strconv.Atoi(monthRaw)
	if err != nil || month < 1 || month > 12 {
		return req, badRequest("month must be between 1 and 12")
	}
	year := 0
	if yearRaw != "" {
		if year, err = strconv.Atoi(yearRaw); err != nil {
			return req, badRequest("year must be an integer")
		}
	} else if today != nil {
		year = today.Year()
	} else {
		year = h.svcs.Dashboard.Today().Year()
	}
	return req.AtMonth(year, time.Month(month)), nil
}

// bankQuery reads ?q, ?tags, ?difficulty and ?sort. List values are
// comma-separated.
func bankQuery(c *fiber.Ctx) (app.BankQuery, error) {
	q := app.BankQuery{Text: c.Query("q")}

	for _, raw := range splitList(c.Query("tags")) {
		t, ok := domain.ParseTag(raw)
		if !ok {
			return q, badRequest(fmt.Sprintf("unknown tag %q", raw))
		}
		q.Tags = append(q.Tags, t)
	}
	for _, raw := range splitList(c.Query("difficulty")) {
		d, ok := domain.ParseDifficulty(raw)
		if !ok {
			return q, badRequest(fmt.Sprintf("unknown difficulty %q", raw))
		}
		q.Difficulties = append(q.Difficulties, d)
	}
	sortBy, err := app.ParseBankSort(c.Query("sort"))
	if err != nil {
		return q, badRequest(err.Error())
	}
	q.SortBy = sortBy
	return q, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
