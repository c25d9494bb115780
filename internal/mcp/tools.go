// ABOUTME: MCP tool implementations for check-ins, tasks, reminders, and categories.
// ABOUTME: Inputs are validated here before anything reaches the gateway.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/spoons/internal/gateway"
	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/views"
)

func (s *Server) registerTools() {
	// log_checkin
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_checkin",
		Description: "Log today's (or a given day's) energy, mood and symptoms. Replaces an existing check-in for that day.",
	}, s.handleLogCheckIn)

	// get_checkin
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_checkin",
		Description: "Get the check-in for a day (defaults to today)",
	}, s.handleGetCheckIn)

	// add_task
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_task",
		Description: "Create a task tagged with energy cost, priority, category and bucket",
	}, s.handleAddTask)

	// list_tasks
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_tasks",
		Description: "List tasks grouped into must-do, other and completed, optionally filtered by date, bucket and today's energy",
	}, s.handleListTasks)

	// update_task
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_task",
		Description: "Change any subset of a task's fields",
	}, s.handleUpdateTask)

	// toggle_task
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_task",
		Description: "Mark a task done, or not done if it already was",
	}, s.handleToggleTask)

	// delete_task
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_task",
		Description: "Delete a task by ID or ID prefix",
	}, s.handleDeleteTask)

	// list_reminders
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_reminders",
		Description: "List self-care reminders and whether each was done today",
	}, s.handleListReminders)

	// toggle_reminder
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "toggle_reminder",
		Description: "Enable or disable a reminder",
	}, s.handleToggleReminder)

	// complete_reminder
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_reminder",
		Description: "Record that a reminder was done just now",
	}, s.handleCompleteReminder)

	// add_reminder
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_reminder",
		Description: "Add a custom self-care reminder",
	}, s.handleAddReminder)

	// delete_reminder
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_reminder",
		Description: "Delete a custom reminder (built-in reminders cannot be deleted)",
	}, s.handleDeleteReminder)

	// list_categories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_categories",
		Description: "List task categories, built-in first",
	}, s.handleListCategories)

	// add_category
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_category",
		Description: "Add a custom task category",
	}, s.handleAddCategory)

	// get_calendar
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_calendar",
		Description: "Month grid of due dates, with the tasks due on the selected day",
	}, s.handleGetCalendar)

	// weekly_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_summary",
		Description: "Average energy, completed tasks and completion rate for a Sunday-to-Saturday week",
	}, s.handleWeeklySummary)
}

// Tool input/output types

type logCheckInInput struct {
	Energy   string   `json:"energy" jsonschema:"Energy level: very-low, low, moderate or high"`
	Mood     string   `json:"mood" jsonschema:"Mood: calm, overwhelmed, hopeful, tired, anxious or content"`
	Symptoms []string `json:"symptoms,omitempty" jsonschema:"Symptoms such as fatigue, pain, brain-fog"`
	Date     string   `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type checkInOutput struct {
	CheckIn *models.CheckIn `json:"checkIn,omitempty"`
	Message string          `json:"message"`
}

type dateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day as YYYY-MM-DD, defaults to today"`
}

type addTaskInput struct {
	Title      string `json:"title" jsonschema:"Task title"`
	EnergyCost string `json:"energy_cost,omitempty" jsonschema:"very-low, low, moderate (default) or high"`
	Priority   string `json:"priority,omitempty" jsonschema:"must-do, can-wait (default) or optional"`
	Category   string `json:"category,omitempty" jsonschema:"Category name, defaults to general"`
	Bucket     string `json:"bucket,omitempty" jsonschema:"admin-mode, medium-energy (default), heavy-energy, for-others, for-myself or just-for-fun"`
	Date       string `json:"date,omitempty" jsonschema:"Day the task belongs to as YYYY-MM-DD, defaults to today"`
	DueDate    string `json:"due_date,omitempty" jsonschema:"Calendar due date as YYYY-MM-DD"`
	Notes      string `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type taskOutput struct {
	Task    *models.Task `json:"task,omitempty"`
	Message string       `json:"message"`
}

type listTasksInput struct {
	Date      string `json:"date,omitempty" jsonschema:"Only tasks assigned to this day (YYYY-MM-DD)"`
	Bucket    string `json:"bucket,omitempty" jsonschema:"Only tasks in this bucket, or all"`
	FitEnergy bool   `json:"fit_energy,omitempty" jsonschema:"Only tasks whose energy cost fits today's check-in"`
}

type listTasksOutput struct {
	MustDo    []models.Task `json:"mustDo"`
	Other     []models.Task `json:"other"`
	Completed []models.Task `json:"completed"`
	Energy    string        `json:"energy,omitempty"`
}

type updateTaskInput struct {
	ID         string  `json:"id" jsonschema:"Task ID or prefix"`
	Title      *string `json:"title,omitempty" jsonschema:"New title"`
	EnergyCost *string `json:"energy_cost,omitempty" jsonschema:"New energy cost"`
	Priority   *string `json:"priority,omitempty" jsonschema:"New priority"`
	Category   *string `json:"category,omitempty" jsonschema:"New category"`
	Bucket     *string `json:"bucket,omitempty" jsonschema:"New bucket"`
	Completed  *bool   `json:"completed,omitempty" jsonschema:"New completion state"`
	Date       *string `json:"date,omitempty" jsonschema:"New assigned day (YYYY-MM-DD)"`
	DueDate    *string `json:"due_date,omitempty" jsonschema:"New due date (YYYY-MM-DD), empty string clears it"`
	Notes      *string `json:"notes,omitempty" jsonschema:"New notes"`
}

type idInput struct {
	ID string `json:"id" jsonschema:"ID or ID prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type reminderView struct {
	ID            string `json:"id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Enabled       bool   `json:"enabled"`
	LastCompleted string `json:"lastCompleted,omitempty"`
	DoneToday     bool   `json:"doneToday"`
}

type reminderOutput struct {
	Reminder *reminderView `json:"reminder,omitempty"`
	Message  string        `json:"message"`
}

type listRemindersOutput struct {
	Reminders []reminderView `json:"reminders"`
}

type titleInput struct {
	Title string `json:"title" jsonschema:"Reminder title"`
}

type categoryView struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Icon    string `json:"icon"`
	Default bool   `json:"default"`
}

type listCategoriesOutput struct {
	Categories []categoryView `json:"categories"`
}

type nameInput struct {
	Name string `json:"name" jsonschema:"Category name"`
}

type calendarInput struct {
	Year     int    `json:"year,omitempty" jsonschema:"Year, defaults to the current year"`
	Month    int    `json:"month,omitempty" jsonschema:"Month 1-12, defaults to the current month"`
	Selected string `json:"selected,omitempty" jsonschema:"Selected day (YYYY-MM-DD), defaults to today"`
}

type calendarOutput struct {
	Title         string         `json:"title"`
	LeadingBlanks int            `json:"leadingBlanks"`
	Weeks         [][]views.Cell `json:"weeks"`
	Selected      string         `json:"selected"`
	DueOnSelected []models.Task  `json:"dueOnSelected"`
}

// Tool handlers

func (s *Server) dateOrToday(date string) (string, error) {
	if date == "" {
		return s.today(), nil
	}
	if !models.IsDate(date) {
		return "", fmt.Errorf("invalid date %q: use YYYY-MM-DD", date)
	}
	return date, nil
}

func (s *Server) handleLogCheckIn(ctx context.Context, req *mcp.CallToolRequest, input logCheckInInput) (*mcp.CallToolResult, checkInOutput, error) {
	date, err := s.dateOrToday(input.Date)
	if err != nil {
		return nil, checkInOutput{}, err
	}

	symptoms := make([]models.Symptom, 0, len(input.Symptoms))
	for _, sym := range input.Symptoms {
		symptoms = append(symptoms, models.Symptom(sym))
	}
	c := models.NewCheckIn(date, models.EnergyLevel(input.Energy), models.Mood(input.Mood), symptoms...)
	if err := models.Validate(c); err != nil {
		return nil, checkInOutput{}, err
	}

	if err := s.gw.SaveCheckIn(*c); err != nil {
		return nil, checkInOutput{}, fmt.Errorf("failed to save check-in: %w", err)
	}

	return nil, checkInOutput{
		CheckIn: c,
		Message: fmt.Sprintf("Checked in for %s: %s energy. %s", date, c.EnergyLevel.Label(), c.EnergyLevel.Message()),
	}, nil
}

func (s *Server) handleGetCheckIn(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, checkInOutput, error) {
	date, err := s.dateOrToday(input.Date)
	if err != nil {
		return nil, checkInOutput{}, err
	}

	c := s.gw.CheckInFor(date)
	if c == nil {
		return nil, checkInOutput{Message: fmt.Sprintf("No check-in for %s. %s", date, models.NoCheckInMessage)}, nil
	}
	return nil, checkInOutput{CheckIn: c, Message: c.EnergyLevel.Message()}, nil
}

func (s *Server) handleAddTask(ctx context.Context, req *mcp.CallToolRequest, input addTaskInput) (*mcp.CallToolResult, taskOutput, error) {
	date, err := s.dateOrToday(input.Date)
	if err != nil {
		return nil, taskOutput{}, err
	}

	t := models.NewTask(input.Title, date)
	if input.EnergyCost != "" {
		t.WithEnergyCost(models.EnergyLevel(input.EnergyCost))
	}
	if input.Priority != "" {
		t.WithPriority(models.Priority(input.Priority))
	}
	if input.Category != "" {
		t.WithCategory(models.Category(input.Category))
	}
	if input.Bucket != "" {
		t.WithBucket(models.Bucket(input.Bucket))
	}
	t.WithDueDate(input.DueDate).WithNotes(input.Notes)

	if err := models.Validate(t); err != nil {
		return nil, taskOutput{}, err
	}
	if err := s.gw.AddTask(*t); err != nil {
		return nil, taskOutput{}, fmt.Errorf("failed to add task: %w", err)
	}

	return nil, taskOutput{
		Task:    t,
		Message: fmt.Sprintf("Added task %q (ID: %s)", t.Title, t.ID[:8]),
	}, nil
}

func (s *Server) handleListTasks(ctx context.Context, req *mcp.CallToolRequest, input listTasksInput) (*mcp.CallToolResult, listTasksOutput, error) {
	tasks := s.gw.Tasks()
	if input.Date != "" {
		tasks = views.FilterByDate(tasks, input.Date)
	}

	var out listTasksOutput
	if input.FitEnergy {
		if c := s.gw.TodayCheckIn(s.now()); c != nil {
			tasks = views.FilterByEnergy(tasks, c.EnergyLevel)
			out.Energy = string(c.EnergyLevel)
		}
	}
	if input.Bucket != "" {
		bucket, err := models.ParseBucket(input.Bucket)
		if err != nil {
			return nil, listTasksOutput{}, err
		}
		tasks = views.FilterByBucket(tasks, bucket)
	}

	groups := views.Partition(tasks)
	out.MustDo, out.Other, out.Completed = groups.MustDo, groups.Other, groups.Completed
	return nil, out, nil
}

func (s *Server) handleUpdateTask(ctx context.Context, req *mcp.CallToolRequest, input updateTaskInput) (*mcp.CallToolResult, taskOutput, error) {
	current, err := s.gw.GetTask(input.ID)
	if err != nil {
		return nil, taskOutput{}, err
	}

	patch := models.TaskPatch{
		Title:     input.Title,
		Completed: input.Completed,
		Date:      input.Date,
		DueDate:   input.DueDate,
		Notes:     input.Notes,
	}
	if input.EnergyCost != nil {
		e := models.EnergyLevel(*input.EnergyCost)
		patch.EnergyCost = &e
	}
	if input.Priority != nil {
		p := models.Priority(*input.Priority)
		patch.Priority = &p
	}
	if input.Category != nil {
		c := models.Category(*input.Category)
		patch.Category = &c
	}
	if input.Bucket != nil {
		b := models.Bucket(*input.Bucket)
		patch.Bucket = &b
	}
	if patch.IsEmpty() {
		return nil, taskOutput{}, errors.New("nothing to update")
	}

	updated := applyTaskPatch(*current, patch)
	if err := models.Validate(updated); err != nil {
		return nil, taskOutput{}, err
	}
	if err := s.gw.UpdateTask(current.ID, patch); err != nil {
		return nil, taskOutput{}, fmt.Errorf("failed to update task: %w", err)
	}

	return nil, taskOutput{Task: &updated, Message: fmt.Sprintf("Updated task %q", updated.Title)}, nil
}

// applyTaskPatch previews a patch so the result can be validated before saving.
func applyTaskPatch(t models.Task, p models.TaskPatch) models.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.EnergyCost != nil {
		t.EnergyCost = *p.EnergyCost
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Bucket != nil {
		t.Bucket = *p.Bucket
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	return t
}

func (s *Server) handleToggleTask(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, taskOutput, error) {
	current, err := s.gw.GetTask(input.ID)
	if err != nil {
		return nil, taskOutput{}, err
	}

	t, err := s.gw.ToggleTask(current.ID)
	if err != nil {
		return nil, taskOutput{}, fmt.Errorf("failed to toggle task: %w", err)
	}
	if t == nil {
		return nil, taskOutput{}, fmt.Errorf("%w: %s", gateway.ErrTaskNotFound, input.ID)
	}

	state := "not done"
	if t.Completed {
		state = "done"
	}
	return nil, taskOutput{Task: t, Message: fmt.Sprintf("Marked %q %s", t.Title, state)}, nil
}

func (s *Server) handleDeleteTask(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	t, err := s.gw.GetTask(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.gw.DeleteTask(t.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete task: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted task %q", t.Title)}, nil
}

func (s *Server) reminderView(r models.Reminder) reminderView {
	v := reminderView{
		ID:        r.ID,
		Type:      string(r.Type),
		Title:     r.Title,
		Enabled:   r.Enabled,
		DoneToday: r.CompletedOn(s.now()),
	}
	if r.LastCompleted != nil {
		v.LastCompleted = r.LastCompleted.Format(time.RFC3339)
	}
	return v
}

func (s *Server) handleListReminders(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, listRemindersOutput, error) {
	reminders := s.gw.Reminders()
	out := listRemindersOutput{Reminders: make([]reminderView, 0, len(reminders))}
	for _, r := range reminders {
		out.Reminders = append(out.Reminders, s.reminderView(r))
	}
	return nil, out, nil
}

func (s *Server) handleToggleReminder(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, reminderOutput, error) {
	current, err := s.gw.GetReminder(input.ID)
	if err != nil {
		return nil, reminderOutput{}, err
	}
	r, err := s.gw.ToggleReminder(current.ID)
	if err != nil {
		return nil, reminderOutput{}, fmt.Errorf("failed to toggle reminder: %w", err)
	}
	if r == nil {
		return nil, reminderOutput{}, fmt.Errorf("%w: %s", gateway.ErrReminderNotFound, input.ID)
	}

	v := s.reminderView(*r)
	state := "disabled"
	if r.Enabled {
		state = "enabled"
	}
	return nil, reminderOutput{Reminder: &v, Message: fmt.Sprintf("%s %s", r.Title, state)}, nil
}

func (s *Server) handleCompleteReminder(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, reminderOutput, error) {
	current, err := s.gw.GetReminder(input.ID)
	if err != nil {
		return nil, reminderOutput{}, err
	}
	r, err := s.gw.CompleteReminder(current.ID, s.now())
	if err != nil {
		return nil, reminderOutput{}, fmt.Errorf("failed to complete reminder: %w", err)
	}
	if r == nil {
		return nil, reminderOutput{}, fmt.Errorf("%w: %s", gateway.ErrReminderNotFound, input.ID)
	}

	v := s.reminderView(*r)
	return nil, reminderOutput{Reminder: &v, Message: fmt.Sprintf("Done: %s", r.Title)}, nil
}

func (s *Server) handleAddReminder(ctx context.Context, req *mcp.CallToolRequest, input titleInput) (*mcp.CallToolResult, reminderOutput, error) {
	r := models.NewCustomReminder(input.Title)
	if err := models.Validate(r); err != nil {
		return nil, reminderOutput{}, err
	}
	if err := s.gw.AddReminder(*r); err != nil {
		return nil, reminderOutput{}, fmt.Errorf("failed to add reminder: %w", err)
	}

	v := s.reminderView(*r)
	return nil, reminderOutput{Reminder: &v, Message: fmt.Sprintf("Added reminder %q (ID: %s)", r.Title, r.ID[:8])}, nil
}

func (s *Server) handleDeleteReminder(ctx context.Context, req *mcp.CallToolRequest, input idInput) (*mcp.CallToolResult, simpleOutput, error) {
	r, err := s.gw.GetReminder(input.ID)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	if err := s.gw.DeleteReminder(r.ID); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Deleted reminder %q", r.Title)}, nil
}

func categoryViews(categories []models.Category) []categoryView {
	out := make([]categoryView, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryView{
			Name:    string(c),
			Label:   c.Label(),
			Icon:    c.Icon(),
			Default: c.IsDefault(),
		})
	}
	return out
}

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, listCategoriesOutput, error) {
	return nil, listCategoriesOutput{Categories: categoryViews(s.gw.AllCategories())}, nil
}

func (s *Server) handleAddCategory(ctx context.Context, req *mcp.CallToolRequest, input nameInput) (*mcp.CallToolResult, simpleOutput, error) {
	name := models.Category(input.Name)
	if err := models.ValidateCategory(name); err != nil {
		return nil, simpleOutput{}, err
	}

	added, err := s.gw.AddCustomCategory(name)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add category: %w", err)
	}
	if !added {
		return nil, simpleOutput{Message: fmt.Sprintf("Category %q already exists", input.Name)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Added category %q", input.Name)}, nil
}

func (s *Server) handleGetCalendar(ctx context.Context, req *mcp.CallToolRequest, input calendarInput) (*mcp.CallToolResult, calendarOutput, error) {
	now := s.now()
	year, month := now.Year(), now.Month()
	if input.Year != 0 {
		year = input.Year
	}
	if input.Month != 0 {
		if input.Month < 1 || input.Month > 12 {
			return nil, calendarOutput{}, fmt.Errorf("invalid month %d: use 1-12", input.Month)
		}
		month = time.Month(input.Month)
	}
	selected, err := s.dateOrToday(input.Selected)
	if err != nil {
		return nil, calendarOutput{}, err
	}

	tasks := s.gw.TasksWithDueDates()
	cal := views.BuildCalendar(year, month, s.today(), selected, tasks)
	return nil, calendarOutput{
		Title:         cal.Title(),
		LeadingBlanks: cal.LeadingBlanks,
		Weeks:         cal.Weeks,
		Selected:      selected,
		DueOnSelected: views.FilterByDueDate(tasks, selected),
	}, nil
}

func (s *Server) weekSummary(date string) (views.WeekSummary, error) {
	date, err := s.dateOrToday(date)
	if err != nil {
		return views.WeekSummary{}, err
	}
	ref, err := models.ParseDate(date)
	if err != nil {
		return views.WeekSummary{}, err
	}
	week := views.BuildWeek(ref, s.gw.CheckIns(), s.gw.Tasks())
	return views.Summarize(week), nil
}

func (s *Server) handleWeeklySummary(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, views.WeekSummary, error) {
	summary, err := s.weekSummary(input.Date)
	if err != nil {
		return nil, views.WeekSummary{}, err
	}
	return nil, summary, nil
}
