// ABOUTME: MCP resource implementations for the spoons tracker.
// ABOUTME: Provides spoons://today, spoons://week, and spoons://categories resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/views"
)

func (s *Server) registerResources() {
	// spoons://today - check-in, energy-fit tasks and reminders for today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "spoons://today",
		Name:        "Today",
		Description: "Today's check-in, tasks grouped for the day, and reminder status",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// spoons://week - weekly reflection
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "spoons://week",
		Name:        "This Week",
		Description: "Average energy and task completion for the current week",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	// spoons://categories - available task categories
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "spoons://categories",
		Name:        "Task Categories",
		Description: "Built-in and custom task categories",
		MIMEType:    "application/json",
	}, s.handleCategoriesResource)
}

type todayView struct {
	Date      string          `json:"date"`
	CheckIn   *models.CheckIn `json:"checkIn,omitempty"`
	Message   string          `json:"message"`
	MustDo    []models.Task   `json:"mustDo"`
	Other     []models.Task   `json:"other"`
	Completed []models.Task   `json:"completed"`
	Reminders []reminderView  `json:"reminders"`
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	today := s.today()
	tasks := views.FilterByDate(s.gw.Tasks(), today)

	view := todayView{Date: today, Message: models.NoCheckInMessage}
	if c := s.gw.CheckInFor(today); c != nil {
		view.CheckIn = c
		view.Message = c.EnergyLevel.Message()
		tasks = views.FilterByEnergy(tasks, c.EnergyLevel)
	}

	groups := views.Partition(tasks)
	view.MustDo, view.Other, view.Completed = groups.MustDo, groups.Other, groups.Completed

	reminders := s.gw.Reminders()
	view.Reminders = make([]reminderView, 0, len(reminders))
	for _, r := range reminders {
		if r.Enabled {
			view.Reminders = append(view.Reminders, s.reminderView(r))
		}
	}

	return jsonResource("spoons://today", view)
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := s.weekSummary("")
	if err != nil {
		return nil, err
	}
	return jsonResource("spoons://week", summary)
}

func (s *Server) handleCategoriesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("spoons://categories", listCategoriesOutput{Categories: categoryViews(s.gw.AllCategories())})
}
