// ABOUTME: Export and import of every collection.
// ABOUTME: Supports JSON, YAML, and Markdown export formats; imports JSON.
package gateway

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
)

// ExportVersion is the version written into export files.
const ExportVersion = "1.0"

// ExportData represents the full export format.
type ExportData struct {
	Version          string            `json:"version" yaml:"version"`
	ExportedAt       time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool             string            `json:"tool" yaml:"tool"`
	CheckIns         []models.CheckIn  `json:"checkIns" yaml:"check_ins"`
	Tasks            []models.Task     `json:"tasks" yaml:"tasks"`
	Reminders        []models.Reminder `json:"reminders" yaml:"reminders"`
	CustomCategories []models.Category `json:"customCategories" yaml:"custom_categories"`
}

// Export gathers all collections, check-ins sorted by date.
func (g *Gateway) Export(now time.Time) *ExportData {
	checkIns := g.CheckIns()
	sort.SliceStable(checkIns, func(i, j int) bool { return checkIns[i].Date < checkIns[j].Date })

	return &ExportData{
		Version:          ExportVersion,
		ExportedAt:       now.UTC(),
		Tool:             "spoons",
		CheckIns:         checkIns,
		Tasks:            g.Tasks(),
		Reminders:        g.Reminders(),
		CustomCategories: g.CustomCategories(),
	}
}

// ExportJSON exports all data as indented JSON.
func (g *Gateway) ExportJSON(now time.Time) ([]byte, error) {
	return json.MarshalIndent(g.Export(now), "", "  ")
}

// ExportYAML exports all data as YAML.
func (g *Gateway) ExportYAML(now time.Time) ([]byte, error) {
	return yaml.Marshal(g.Export(now))
}

// ExportMarkdown renders check-ins, tasks and reminders as Markdown tables.
func (g *Gateway) ExportMarkdown(now time.Time) string {
	data := g.Export(now)
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Spoons Export - %s\n\n", models.FormatDate(now)))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	sb.WriteString("## Check-ins\n\n")
	sb.WriteString("| Date | Energy | Mood | Symptoms |\n")
	sb.WriteString("|------|--------|------|----------|\n")
	for _, c := range data.CheckIns {
		symptoms := make([]string, 0, len(c.Symptoms))
		for _, s := range c.Symptoms {
			symptoms = append(symptoms, string(s))
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
			c.Date, c.EnergyLevel.Label(), c.Mood, strings.Join(symptoms, ", ")))
	}

	tasks := append([]models.Task{}, data.Tasks...)
	sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Date < tasks[j].Date })

	sb.WriteString("\n## Tasks\n\n")
	sb.WriteString("| Done | Date | Title | Energy | Priority | Category | Bucket | Due |\n")
	sb.WriteString("|------|------|-------|--------|----------|----------|--------|-----|\n")
	for _, t := range tasks {
		done := " "
		if t.Completed {
			done = "x"
		}
		sb.WriteString(fmt.Sprintf("| [%s] | %s | %s | %s | %s | %s | %s | %s |\n",
			done, t.Date, t.Title, t.EnergyCost.Label(), t.Priority.Label(),
			t.Category.Label(), t.Bucket.Label(), t.DueDate))
	}

	sb.WriteString("\n## Reminders\n\n")
	sb.WriteString("| Title | Type | Enabled | Last Completed |\n")
	sb.WriteString("|-------|------|---------|----------------|\n")
	for _, r := range data.Reminders {
		last := ""
		if r.LastCompleted != nil {
			last = r.LastCompleted.Format("2006-01-02 15:04")
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %t | %s |\n", r.Title, r.Type, r.Enabled, last))
	}

	if len(data.CustomCategories) > 0 {
		sb.WriteString("\n## Custom Categories\n\n")
		for _, c := range data.CustomCategories {
			sb.WriteString(fmt.Sprintf("- %s\n", c))
		}
	}

	return sb.String()
}

// ImportSummary counts what an import touched.
type ImportSummary struct {
	CheckIns   int
	Tasks      int
	Reminders  int
	Categories int
}

// mergeByKey upserts incoming into existing, matching on key.
func mergeByKey[T any](existing, incoming []T, key func(T) string) []T {
	index := make(map[string]int, len(existing))
	for i, r := range existing {
		index[key(r)] = i
	}
	for _, r := range incoming {
		if i, ok := index[key(r)]; ok {
			existing[i] = r
			continue
		}
		index[key(r)] = len(existing)
		existing = append(existing, r)
	}
	return existing
}

// ImportJSON upserts the records of a JSON export: check-ins by date, tasks
// and reminders by id. Custom categories go through AddCustomCategory.
func (g *Gateway) ImportJSON(raw []byte) (*ImportSummary, error) {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return g.Import(&data)
}

// Import upserts the records of data into the store.
func (g *Gateway) Import(data *ExportData) (*ImportSummary, error) {
	summary := &ImportSummary{}

	if len(data.CheckIns) > 0 {
		for i := range data.CheckIns {
			data.CheckIns[i].ID = data.CheckIns[i].Date
		}
		if err := mergeInto(g, storage.KeyCheckIns, data.CheckIns, func(c models.CheckIn) string { return c.Date }); err != nil {
			return summary, fmt.Errorf("import check-ins: %w", err)
		}
		summary.CheckIns = len(data.CheckIns)
	}

	if len(data.Tasks) > 0 {
		if err := mergeInto(g, storage.KeyTasks, data.Tasks, func(t models.Task) string { return t.ID }); err != nil {
			return summary, fmt.Errorf("import tasks: %w", err)
		}
		summary.Tasks = len(data.Tasks)
	}

	if len(data.Reminders) > 0 {
		g.seedReminders()
		if err := mergeInto(g, storage.KeyReminders, data.Reminders, func(r models.Reminder) string { return r.ID }); err != nil {
			return summary, fmt.Errorf("import reminders: %w", err)
		}
		summary.Reminders = len(data.Reminders)
	}

	for _, c := range data.CustomCategories {
		added, err := g.AddCustomCategory(c)
		if err != nil {
			return summary, fmt.Errorf("import categories: %w", err)
		}
		if added {
			summary.Categories++
		}
	}

	return summary, nil
}

func mergeInto[T any](g *Gateway, key string, incoming []T, keyOf func(T) string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	existing, err := load[T](g, key)
	if err != nil {
		return err
	}
	return save(g, key, mergeByKey(existing, incoming, keyOf))
}
