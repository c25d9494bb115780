// ABOUTME: Tests for CLI commands and helper functions.
// ABOUTME: Runs the root command in-process against a temp SQLite store with a fixed clock.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harperreed/spoons/internal/gateway"
	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
)

// Wednesday, 14 Feb 2024.
var fixedNow = time.Date(2024, time.February, 14, 12, 0, 0, 0, time.UTC)

// resetFlags puts every flag back to its default so runs don't leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// setupTestCLI returns a data dir and isolates config from the real home.
func setupTestCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	color.NoColor = true

	prev := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = prev })

	return t.TempDir()
}

// runCLI executes the root command with the sqlite backend in dataDir.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(append([]string{"--backend", "sqlite", "--data-dir", dataDir}, args...))

	err := execute()
	return buf.String(), err
}

func mustRun(t *testing.T, dataDir string, args ...string) string {
	t.Helper()
	out, err := runCLI(t, dataDir, args...)
	if err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out)
	}
	return out
}

// openTestGateway opens the sqlite store a CLI run wrote to.
func openTestGateway(t *testing.T, dataDir string) *gateway.Gateway {
	t.Helper()
	s, err := storage.OpenSQLite(filepath.Join(dataDir, "spoons.db"))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return gateway.New(s, nil)
}

func onlyTask(t *testing.T, dataDir string) models.Task {
	t.Helper()
	tasks := openTestGateway(t, dataDir).Tasks()
	if len(tasks) != 1 {
		t.Fatalf("Expected 1 task, got %d", len(tasks))
	}
	return tasks[0]
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input  string
		length int
		want   string
	}{
		{"abc", 6, "abc   "},
		{"abcdef", 6, "abcdef"},
		{"abcdefgh", 6, "abcdefgh"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.length); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("1"); got != "1" {
		t.Errorf("shortID = %q", got)
	}
}

func TestRootCmdFlags(t *testing.T) {
	if rootCmd.Use != "spoons" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "spoons")
	}
	for _, name := range []string{"backend", "data-dir", "log-level"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("Expected persistent flag --%s", name)
		}
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"checkin", "task", "reminder", "category", "calendar", "week",
		"export", "import", "migrate", "mcp", "sync", "install-skill"}

	registered := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}
	for _, name := range want {
		if !registered[name] {
			t.Errorf("Expected %s command to be registered", name)
		}
	}
}

func TestNeedsStore(t *testing.T) {
	if !needsStore(taskAddCmd) {
		t.Error("task add should open the store")
	}
	if needsStore(syncStatusCmd) {
		t.Error("sync subcommands open charm themselves")
	}
	if needsStore(migrateCmd) || needsStore(installSkillCmd) {
		t.Error("migrate and install-skill should not open the store")
	}
}

func TestCheckinAddAndShow(t *testing.T) {
	dir := setupTestCLI(t)

	out := mustRun(t, dir, "checkin", "add", "low", "--mood", "tired", "-s", "fatigue,brain-fog")
	if !strings.Contains(out, "Checked in for 2024-02-14") {
		t.Errorf("unexpected output: %s", out)
	}
	if !strings.Contains(out, "Symptoms: fatigue, brain-fog") {
		t.Errorf("expected symptoms in output: %s", out)
	}

	c := openTestGateway(t, dir).CheckInFor("2024-02-14")
	if c == nil {
		t.Fatal("check-in not saved")
	}
	if c.EnergyLevel != models.EnergyLow || c.Mood != models.MoodTired || len(c.Symptoms) != 2 {
		t.Errorf("saved check-in = %+v", c)
	}

	out = mustRun(t, dir, "checkin", "show")
	if !strings.Contains(out, "Energy:   Low") {
		t.Errorf("show output: %s", out)
	}

	out = mustRun(t, dir, "checkin", "show", "2024-02-13")
	if !strings.Contains(out, "No check-in for 2024-02-13") {
		t.Errorf("show missing day: %s", out)
	}
}

func TestCheckinAddReplacesSameDay(t *testing.T) {
	dir := setupTestCLI(t)

	mustRun(t, dir, "checkin", "add", "low", "--mood", "tired", "-s", "pain")
	mustRun(t, dir, "checkin", "add", "high", "--mood", "hopeful")
	mustRun(t, dir, "checkin", "add", "moderate", "--mood", "calm", "--date", "2024-02-10")

	checkIns := openTestGateway(t, dir).CheckIns()
	if len(checkIns) != 2 {
		t.Fatalf("Expected 2 check-ins, got %d", len(checkIns))
	}

	out := mustRun(t, dir, "checkin", "list")
	first := strings.Index(out, "2024-02-14")
	second := strings.Index(out, "2024-02-10")
	if first < 0 || second < 0 || first > second {
		t.Errorf("list should be newest first: %s", out)
	}
	if !strings.Contains(out, "High") || strings.Contains(out, "pain") {
		t.Errorf("replaced check-in should win: %s", out)
	}
}

func TestCheckinAddInvalid(t *testing.T) {
	dir := setupTestCLI(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown energy", []string{"checkin", "add", "exhausted", "--mood", "calm"}},
		{"unknown mood", []string{"checkin", "add", "low", "--mood", "grumpy"}},
		{"missing mood", []string{"checkin", "add", "low"}},
		{"unknown symptom", []string{"checkin", "add", "low", "--mood", "calm", "-s", "hiccups"}},
		{"bad date", []string{"checkin", "add", "low", "--mood", "calm", "--date", "yesterday"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, dir, tt.args...); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	if n := len(openTestGateway(t, dir).CheckIns()); n != 0 {
		t.Errorf("invalid check-ins must not be saved, got %d", n)
	}
}

func TestCheckinRm(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "checkin", "add", "low", "--mood", "tired")

	mustRun(t, dir, "checkin", "rm", "2024-02-14")
	if openTestGateway(t, dir).CheckInFor("2024-02-14") != nil {
		t.Error("check-in should be deleted")
	}

	if _, err := runCLI(t, dir, "checkin", "rm", "2024-02-14"); err == nil {
		t.Error("Expected error deleting a missing check-in")
	}
}

func TestTaskAddDefaults(t *testing.T) {
	dir := setupTestCLI(t)

	out := mustRun(t, dir, "task", "add", "Do", "the", "laundry")
	if !strings.Contains(out, "Added task") {
		t.Errorf("unexpected output: %s", out)
	}

	task := onlyTask(t, dir)
	if task.Title != "Do the laundry" || task.Date != "2024-02-14" {
		t.Errorf("task = %+v", task)
	}
	if task.EnergyCost != models.EnergyModerate || task.Priority != models.PriorityCanWait ||
		task.Category != models.CategoryGeneral || task.Bucket != models.BucketMediumEnergy {
		t.Errorf("unexpected defaults: %+v", task)
	}
}

func TestTaskAddBucketFollowsCheckIn(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "checkin", "add", "very-low", "--mood", "overwhelmed")

	mustRun(t, dir, "task", "add", "Pay bill")
	if got := onlyTask(t, dir).Bucket; got != models.BucketAdminMode {
		t.Errorf("Bucket = %s, want admin-mode on a very-low day", got)
	}
}

func TestTaskAddAllFlags(t *testing.T) {
	dir := setupTestCLI(t)

	mustRun(t, dir, "task", "add", "School form",
		"-e", "low", "-p", "must-do", "-c", "kid-related", "-b", "for-others",
		"--date", "2024-02-15", "--due", "2024-02-20", "--notes", "sign page 2")

	task := onlyTask(t, dir)
	want := models.Task{
		ID:         task.ID,
		Title:      "School form",
		EnergyCost: models.EnergyLow,
		Priority:   models.PriorityMustDo,
		Category:   models.CategoryKidRelated,
		Bucket:     models.BucketForOthers,
		Date:       "2024-02-15",
		DueDate:    "2024-02-20",
		Notes:      "sign page 2",
	}
	if task != want {
		t.Errorf("task = %+v, want %+v", task, want)
	}
}

func TestTaskAddInvalid(t *testing.T) {
	dir := setupTestCLI(t)

	tests := []struct {
		name string
		args []string
	}{
		{"unknown energy", []string{"task", "add", "x", "-e", "none"}},
		{"unknown priority", []string{"task", "add", "x", "-p", "urgent"}},
		{"all is not a bucket", []string{"task", "add", "x", "-b", "all"}},
		{"unknown category", []string{"task", "add", "x", "-c", "garden"}},
		{"bad due date", []string{"task", "add", "x", "--due", "soon"}},
		{"blank title", []string{"task", "add", "  "}},
		{"no title", []string{"task", "add"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, dir, tt.args...); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}

	if n := len(openTestGateway(t, dir).Tasks()); n != 0 {
		t.Errorf("invalid tasks must not be saved, got %d", n)
	}
}

func TestTaskAddCustomCategory(t *testing.T) {
	dir := setupTestCLI(t)

	mustRun(t, dir, "category", "add", "garden")
	mustRun(t, dir, "task", "add", "Weed beds", "-c", "garden")

	if got := onlyTask(t, dir).Category; got != "garden" {
		t.Errorf("Category = %s, want garden", got)
	}
}

func TestTaskListGroupsAndFilters(t *testing.T) {
	dir := setupTestCLI(t)

	mustRun(t, dir, "task", "add", "Pay rent", "-p", "must-do", "-e", "low")
	mustRun(t, dir, "task", "add", "Deep clean", "-e", "high", "-b", "heavy-energy")
	mustRun(t, dir, "task", "add", "Tomorrow thing", "--date", "2024-02-15")

	out := mustRun(t, dir, "task", "list")
	if !strings.Contains(out, "Must Do (1)") || !strings.Contains(out, "Other (1)") {
		t.Errorf("expected groups: %s", out)
	}
	if strings.Contains(out, "Tomorrow thing") {
		t.Errorf("other days should be hidden: %s", out)
	}

	out = mustRun(t, dir, "task", "list", "--all")
	if !strings.Contains(out, "Tomorrow thing") {
		t.Errorf("--all should include every day: %s", out)
	}

	out = mustRun(t, dir, "task", "list", "--fit")
	if !strings.Contains(out, "No check-in today") || !strings.Contains(out, "Deep clean") {
		t.Errorf("--fit without check-in should warn and show everything: %s", out)
	}

	mustRun(t, dir, "checkin", "add", "low", "--mood", "tired")
	out = mustRun(t, dir, "task", "list", "--fit")
	if strings.Contains(out, "Deep clean") || !strings.Contains(out, "Pay rent") {
		t.Errorf("--fit on a low day: %s", out)
	}

	out = mustRun(t, dir, "task", "list", "-b", "heavy-energy")
	if !strings.Contains(out, "Deep clean") || strings.Contains(out, "Pay rent") {
		t.Errorf("bucket filter: %s", out)
	}

	out = mustRun(t, dir, "task", "list", "--date", "2024-03-01")
	if !strings.Contains(out, "No tasks found.") {
		t.Errorf("empty day: %s", out)
	}

	if _, err := runCLI(t, dir, "task", "list", "-b", "nope"); err == nil {
		t.Error("Expected error for unknown bucket")
	}
}

func TestTaskDoneToggles(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "task", "add", "Meds")
	id := onlyTask(t, dir).ID

	out := mustRun(t, dir, "task", "done", id[:8])
	if !strings.Contains(out, "Done: Meds") {
		t.Errorf("first toggle: %s", out)
	}
	if !onlyTask(t, dir).Completed {
		t.Error("task should be completed")
	}

	out = mustRun(t, dir, "task", "list")
	if !strings.Contains(out, "Completed (1)") || !strings.Contains(out, "[x]") {
		t.Errorf("completed group: %s", out)
	}

	out = mustRun(t, dir, "task", "done", id)
	if !strings.Contains(out, "Not done: Meds") {
		t.Errorf("second toggle: %s", out)
	}
	if onlyTask(t, dir).Completed {
		t.Error("task should be back to not done")
	}

	_, err := runCLI(t, dir, "task", "done", "zzzz")
	if !errors.Is(err, gateway.ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound, got %v", err)
	}
}

func TestTaskEdit(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "task", "add", "Dentist", "--due", "2024-02-20", "--notes", "bring card")
	before := onlyTask(t, dir)

	mustRun(t, dir, "task", "edit", before.ID, "-p", "must-do", "--title", "Dentist appt")
	after := onlyTask(t, dir)
	if after.Priority != models.PriorityMustDo || after.Title != "Dentist appt" {
		t.Errorf("edited task = %+v", after)
	}
	if after.Notes != "bring card" || after.DueDate != "2024-02-20" || after.EnergyCost != before.EnergyCost {
		t.Errorf("unset fields must be kept: %+v", after)
	}

	mustRun(t, dir, "task", "edit", before.ID, "--due", "")
	if onlyTask(t, dir).HasDueDate() {
		t.Error("--due \"\" should clear the due date")
	}

	if _, err := runCLI(t, dir, "task", "edit", before.ID); err == nil {
		t.Error("Expected error when nothing changes")
	}
	if _, err := runCLI(t, dir, "task", "edit", before.ID, "-b", "all"); err == nil {
		t.Error("Expected error for the all bucket")
	}
	if _, err := runCLI(t, dir, "task", "edit", before.ID, "--title", " "); err == nil {
		t.Error("Expected error for a blank title")
	}
}

func TestTaskShowAndRm(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "task", "add", "Call mom", "--notes", "sunday")
	mustRun(t, dir, "task", "add", "Keep me")
	var id string
	for _, task := range openTestGateway(t, dir).Tasks() {
		if task.Title == "Call mom" {
			id = task.ID
		}
	}

	out := mustRun(t, dir, "task", "show", id[:8])
	if !strings.Contains(out, "Call mom") || !strings.Contains(out, "Notes:     sunday") {
		t.Errorf("show output: %s", out)
	}

	out = mustRun(t, dir, "task", "rm", id)
	if !strings.Contains(out, "Deleted Call mom") {
		t.Errorf("rm output: %s", out)
	}
	if got := onlyTask(t, dir).Title; got != "Keep me" {
		t.Errorf("remaining task = %s", got)
	}

	if _, err := runCLI(t, dir, "task", "rm", id); err == nil {
		t.Error("Expected error deleting a missing task")
	}
}

func TestReminderCommands(t *testing.T) {
	dir := setupTestCLI(t)

	out := mustRun(t, dir, "reminder", "list")
	if strings.Count(out, "[ ]") != len(models.DefaultReminders()) {
		t.Errorf("fresh reminders: %s", out)
	}

	mustRun(t, dir, "reminder", "done", "1")
	out = mustRun(t, dir, "reminder", "list")
	if !strings.Contains(out, "[x] Drink water") {
		t.Errorf("done reminder: %s", out)
	}

	out = mustRun(t, dir, "reminder", "toggle", "3")
	if !strings.Contains(out, "Rest break off") {
		t.Errorf("toggle output: %s", out)
	}
	out = mustRun(t, dir, "reminder", "list")
	if !strings.Contains(out, "Rest break (off)") {
		t.Errorf("disabled reminder: %s", out)
	}

	if _, err := runCLI(t, dir, "reminder", "rm", "2"); err == nil {
		t.Error("Expected error deleting a built-in reminder")
	}

	mustRun(t, dir, "reminder", "add", "Stretch", "hamstrings")
	reminders := openTestGateway(t, dir).Reminders()
	if len(reminders) != len(models.DefaultReminders())+1 {
		t.Fatalf("Expected custom reminder to be added, got %d", len(reminders))
	}
	custom := reminders[len(reminders)-1]
	if custom.Title != "Stretch hamstrings" || !custom.IsCustom() {
		t.Errorf("custom reminder = %+v", custom)
	}

	mustRun(t, dir, "reminder", "rm", custom.ID[:8])
	if n := len(openTestGateway(t, dir).Reminders()); n != len(models.DefaultReminders()) {
		t.Errorf("Expected %d reminders after rm, got %d", len(models.DefaultReminders()), n)
	}
}

func TestCategoryCommands(t *testing.T) {
	dir := setupTestCLI(t)

	out := mustRun(t, dir, "category", "add", "work")
	if !strings.Contains(out, "already exists") {
		t.Errorf("built-in should not be re-added: %s", out)
	}

	mustRun(t, dir, "category", "add", "doctor", "visits")
	out = mustRun(t, dir, "category", "add", "doctor visits")
	if !strings.Contains(out, "already exists") {
		t.Errorf("duplicate custom category: %s", out)
	}

	out = mustRun(t, dir, "category", "list")
	if strings.Index(out, "general") > strings.Index(out, "doctor visits") {
		t.Errorf("built-ins should come first: %s", out)
	}
	if got := openTestGateway(t, dir).CustomCategories(); len(got) != 1 {
		t.Errorf("custom categories = %v", got)
	}
}

func TestCalendarCmd(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "task", "add", "Dentist", "--due", "2024-02-20")

	out := mustRun(t, dir, "calendar", "--day", "2024-02-20")
	if !strings.Contains(out, "February 2024") {
		t.Errorf("title: %s", out)
	}
	if !strings.Contains(out, " 20*") {
		t.Errorf("the 20th should be marked: %s", out)
	}
	if !strings.Contains(out, "Due 2024-02-20") || !strings.Contains(out, "Dentist") {
		t.Errorf("due list: %s", out)
	}

	out = mustRun(t, dir, "calendar", "--shift", "1")
	if !strings.Contains(out, "March 2024") || !strings.Contains(out, "Nothing due 2024-02-14") {
		t.Errorf("shifted calendar: %s", out)
	}

	out = mustRun(t, dir, "calendar", "2023-12")
	if !strings.Contains(out, "December 2023") {
		t.Errorf("explicit month: %s", out)
	}

	if _, err := runCLI(t, dir, "calendar", "Feb"); err == nil {
		t.Error("Expected error for bad month")
	}
}

func TestWeekCmd(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "checkin", "add", "high", "--mood", "hopeful", "--date", "2024-02-12")
	mustRun(t, dir, "checkin", "add", "low", "--mood", "tired", "--date", "2024-02-14")
	mustRun(t, dir, "task", "add", "a", "--date", "2024-02-12")
	mustRun(t, dir, "task", "add", "b", "--date", "2024-02-12")
	mustRun(t, dir, "task", "add", "c", "--date", "2024-02-13")
	for _, task := range openTestGateway(t, dir).Tasks() {
		if task.Title != "c" {
			mustRun(t, dir, "task", "done", task.ID)
		}
	}

	out := mustRun(t, dir, "week")
	if !strings.Contains(out, "Week of 2024-02-11 to 2024-02-17") {
		t.Errorf("week range: %s", out)
	}
	if !strings.Contains(out, "Average energy:  Moderate") {
		t.Errorf("average: %s", out)
	}
	if !strings.Contains(out, "Completion rate: 67%") {
		t.Errorf("rate: %s", out)
	}

	out = mustRun(t, dir, "week", "2024-03-05", "--json")
	var summary struct {
		Start              string `json:"start"`
		AverageEnergyLabel string `json:"averageEnergyLabel"`
		Days               []any  `json:"days"`
	}
	if err := json.Unmarshal([]byte(out), &summary); err != nil {
		t.Fatalf("--json output is not JSON: %v\n%s", err, out)
	}
	if summary.Start != "2024-03-03" || summary.AverageEnergyLabel != "No data" || len(summary.Days) != 7 {
		t.Errorf("empty week = %+v", summary)
	}
}

func TestExportImportCmd(t *testing.T) {
	dir := setupTestCLI(t)
	mustRun(t, dir, "checkin", "add", "low", "--mood", "tired")
	mustRun(t, dir, "task", "add", "Pay rent", "-p", "must-do")
	mustRun(t, dir, "category", "add", "garden")

	out := mustRun(t, dir, "export", "markdown")
	if !strings.Contains(out, "# Spoons Export - 2024-02-14") || !strings.Contains(out, "Pay rent") {
		t.Errorf("markdown export: %s", out)
	}

	out = mustRun(t, dir, "export", "yaml")
	if !strings.Contains(out, "title: Pay rent") {
		t.Errorf("yaml export: %s", out)
	}

	backup := filepath.Join(t.TempDir(), "backup.json")
	mustRun(t, dir, "export", "json", "-o", backup)
	info, err := os.Stat(backup)
	if err != nil {
		t.Fatalf("backup not written: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("backup mode = %v, want 0600", info.Mode().Perm())
	}

	other := t.TempDir()
	out = mustRun(t, other, "import", backup)
	if !strings.Contains(out, "Tasks:      1") || !strings.Contains(out, "Categories: 1 new") {
		t.Errorf("import summary: %s", out)
	}
	g := openTestGateway(t, other)
	if len(g.Tasks()) != 1 || g.CheckInFor("2024-02-14") == nil {
		t.Error("imported data missing")
	}

	if _, err := runCLI(t, dir, "export", "csv"); err == nil {
		t.Error("Expected error for unknown format")
	}
	if _, err := runCLI(t, dir, "import", filepath.Join(other, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestImportRejectsInvalidRecords(t *testing.T) {
	dir := setupTestCLI(t)

	tests := []struct {
		name    string
		backup  string
		errPart string
	}{
		{
			name: "bad enums and empty ids",
			backup: `{"checkIns":[{"date":"","energyLevel":"extreme","mood":"ecstatic","symptoms":["zzz"]}],
				"tasks":[{"id":"","energyCost":"huge","priority":"whenever","bucket":"nowhere","date":"not-a-date"}]}`,
			errPart: "check-in 0",
		},
		{
			name: "second task invalid",
			backup: `{"tasks":[
				{"id":"a1","title":"Fine","energyCost":"low","priority":"must-do","category":"general","bucket":"admin-mode","date":"2024-02-14"},
				{"id":"a2","title":"  ","energyCost":"low","priority":"must-do","category":"general","bucket":"admin-mode","date":"2024-02-14"}]}`,
			errPart: "task 1",
		},
		{
			name:    "reminder without type",
			backup:  `{"reminders":[{"id":"r1","title":"Stretch","enabled":true}]}`,
			errPart: "reminder 0",
		},
		{
			name:    "blank category",
			backup:  `{"customCategories":["garden","  "]}`,
			errPart: "category 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "backup.json")
			if err := os.WriteFile(file, []byte(tt.backup), 0600); err != nil {
				t.Fatal(err)
			}

			_, err := runCLI(t, dir, "import", file)
			if err == nil {
				t.Fatal("Expected import to be rejected")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error %q should name %q", err, tt.errPart)
			}
		})
	}

	g := openTestGateway(t, dir)
	if n := len(g.CheckIns()); n != 0 {
		t.Errorf("no check-ins should be stored, got %d", n)
	}
	if n := len(g.Tasks()); n != 0 {
		t.Errorf("no tasks should be stored, got %d", n)
	}
	if n := len(g.Reminders()); n != len(models.DefaultReminders()) {
		t.Errorf("reminders should be the defaults, got %d", n)
	}
	if n := len(g.CustomCategories()); n != 0 {
		t.Errorf("no categories should be stored, got %d", n)
	}
}

func TestMigrateCmd(t *testing.T) {
	dir := setupTestCLI(t)

	out := mustRun(t, dir, "migrate", "--from", "sqlite", "--to", "badger")
	if !strings.Contains(out, "nothing to migrate") {
		t.Errorf("missing source: %s", out)
	}

	mustRun(t, dir, "task", "add", "Water plants")

	out = mustRun(t, dir, "migrate", "--from", "sqlite", "--to", "badger", "--dry-run")
	if !strings.Contains(out, "Dry run") || !strings.Contains(out, "@tasks") {
		t.Errorf("dry run: %s", out)
	}
	if ok, _ := storage.IsDirNonEmpty(filepath.Join(dir, "badger")); ok {
		t.Error("dry run must not create the destination")
	}

	out = mustRun(t, dir, "migrate", "--from", "sqlite", "--to", "badger")
	if !strings.Contains(out, "Migrated sqlite → badger") {
		t.Errorf("migrate output: %s", out)
	}

	dst, err := storage.OpenBadger(filepath.Join(dir, "badger"))
	if err != nil {
		t.Fatalf("OpenBadger failed: %v", err)
	}
	tasks := gateway.New(dst, nil).Tasks()
	_ = dst.Close()
	if len(tasks) != 1 || tasks[0].Title != "Water plants" {
		t.Errorf("migrated tasks = %+v", tasks)
	}

	if _, err := runCLI(t, dir, "migrate", "--from", "sqlite", "--to", "badger"); err == nil {
		t.Error("Expected refusal to overwrite without --force")
	}
	mustRun(t, dir, "migrate", "--from", "sqlite", "--to", "badger", "--force")

	if _, err := runCLI(t, dir, "migrate", "--from", "sqlite", "--to", "sqlite"); err == nil {
		t.Error("Expected error for same source and destination")
	}
}

func TestExecuteClosesStoreOnError(t *testing.T) {
	dir := setupTestCLI(t)

	_, err := runCLI(t, dir, "task", "done", "zzzz")
	if err == nil {
		t.Fatal("Expected error for unknown task")
	}
	if store != nil || gw != nil {
		t.Error("store must be closed after a failed command")
	}

	// The sqlite file is free again: a fresh run can write to it.
	mustRun(t, dir, "task", "add", "After failure")
	if got := onlyTask(t, dir).Title; got != "After failure" {
		t.Errorf("task = %s", got)
	}
}

func TestInvalidBackend(t *testing.T) {
	dir := setupTestCLI(t)
	_, err := runCLI(t, dir, "--backend", "markdown", "task", "list")
	if err == nil || !strings.Contains(err.Error(), "unknown backend") {
		t.Errorf("Expected unknown backend error, got %v", err)
	}
}

func TestWarnWrite(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	warnWrite(&buf, "task", errors.New("disk full"))
	if got := buf.String(); got != "⚠ Could not save task: disk full\n" {
		t.Errorf("warnWrite = %q", got)
	}
}
