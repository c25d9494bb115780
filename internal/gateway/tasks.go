// ABOUTME: Task operations: add, patch, toggle, delete, and date lookups.
// ABOUTME: Lookups by unknown id are no-ops rather than errors.
package gateway

import (
	"errors"

	"github.com/harperreed/spoons/internal/models"
	"github.com/harperreed/spoons/internal/storage"
	"github.com/harperreed/spoons/internal/views"
)

// ErrTaskNotFound is returned by GetTask when nothing matches.
var ErrTaskNotFound = errors.New("task not found")

// Tasks returns every stored task.
func (g *Gateway) Tasks() []models.Task {
	return LoadAll[models.Task](g, storage.KeyTasks)
}

// SaveTasks overwrites the task collection.
func (g *Gateway) SaveTasks(tasks []models.Task) error {
	return SaveAll(g, storage.KeyTasks, tasks)
}

// AddTask stores t. A task with the same id is replaced.
func (g *Gateway) AddTask(t models.Task) error {
	return UpsertByKey(g, storage.KeyTasks, t, func(existing models.Task) bool {
		return existing.ID == t.ID
	})
}

// UpdateTask applies the set fields of patch to the task with id.
func (g *Gateway) UpdateTask(id string, patch models.TaskPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	return g.PatchByID(storage.KeyTasks, id, patch)
}

// ToggleTask flips the completed flag of the task with id and returns the
// updated task. An unknown id returns nil and writes nothing.
func (g *Gateway) ToggleTask(id string) (*models.Task, error) {
	return updateByID(g, storage.KeyTasks, id, func(t models.Task) any {
		return models.TogglePatch(t)
	})
}

// DeleteTask removes the task with id.
func (g *Gateway) DeleteTask(id string) error {
	return g.DeleteByID(storage.KeyTasks, id)
}

// TasksForDate returns the tasks assigned to date.
func (g *Gateway) TasksForDate(date string) []models.Task {
	return views.FilterByDate(g.Tasks(), date)
}

// TasksWithDueDates returns the tasks placed on the calendar.
func (g *Gateway) TasksWithDueDates() []models.Task {
	return views.WithDueDates(g.Tasks())
}

// TasksByDueDate returns the tasks due on date.
func (g *Gateway) TasksByDueDate(date string) []models.Task {
	return views.FilterByDueDate(g.Tasks(), date)
}

// GetTask finds a task by full id or unique id prefix.
func (g *Gateway) GetTask(idOrPrefix string) (*models.Task, error) {
	return resolve(g.Tasks(), idOrPrefix, func(t models.Task) string { return t.ID }, ErrTaskNotFound)
}
