package handlers

import (
	"net/http"

	"tasklist-web/internal/middlewares"

	"github.com/go-chi/chi/v5"
)

// GETTasksHandler lists tasks by creator. Without an explicit creator query
// parameter it lists the signed-in user's own tasks.
func GETTasksHandler(ctx *middlewares.AppContext) {
	creator := firstQueryParam(ctx.Request, "creator", "")
	if creator == "" {
		me, err := ctx.Session.GetMe(ctx)
		if err != nil {
			ctx.Logger.Error("failed to resolve task creator", "error", err)
			ctx.SetJSONError(http.StatusBadGateway, "failed to list tasks")
			return
		}
		creator = me.ID
	}

	tasks, err := ctx.Session.Graph().TasksByCreator(ctx, creator)
	if err != nil {
		ctx.Logger.Error("failed to list tasks", "creator", creator, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to list tasks")
		return
	}

	ctx.WriteJSON(http.StatusOK, tasks)
}

// GETTaskHandler returns one task by ID.
func GETTaskHandler(ctx *middlewares.AppContext) {
	taskID := chi.URLParam(ctx.Request, "taskID")

	task, err := ctx.Session.Graph().Task(ctx, taskID)
	if err != nil {
		ctx.Logger.Error("failed to fetch task", "task_id", taskID, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to fetch task")
		return
	}

	ctx.WriteJSON(http.StatusOK, task)
}

// POSTTaskHandler creates an empty task and returns its ID.
func POSTTaskHandler(ctx *middlewares.AppContext) {
	id, err := ctx.Session.Graph().CreateTask(ctx)
	if err != nil {
		ctx.Logger.Error("failed to create task", "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to create task")
		return
	}

	ctx.WriteJSON(http.StatusCreated, map[string]string{"id": id})
}

// PUTTaskNameHandler renames a task.
func PUTTaskNameHandler(ctx *middlewares.AppContext) {
	taskID := chi.URLParam(ctx.Request, "taskID")

	var req SetNameRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.Graph().SetTaskName(ctx, taskID, req.Name); err != nil {
		ctx.Logger.Error("failed to rename task", "task_id", taskID, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to rename task")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "ok")
}

// PUTTaskBodyHandler replaces a task's body text.
func PUTTaskBodyHandler(ctx *middlewares.AppContext) {
	taskID := chi.URLParam(ctx.Request, "taskID")

	var req SetBodyRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.Graph().SetTaskBody(ctx, taskID, req.Body); err != nil {
		ctx.Logger.Error("failed to update task body", "task_id", taskID, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to update task")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "ok")
}

// POSTTaskTagHandler adds a tag to a task.
func POSTTaskTagHandler(ctx *middlewares.AppContext) {
	taskID := chi.URLParam(ctx.Request, "taskID")

	var req TagRequest
	if !decodeJSON(ctx, &req) {
		return
	}

	if err := ctx.Session.Graph().AddTaskTag(ctx, taskID, req.Tag); err != nil {
		ctx.Logger.Error("failed to add task tag", "task_id", taskID, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to tag task")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "ok")
}

// DELETETaskTagHandler removes a tag from a task.
func DELETETaskTagHandler(ctx *middlewares.AppContext) {
	taskID := chi.URLParam(ctx.Request, "taskID")
	tag := chi.URLParam(ctx.Request, "tag")

	if err := ctx.Session.Graph().RemoveTaskTag(ctx, taskID, tag); err != nil {
		ctx.Logger.Error("failed to remove task tag", "task_id", taskID, "tag", tag, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to untag task")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "ok")
}

// DELETETaskHandler deletes a task.
func DELETETaskHandler(ctx *middlewares.AppContext) {
	taskID := chi.URLParam(ctx.Request, "taskID")

	if err := ctx.Session.Graph().DeleteTask(ctx, taskID); err != nil {
		ctx.Logger.Error("failed to delete task", "task_id", taskID, "error", err)
		ctx.SetJSONError(http.StatusBadGateway, "failed to delete task")
		return
	}

	ctx.SetJSONStatus(http.StatusOK, "ok")
}
