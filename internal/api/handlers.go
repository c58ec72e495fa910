package api

import (
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/services"

	"github.com/gin-gonic/gin"
)

type taskHandlers struct {
	svc services.TaskService
	log *logging.Logger
}

func newTaskHandlers(svc services.TaskService, log *logging.Logger) *taskHandlers {
	return &taskHandlers{svc: svc, log: log}
}

func (h *taskHandlers) list(c *gin.Context) {
	tasks, err := h.svc.ListTasks(c.Request.Context())
	if err != nil {
		respondError(c, h.log, msgFetchTasks, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (h *taskHandlers) create(c *gin.Context) {
	var input domain.CreateTaskInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, h.log, msgCreateTask, err)
		return
	}

	task, err := h.svc.CreateTask(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, msgCreateTask, err)
		return
	}
	c.JSON(http.StatusCreated, task)
}

func (h *taskHandlers) update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, h.log, msgUpdateTask, err)
		return
	}

	var input domain.UpdateTaskInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, h.log, msgUpdateTask, err)
		return
	}

	task, err := h.svc.UpdateTask(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, h.log, msgUpdateTask, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *taskHandlers) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, h.log, msgDeleteTask, err)
		return
	}

	if err := h.svc.DeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, h.log, msgDeleteTask, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// toggle is the only route that reports a missing task as 404
func (h *taskHandlers) toggle(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, h.log, msgToggleTask, err)
		return
	}

	task, err := h.svc.ToggleTask(c.Request.Context(), id)
	if err != nil {
		if errors.IsNotFound(err) {
			respondErrorStatus(c, h.log, http.StatusNotFound, msgTaskNotFound, err)
			return
		}
		respondError(c, h.log, msgToggleTask, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

type categoryHandlers struct {
	svc services.CategoryService
	log *logging.Logger
}

func newCategoryHandlers(svc services.CategoryService, log *logging.Logger) *categoryHandlers {
	return &categoryHandlers{svc: svc, log: log}
}

func (h *categoryHandlers) list(c *gin.Context) {
	categories, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, h.log, msgFetchCategories, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *categoryHandlers) create(c *gin.Context) {
	var input domain.CreateCategoryInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, h.log, msgCreateCategory, err)
		return
	}

	category, err := h.svc.CreateCategory(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, msgCreateCategory, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *categoryHandlers) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, h.log, msgDeleteCategory, err)
		return
	}

	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, h.log, msgDeleteCategory, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type tagHandlers struct {
	svc services.TagService
	log *logging.Logger
}

func newTagHandlers(svc services.TagService, log *logging.Logger) *tagHandlers {
	return &tagHandlers{svc: svc, log: log}
}

func (h *tagHandlers) list(c *gin.Context) {
	tags, err := h.svc.ListTags(c.Request.Context())
	if err != nil {
		respondError(c, h.log, msgFetchTags, err)
		return
	}
	c.JSON(http.StatusOK, tags)
}

func (h *tagHandlers) create(c *gin.Context) {
	var input domain.CreateTagInput
	if err := bindJSON(c, &input); err != nil {
		respondError(c, h.log, msgCreateTag, err)
		return
	}

	tag, err := h.svc.CreateTag(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.log, msgCreateTag, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *tagHandlers) delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, h.log, msgDeleteTag, err)
		return
	}

	if err := h.svc.DeleteTag(c.Request.Context(), id); err != nil {
		respondError(c, h.log, msgDeleteTag, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type statsHandlers struct {
	svc services.StatsService
	log *logging.Logger
}

func newStatsHandlers(svc services.StatsService, log *logging.Logger) *statsHandlers {
	return &statsHandlers{svc: svc, log: log}
}

func (h *statsHandlers) get(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, h.log, msgFetchStats, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
