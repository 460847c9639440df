package http

import (
	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, h *Handler) {
	e.GET("/", h.Root)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/export/csv", h.ExportCSV)
	e.GET("/tasks/stats", h.Stats)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)
}
