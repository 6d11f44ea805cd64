package handlers

import (
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the landing view. It reads nothing remote.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

type dashboardPage struct {
	pageData
	Highlights []string
}

var dashboardHighlights = []string{
	"Record income and spending by mode",
	"Filter your history by type, mode and category",
	"See monthly reports with charts and insights",
}

// Dashboard renders the landing view
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	page := dashboardPage{
		pageData:   newPageData(c, "Dashboard"),
		Highlights: dashboardHighlights,
	}
	return SendView(c, "dashboard.html", page, map[string]interface{}{"highlights": dashboardHighlights})
}
