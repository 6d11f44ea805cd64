package handlers

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"time"

	"expense-tracker-web/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol prefixes every rendered amount
const CurrencySymbol = "₹"

var amountPrinter = message.NewPrinter(language.MustParse("en-IN"))

// navItem is one entry of the navigation bar
type navItem struct {
	Path  string
	Label string
}

var navItems = []navItem{
	{Path: "/dashboard", Label: "Dashboard"},
	{Path: "/transactions", Label: "Transactions"},
	{Path: "/reports", Label: "Reports"},
	{Path: "/profile", Label: "Profile"},
}

// pageData is embedded by every page's template data
type pageData struct {
	Title   string
	Path    string
	Nav     []navItem
	TraceID string
}

func newPageData(c echo.Context, title string) pageData {
	return pageData{
		Title:   title,
		Path:    c.Request().URL.Path,
		Nav:     navItems,
		TraceID: getTraceID(c),
	}
}

// TemplateRenderer renders the embedded page templates for echo
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses every template under templates/ in fsys
func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	tmpl, err := template.New("base").Funcs(TemplateFuncs()).ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: tmpl}, nil
}

// Render implements echo.Renderer
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// TemplateFuncs are the helpers available to every template
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"rupees":   FormatRupees,
		"signed":   FormatSignedRupees,
		"barWidth": BarWidth,
		"maxOf":    SeriesMax,
		"dailyMax": DailyMax,
		"lower":    strings.ToLower,
		"month":    func(m int) string { return time.Month(m).String() },
		"selected": func(a, b interface{}) bool { return fmt.Sprint(a) == fmt.Sprint(b) },
		"initial":  Initial,
	}
}

// Initial is the upper-cased first letter of name, or empty
func Initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return strings.ToUpper(string(r))
	}
	return ""
}

// FormatRupees renders an amount as ₹1,234.5 with at most two fraction digits
func FormatRupees(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + FormatRupees(amount.Abs())
	}
	return CurrencySymbol + amountPrinter.Sprint(number.Decimal(amount.InexactFloat64(), number.MaxFractionDigits(2)))
}

// FormatSignedRupees prefixes + for credits and - for debits
func FormatSignedRupees(isCredit bool, amount decimal.Decimal) string {
	if isCredit {
		return "+" + FormatRupees(amount)
	}
	return "-" + FormatRupees(amount)
}

// BarWidth is value as a percentage of largest, for CSS bars
func BarWidth(value, largest decimal.Decimal) string {
	if !largest.IsPositive() || value.IsNegative() {
		return "0%"
	}
	return value.Div(largest).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// SeriesMax is the largest value of a chart series
func SeriesMax(points []models.SeriesPoint) decimal.Decimal {
	largest := decimal.Zero
	for _, p := range points {
		if p.Value.GreaterThan(largest) {
			largest = p.Value
		}
	}
	return largest
}

// DailyMax is the largest amount of the daily expense line
func DailyMax(points []models.DailyPoint) decimal.Decimal {
	largest := decimal.Zero
	for _, p := range points {
		if p.Amount.GreaterThan(largest) {
			largest = p.Amount
		}
	}
	return largest
}
