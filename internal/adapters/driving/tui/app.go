package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/sercha-importer/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/sercha-importer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/sercha-importer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/sercha-importer/internal/core/domain"
)

// DefaultLimit is the number of results loaded per query.
const DefaultLimit = 200

// contentPreviewLines caps the content shown on the detail view.
const contentPreviewLines = 20

// App is the results browser model.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	filter       textinput.Model
	filtering    bool
	reference    string
	rejectedOnly bool
	limit        int

	results  []*domain.ImportResult
	selected int
	detail   *domain.ImportResult

	currentView messages.ViewType
	err         error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser over ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Prompt = "reference: "
	ti.Placeholder = "exact document reference"
	ti.CharLimit = 1024

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      styles.DefaultStyles(),
		keys:        keymap.DefaultKeyMap(),
		filter:      ti,
		limit:       DefaultLimit,
		currentView: messages.ViewResults,
		width:       80,
		height:      24,
	}, nil
}

// WithContext sets the context service calls run under.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithLimit sets the number of results loaded per query. Zero loads all.
func (a *App) WithLimit(limit int) *App {
	a.limit = limit
	return a
}

// Init loads the first page of results.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("sercha-importer results"),
		a.loadResults(),
	)
}

func (a *App) query() domain.ResultQuery {
	return domain.ResultQuery{
		Reference:    a.reference,
		RejectedOnly: a.rejectedOnly,
		Limit:        a.limit,
	}
}

func (a *App) loadResults() tea.Cmd {
	ctx, svc, q := a.ctx, a.ports.Results, a.query()
	return func() tea.Msg {
		results, err := svc.List(ctx, q)
		return messages.ResultsLoaded{Results: results, Err: err}
	}
}

func (a *App) loadResult(id string) tea.Cmd {
	ctx, svc := a.ctx, a.ports.Results
	return func() tea.Msg {
		result, err := svc.Get(ctx, id)
		return messages.ResultLoaded{Result: result, Err: err}
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.filter.Width = max(msg.Width-16, 10)
		return a, nil

	case messages.ResultsLoaded:
		a.err = msg.Err
		if msg.Err == nil {
			a.results = msg.Results
			a.selected = min(a.selected, max(len(a.results)-1, 0))
		}
		return a, nil

	case messages.ResultLoaded:
		a.err = msg.Err
		if msg.Err == nil {
			a.detail = msg.Result
			a.currentView = messages.ViewDetail
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.filtering {
			return a.updateFilter(msg)
		}
		switch a.currentView {
		case messages.ViewResults:
			return a.updateResults(msg)
		default:
			return a.updateSubView(msg)
		}
	}
	return a, nil
}

func (a *App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.filtering = false
		a.filter.Blur()
		a.reference = strings.TrimSpace(a.filter.Value())
		a.selected = 0
		return a, a.loadResults()
	case tea.KeyEsc:
		a.filtering = false
		a.filter.Blur()
		a.filter.SetValue(a.reference)
		return a, nil
	}

	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	return a, cmd
}

func (a *App) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keys.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keys.Up):
		if a.selected > 0 {
			a.selected--
		}
	case keymap.Matches(k, a.keys.Down):
		if a.selected < len(a.results)-1 {
			a.selected++
		}
	case keymap.Matches(k, a.keys.Select):
		if r := a.SelectedResult(); r != nil {
			return a, a.loadResult(r.ID)
		}
	case keymap.Matches(k, a.keys.Filter):
		a.filtering = true
		return a, a.filter.Focus()
	case keymap.Matches(k, a.keys.Rejected):
		a.rejectedOnly = !a.rejectedOnly
		a.selected = 0
		return a, a.loadResults()
	case keymap.Matches(k, a.keys.Refresh):
		return a, a.loadResults()
	case keymap.Matches(k, a.keys.Handlers):
		if a.ports.Import != nil {
			a.currentView = messages.ViewHandlers
		}
	}
	return a, nil
}

func (a *App) updateSubView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()
	switch {
	case keymap.Matches(k, a.keys.Quit):
		return a, tea.Quit
	case keymap.Matches(k, a.keys.Back):
		a.currentView = messages.ViewResults
		a.detail = nil
	}
	return a, nil
}

// View renders the active view.
func (a *App) View() string {
	var b strings.Builder
	switch a.currentView {
	case messages.ViewDetail:
		a.renderDetail(&b)
	case messages.ViewHandlers:
		a.renderHandlers(&b)
	default:
		a.renderResults(&b)
	}
	if a.err != nil {
		b.WriteString("\n" + a.styles.Error.Render("Error: "+a.err.Error()) + "\n")
	}
	return b.String()
}

func (a *App) renderResults(b *strings.Builder) {
	b.WriteString(a.styles.Title.Render("Import results"))
	b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  (%d)", len(a.results))))
	b.WriteString("\n")

	var filters []string
	if a.reference != "" {
		filters = append(filters, "reference "+a.reference)
	}
	if a.rejectedOnly {
		filters = append(filters, "rejected only")
	}
	if len(filters) > 0 {
		b.WriteString(a.styles.Subtitle.Render("Filter: " + strings.Join(filters, ", ")))
		b.WriteString("\n")
	}
	if a.filtering {
		b.WriteString(a.styles.Filter.Render(a.filter.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(a.results) == 0 {
		b.WriteString(a.styles.Muted.Render("No results"))
		b.WriteString("\n")
	}

	visible := max(a.height-8, 1)
	start := 0
	if a.selected >= visible {
		start = a.selected - visible + 1
	}
	end := min(start+visible, len(a.results))

	for i := start; i < end; i++ {
		r := a.results[i]
		line := fmt.Sprintf("%s  %s", r.ImportedAt.Local().Format("2006-01-02 15:04:05"), truncate(r.Reference, a.width-40))
		if !r.Accepted && r.RejectedBy != "" {
			line += " (by " + r.RejectedBy + ")"
		}
		if i == a.selected {
			b.WriteString(a.styles.Selected.Render("> ") + a.styles.Status(r.Accepted) + " " + a.styles.Selected.Render(line))
		} else {
			b.WriteString("  " + a.styles.Status(r.Accepted) + " " + a.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n" + a.help(a.keys.ListHelp()))
}

func (a *App) renderDetail(b *strings.Builder) {
	r := a.detail
	if r == nil {
		return
	}
	b.WriteString(a.styles.Title.Render(r.Reference))
	b.WriteString("\n\n")
	fmt.Fprintf(b, "%s %s\n", a.styles.Field.Render("ID:"), r.ID)
	fmt.Fprintf(b, "%s %s\n", a.styles.Field.Render("Imported:"), r.ImportedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(b, "%s %s", a.styles.Field.Render("Status:"), a.styles.Status(r.Accepted))
	if !r.Accepted {
		fmt.Fprintf(b, " by %s", r.RejectedBy)
	}
	b.WriteString("\n\n")

	b.WriteString(a.styles.Subtitle.Render("Metadata"))
	b.WriteString("\n")
	if r.Metadata == nil || r.Metadata.Len() == 0 {
		b.WriteString(a.styles.Muted.Render("  (none)") + "\n")
	} else {
		for _, f := range r.Metadata.Fields() {
			fmt.Fprintf(b, "  %s %s\n", a.styles.Field.Render(f+":"), strings.Join(r.Metadata.GetAll(f), " | "))
		}
	}

	if len(r.Content) > 0 {
		b.WriteString("\n" + a.styles.Subtitle.Render("Content") + "\n")
		lines := strings.Split(string(r.Content), "\n")
		for i, line := range lines {
			if i == contentPreviewLines {
				b.WriteString(a.styles.Muted.Render(fmt.Sprintf("  ... %d more lines", len(lines)-i)) + "\n")
				break
			}
			b.WriteString("  " + truncate(line, a.width-4) + "\n")
		}
	}

	b.WriteString("\n" + a.help(a.keys.DetailHelp()))
}

func (a *App) renderHandlers(b *strings.Builder) {
	b.WriteString(a.styles.Title.Render("Handler chain"))
	b.WriteString("\n\n")
	names := a.ports.Import.Handlers()
	if len(names) == 0 {
		b.WriteString(a.styles.Muted.Render("  (empty chain, every document is accepted)") + "\n")
	}
	for i, name := range names {
		fmt.Fprintf(b, "  %d. %s\n", i+1, name)
	}
	b.WriteString("\n" + a.help(a.keys.DetailHelp()))
}

func (a *App) help(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return a.styles.Help.Render(strings.Join(parts, " • "))
}

// truncate shortens s to n runes, marking the cut with "...".
func truncate(s string, n int) string {
	n = max(n, 10)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}

// CurrentView returns the active view.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Results returns the loaded results.
func (a *App) Results() []*domain.ImportResult {
	return a.results
}

// SelectedResult returns the highlighted result, or nil when the list is
// empty.
func (a *App) SelectedResult() *domain.ImportResult {
	if a.selected < 0 || a.selected >= len(a.results) {
		return nil
	}
	return a.results[a.selected]
}

// Detail returns the result shown on the detail view.
func (a *App) Detail() *domain.ImportResult {
	return a.detail
}

// Query returns the query the list was last loaded with.
func (a *App) Query() domain.ResultQuery {
	return a.query()
}

// Filtering reports whether the reference filter has focus.
func (a *App) Filtering() bool {
	return a.filtering
}

// Err returns the last service error.
func (a *App) Err() error {
	return a.err
}
