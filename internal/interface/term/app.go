// Package term is the terminal interface. A single event loop owns all
// mutable state: input lines and fetch results arrive on channels and are
// applied one at a time, so commands, fetch application, and rendering
// never race.
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/krrish-maji/Campus-Connect/config"
	"github.com/krrish-maji/Campus-Connect/internal/application/command"
	"github.com/krrish-maji/Campus-Connect/internal/application/query"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/shared"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/external/campus"
	"github.com/krrish-maji/Campus-Connect/internal/interface/term/presenter"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// APP
// ══════════════════════════════════════════════════════════════════════════════

// DefaultFetchTimeout bounds one dashboard or roster fetch, including the
// client's internal retries.
const DefaultFetchTimeout = 30 * time.Second

// Deps carries everything the app needs. All fields are required except
// Flags, which defaults to the compiled-in feature set.
type Deps struct {
	Logger  *logger.Logger
	In      io.Reader
	Out     io.Writer
	Session *session.Session
	State   *view.State
	Store   session.Store
	Gateway *campus.Gateway
	Bus     shared.EventPublisher
	Flags   *config.FeatureFlags

	// FetchTimeout overrides DefaultFetchTimeout when positive.
	FetchTimeout time.Duration
}

// fetchResult is one completed background fetch, tagged with the token that
// was active when it started.
type fetchResult struct {
	token     uuid.UUID
	dashboard *campus.DashboardFetch
	roster    *campus.RosterFetch
	err       error
}

// App is the terminal application.
type App struct {
	logger *logger.Logger
	in     io.Reader
	out    io.Writer

	session *session.Session
	state   *view.State
	flags   *config.FeatureFlags

	loginHandler    *command.LoginHandler
	restoreHandler  *command.RestoreSessionHandler
	logoutHandler   *command.LogoutHandler
	themeHandler    *command.ToggleThemeHandler
	navigateHandler *command.NavigateHandler

	gateway   *campus.Gateway
	publisher shared.EventPublisher

	// Render inputs owned by the event loop.
	loginMessage string
	dashboard    *campus.DashboardFetch
	roster       *campus.RosterFetch

	// activeToken identifies the fetch whose result is still wanted.
	// Rotated on every dashboard (re)activation; results carrying any
	// other token are discarded.
	activeToken uuid.UUID
	fetches     chan fetchResult

	fetchTimeout time.Duration
	now          func() time.Time

	loginPresenter     *presenter.LoginPresenter
	dashboardPresenter *presenter.DashboardPresenter
	rosterPresenter    *presenter.RosterPresenter
	detailsPresenter   *presenter.DetailsPresenter
}

// NewApp wires the application from its dependencies.
func NewApp(deps Deps) *App {
	log := deps.Logger
	if log == nil {
		log = logger.Default()
	}
	flags := deps.Flags
	if flags == nil {
		flags = config.LoadFeatureFlags()
	}

	navCfg := command.NavigateHandlerConfig{
		NotificationsEnabled: flags.NotificationsTabEnabled(),
		RiskFilterEnabled:    flags.RiskFilterEnabled(),
	}

	timeout := deps.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	return &App{
		logger:  log.With(logger.Component("term")),
		in:      deps.In,
		out:     deps.Out,
		session: deps.Session,
		state:   deps.State,
		flags:   flags,

		loginHandler:    command.NewLoginHandler(deps.Gateway, deps.Store, deps.Session, deps.Bus),
		restoreHandler:  command.NewRestoreSessionHandler(deps.Store, deps.Session, deps.Bus),
		logoutHandler:   command.NewLogoutHandler(deps.Store, deps.Session, deps.Bus),
		themeHandler:    command.NewToggleThemeHandler(deps.Store, deps.Session, deps.Bus),
		navigateHandler: command.NewNavigateHandler(deps.State, deps.Bus, navCfg),

		gateway:   deps.Gateway,
		publisher: deps.Bus,

		fetches:      make(chan fetchResult, 4),
		fetchTimeout: timeout,
		now:          time.Now,

		loginPresenter:     presenter.NewLoginPresenter(),
		dashboardPresenter: presenter.NewDashboardPresenter(),
		rosterPresenter:    presenter.NewRosterPresenter(),
		detailsPresenter:   presenter.NewDetailsPresenter(),
	}
}

// Run executes the event loop until the context is canceled, input reaches
// EOF, or the user quits.
func (a *App) Run(ctx context.Context) error {
	a.restoreStartupSession(ctx)
	a.render()

	lines := make(chan string)
	go a.readLines(ctx, lines)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-a.fetches:
			a.applyFetch(res)
			a.render()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if done := a.handleLine(ctx, line); done {
				return nil
			}
			a.render()
		}
	}
}

func (a *App) readLines(ctx context.Context, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) restoreStartupSession(ctx context.Context) {
	res, err := a.restoreHandler.Handle(ctx, command.RestoreSessionCommand{})
	if err != nil {
		a.logger.Warn("session restore failed, starting unauthenticated", logger.Err(err))
		return
	}
	if res.Restored {
		a.activateDashboard(ctx, res.Identity.Role)
	}
}

// activateDashboard opens the dashboard screen for the role and starts the
// initial fetch under a fresh token.
func (a *App) activateDashboard(ctx context.Context, role session.Role) {
	if err := a.state.OpenDashboard(role); err != nil {
		a.logger.Error("dashboard activation rejected", logger.Err(err))
		return
	}
	a.dashboard = nil
	a.roster = nil
	a.beginFetch(ctx)
}

// beginFetch rotates the active token and launches a background fetch for
// the current dashboard variant. The loop goroutine never blocks on the
// network.
func (a *App) beginFetch(ctx context.Context) {
	identity, ok := a.session.Identity()
	if !ok {
		return
	}

	token := uuid.New()
	a.activeToken = token
	variant := a.state.DashboardVariant()

	a.logger.Debug("fetch started",
		logger.FetchToken(token.String()),
		logger.UserID(identity.ID))

	go func() {
		fctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
		defer cancel()

		var res fetchResult
		res.token = token
		switch variant {
		case view.VariantMentor:
			res.roster, res.err = a.gateway.MentorRosterTagged(fctx, identity.ID)
		default:
			res.dashboard, res.err = a.gateway.StudentDashboardTagged(fctx, identity.ID)
		}

		select {
		case a.fetches <- res:
		case <-ctx.Done():
		}
	}()
}

// applyFetch accepts or discards one completed fetch. Latest wins: a result
// whose token no longer matches is dropped without touching render state.
func (a *App) applyFetch(res fetchResult) {
	if a.flags.StalenessGuardEnabled() && res.token != a.activeToken {
		a.logger.Info("stale fetch discarded", logger.FetchToken(res.token.String()))
		a.publish(shared.NewStaleFetchDiscardedEvent(res.token.String()))
		return
	}

	if res.err != nil {
		a.logger.Error("dashboard fetch failed", logger.Err(res.err))
		a.printf("Could not load dashboard data: %s\n", userMessage(res.err, "service unavailable"))
		return
	}

	identity, _ := a.session.Identity()
	if res.dashboard != nil {
		a.dashboard = res.dashboard
		a.publish(shared.NewDashboardLoadedEvent(
			identity.ID,
			res.dashboard.Payload.Risk.Score,
			res.dashboard.Source == campus.SourceDemo,
		))
	}
	if res.roster != nil {
		a.roster = res.roster
		a.publish(shared.NewRosterLoadedEvent(
			identity.ID,
			len(res.roster.Cards),
			res.roster.Source == campus.SourceDemo,
		))
	}
}

// handleLine executes one input command. Returns true when the app should
// exit.
func (a *App) handleLine(ctx context.Context, line string) bool {
	cmd := ParseCommand(line)

	switch cmd.Kind {
	case CmdNone:
	case CmdLogin:
		a.handleLogin(ctx, cmd.Args)
	case CmdTab:
		a.handleTab(ctx, cmd.Args)
	case CmdFilter:
		a.handleFilter(ctx, cmd.Args)
	case CmdTheme:
		a.handleTheme(ctx)
	case CmdLogout:
		a.handleLogout(ctx)
	case CmdDetails:
		a.handleDetails(ctx, cmd.Args)
	case CmdRefresh:
		if a.state.Screen() == view.ScreenDashboard {
			a.beginFetch(ctx)
		}
	case CmdStatus:
		a.handleStatus(ctx)
	case CmdHelp:
		a.printHelp()
	case CmdQuit:
		return true
	default:
		a.printf("Unknown command %q. Type \"help\" for the command list.\n", line)
	}
	return false
}

func (a *App) handleLogin(ctx context.Context, args []string) {
	if a.state.Screen() == view.ScreenDashboard {
		a.printf("Already logged in. Use \"logout\" first.\n")
		return
	}

	loginCmd := command.LoginCommand{}
	if len(args) > 0 {
		loginCmd.Email = args[0]
	}
	if len(args) > 1 {
		loginCmd.Password = args[1]
	}

	res, err := a.loginHandler.Handle(ctx, loginCmd)
	if err != nil {
		a.logger.Error("login handler failed", logger.Err(err))
		a.loginMessage = "Something went wrong. Please try again."
		return
	}
	if !res.Success {
		a.loginMessage = res.Message
		return
	}

	a.loginMessage = ""
	if !res.Persisted {
		a.logger.Warn("session not persisted, login will not survive restart")
	}
	a.activateDashboard(ctx, res.Identity.Role)
}

func (a *App) handleTab(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: tab <dashboard|attendance|assignments|exams|notifications>\n")
		return
	}
	if _, err := a.navigateHandler.HandleSelectTab(ctx, command.SelectTabCommand{Tab: args[0]}); err != nil {
		a.printf("%s\n", userMessage(err, "cannot switch tab"))
	}
}

func (a *App) handleFilter(ctx context.Context, args []string) {
	if len(args) != 1 {
		a.printf("Usage: filter <all|low|medium|high>\n")
		return
	}
	if _, err := a.navigateHandler.HandleSetRiskFilter(ctx, command.SetRiskFilterCommand{Filter: args[0]}); err != nil {
		a.printf("%s\n", userMessage(err, "cannot change filter"))
	}
}

func (a *App) handleTheme(ctx context.Context) {
	if !a.flags.ThemeToggleEnabled() {
		a.printf("Theme switching is disabled.\n")
		return
	}
	if _, err := a.themeHandler.Handle(ctx, command.ToggleThemeCommand{}); err != nil {
		a.logger.Error("theme toggle failed", logger.Err(err))
	}
}

func (a *App) handleLogout(ctx context.Context) {
	if _, err := a.logoutHandler.Handle(ctx, command.LogoutCommand{}); err != nil {
		a.logger.Error("logout failed", logger.Err(err))
	}
	a.state.CloseSession()
	a.dashboard = nil
	a.roster = nil
	a.loginMessage = ""
	// Orphan any in-flight fetch.
	a.activeToken = uuid.New()
}

func (a *App) handleStatus(ctx context.Context) {
	fctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	healthy, err := a.gateway.Health(fctx)
	switch {
	case err != nil:
		a.printf("Data service: unreachable (%s). Policy: %s.\n",
			userMessage(err, "connection error"), a.gateway.Policy())
	case !healthy:
		a.printf("Data service: unhealthy. Policy: %s.\n", a.gateway.Policy())
	default:
		a.printf("Data service: healthy. Policy: %s.\n", a.gateway.Policy())
	}
}

func (a *App) handleDetails(ctx context.Context, args []string) {
	if a.state.Screen() != view.ScreenDashboard || a.state.Role() != session.RoleMentor {
		a.printf("Details are available on the mentor dashboard only.\n")
		return
	}
	if len(args) != 1 {
		a.printf("Usage: details <student-id>\n")
		return
	}
	studentID, err := strconv.Atoi(args[0])
	if err != nil {
		a.printf("Student id must be a number.\n")
		return
	}

	fctx, cancel := context.WithTimeout(ctx, a.fetchTimeout)
	defer cancel()

	details, err := a.gateway.StudentDetails(fctx, studentID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			a.printf("No student with id %d.\n", studentID)
			return
		}
		a.printf("Could not load details: %s\n", userMessage(err, "service unavailable"))
		return
	}
	a.printf("%s", a.detailsPresenter.Format(details))
}

// render projects the current state through the view query and prints the
// active screen. Rendering is a pure function of state: repeating it with
// unchanged state prints the same text.
func (a *App) render() {
	q := query.RenderQuery{
		Theme:        a.session.Theme(),
		Screen:       a.state.Screen(),
		Tab:          a.state.ActiveTab(),
		Variant:      a.state.DashboardVariant(),
		Filter:       a.state.Filter(),
		LoginMessage: a.loginMessage,
	}
	if identity, ok := a.session.Identity(); ok {
		q.Identity = &identity
	}
	if a.dashboard != nil {
		summary := query.SummarizeDashboard(query.DashboardSummaryQuery{
			Payload: a.dashboard.Payload,
			Now:     a.now(),
		})
		q.Summary = &summary
	}
	if a.roster != nil {
		q.Roster = a.roster.Cards
	}

	vm := query.RenderView(q)

	a.printf("\n")
	if vm.Screen == view.ScreenLogin {
		a.printf("%s", a.loginPresenter.Format(vm))
		return
	}

	a.printf("%s", a.dashboardPresenter.FormatHeader(vm))
	if q.Tab == view.TabDashboard {
		switch {
		case vm.Student != nil || q.Variant == view.VariantStudent:
			a.printf("%s", a.dashboardPresenter.FormatStudent(vm.Student))
		case vm.Mentor != nil || q.Variant == view.VariantMentor:
			a.printf("%s", a.rosterPresenter.Format(vm.Mentor))
		}
		return
	}
	a.printTabPage(q.Tab, vm)
}

// printTabPage renders the non-dashboard tabs from the same snapshot; tab
// switches never refetch.
func (a *App) printTabPage(tab view.Tab, vm query.ViewModel) {
	s := vm.Student
	if s == nil {
		a.printf("Nothing to show here yet.\n")
		return
	}

	switch tab {
	case view.TabAttendance:
		a.printf("Attendance: %s\n", s.AttendanceDisplay)
	case view.TabAssignments:
		a.printf("Pending assignments: %s\n", s.PendingAssignments)
		if s.DeadlinesMessage != "" {
			a.printf("  %s\n", s.DeadlinesMessage)
			return
		}
		for _, d := range s.Deadlines {
			a.printf("  %s — %d days left\n", d.Title, d.DaysLeft)
		}
	case view.TabExams:
		a.printf("Upcoming exams: %s\n", s.UpcomingExams)
	case view.TabNotifications:
		if len(s.Alerts) == 0 {
			a.printf("No notifications.\n")
			return
		}
		for _, alert := range s.Alerts {
			a.printf("[%s] %s\n", alert.Type, alert.Message)
		}
	default:
		a.printf("Nothing to show here yet.\n")
	}
}

func (a *App) printHelp() {
	a.printf("Commands:\n")
	a.printf("  login <email> <password>\n")
	a.printf("  tab <dashboard|attendance|assignments|exams|notifications>\n")
	a.printf("  filter <all|low|medium|high>   (mentor)\n")
	a.printf("  details <student-id>           (mentor)\n")
	a.printf("  refresh\n")
	a.printf("  status\n")
	a.printf("  theme\n")
	a.printf("  logout\n")
	a.printf("  quit\n")
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) publish(event shared.Event) {
	if a.publisher == nil {
		return
	}
	_ = a.publisher.Publish(event)
}

// userMessage extracts the displayable message from a domain error.
func userMessage(err error, fallback string) string {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	return fallback
}
