// Package shell implements the interactive Jira worklog shell.
package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/ternarybob/arbor"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"
	"randomtools/internal/services"
)

// issueTimeRE matches "ISSUE TIME [DESCRIPTION]" lines, e.g.
// "ABC-123 2h Fixed login bug".
var issueTimeRE = regexp.MustCompile(`(?i)^([A-Z]+-\d+)\s+([0-9. hm:]+)(?:\s+(\S.*))?$`)

// Shell is the interactive worklog loop. Commands mutate the saved and
// excluded issue sets and the recent-issues cache through the store;
// everything else goes straight to Jira.
type Shell struct {
	config   *common.JiraConfig
	jira     interfaces.JiraClient
	worklogs interfaces.WorklogService
	store    interfaces.StateStore
	out      io.Writer
	logger   arbor.ILogger

	// workingDate overrides today for time logging and listing; nil
	// means today.
	workingDate *time.Time

	commands []command
}

type command struct {
	name string
	help string
	run  func(args []string)
}

// New wires the shell against its collaborators. Output goes to out.
func New(config *common.JiraConfig, jira interfaces.JiraClient, worklogs interfaces.WorklogService, store interfaces.StateStore, out io.Writer) *Shell {
	s := &Shell{
		config:   config,
		jira:     jira,
		worklogs: worklogs,
		store:    store,
		out:      out,
		logger:   common.GetLogger(),
	}
	s.commands = []command{
		{"list", "list [week] - Show current day's worklogs and saved issues", s.cmdList},
		{"save", "save ISSUE - Add issue to saved list", s.cmdSave},
		{"exclude", "exclude ISSUE - Add issue to excluded list", s.cmdExclude},
		{"remove", "remove ISSUE - Remove issue from both saved and excluded lists", s.cmdRemove},
		{"create", "create PROJECT DESC - Create new issue in project", s.cmdCreate},
		{"update", "update [DAYS] - Refresh issues cache (defaults to 7 days)", s.cmdUpdate},
		{"calendar", "calendar ARGS - Create calendar event (calls jira-calendar with args)", s.cmdCalendar},
		{"set", "set DATE - Set working date (YYYY-MM-DD, 'Mon', '3 days ago')", s.cmdSetDate},
		{"reset", "reset - Reset to today's date", s.cmdResetDate},
		{"help", "help - Show this help", s.cmdHelp},
	}
	return s
}

// Run starts the read-eval loop. It returns when the user presses
// Ctrl+D or Ctrl+C.
func (s *Shell) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "jira> ",
		HistoryFile:     s.store.HistoryPath(),
		HistoryLimit:    1000,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return common.WrapError(err, common.ErrorTypeInternal, "readline_init", "failed to initialize line editor")
	}
	defer rl.Close()

	fmt.Fprintf(s.out, "Connected to Jira at %s\n", s.config.Domain)
	fmt.Fprintln(s.out, "Type 'help' for available commands, or 'ISSUE TIME [DESC]' to log time (e.g., 'ABC-123 2h Fixed bug')")

	s.cmdList(nil)

	for {
		line, err := rl.Readline()
		if err != nil {
			// io.EOF on Ctrl+D, readline.ErrInterrupt on Ctrl+C
			fmt.Fprintln(s.out, "\nExiting...")
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.dispatch(line)
	}
}

func (s *Shell) dispatch(line string) {
	if issueTimeRE.MatchString(line) {
		s.logTime(line)
		return
	}

	parts := strings.Fields(line)
	for _, cmd := range s.commands {
		if strings.HasPrefix(cmd.name, parts[0]) {
			cmd.run(parts[1:])
			return
		}
	}
	fmt.Fprintf(s.out, "Unknown command: %s. Type 'help' for available commands.\n", parts[0])
}

// WorkingDate is the date worklogs are listed for and logged against.
func (s *Shell) WorkingDate() time.Time {
	if s.workingDate != nil {
		return *s.workingDate
	}
	return services.DateOnly(time.Now())
}

func (s *Shell) cmdHelp(args []string) {
	fmt.Fprintln(s.out, "\nAvailable commands:")
	for _, cmd := range s.commands {
		fmt.Fprintf(s.out, "  %s\n", cmd.help)
	}
	fmt.Fprintln(s.out, "\nIssue logging format:")
	fmt.Fprintln(s.out, `  ISSUE TIME - Log time to issue (e.g., "ABC-123 2h", "DEV-456 1.5h")`)
	fmt.Fprintln(s.out, "\nQuit by pressing Ctrl+D or Ctrl+C.")
}

func (s *Shell) cmdSetDate(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: set DATE")
		fmt.Fprintln(s.out, "Examples:")
		fmt.Fprintln(s.out, "  set 2025-08-18")
		fmt.Fprintln(s.out, "  set Monday")
		fmt.Fprintln(s.out, "  set 3 days ago")
		fmt.Fprintln(s.out, "  set yesterday")
		return
	}

	date, err := services.ParseNaturalDate(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintf(s.out, "Error: Unable to parse date '%s'\n", strings.Join(args, " "))
		fmt.Fprintln(s.out, "Supported formats:")
		fmt.Fprintln(s.out, "  YYYY-MM-DD (e.g., 2025-08-18)")
		fmt.Fprintln(s.out, "  Weekday names (Monday, Tue, Wed, etc.)")
		fmt.Fprintln(s.out, "  Relative dates (3 days ago, yesterday)")
		return
	}

	s.workingDate = &date
	relative := services.RelativeDayDescription(date, time.Now())
	fmt.Fprintf(s.out, "Set working date to %s (%s, %s)\n",
		date.Format("2006-01-02"), date.Format("Monday"), relative)

	s.cmdList(nil)
}

func (s *Shell) cmdResetDate(args []string) {
	s.workingDate = nil
	fmt.Fprintln(s.out, "Reset to today's date")
}

func (s *Shell) cmdCalendar(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: calendar ARGS (passed to jira-calendar)")
		return
	}

	cmd := exec.Command("jira-calendar", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(s.out, "jira-calendar failed: %v\n", err)
	}
}

func (s *Shell) cmdSave(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: save ISSUE")
		return
	}
	issue := strings.ToUpper(args[0])

	saved, _ := s.store.LoadSaved()
	excluded, _ := s.store.LoadExcluded()

	if excluded.Has(issue) {
		excluded.Remove(issue)
		if err := s.store.StoreExcluded(excluded); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "Removed %s from excluded list\n", common.Bold(issue))
	}

	saved.Add(issue)
	if err := s.store.StoreSaved(saved); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added %s to saved issues\n", common.Bold(issue))
}

func (s *Shell) cmdExclude(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: exclude ISSUE")
		return
	}
	issue := strings.ToUpper(args[0])

	saved, _ := s.store.LoadSaved()
	excluded, _ := s.store.LoadExcluded()

	if saved.Has(issue) {
		saved.Remove(issue)
		if err := s.store.StoreSaved(saved); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintf(s.out, "Removed %s from saved list\n", common.Bold(issue))
	}

	excluded.Add(issue)
	if err := s.store.StoreExcluded(excluded); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added %s to excluded issues\n", common.Bold(issue))
}

func (s *Shell) cmdRemove(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: remove ISSUE")
		return
	}
	issue := strings.ToUpper(args[0])

	saved, _ := s.store.LoadSaved()
	excluded, _ := s.store.LoadExcluded()

	var removedFrom []string
	if saved.Has(issue) {
		saved.Remove(issue)
		if err := s.store.StoreSaved(saved); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		removedFrom = append(removedFrom, "saved")
	}
	if excluded.Has(issue) {
		excluded.Remove(issue)
		if err := s.store.StoreExcluded(excluded); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
			return
		}
		removedFrom = append(removedFrom, "excluded")
	}

	if len(removedFrom) == 0 {
		fmt.Fprintf(s.out, "%s was not in any saved or excluded lists\n", common.Bold(issue))
		return
	}
	suffix := ""
	if len(removedFrom) > 1 {
		suffix = "s"
	}
	fmt.Fprintf(s.out, "Removed %s from %s list%s\n", common.Bold(issue), strings.Join(removedFrom, " and "), suffix)
}

func (s *Shell) cmdCreate(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: create PROJECT Issue description")
		return
	}
	project := strings.ToUpper(args[0])
	summary := strings.Join(args[1:], " ")

	issueKey, err := s.jira.CreateTask(project, summary, []string{summary})
	if err != nil {
		fmt.Fprintf(s.out, "Failed to create issue: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Created issue %s\n", common.Bold(issueKey))
	fmt.Fprintf(s.out, "URL: %s\n", s.config.BrowseURL(issueKey))

	saved, _ := s.store.LoadSaved()
	saved.Add(issueKey)
	if err := s.store.StoreSaved(saved); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Added %s to saved issues\n", common.Bold(issueKey))
}

func (s *Shell) cmdUpdate(args []string) {
	fmt.Fprintln(s.out, "Updating issues cache...")

	days := 7
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil {
			days = n
		}
	}
	fmt.Fprintf(s.out, "Fetching issues from the last %d days...\n", days)

	issues, err := s.worklogs.RecentIssues(days)
	if err != nil {
		fmt.Fprintf(s.out, "Failed to fetch recent issues: %v\n", err)
		return
	}

	cache := &models.RecentCache{
		Updated: time.Now(),
		Days:    days,
		Issues:  issues,
	}
	if err := s.store.StoreRecentCache(cache); err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	if len(issues) == 0 {
		fmt.Fprintln(s.out, "No recent issues found.")
		return
	}

	fmt.Fprintf(s.out, "Found %d issues:\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(s.out, "  %s: %s\n", common.Bold(issue.Key), issue.Summary)
	}
	fmt.Fprintln(s.out, "\nCache updated successfully. Use 'save ISSUE' to save specific issues.")
}

func (s *Shell) logTime(line string) {
	match := issueTimeRE.FindStringSubmatch(line)
	if match == nil {
		fmt.Fprintln(s.out, "Invalid format. Use: ISSUE TIME [DESCRIPTION] (e.g., 'ABC-123 2h Fixed login bug')")
		return
	}

	issue := strings.ToUpper(match[1])
	seconds, formatted, ok := services.ParseWorklogTime(match[2])
	if !ok {
		fmt.Fprintln(s.out, "Invalid time format. Supported formats:")
		fmt.Fprintln(s.out, "   1.5h (decimal hours)")
		fmt.Fprintln(s.out, "   3h 10m (hours and minutes)")
		fmt.Fprintln(s.out, "   3h10 (hours and minutes without space)")
		fmt.Fprintln(s.out, "   3:10 (hours:minutes)")
		fmt.Fprintln(s.out, "   30m (minutes only)")
		return
	}
	description := strings.TrimSpace(match[3])

	// Working date at the current wall-clock time.
	now := time.Now()
	workingDate := s.WorkingDate()
	started := time.Date(workingDate.Year(), workingDate.Month(), workingDate.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, now.Location())

	if err := s.jira.AddWorklog(issue, started, seconds, description); err != nil {
		fmt.Fprintf(s.out, "Failed to log time to %s: %v\n", common.Bold(issue), err)
		return
	}

	if description != "" {
		fmt.Fprintf(s.out, "Logged %s to %s: %s\n", formatted, common.Bold(issue), description)
	} else {
		fmt.Fprintf(s.out, "Logged %s to %s\n", formatted, common.Bold(issue))
	}

	s.printDailyWorklogs()
}

func (s *Shell) cmdList(args []string) {
	if len(args) > 0 && args[0] == "week" {
		s.printWeeklyWorklogs()
	} else {
		s.printDailyWorklogs()
	}
	s.printAvailableIssues()
	s.printExcludedIssues()
}

func (s *Shell) printDailyWorklogs() {
	workingDate := s.WorkingDate()
	context := services.WorkingDateContext(workingDate, time.Now())

	fmt.Fprintf(s.out, "\nToday's worklogs%s:\n", context)

	worklogs, err := s.worklogs.Daily(workingDate)
	if err != nil {
		fmt.Fprintf(s.out, "  Failed to fetch worklogs: %v\n", err)
		return
	}
	if len(worklogs) == 0 {
		fmt.Fprintln(s.out, "  No worklogs found for today")
		return
	}

	total := 0
	for _, wl := range worklogs {
		s.printWorklogLine(wl)
		total += wl.TimeSpentSeconds
	}
	fmt.Fprintf(s.out, "  Total: %s\n", services.FormatDuration(total))
}

func (s *Shell) printWeeklyWorklogs() {
	fmt.Fprintln(s.out, "Weekly worklogs:")

	worklogs, err := s.worklogs.Weekly(services.WeekStart(time.Now()))
	if err != nil {
		fmt.Fprintf(s.out, "  Failed to fetch worklogs: %v\n", err)
		return
	}
	if len(worklogs) == 0 {
		fmt.Fprintln(s.out, "  No worklogs found for this week")
		return
	}

	byDate := make(map[string][]models.Worklog)
	for _, wl := range worklogs {
		dateStr := wl.Date.Format("2006-01-02")
		byDate[dateStr] = append(byDate[dateStr], wl)
	}

	dates := make([]string, 0, len(byDate))
	for dateStr := range byDate {
		dates = append(dates, dateStr)
	}
	sort.Strings(dates)

	weekTotal := 0
	for _, dateStr := range dates {
		date, _ := time.Parse("2006-01-02", dateStr)
		fmt.Fprintf(s.out, "\n%s, %s:\n", date.Format("Monday"), dateStr)

		dayTotal := 0
		for _, wl := range byDate[dateStr] {
			s.printWorklogLine(wl)
			dayTotal += wl.TimeSpentSeconds
			weekTotal += wl.TimeSpentSeconds
		}
		fmt.Fprintf(s.out, "  Day total: %s\n", services.FormatDuration(dayTotal))
	}
	fmt.Fprintf(s.out, "\nWeek total: %s\n", services.FormatDuration(weekTotal))
}

func (s *Shell) printWorklogLine(wl models.Worklog) {
	line := fmt.Sprintf("  %s: %s - %s", common.Bold(wl.Issue), wl.TimeSpent, wl.Summary)
	if wl.Comment != "" {
		line += fmt.Sprintf(" – %s", wl.Comment)
	}
	fmt.Fprintln(s.out, line)
}

// printAvailableIssues combines the saved set with cached recent
// issues not saved or excluded, sorted alphabetically. Saved issues
// are marked with "*" and get their summaries fetched live.
func (s *Shell) printAvailableIssues() {
	saved, _ := s.store.LoadSaved()
	excluded, _ := s.store.LoadExcluded()
	cache, err := s.store.LoadRecentCache()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read recent-issues cache")
		cache = nil
	}

	type issueInfo struct {
		summary string
		hasInfo bool
		isSaved bool
	}
	all := make(map[string]issueInfo)

	for _, key := range saved.Sorted() {
		all[key] = issueInfo{isSaved: true}
	}
	cachedCount := 0
	if cache != nil {
		for _, issue := range cache.Issues {
			if saved.Has(issue.Key) || excluded.Has(issue.Key) {
				continue
			}
			all[issue.Key] = issueInfo{summary: issue.Summary, hasInfo: true}
			cachedCount++
		}
	}

	if len(all) == 0 {
		return
	}

	if len(saved) > 0 {
		details, err := s.jira.IssueDetails(saved.Sorted())
		if err != nil {
			s.logger.Warn().Err(err).Msg("Failed to fetch saved issue details")
		} else {
			for key, issue := range details {
				info := all[key]
				info.summary = issue.Summary
				info.hasInfo = true
				all[key] = info
			}
		}
	}

	fmt.Fprintln(s.out, "\nAvailable issues:")

	keys := make([]string, 0, len(all))
	for key := range all {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		info := all[key]
		marker := ""
		if info.isSaved {
			marker = "*"
		}
		if info.hasInfo {
			fmt.Fprintf(s.out, "  %s: %s %s\n", common.Bold(key), info.summary, marker)
		} else {
			fmt.Fprintf(s.out, "  %s (details not available) %s\n", common.Bold(key), marker)
		}
	}

	if cachedCount > 0 && cache != nil {
		fmt.Fprintf(s.out, "\nCache info: %d recent issues from last %d days (updated %s)\n",
			cachedCount, cache.Days, cache.Updated.Format("2006-01-02 15:04"))
		fmt.Fprintln(s.out, "Use 'save ISSUE' to save or 'exclude ISSUE' to hide. Run 'update' to refresh.")
	}
}

func (s *Shell) printExcludedIssues() {
	excluded, _ := s.store.LoadExcluded()
	if len(excluded) == 0 {
		return
	}

	fmt.Fprintln(s.out, "\nExcluded issues:")
	details, err := s.jira.IssueDetails(excluded.Sorted())
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to fetch excluded issue details")
	}

	for _, key := range excluded.Sorted() {
		if issue, ok := details[key]; ok {
			fmt.Fprintf(s.out, "  %s: %s\n", common.Bold(key), issue.Summary)
		} else {
			fmt.Fprintf(s.out, "  %s (details not available)\n", common.Bold(key))
		}
	}
}