package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"randomtools/internal/common"
	"randomtools/internal/interfaces"
	"randomtools/internal/models"
)

type calendarService struct {
	svc *calendar.Service
}

// NewCalendarService authenticates against the Google Calendar API
// using an OAuth client secret file and a cached token. When no valid
// token exists the user is walked through the authorization-code flow
// on the terminal and the new token is written back to tokenPath.
func NewCalendarService(ctx context.Context, credentialsPath, tokenPath string, scopes ...string) (interfaces.CalendarService, error) {
	if len(scopes) == 0 {
		scopes = []string{calendar.CalendarScope}
	}

	secret, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeConfiguration, "google_credentials_read", "failed to read Google credentials file")
	}
	oauthConfig, err := google.ConfigFromJSON(secret, scopes...)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeConfiguration, "google_credentials_parse", "failed to parse Google credentials file")
	}

	token, err := tokenFromFile(tokenPath)
	if err != nil {
		token, err = tokenFromPrompt(ctx, oauthConfig)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenPath, token); err != nil {
			return nil, err
		}
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeCalendar, "calendar_client_create", "failed to create calendar client")
	}
	return &calendarService{svc: svc}, nil
}

func tokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(token); err != nil {
		return nil, err
	}
	return token, nil
}

func tokenFromPrompt(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%s\n> ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return nil, common.WrapError(err, common.ErrorTypeCalendar, "auth_code_read", "failed to read authorization code")
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeCalendar, "auth_code_exchange", "failed to exchange authorization code")
	}
	return token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := common.EnsureDir(filepath.Dir(path)); err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "token_dir_create", "failed to create token directory")
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return common.WrapError(err, common.ErrorTypeStorage, "token_write", "failed to write token file")
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

func (c *calendarService) ListCalendars() ([]interfaces.CalendarInfo, error) {
	list, err := c.svc.CalendarList.List().Do()
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeCalendar, "calendar_list_failed", "failed to list calendars")
	}

	calendars := make([]interfaces.CalendarInfo, 0, len(list.Items))
	for _, item := range list.Items {
		calendars = append(calendars, interfaces.CalendarInfo{ID: item.Id, Summary: item.Summary})
	}
	return calendars, nil
}

func (c *calendarService) EventsBetween(calendarID string, from, to time.Time) ([]models.CalendarEvent, error) {
	result, err := c.svc.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, common.WrapError(err, common.ErrorTypeCalendar, "event_list_failed", "failed to list events for "+calendarID)
	}

	events := make([]models.CalendarEvent, 0, len(result.Items))
	for _, item := range result.Items {
		event, err := parseEvent(item)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}

// parseEvent converts an API event, handling both timed events
// (dateTime) and all-day events (date).
func parseEvent(item *calendar.Event) (models.CalendarEvent, error) {
	event := models.CalendarEvent{
		ID:      item.Id,
		Summary: item.Summary,
	}
	if event.Summary == "" {
		event.Summary = "No Title"
	}

	var err error
	if item.Start.DateTime != "" {
		event.Start, err = time.Parse(time.RFC3339, item.Start.DateTime)
	} else {
		event.AllDay = true
		event.Start, err = time.ParseInLocation("2006-01-02", item.Start.Date, time.Local)
	}
	if err != nil {
		return event, common.WrapError(err, common.ErrorTypeCalendar, "event_parse_failed", "failed to parse event start time")
	}

	if item.End.DateTime != "" {
		event.End, err = time.Parse(time.RFC3339, item.End.DateTime)
	} else {
		event.End, err = time.ParseInLocation("2006-01-02", item.End.Date, time.Local)
	}
	if err != nil {
		return event, common.WrapError(err, common.ErrorTypeCalendar, "event_parse_failed", "failed to parse event end time")
	}
	return event, nil
}

func (c *calendarService) InsertEvent(calendarID string, event *interfaces.EventRequest) (string, error) {
	timezone := event.Start.Location().String()

	created, err := c.svc.Events.Insert(calendarID, &calendar.Event{
		Summary:     event.Title,
		Description: event.Description,
		Start: &calendar.EventDateTime{
			DateTime: event.Start.Format(time.RFC3339),
			TimeZone: timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: event.End.Format(time.RFC3339),
			TimeZone: timezone,
		},
	}).Do()
	if err != nil {
		return "", common.WrapError(err, common.ErrorTypeCalendar, "event_create_failed", "failed to create calendar event")
	}
	return created.HtmlLink, nil
}
