package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/nexidian/gocliselect"
)

type App struct {
	repo  *Repo
	cfg   *Config
	state *UIState
}

func NewApp(repo *Repo, cfg *Config, state *UIState) *App {
	return &App{repo: repo, cfg: cfg, state: state}
}

// AddEntry records one rating from the command line. Empty date or time
// default to now; the summary is always derived, never taken from the user.
func (a *App) AddEntry(date, timeOfDay string, scales []int) (Entry, error) {
	if len(scales) != len(ScaleFields) {
		return Entry{}, fmt.Errorf("expected %d scale values, got %d", len(ScaleFields), len(scales))
	}

	now := time.Now()
	if date == "" {
		date = now.Format(a.cfg.DateFormat)
	}
	if timeOfDay == "" {
		timeOfDay = now.Format(a.cfg.TimeFormat)
	}

	e := Entry{Date: date, Time: timeOfDay}
	for i, f := range ScaleFields {
		f.Set(&e, scales[i])
	}
	e.DeriveSummary()

	if err := e.Validate(a.cfg.DateFormat, a.cfg.TimeFormat); err != nil {
		return Entry{}, err
	}

	id, err := a.repo.InsertEntry(e)
	if err != nil {
		return Entry{}, err
	}
	e.ID = id

	fmt.Printf("Saved entry #%d (summary %d)\n", e.ID, e.Summary)
	return e, nil
}

// Display prints every stored entry as a text table.
func (a *App) Display() error {
	entries, err := a.repo.ListEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet.")
		return nil
	}

	headers := []string{"ID", "Date", "Time"}
	for _, f := range ScaleFields {
		headers = append(headers, f.Name)
	}
	headers = append(headers, "summary")

	var rows [][]string
	for _, e := range entries {
		row := []string{strconv.FormatInt(e.ID, 10), e.Date, e.Time}
		for _, v := range e.ScaleValues() {
			row = append(row, strconv.Itoa(v))
		}
		row = append(row, strconv.Itoa(e.Summary))
		rows = append(rows, row)
	}

	footers := make([]string, len(headers))
	footers[0] = fmt.Sprintf("%d entries", len(entries))
	PrintTable(os.Stdout, headers, rows, footers)

	return nil
}

// DeleteByID removes a single entry.
func (a *App) DeleteByID(id int64) error {
	if err := a.repo.DeleteEntries(id); err != nil {
		return err
	}
	fmt.Printf("Deleted entry #%d\n", id)
	return nil
}

// DeleteInteractive shows a picker over the stored entries and deletes the
// chosen one.
func (a *App) DeleteInteractive() error {
	entries, err := a.repo.ListEntries()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries to delete.")
		return nil
	}

	menu := gocliselect.NewMenu("Delete which entry?")
	for _, e := range entries {
		label := fmt.Sprintf("#%d  %s %s  summary %d", e.ID, e.Date, e.Time, e.Summary)
		menu.AddItem(label, strconv.FormatInt(e.ID, 10))
	}

	selection, err := menu.Display()
	if err != nil {
		return err
	}
	choice, _ := selection.(string)
	if choice == "" {
		return nil
	}
	id, err := strconv.ParseInt(choice, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid selection: %w", err)
	}

	return a.DeleteByID(id)
}
