package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/radiogrid/internal/exporter"
	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/importer"
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/nikbrunner/radiogrid/internal/nav"
	"github.com/nikbrunner/radiogrid/internal/picker"
	"github.com/nikbrunner/radiogrid/internal/search"
	"github.com/nikbrunner/radiogrid/internal/storage"
	"github.com/nikbrunner/radiogrid/internal/tui"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

var (
	cfgFile    string
	historyDB  string
	noWatch    bool
	navItems   int
	navColumns int
	navFrom    int
	navDir     string
	navSkip    []int
	histGroup  string
	histLimit  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "radiogrid",
		Short:        "keyboard-driven radio button grid",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "group config file (.json, .yaml) (default ~/.config/radiogrid/group.json)")
	rootCmd.PersistentFlags().StringVar(&historyDB, "history-db", "", "keep selection history in this SQLite database")
	rootCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the config when it changes")

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "print where each option is placed in the grid",
		Args:  cobra.NoArgs,
		RunE:  runLayout,
	}

	navCmd := &cobra.Command{
		Use:   "nav",
		Short: "compute the next focus index for a move",
		Args:  cobra.NoArgs,
		RunE:  runNav,
	}
	navCmd.Flags().IntVar(&navItems, "items", 0, "number of items (required)")
	navCmd.Flags().IntVar(&navColumns, "columns", 1, "maximum columns")
	navCmd.Flags().IntVar(&navFrom, "from", 0, "focused index")
	navCmd.Flags().StringVar(&navDir, "dir", "next", "direction: next, previous, right, left")
	navCmd.Flags().IntSliceVar(&navSkip, "ineligible", nil, "indices that cannot take focus")
	navCmd.MarkFlagRequired("items")

	pickCmd := &cobra.Command{
		Use:   "pick QUERY...",
		Short: "fuzzy-pick an option and record it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runPick,
	}

	importCmd := &cobra.Command{
		Use:   "import FILE.html",
		Short: "merge radio inputs or select options from an HTML form",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}

	exportCmd := &cobra.Command{
		Use:   "export [PATH]",
		Short: "write the group as an HTML fieldset",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExport,
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list recorded selections",
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}
	historyCmd.Flags().StringVar(&histGroup, "group", "", "only show this group")
	historyCmd.Flags().IntVar(&histLimit, "limit", 20, "show at most this many records (0 for all)")

	rootCmd.AddCommand(layoutCmd, navCmd, pickCmd, importCmd, exportCmd, historyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return storage.DefaultConfigFilePath()
}

func loadConfig() (string, *storage.Config, error) {
	path, err := configPath()
	if err != nil {
		return "", nil, fmt.Errorf("config path: %w", err)
	}
	config, err := storage.LoadConfig(path)
	if err != nil {
		return "", nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return path, config, nil
}

// openStorage returns the history backend and a function that closes it.
func openStorage() (storage.Storage, func(), error) {
	if historyDB != "" {
		db, err := storage.NewSQLiteStorage(historyDB)
		if err != nil {
			return nil, nil, err
		}
		return db, func() { db.Close() }, nil
	}

	s, err := storage.OpenStorage()
	if err != nil {
		return nil, nil, err
	}
	if db, ok := s.(*storage.SQLiteStorage); ok {
		return s, func() { db.Close() }, nil
	}
	return s, func() {}, nil
}

// setupLogging sends log output to a file when RADIOGRID_DEBUG is set.
// Anything written to stderr would corrupt the alt screen.
func setupLogging() (io.Closer, error) {
	if path := os.Getenv("RADIOGRID_DEBUG"); path != "" {
		return tea.LogToFile(path, "radiogrid")
	}
	log.SetOutput(io.Discard)
	return nil, nil
}

// runTUI runs the full interactive control.
func runTUI(cmd *cobra.Command, args []string) error {
	logFile, err := setupLogging()
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	path, config, err := loadConfig()
	if err != nil {
		return err
	}

	store, closeStore, err := openStorage()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer closeStore()

	params := tui.AppParams{Config: config, Storage: store, ConfigPath: path}
	if !noWatch {
		watcher, err := storage.WatchConfig(path)
		if err != nil {
			log.Printf("watch config: %v", err)
		} else {
			defer watcher.Close()
			params.Watcher = watcher
		}
	}

	app, err := tui.NewApp(params)
	if err != nil {
		return err
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run app: %w", err)
	}
	return nil
}

// runLayout prints the placement of every option as the control would
// arrange it.
func runLayout(cmd *cobra.Command, args []string) error {
	_, config, err := loadConfig()
	if err != nil {
		return err
	}

	prefixWidth := runewidth.StringWidth(layout.DefaultConfig().Glyphs.Prefix(false, false))
	sizes := make([]grid.Size, len(config.Options))
	for i, o := range config.Options {
		sizes[i] = grid.Size{Width: float64(prefixWidth + runewidth.StringWidth(o.Label)), Height: 1}
	}

	desired := grid.Measure(sizes, config.MaximumColumns)
	placements := grid.Arrange(sizes, config.MaximumColumns, config.ColumnSpacing, config.RowSpacing)

	fmt.Printf("%d options, %d columns max, desired %gx%g\n",
		len(sizes), config.MaximumColumns, desired.Width, desired.Height)
	for _, pl := range placements {
		o := config.Options[pl.Index]
		flags := ""
		if !o.Eligible() {
			flags = " (skipped)"
		}
		fmt.Printf("%3d  col %d row %d  at %g,%g  %s%s\n",
			pl.Index, pl.Column, pl.Row, pl.Bounds.X, pl.Bounds.Y, o.Label, flags)
	}
	return nil
}

func runNav(cmd *cobra.Command, args []string) error {
	direction, err := nav.ParseDirection(navDir)
	if err != nil {
		return err
	}

	skip := make(map[int]bool, len(navSkip))
	for _, i := range navSkip {
		skip[i] = true
	}

	res, err := nav.NextFocusIndex(nav.Request{
		FocusedIndex: navFrom,
		Direction:    direction,
		ItemCount:    navItems,
		MaxColumns:   navColumns,
	}, func(i int) bool { return !skip[i] })
	if err != nil {
		return err
	}

	if index, ok := res.Found(); ok {
		fmt.Printf("%s from %d: %d (distance %d)\n", direction, navFrom, index, res.Distance)
		return nil
	}
	fmt.Printf("%s from %d: no target\n", direction, navFrom)
	return nil
}

// runPick fuzzy-searches the options and records the chosen one.
func runPick(cmd *cobra.Command, args []string) error {
	_, config, err := loadConfig()
	if err != nil {
		return err
	}
	group := config.Group()
	query := strings.Join(args, " ")

	results := search.FuzzySearchOptions(group, query)
	if len(results) == 0 {
		fmt.Printf("No options found for '%s'\n", query)
		return nil
	}

	var selected *model.Option
	index := -1
	if len(results) == 1 && !results[0].Option.Disabled {
		// Single result - select it directly
		selected, index = results[0].Option, results[0].Index
	} else {
		p := picker.New(results, query)
		finalModel, err := tea.NewProgram(p).Run()
		if err != nil {
			return fmt.Errorf("run picker: %w", err)
		}
		finalPicker := finalModel.(picker.Picker)
		if finalPicker.Cancelled() {
			return nil
		}
		selected, index = finalPicker.SelectedOption(), finalPicker.SelectedIndex()
	}
	if selected == nil {
		return nil
	}

	store, closeStore, err := openStorage()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer closeStore()

	history, err := store.Load()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}
	history.Record(model.SelectionRecord{
		Group:      group.Name,
		OptionID:   selected.ID,
		Label:      selected.Label,
		Index:      index,
		SelectedAt: time.Now(),
	})
	if err := store.Save(history); err != nil {
		return fmt.Errorf("save history: %w", err)
	}

	fmt.Println(selected.Label)
	return nil
}

// runImport merges the options of an HTML form into the config.
func runImport(cmd *cobra.Command, args []string) error {
	path, config, err := loadConfig()
	if err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	imported, err := importer.ParseHTMLGroup(file)
	if err != nil {
		return fmt.Errorf("parse HTML: %w", err)
	}

	group := config.Group()
	added, skipped := group.ImportMerge(imported.Options)
	config.Options = group.Options
	if config.Header == "" {
		config.Header = imported.Header
	}

	if err := storage.SaveConfig(path, config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("Imported %d options into %s", added, path)
	if skipped > 0 {
		fmt.Printf(" (%d duplicates skipped)", skipped)
	}
	fmt.Println()
	return nil
}

// runExport writes the group and its last recorded selection as HTML.
func runExport(cmd *cobra.Command, args []string) error {
	_, config, err := loadConfig()
	if err != nil {
		return err
	}
	group := config.Group()

	outputPath := ""
	if len(args) > 0 {
		outputPath = args[0]
	} else if outputPath, err = exporter.DefaultExportPath(group.Name); err != nil {
		return fmt.Errorf("default export path: %w", err)
	}

	selected := model.NoSelection
	if store, closeStore, err := openStorage(); err == nil {
		defer closeStore()
		if history, err := store.Load(); err == nil {
			if latest := history.Latest(group.Name); latest != nil {
				selected = group.IndexOf(latest.OptionID)
			}
		}
	}

	html := exporter.ExportHTML(group, selected)
	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		return err
	}

	fmt.Printf("Exported %d options to %s\n", group.Len(), outputPath)
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, closeStore, err := openStorage()
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer closeStore()

	history, err := store.Load()
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	records := history.Records
	if histGroup != "" {
		records = history.ForGroup(histGroup)
	}
	if histLimit > 0 && len(records) > histLimit {
		records = records[len(records)-histLimit:]
	}
	if len(records) == 0 {
		fmt.Println("No selections recorded")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%s  %-12s %s\n", r.SelectedAt.Local().Format("2006-01-02 15:04"), r.Group, r.Label)
	}
	return nil
}
