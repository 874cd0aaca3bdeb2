package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var appConfig = DefaultConfig()

func openStore() *Store {
	st, err := OpenStore(appConfig.DBPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening data store: %v\n", err)
		os.Exit(1)
	}
	return st
}

func loadProfileOrExit(st *Store) *UserProfile {
	profile, err := st.LoadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	if profile == nil {
		fmt.Fprintln(os.Stderr, "No hunter profile found. Run 'arise onboard' first.")
		os.Exit(1)
	}
	return profile
}

// runStartupPenalty applies the missed-day check once per invocation and
// surfaces its report
func runStartupPenalty(st *Store, profile *UserProfile) {
	report, err := ApplyMissedDayPenalty(st, profile, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not apply penalty check: %v\n", err)
		return
	}

	if report.MissedDays > 0 {
		fmt.Printf("⚠️  You missed %d day(s) of daily quests: -%d XP\n", report.MissedDays, report.Penalty)
		if report.LevelsLost > 0 {
			fmt.Printf("💀 Level decreased by %d — now level %d\n", report.LevelsLost, report.Level)
		}
		fmt.Println()
	}
}

// handleOnboard implements the 'onboard' command
func handleOnboard(args []string) {
	st := openStore()
	defer st.Close()

	existing, _ := st.LoadProfile()
	if existing != nil {
		fmt.Printf("A profile for %s already exists (level %d).\n", existing.Name, existing.Level)
		if !confirm("Overwrite it and start over?") {
			fmt.Println("Cancelled.")
			return
		}
	}

	fmt.Println("═══════════════════════════════════════")
	fmt.Println("  HUNTER REGISTRATION")
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	name := promptString(reader, "Name", "Hunter")

	sex := SexMale
	if strings.HasPrefix(strings.ToLower(promptString(reader, "Sex (male/female)", "male")), "f") {
		sex = SexFemale
	}

	weight := promptFloat(reader, "Weight (kg)", 70)
	height := promptFloat(reader, "Height (cm)", 175)

	goal, err := ParseGoal(promptString(reader, "Goal (muscle/weight_loss/speed_strength)", "muscle"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("📋 Fitness assessment — enter your max reps per exercise:")
	assessment := make(map[string]int, len(AssessmentExercises))
	catalog := loadCatalogOrExit()
	for _, key := range AssessmentExercises {
		def, _ := catalog.Lookup(key)
		assessment[key] = promptInt(reader, "  "+def.Title, 0)
	}

	profile := NewProfile(name, sex, weight, height, goal, assessment, time.Now().Format(time.RFC3339))
	if err := st.SaveProfile(profile); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("⚔️  Welcome, %s. You begin at level %d.\n", profile.Name, profile.Level)
	fmt.Println("Run 'arise quest' to see today's daily quest.")
}

// handleStatus implements the 'status' command (also the default)
func handleStatus(args []string) {
	st := openStore()
	defer st.Close()

	profile := loadProfileOrExit(st)
	runStartupPenalty(st, profile)

	required := ExperienceRequired(profile.Level)

	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  %s — LEVEL %d\n", strings.ToUpper(profile.Name), profile.Level)
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()
	fmt.Printf("⚡ XP:        %d / %d %s\n", profile.Experience, required, xpBar(profile.Experience, required))
	fmt.Printf("🎯 Goal:      %s\n", profile.Goal)
	fmt.Printf("🏋️  Workouts:  %d completed\n", profile.TotalWorkoutsCompleted)
	if profile.LastDailyQuestDate != "" {
		fmt.Printf("📅 Last daily quest: %s\n", profile.LastDailyQuestDate)
	}
	fmt.Println()
}

func xpBar(current, required int) string {
	const width = 20
	if required <= 0 {
		required = 1
	}
	filled := current * width / required
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// handleQuest implements the 'quest' command
func handleQuest(args []string) {
	st := openStore()
	defer st.Close()

	profile := loadProfileOrExit(st)
	runStartupPenalty(st, profile)

	programs, err := st.LoadPrograms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading programs: %v\n", err)
		os.Exit(1)
	}

	quest := GenerateDailyQuest(profile, programs, time.Now())
	displayQuest(quest, loadCatalogOrExit())

	today := time.Now().Format(dateOnly)
	if profile.LastDailyQuestDate == today {
		fmt.Println("✅ Already completed today. Come back tomorrow.")
	} else {
		fmt.Println("When done, run:")
		fmt.Println("  arise done")
	}
	fmt.Println()
}

func displayQuest(quest Quest, catalog *Catalog) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  %s\n", quest.Title)
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()
	fmt.Printf("🏅 Rank %d  |  Reward: %d XP\n", quest.Rank, quest.ExperienceReward)
	fmt.Println()

	for _, key := range sortedTargetKeys(quest.Targets) {
		def := catalog.Resolve(quest, key)
		fmt.Printf("   %-16s %s\n", def.Title, def.FormatTarget(quest.Targets[key]))
	}
	fmt.Println()
}

// handleDone implements the 'done' command
func handleDone(args []string) {
	st := openStore()
	defer st.Close()

	profile := loadProfileOrExit(st)
	runStartupPenalty(st, profile)

	today := time.Now().Format(dateOnly)
	if profile.LastDailyQuestDate == today {
		fmt.Println("✅ Today's daily quest is already completed.")
		return
	}

	programs, err := st.LoadPrograms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading programs: %v\n", err)
		os.Exit(1)
	}

	quest := GenerateDailyQuest(profile, programs, time.Now())
	catalog := loadCatalogOrExit()
	displayQuest(quest, catalog)

	reader := bufio.NewReader(os.Stdin)
	achieved := make(map[string]float64, len(quest.Targets))
	for _, key := range sortedTargetKeys(quest.Targets) {
		def := catalog.Resolve(quest, key)
		achieved[key] = promptFloat(reader, fmt.Sprintf("%s achieved (target %s)", def.Title, def.FormatTarget(quest.Targets[key])), quest.Targets[key])
	}

	minutes := promptInt(reader, "Elapsed time (minutes)", 30)

	result, err := ApplyQuestCompletion(st, profile, quest, achieved, minutes*60, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error recording completion: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("✅ Quest complete! +%d XP\n", result.ExperienceGained)
	if result.LeveledUp() {
		fmt.Printf("🎉 LEVEL UP! You are now level %d.\n", result.Level)
	}
	fmt.Printf("⚡ XP: %d / %d %s\n", result.Experience, ExperienceRequired(result.Level), xpBar(result.Experience, ExperienceRequired(result.Level)))
}

// handleProgram implements the 'program' command (add/list/remove)
func handleProgram(args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	st := openStore()
	defer st.Close()

	switch args[0] {
	case "add":
		programAdd(st)
	case "list":
		programList(st)
	case "remove", "rm":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: arise program remove <id>")
			os.Exit(1)
		}
		programRemove(st, args[1])
	default:
		fmt.Fprintf(os.Stderr, "Unknown program subcommand: %s (use: add, list, remove)\n", args[0])
		os.Exit(1)
	}
}

func programAdd(st *Store) {
	reader := bufio.NewReader(os.Stdin)
	catalog := loadCatalogOrExit()

	fmt.Println("═══════════════════════════════════════")
	fmt.Println("  NEW CUSTOM PROGRAM")
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()

	name := promptString(reader, "Program name", "My Program")

	days := strings.Split(promptString(reader, "Weekdays (e.g. mon,wed,fri)", "mon"), ",")
	for i := range days {
		days[i] = strings.ToLower(strings.TrimSpace(days[i]))
	}

	fmt.Println("Exercises as key=target pairs, comma-separated (e.g. pushups=30,plank=60):")
	pairs := strings.Split(promptString(reader, "Exercises", ""), ",")

	targets := make(map[string]float64)
	custom := make(map[string]CustomExercise)
	for _, pair := range pairs {
		key, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || key == "" {
			continue
		}
		count, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			count = 0
		}
		targets[key] = count

		if _, known := catalog.Lookup(key); !known {
			title := promptString(reader, fmt.Sprintf("Display name for new exercise '%s'", key), key)
			unit := ExerciseUnit(promptString(reader, "Unit (reps/seconds/kilometers)", "reps"))
			custom[key] = CustomExercise{Name: title, Unit: unit}
		}
	}

	if len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "No exercises given; program not saved.")
		os.Exit(1)
	}

	program := NewCustomProgram(name, targets, custom, days, time.Now())

	programs, err := st.LoadPrograms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading programs: %v\n", err)
		os.Exit(1)
	}
	programs = append(programs, program)
	if err := st.SavePrograms(programs); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving programs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Saved program '%s' (%s) — id %s\n", program.Name, strings.Join(program.Weekdays, ","), shortID(program.ID))
}

func programList(st *Store) {
	programs, err := st.LoadPrograms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading programs: %v\n", err)
		os.Exit(1)
	}

	if len(programs) == 0 {
		fmt.Println("No custom programs. Add one with 'arise program add'.")
		return
	}

	fmt.Println("═══════════════════════════════════════")
	fmt.Println("  CUSTOM PROGRAMS")
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()
	for _, p := range programs {
		fmt.Printf("📋 %s  [%s]  (%s)\n", p.Name, shortID(p.ID), strings.Join(p.Weekdays, ","))
		for key, target := range p.Targets {
			fmt.Printf("     %s: %g\n", key, target)
		}
	}
	fmt.Println()
}

func programRemove(st *Store, id string) {
	programs, err := st.LoadPrograms()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading programs: %v\n", err)
		os.Exit(1)
	}

	for i, p := range programs {
		if p.ID == id || shortID(p.ID) == id {
			programs = append(programs[:i], programs[i+1:]...)
			if err := st.SavePrograms(programs); err != nil {
				fmt.Fprintf(os.Stderr, "Error saving programs: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("🗑️  Removed program '%s'\n", p.Name)
			return
		}
	}

	fmt.Fprintf(os.Stderr, "Program '%s' not found\n", id)
	os.Exit(1)
}

// handleReport implements the 'report' command
func handleReport(args []string) {
	period := "day"
	if len(args) > 0 {
		period = args[0]
	}

	st := openStore()
	defer st.Close()

	entries, err := LoadHistory(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading history: %v\n", err)
		os.Exit(1)
	}

	var cutoff time.Time
	var title string
	switch period {
	case "day", "today":
		cutoff = StartOfDay(time.Now())
		title = "TODAY'S TRAINING"
	case "week":
		cutoff = StartOfDay(time.Now()).AddDate(0, 0, -6)
		title = "LAST 7 DAYS"
	case "all":
		title = "ALL TRAINING"
	default:
		fmt.Fprintf(os.Stderr, "Unknown report period: %s (use: day, week, all)\n", period)
		os.Exit(1)
	}

	stats := StatsSince(entries, cutoff)

	fmt.Println("═══════════════════════════════════════")
	fmt.Printf("  %s\n", title)
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()
	fmt.Printf("📊 Summary:\n")
	fmt.Printf("   Workouts:   %d\n", stats.Workouts)
	fmt.Printf("   XP gained:  %d\n", stats.ExperienceGained)
	fmt.Printf("   Duration:   %d minutes\n", stats.DurationSec/60)
	fmt.Println()

	for _, e := range stats.Entries {
		fmt.Printf("   %s  %s  (+%d XP, %dm)\n",
			e.CompletedAt.Format("Jan 02 15:04"),
			e.Quest.Title,
			e.ExperienceGained,
			e.DurationSec/60)
	}
	if len(stats.Entries) > 0 {
		fmt.Println()
	}
}

// handleMusic implements the 'music' command (list/add/remove/fav)
func handleMusic(args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	st := openStore()
	defer st.Close()

	playlist, err := LoadPlaylist(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading playlist: %v\n", err)
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		fmt.Println("═══════════════════════════════════════")
		fmt.Println("  PLAYLIST")
		fmt.Println("═══════════════════════════════════════")
		fmt.Println()
		for i, t := range playlist.Tracks() {
			marker := "  "
			if t.Favorite {
				marker = "❤️ "
			}
			kind := ""
			if t.Bundled {
				kind = " (bundled)"
			}
			fmt.Printf("%2d. %s%s%s  [%s]\n", i+1, marker, t.Title, kind, shortID(t.ID))
		}
		fmt.Println()

	case "add":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: arise music add <file> [title]")
			os.Exit(1)
		}
		path := args[1]
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(os.Stderr, "Cannot read %s: %v\n", path, err)
			os.Exit(1)
		}
		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if len(args) > 2 {
			title = strings.Join(args[2:], " ")
		}
		track := playlist.Add(title, path)
		if err := playlist.Save(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving playlist: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("🎵 Added '%s' [%s]\n", track.Title, shortID(track.ID))

	case "remove", "rm":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: arise music remove <id>")
			os.Exit(1)
		}
		id := resolveTrackID(playlist, args[1])
		if id == DefaultTrackID {
			fmt.Println("🔒 The default soundtrack cannot be removed.")
			return
		}
		if !playlist.Remove(id) {
			fmt.Fprintf(os.Stderr, "Track '%s' not found\n", args[1])
			os.Exit(1)
		}
		if err := playlist.Save(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving playlist: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("🗑️  Track removed")

	case "fav":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: arise music fav <id>")
			os.Exit(1)
		}
		id := resolveTrackID(playlist, args[1])
		if !playlist.ToggleFavorite(id) {
			fmt.Fprintf(os.Stderr, "Track '%s' not found\n", args[1])
			os.Exit(1)
		}
		if err := playlist.Save(st); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving playlist: %v\n", err)
			os.Exit(1)
		}
		track, _ := playlist.Find(id)
		if track.Favorite {
			fmt.Printf("❤️  '%s' marked as favorite\n", track.Title)
		} else {
			fmt.Printf("🤍 '%s' unmarked\n", track.Title)
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown music subcommand: %s (use: list, add, remove, fav)\n", args[0])
		os.Exit(1)
	}
}

// resolveTrackID accepts a full id, a short id prefix, or a 1-based index
func resolveTrackID(playlist *Playlist, arg string) string {
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= playlist.Len() {
		return playlist.Tracks()[n-1].ID
	}
	for _, t := range playlist.Tracks() {
		if t.ID == arg || shortID(t.ID) == arg {
			return t.ID
		}
	}
	return arg
}

// handlePlay implements the 'play' interactive playback session
func handlePlay(args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var modeName string
	var trackSecs int
	fs.StringVar(&modeName, "mode", "loop-all", "Playback mode (loop-all, play-all, loop-one, play-one)")
	fs.IntVar(&trackSecs, "track-secs", 180, "Simulated track length in seconds")
	fs.Parse(args)

	mode, err := ParsePlaybackMode(modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	st := openStore()
	defer st.Close()

	playlist, err := LoadPlaylist(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading playlist: %v\n", err)
		os.Exit(1)
	}

	player := NewPlayer(newClockProvider(time.Duration(trackSecs)*time.Second), playlist)
	player.Notify = func(msg string) { fmt.Printf("⚠️  %s\n", msg) }
	player.SetMode(mode)
	defer player.Stop()

	fmt.Println("═══════════════════════════════════════")
	fmt.Println("  PLAYBACK SESSION")
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()
	fmt.Println("Commands: p=play/pause  n=next  b=prev  s SEC=seek  m MODE=mode  x=mute  q=quit")
	fmt.Println()

	if err := player.TogglePlayPause(); err == nil {
		printPlaybackState(player)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			printPlaybackState(player)
			continue
		}

		switch fields[0] {
		case "q", "quit":
			return
		case "p":
			player.TogglePlayPause()
		case "n":
			player.SkipNext()
		case "b":
			player.SkipPrev()
		case "s":
			if len(fields) > 1 {
				sec, err := strconv.ParseFloat(fields[1], 64)
				if err != nil {
					sec = 0
				}
				player.Seek(sec)
			}
		case "m":
			if len(fields) > 1 {
				m, err := ParsePlaybackMode(fields[1])
				if err != nil {
					fmt.Println(err)
					continue
				}
				player.SetMode(m)
			}
		case "x":
			player.SetMuted(!player.State().Muted)
		default:
			fmt.Printf("Unknown command: %s\n", fields[0])
			continue
		}
		printPlaybackState(player)
	}
}

func printPlaybackState(player *Player) {
	state := player.State()

	status := "⏹"
	switch {
	case state.IsLoading:
		status = "⏳"
	case state.IsPlaying:
		status = "▶️"
	case state.Track != nil:
		status = "⏸"
	}

	title := "(nothing)"
	if state.Track != nil {
		title = state.Track.Title
	}

	mute := ""
	if state.Muted {
		mute = " 🔇"
	}

	fmt.Printf("%s %s  %.0f/%.0fs  [%s]%s\n", status, title, state.PositionSec, state.DurationSec, state.Mode, mute)
}

// handleConfig implements the 'config' command
func handleConfig(args []string) {
	fmt.Println("═══════════════════════════════════════")
	fmt.Println("  ARISE CONFIGURATION")
	fmt.Println("═══════════════════════════════════════")
	fmt.Println()
	fmt.Printf("Data directory:      %s\n", appConfig.DataDir)
	fmt.Printf("Store:               %s\n", appConfig.DBPath())
	fmt.Printf("Exercise packs dir:  %s\n", appConfig.ExercisesDir)
	fmt.Println()

	catalog, err := LoadCatalog(appConfig.ExercisesDir)
	if err != nil {
		fmt.Printf("⚠️  Error loading exercise packs: %v\n", err)
		return
	}
	fmt.Printf("✅ %d exercises known\n", len(catalog.byKey))
	fmt.Println()
	fmt.Println("Override paths with:")
	fmt.Println("  export ARISE_DATA_DIR=/path/to/data")
	fmt.Println("  export ARISE_EXERCISES_DIR=/path/to/packs")
	fmt.Println()
}

func loadCatalogOrExit() *Catalog {
	catalog, err := LoadCatalog(appConfig.ExercisesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading exercise packs: %v\n", err)
		os.Exit(1)
	}
	return catalog
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func confirm(question string) bool {
	fmt.Printf("%s (yes/no): ", question)
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "yes" || input == "y"
}

func promptString(reader *bufio.Reader, label, fallback string) string {
	fmt.Printf("%s (default: %s): ", label, fallback)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	return input
}

// promptInt reads an integer; malformed input coerces to 0 rather than
// aborting, empty input takes the default
func promptInt(reader *bufio.Reader, label string, fallback int) int {
	fmt.Printf("%s (default: %d): ", label, fallback)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(input)
	if err != nil {
		return 0
	}
	return parsed
}

func promptFloat(reader *bufio.Reader, label string, fallback float64) float64 {
	fmt.Printf("%s (default: %g): ", label, fallback)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0
	}
	return parsed
}
