package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const version = "0.1.0"

func main() {
	// Pick up a local .env before config is read
	godotenv.Load()

	// No command defaults to the status dashboard
	if len(os.Args) < 2 {
		handleStatus(nil)
		return
	}

	command := os.Args[1]

	switch command {
	case "onboard":
		handleOnboard(os.Args[2:])
	case "status":
		handleStatus(os.Args[2:])
	case "quest":
		handleQuest(os.Args[2:])
	case "done":
		handleDone(os.Args[2:])
	case "program":
		handleProgram(os.Args[2:])
	case "report":
		handleReport(os.Args[2:])
	case "music":
		handleMusic(os.Args[2:])
	case "play":
		handlePlay(os.Args[2:])
	case "config":
		handleConfig(os.Args[2:])
	case "version", "--version", "-v":
		fmt.Printf("arise version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`arise - Level up by working out

USAGE:
    arise                      # Status dashboard (default)
    arise <command> [options]

COMMANDS:
    onboard             Register a hunter profile (fitness assessment)
    status              Show level, XP, and workout totals
    quest               Show today's daily quest
    done                Complete today's quest and gain XP
    program <sub>       Manage custom programs (add, list, remove)
    report [period]     Training report (day, week, all)
    music <sub>         Manage the playlist (list, add, remove, fav)
    play                Interactive playback session
    config              Show current configuration
    version             Show version information
    help                Show this help message

PLAY OPTIONS:
    --mode MODE         Playback mode: loop-all, play-all, loop-one, play-one
    --track-secs N      Simulated track length in seconds

QUESTS:
    The daily quest scales with your level and goal. A custom program
    scheduled for today's weekday replaces the generated quest. Skipping
    a day costs 100 XP per missed day, applied at startup — levels can
    drop, but never below level 1.

EXAMPLES:
    arise onboard                         # Create your profile
    arise quest                           # See today's assignment
    arise done                            # Log it, gain XP
    arise program add                     # Author a weekday program
    arise music add ~/music/theme.mp3     # Extend the playlist
    arise play --mode play-all            # Listen in order, stop at end
    arise report week                     # Last 7 days of training
`)
}

// Command handlers are implemented in commands.go
