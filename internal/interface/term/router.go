package term

import "strings"

// ══════════════════════════════════════════════════════════════════════════════
// INPUT ROUTER
// Maps raw input lines to commands. Parsing only; every command is executed
// by the app loop so all state changes stay on one goroutine.
// ══════════════════════════════════════════════════════════════════════════════

// CommandKind enumerates the terminal commands.
type CommandKind int

const (
	// CmdNone is a blank line.
	CmdNone CommandKind = iota
	// CmdUnknown is an unrecognized command word.
	CmdUnknown
	// CmdLogin is "login <email> <password>".
	CmdLogin
	// CmdTab is "tab <name>".
	CmdTab
	// CmdFilter is "filter <all|low|medium|high>".
	CmdFilter
	// CmdTheme toggles the theme.
	CmdTheme
	// CmdLogout ends the session.
	CmdLogout
	// CmdDetails is "details <student-id>" (mentor only).
	CmdDetails
	// CmdRefresh refetches the active dashboard.
	CmdRefresh
	// CmdStatus probes data service reachability.
	CmdStatus
	// CmdHelp prints the command list.
	CmdHelp
	// CmdQuit exits the app.
	CmdQuit
)

// Command is one parsed input line.
type Command struct {
	Kind CommandKind
	Args []string
}

// ParseCommand splits an input line into a command and its arguments.
func ParseCommand(line string) Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Kind: CmdNone}
	}

	word := strings.ToLower(fields[0])
	args := fields[1:]

	switch word {
	case "login":
		return Command{Kind: CmdLogin, Args: args}
	case "tab":
		return Command{Kind: CmdTab, Args: args}
	case "filter":
		return Command{Kind: CmdFilter, Args: args}
	case "theme":
		return Command{Kind: CmdTheme}
	case "logout":
		return Command{Kind: CmdLogout}
	case "details":
		return Command{Kind: CmdDetails, Args: args}
	case "refresh":
		return Command{Kind: CmdRefresh}
	case "status":
		return Command{Kind: CmdStatus}
	case "help":
		return Command{Kind: CmdHelp}
	case "quit", "exit":
		return Command{Kind: CmdQuit}
	default:
		return Command{Kind: CmdUnknown, Args: fields}
	}
}
