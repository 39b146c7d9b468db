package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/wndstack/internal/domain/entity"
)

// commandKind is an action typed at the session prompt.
type commandKind int

const (
	cmdOpen commandKind = iota
	cmdClose
	cmdBack
	cmdReset
	cmdSpawn
)

// command is a parsed prompt line.
type command struct {
	kind        commandKind
	window      entity.WindowID
	args        entity.Args
	clearFollow bool
	// name of the follow-layer object to spawn
	name string
}

// parseCommand parses one prompt line:
//
//	open <window> [key=value ...]
//	close <window>
//	back
//	reset [follow]
//	spawn <name>
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}

	verb, rest := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "open", "o":
		if len(rest) == 0 {
			return command{}, fmt.Errorf("usage: open <window> [key=value ...]")
		}
		args, err := parseArgs(rest[1:])
		if err != nil {
			return command{}, err
		}
		return command{kind: cmdOpen, window: entity.WindowID(rest[0]), args: args}, nil

	case "close", "c":
		if len(rest) != 1 {
			return command{}, fmt.Errorf("usage: close <window>")
		}
		return command{kind: cmdClose, window: entity.WindowID(rest[0])}, nil

	case "back", "root":
		return command{kind: cmdBack}, nil

	case "reset":
		switch {
		case len(rest) == 0:
			return command{kind: cmdReset}, nil
		case len(rest) == 1 && rest[0] == "follow":
			return command{kind: cmdReset, clearFollow: true}, nil
		}
		return command{}, fmt.Errorf("usage: reset [follow]")

	case "spawn":
		if len(rest) != 1 {
			return command{}, fmt.Errorf("usage: spawn <name>")
		}
		return command{kind: cmdSpawn, name: rest[0]}, nil
	}
	return command{}, fmt.Errorf("unknown command %q", fields[0])
}

// parseArgs turns key=value pairs into window arguments. Integers, floats and
// booleans are converted, everything else stays a string.
func parseArgs(pairs []string) (entity.Args, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	args := make(entity.Args, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid argument %q, expected key=value", p)
		}
		args[k] = parseValue(v)
	}
	return args, nil
}

func parseValue(v string) any {
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}

func (c command) String() string {
	switch c.kind {
	case cmdOpen:
		return "open " + string(c.window)
	case cmdClose:
		return "close " + string(c.window)
	case cmdBack:
		return "back to root"
	case cmdReset:
		if c.clearFollow {
			return "reset (follow cleared)"
		}
		return "reset"
	case cmdSpawn:
		return "spawn " + c.name
	default:
		return "unknown"
	}
}
