package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
	"github.com/Itterum/ts-app/internal/core/ports/driving"
	"github.com/Itterum/ts-app/internal/core/services"
)

const shellPrompt = "ts-app> "

const shellHelp = `Commands:
  create <kind> key=value...        create an entity (id generated unless given)
  read <kind> <id>                  show an entity
  update <kind> <id> key=value...   change fields of an entity
  delete <kind> <id>                remove an entity
  list <kind>                       show all entities of a kind
  check <id>                        verify a user's password
  help                              show this help
  exit                              leave the shell

Kinds: user, car. Values are read as JSON when valid, otherwise as text.`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive session",
	Long: `Reads commands line by line from standard input. Entities live for
the length of the session.

` + shellHelp,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

var (
	errUnknownKind    = errors.New("unknown kind")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("usage")
)

func runShell(cmd *cobra.Command, _ []string) error {
	if svc == nil {
		return errors.New("services not initialised")
	}

	in := cmd.InOrStdin()
	sess := newSession(svc, in, cmd.OutOrStdout(), isTerminal(in))
	scanner := sess.lines

	if sess.interactive {
		sess.println(headerStyle.Render("ts-app shell") + mutedStyle.Render(" ("+svc.Backend.Description()+", type help)"))
	}

	ctx := commandContext(cmd)
	for {
		if sess.interactive {
			fmt.Fprint(sess.out, shellPrompt)
		}
		if !scanner.Scan() {
			break
		}

		args, err := splitArgs(scanner.Text())
		if err != nil {
			sess.printError(err)
			continue
		}
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return nil
		}
		if err := sess.dispatch(ctx, args); err != nil {
			sess.printError(err)
		}
	}
	return scanner.Err()
}

// entityHandler runs shell commands against one kind of entity.
type entityHandler interface {
	create(ctx context.Context, fields domain.Patch) (domain.Confirmation, error)
	read(ctx context.Context, id string) (string, bool, error)
	update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error)
	remove(ctx context.Context, id string) (domain.Confirmation, error)
	list(ctx context.Context) ([]string, error)
}

// gatewayHandler adapts an EntityGateway to entityHandler.
type gatewayHandler[T domain.Entity] struct {
	gateway driving.EntityGateway[T]
	ids     driven.IDGenerator
	format  func(T) string
}

func (h *gatewayHandler[T]) create(ctx context.Context, fields domain.Patch) (domain.Confirmation, error) {
	if !fields.Has("id") && h.ids != nil {
		fields["id"] = h.ids.Generate()
	}
	entity, err := decodeEntity[T](fields)
	if err != nil {
		return domain.Confirmation{}, err
	}
	return h.gateway.Create(ctx, entity)
}

func (h *gatewayHandler[T]) read(ctx context.Context, id string) (string, bool, error) {
	entity, found, err := h.gateway.Read(ctx, id)
	if err != nil || !found {
		return "", found, err
	}
	return h.format(entity), true, nil
}

func (h *gatewayHandler[T]) update(ctx context.Context, id string, patch domain.Patch) (domain.Confirmation, error) {
	return h.gateway.Update(ctx, id, patch)
}

func (h *gatewayHandler[T]) remove(ctx context.Context, id string) (domain.Confirmation, error) {
	return h.gateway.Delete(ctx, id)
}

func (h *gatewayHandler[T]) list(ctx context.Context) ([]string, error) {
	entities, err := h.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(entities))
	for _, e := range entities {
		lines = append(lines, h.format(e))
	}
	return lines, nil
}

// decodeEntity builds a T from JSON-keyed fields.
func decodeEntity[T domain.Entity](fields domain.Patch) (T, error) {
	var entity T
	raw, err := json.Marshal(fields)
	if err != nil {
		return entity, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
	}
	if err := json.Unmarshal(raw, &entity); err != nil {
		return entity, fmt.Errorf("%w: %v", domain.ErrInvalidPatch, err)
	}
	return entity, nil
}

type session struct {
	svc         *Services
	in          io.Reader
	out         io.Writer
	lines       *bufio.Scanner
	interactive bool
	handlers    map[string]entityHandler
}

func newSession(s *Services, in io.Reader, out io.Writer, interactive bool) *session {
	return &session{
		svc:         s,
		in:          in,
		lines:       bufio.NewScanner(in),
		out:         out,
		interactive: interactive,
		handlers: map[string]entityHandler{
			kindUser: &gatewayHandler[domain.User]{gateway: s.Users, ids: s.IDGenerator, format: formatUser},
			kindCar:  &gatewayHandler[domain.Car]{gateway: s.Cars, ids: s.IDGenerator, format: formatCar},
		},
	}
}

func (s *session) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "help":
		s.println(shellHelp)
		return nil
	case "check":
		if len(args) != 2 {
			return fmt.Errorf("%w: check <id>", errUsage)
		}
		return s.check(ctx, args[1])
	case "create", "read", "update", "delete", "list":
	default:
		return fmt.Errorf("%w %q, type help", errUnknownCommand, args[0])
	}

	if len(args) < 2 {
		return fmt.Errorf("%w: %s <kind> ...", errUsage, args[0])
	}
	handler, err := s.handler(args[1])
	if err != nil {
		return err
	}
	rest := args[2:]

	switch args[0] {
	case "create":
		fields, err := parseFields(rest)
		if err != nil {
			return err
		}
		return s.confirm(handler.create(ctx, fields))

	case "read":
		if len(rest) != 1 {
			return fmt.Errorf("%w: read <kind> <id>", errUsage)
		}
		line, found, err := handler.read(ctx, rest[0])
		if err != nil {
			return err
		}
		if !found {
			s.println(mutedStyle.Render("No " + args[1] + " with id " + rest[0] + "."))
			return nil
		}
		s.println(line)
		return nil

	case "update":
		if len(rest) < 2 {
			return fmt.Errorf("%w: update <kind> <id> key=value...", errUsage)
		}
		patch, err := parseFields(rest[1:])
		if err != nil {
			return err
		}
		return s.confirm(handler.update(ctx, rest[0], patch))

	case "delete":
		if len(rest) != 1 {
			return fmt.Errorf("%w: delete <kind> <id>", errUsage)
		}
		return s.confirm(handler.remove(ctx, rest[0]))

	default: // list
		lines, err := handler.list(ctx)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			s.println(mutedStyle.Render("No " + args[1] + " entities."))
			return nil
		}
		for _, line := range lines {
			s.println(line)
		}
		return nil
	}
}

func (s *session) handler(kind string) (entityHandler, error) {
	h, ok := s.handlers[kind]
	if !ok {
		kinds := make([]string, 0, len(s.handlers))
		for k := range s.handlers {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		return nil, fmt.Errorf("%w %q (want %s)", errUnknownKind, kind, strings.Join(kinds, " or "))
	}
	return h, nil
}

// check asks for a password and compares it with the stored hash.
func (s *session) check(ctx context.Context, id string) error {
	user, found, err := s.svc.Users.Read(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		s.println(mutedStyle.Render("No user with id " + id + "."))
		return nil
	}

	fmt.Fprint(s.out, "Password: ")
	plain, err := s.readSecret()
	fmt.Fprintln(s.out)
	if err != nil {
		return err
	}

	if services.CheckPassword(user, plain) {
		s.println(successStyle.Render("Password matches."))
	} else {
		s.println(errorStyle.Render("Password does not match."))
	}
	return nil
}

// readSecret reads a line without echo on a terminal, or the next input
// line otherwise.
func (s *session) readSecret() (string, error) {
	if f, ok := s.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return string(secret), nil
		}
	}
	if !s.lines.Scan() {
		if err := s.lines.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(s.lines.Text()), nil
}

func (s *session) confirm(conf domain.Confirmation, err error) error {
	if err != nil {
		return err
	}
	s.println(successStyle.Render(conf.String()))
	return nil
}

func (s *session) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *session) printError(err error) {
	s.println(errorStyle.Render("Error: " + err.Error()))
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// parseFields turns key=value arguments into a patch. The id is always
// text; other values are JSON when they parse as such.
func parseFields(args []string) (domain.Patch, error) {
	fields := make(domain.Patch, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", errUsage, arg)
		}
		fields[key] = parseValue(key, value)
	}
	return fields, nil
}

func parseValue(key, value string) any {
	if key == "id" {
		return value
	}
	var parsed any
	if err := json.Unmarshal([]byte(value), &parsed); err == nil {
		return parsed
	}
	return value
}

// splitArgs splits a line on whitespace, keeping quoted runs together.
// Single quotes are literal; double quotes allow \" and \\ escapes.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quote == '"' && r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 || escaped {
		return nil, errors.New("unterminated quote")
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
