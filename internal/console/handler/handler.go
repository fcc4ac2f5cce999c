package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"tasker/internal/console/payload"
	"tasker/internal/core"
	"tasker/internal/repository"

	"go.uber.org/zap"
)

// errSessionEnded tells the task loop to drop back to the main menu.
var errSessionEnded = errors.New("session ended")

// ConsoleHandler drives the interactive menus over a line based reader and writer.
type ConsoleHandler struct {
	logs        *zap.SugaredLogger
	tracker     TaskService
	in          *bufio.Reader
	out         io.Writer
	clearScreen bool
}

func NewConsoleHandler(logger *zap.SugaredLogger, taskService TaskService, in io.Reader, out io.Writer, clearScreen bool) *ConsoleHandler {
	return &ConsoleHandler{
		logs:        logger,
		tracker:     taskService,
		in:          bufio.NewReader(in),
		out:         out,
		clearScreen: clearScreen,
	}
}

// Run shows the main menu until the user exits or the input ends.
func (h *ConsoleHandler) Run(ctx context.Context) error {
	h.clear()
	h.println(welcomeMsg)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.println(mainMenu)
		choice, err := h.prompt(choicePrompt)
		if err != nil {
			return inputDone(err)
		}

		var session core.Session
		switch strings.TrimSpace(choice) {
		case "1":
			session, err = h.register(ctx)
		case "2":
			session, err = h.login(ctx)
		case "3":
			h.println(exitingMsg)
			return nil
		default:
			h.println(invalidChoiceMsg)
			continue
		}
		if err != nil {
			return inputDone(err)
		}
		if session.Token == "" {
			continue
		}

		if err := h.taskLoop(ctx, session); err != nil {
			return inputDone(err)
		}
	}
}

func (h *ConsoleHandler) register(ctx context.Context) (core.Session, error) {
	for {
		username, err := h.prompt(usernamePrompt)
		if err != nil {
			return core.Session{}, err
		}

		if err := h.tracker.CheckUsername(ctx, username); err != nil {
			if h.reportRejected(err, username) {
				continue
			}
			h.logs.Errorw("registration failed", "error", err, "username", username)
			h.printf("Error registering user: %v\n", err)
			return core.Session{}, nil
		}

		password, err := h.prompt(passwordPrompt)
		if err != nil {
			return core.Session{}, err
		}

		req := payload.AuthRequest{Username: username, Password: password}
		if err := req.Validate(); err != nil {
			h.println(emptyPasswordMsg)
			continue
		}

		session, err := h.tracker.Register(ctx, req.ToMessage())
		if err == nil {
			h.println(registeredMsg)
			return session, nil
		}
		if h.reportRejected(err, username) {
			continue
		}

		h.logs.Errorw("registration failed", "error", err, "username", username)
		h.printf("Error registering user: %v\n", err)
		return core.Session{}, nil
	}
}

// reportRejected prints why a registration input was refused. It returns
// false for errors the user cannot fix by typing something else.
func (h *ConsoleHandler) reportRejected(err error, username string) bool {
	switch {
	case errors.Is(err, core.ErrDuplicateUser):
		h.println(duplicateUserMsg)
	case errors.Is(err, core.ErrInvalidUsername):
		h.println(invalidUsernameMsg)
	case errors.Is(err, core.ErrEmptyField):
		if strings.TrimSpace(username) == "" {
			h.println(emptyUsernameMsg)
		} else {
			h.println(emptyPasswordMsg)
		}
	default:
		return false
	}
	return true
}

func (h *ConsoleHandler) login(ctx context.Context) (core.Session, error) {
	username, err := h.prompt(usernamePrompt)
	if err != nil {
		return core.Session{}, err
	}
	password, err := h.prompt(passwordPrompt)
	if err != nil {
		return core.Session{}, err
	}

	req := payload.AuthRequest{Username: username, Password: password}
	if err := req.Validate(); err != nil {
		h.println(invalidCredsMsg)
		return core.Session{}, nil
	}

	session, err := h.tracker.Authenticate(ctx, req.ToMessage())
	switch {
	case err == nil:
		h.println(loggedInMsg)
		return session, nil
	case errors.Is(err, core.ErrStoreNotFound):
		h.println(noUsersMsg)
	case errors.Is(err, core.ErrInvalidCredentials):
		h.println(invalidCredsMsg)
	default:
		h.logs.Errorw("login failed", "error", err, "username", username)
		h.printf("Error logging in: %v\n", err)
	}

	return core.Session{}, nil
}

func (h *ConsoleHandler) taskLoop(ctx context.Context, session core.Session) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.clear()
		h.println(taskMenu)
		h.printf("Logged in as: %s\n", session.Username)

		choice, err := h.prompt(choicePrompt)
		if err != nil {
			return err
		}

		switch strings.TrimSpace(choice) {
		case "a":
			err = h.addTask(ctx, session)
		case "b":
			err = h.viewTasks(ctx, session)
		case "c":
			err = h.completeTask(ctx, session)
		case "d":
			err = h.deleteTask(ctx, session)
		case "e":
			h.println(loggingOutMsg)
			return nil
		default:
			h.println(invalidChoiceMsg)
		}

		if errors.Is(err, errSessionEnded) {
			h.println(sessionExpiredMsg)
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := h.prompt(continuePrompt); err != nil {
			return err
		}
	}
}

func (h *ConsoleHandler) addTask(ctx context.Context, session core.Session) error {
	description, err := h.prompt(descriptionPrompt)
	if err != nil {
		return err
	}
	if strings.TrimSpace(description) == "" {
		h.println(emptyDescriptionMsg)
		return nil
	}

	var req payload.TaskRequest
	for {
		date, err := h.prompt(datePrompt)
		if err != nil {
			return err
		}

		req = payload.TaskRequest{Description: description, Date: strings.TrimSpace(date)}
		if err := req.Validate(); err != nil {
			h.println(invalidDateMsg)
			continue
		}
		break
	}

	task, err := h.tracker.AddTask(ctx, session.Token, req.ToMessage())
	switch {
	case err == nil:
		h.printf("%s (ID: %s)\n", taskAddedMsg, task.ID)
	case errors.Is(err, core.ErrSessionExpired):
		return errSessionEnded
	case errors.Is(err, core.ErrEmptyField):
		h.println(emptyDescriptionMsg)
	case errors.Is(err, core.ErrInvalidDate):
		h.println(invalidDateMsg)
	default:
		h.logs.Errorw("add task failed", "error", err, "username", session.Username)
		h.printf("Error adding task: %v\n", err)
	}

	return nil
}

func (h *ConsoleHandler) viewTasks(ctx context.Context, session core.Session) error {
	list, err := h.tracker.ListTasks(ctx, session.Token)
	switch {
	case err == nil:
	case errors.Is(err, core.ErrSessionExpired):
		return errSessionEnded
	case errors.Is(err, core.ErrNotFound):
		h.println(noTasksMsg)
		return nil
	default:
		h.logs.Errorw("view tasks failed", "error", err, "username", session.Username)
		h.printf("Error viewing tasks: %v\n", err)
		return nil
	}

	if len(list.Tasks) == 0 && len(list.Skipped) == 0 {
		h.println(noTasksMsg)
		return nil
	}

	h.println(tasksHeader)
	for _, task := range list.Tasks {
		h.printf("Task ID: %s, Description: %s, Status: %s, Date: %s\n",
			task.ID, task.Description, task.Status, task.Date.Format(repository.DateLayout))
	}
	for _, skipped := range list.Skipped {
		h.printf("Skipping malformed task on line %d: %s\n", skipped.Line, skipped.Raw)
	}

	return nil
}

func (h *ConsoleHandler) completeTask(ctx context.Context, session core.Session) error {
	req, ok, err := h.promptTaskID(completePrompt)
	if err != nil || !ok {
		return err
	}

	outcome, err := h.tracker.CompleteTask(ctx, session.Token, req.ID())
	if err != nil {
		if errors.Is(err, core.ErrSessionExpired) {
			return errSessionEnded
		}
		h.logs.Errorw("complete task failed", "error", err, "username", session.Username)
		h.printf("Error updating task status: %v\n", err)
		return nil
	}

	switch outcome {
	case core.OutcomeUpdated:
		h.println(taskUpdatedMsg)
	case core.OutcomeAlreadyDone:
		h.println(taskAlreadyDoneMsg)
	default:
		h.println(taskNotFoundMsg)
	}

	return nil
}

func (h *ConsoleHandler) deleteTask(ctx context.Context, session core.Session) error {
	req, ok, err := h.promptTaskID(deletePrompt)
	if err != nil || !ok {
		return err
	}

	outcome, err := h.tracker.DeleteTask(ctx, session.Token, req.ID())
	if err != nil {
		if errors.Is(err, core.ErrSessionExpired) {
			return errSessionEnded
		}
		h.logs.Errorw("delete task failed", "error", err, "username", session.Username)
		h.printf("Error deleting task: %v\n", err)
		return nil
	}

	if outcome == core.OutcomeDeleted {
		h.println(taskDeletedMsg)
	} else {
		h.println(taskNotFoundMsg)
	}

	return nil
}

func (h *ConsoleHandler) promptTaskID(text string) (payload.TaskIDRequest, bool, error) {
	taskID, err := h.prompt(text)
	if err != nil {
		return payload.TaskIDRequest{}, false, err
	}

	req := payload.TaskIDRequest{TaskID: taskID}
	if err := req.Validate(); err != nil {
		h.println(emptyTaskIDMsg)
		return payload.TaskIDRequest{}, false, nil
	}

	return req, true, nil
}

// prompt writes text and reads one line without its line terminator.
func (h *ConsoleHandler) prompt(text string) (string, error) {
	fmt.Fprint(h.out, text)

	line, err := h.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (h *ConsoleHandler) clear() {
	if h.clearScreen {
		fmt.Fprint(h.out, clearScreenSequence)
	}
}

func (h *ConsoleHandler) println(text string) {
	fmt.Fprintln(h.out, text)
}

func (h *ConsoleHandler) printf(format string, args ...any) {
	fmt.Fprintf(h.out, format, args...)
}

// inputDone treats the end of input as a normal exit.
func inputDone(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
