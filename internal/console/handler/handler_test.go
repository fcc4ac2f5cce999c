package handler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tasker/internal/console/handler"
	"tasker/internal/console/handler/fake"
	"tasker/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ConsoleHandler", func() {
	var (
		fakeService *fake.TaskService
		ctx         context.Context
		input       []string
		clearScreen bool
		output      *bytes.Buffer
		runErr      error

		session core.Session
		fakeErr error
	)

	BeforeEach(func() {
		fakeService = new(fake.TaskService)
		ctx = context.Background()
		output = new(bytes.Buffer)
		input = nil
		clearScreen = false

		session = core.Session{Username: "alice", Token: "signed.token"}
		fakeService.AuthenticateReturns(session, nil)
		fakeService.RegisterReturns(session, nil)

		fakeErr = errors.New("fake error")
	})

	JustBeforeEach(func() {
		in := strings.NewReader(strings.Join(input, "\n") + "\n")
		consoleHandler := handler.NewConsoleHandler(zap.NewNop().Sugar(), fakeService, in, output, clearScreen)
		runErr = consoleHandler.Run(ctx)
	})

	When("the user exits from the main menu", func() {
		BeforeEach(func() {
			input = []string{"3"}
		})

		It("should greet and exit", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(output.String()).To(ContainSubstring("Welcome to the Task Manager!"))
			Expect(output.String()).To(ContainSubstring("1. Register"))
			Expect(output.String()).To(HaveSuffix("Exiting...\n"))
		})
	})

	When("the input ends", func() {
		BeforeEach(func() {
			input = []string{"9"}
		})

		It("should reject the choice and stop cleanly", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(output.String()).To(ContainSubstring("Invalid choice. Please try again."))
		})
	})

	When("the context is cancelled", func() {
		BeforeEach(func() {
			cancelled, cancel := context.WithCancel(context.Background())
			cancel()
			ctx = cancelled
			input = []string{"3"}
		})

		It("should return the context error", func() {
			Expect(runErr).To(MatchError(context.Canceled))
		})
	})

	Describe("registration", func() {
		When("the username is taken", func() {
			BeforeEach(func() {
				fakeService.CheckUsernameReturnsOnCall(0, core.ErrDuplicateUser)
				input = []string{"1", "alice", "alice2", "pw", "e", "3"}
			})

			It("should re-prompt for the username before asking for a password", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.CheckUsernameCallCount()).To(Equal(2))
				Expect(fakeService.RegisterCallCount()).To(Equal(1))

				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "alice2", Password: "pw"}))

				out := output.String()
				Expect(out).To(ContainSubstring("Enter username: Username already exists. Please choose a different one.\nEnter username: "))
				Expect(strings.Count(out, "Enter password: ")).To(Equal(1))
				Expect(out).To(ContainSubstring("User registered successfully."))
				Expect(out).To(ContainSubstring("Logged in as: alice"))
				Expect(out).To(ContainSubstring("Logging out..."))
			})
		})

		When("the username is taken by the time the password is entered", func() {
			BeforeEach(func() {
				fakeService.RegisterReturnsOnCall(0, core.Session{}, core.ErrDuplicateUser)
				input = []string{"1", "alice", "pw", "alice2", "pw", "e", "3"}
			})

			It("should start the registration over", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.RegisterCallCount()).To(Equal(2))
				Expect(output.String()).To(ContainSubstring("Username already exists. Please choose a different one."))
			})
		})

		When("the input is rejected", func() {
			BeforeEach(func() {
				fakeService.CheckUsernameReturnsOnCall(0, fmt.Errorf("username: %w", core.ErrEmptyField))
				fakeService.CheckUsernameReturnsOnCall(1, core.ErrInvalidUsername)
				input = []string{"1", "", "a:b", "bob", "", "bob", "pw", "e", "3"}
			})

			It("should name the offending field and re-prompt", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.CheckUsernameCallCount()).To(Equal(4))
				Expect(fakeService.RegisterCallCount()).To(Equal(1))

				_, msg := fakeService.RegisterArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "bob", Password: "pw"}))

				out := output.String()
				Expect(out).To(ContainSubstring("Username cannot be empty."))
				Expect(out).To(ContainSubstring("Username cannot contain"))
				Expect(out).To(ContainSubstring("Password cannot be empty."))
			})
		})

		When("the username check fails", func() {
			BeforeEach(func() {
				fakeService.CheckUsernameReturns(fakeErr)
				input = []string{"1", "alice", "3"}
			})

			It("should report the error without asking for a password", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.RegisterCallCount()).To(BeZero())
				Expect(output.String()).To(ContainSubstring("Error registering user: fake error"))
				Expect(output.String()).NotTo(ContainSubstring("Enter password: "))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeService.RegisterReturns(core.Session{}, fakeErr)
				input = []string{"1", "alice", "pw", "3"}
			})

			It("should report the error and return to the menu", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.RegisterCallCount()).To(Equal(1))
				Expect(output.String()).To(ContainSubstring("Error registering user: fake error"))
				Expect(output.String()).To(HaveSuffix("Exiting...\n"))
			})
		})
	})

	Describe("login", func() {
		When("nobody has registered", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, core.ErrStoreNotFound)
				input = []string{"2", "alice", "pw", "3"}
			})

			It("should ask to register first", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(output.String()).To(ContainSubstring("No users registered yet. Please register first."))
				Expect(output.String()).NotTo(ContainSubstring("Logged in as"))
			})
		})

		When("a field is empty", func() {
			BeforeEach(func() {
				input = []string{"2", "alice", "", "3"}
			})

			It("should not ask the tracker", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.AuthenticateCallCount()).To(BeZero())
				Expect(output.String()).To(ContainSubstring("Invalid credentials. Please try again."))
			})
		})

		When("the credentials are wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns(core.Session{}, core.ErrInvalidCredentials)
				input = []string{"2", "alice", "nope", "3"}
			})

			It("should reject the login", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(output.String()).To(ContainSubstring("Invalid credentials. Please try again."))
				Expect(output.String()).NotTo(ContainSubstring("Logged in as"))
			})
		})
	})

	Describe("task menu", func() {
		login := func(lines ...string) []string {
			return append([]string{"2", "alice", "pw"}, lines...)
		}

		When("a task is added", func() {
			BeforeEach(func() {
				fakeService.AddTaskReturns(core.Task{ID: "task-1"}, nil)
				input = login("a", "Buy milk", "2024-13-01", "2024-01-02", "", "e", "3")
			})

			It("should re-prompt for an invalid date and add the task", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.AddTaskCallCount()).To(Equal(1))

				_, token, msg := fakeService.AddTaskArgsForCall(0)
				Expect(token).To(Equal("signed.token"))
				Expect(msg).To(Equal(core.TaskMessage{Description: "Buy milk", Date: "2024-01-02"}))

				out := output.String()
				Expect(out).To(ContainSubstring("Invalid date format. Please use YYYY-MM-DD."))
				Expect(out).To(ContainSubstring("Task added successfully. (ID: task-1)"))
				Expect(out).To(ContainSubstring("Press Enter to continue..."))
			})
		})

		When("the description is empty", func() {
			BeforeEach(func() {
				input = login("a", "  ", "", "e", "3")
			})

			It("should not add a task", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.AddTaskCallCount()).To(BeZero())
				Expect(output.String()).To(ContainSubstring("Task description cannot be empty. Task not added."))
			})
		})

		When("tasks are listed", func() {
			BeforeEach(func() {
				fakeService.ListTasksReturns(core.TaskList{
					Tasks: []core.Task{{
						ID:          "task-1",
						Description: "Buy milk",
						Status:      core.StatusPending,
						Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
					}},
					Skipped: []core.SkippedTask{{Line: 2, Raw: "garbage", Err: fakeErr}},
				}, nil)
				input = login("b", "", "e", "3")
			})

			It("should print every task and warn about unreadable lines", func() {
				Expect(runErr).NotTo(HaveOccurred())

				out := output.String()
				Expect(out).To(ContainSubstring("--- Your Tasks ---"))
				Expect(out).To(ContainSubstring("Task ID: task-1, Description: Buy milk, Status: Pending, Date: 2024-01-01\n"))
				Expect(out).To(ContainSubstring("Skipping malformed task on line 2: garbage"))
			})
		})

		When("the user has no tasks", func() {
			BeforeEach(func() {
				fakeService.ListTasksReturns(core.TaskList{}, core.ErrNoTasks)
				input = login("b", "", "e", "3")
			})

			It("should say so", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(output.String()).To(ContainSubstring("No tasks found."))
			})
		})

		Describe("completing a task", func() {
			BeforeEach(func() {
				input = login("c", " task-1 ", "", "e", "3")
			})

			JustBeforeEach(func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.CompleteTaskCallCount()).To(Equal(1))

				_, token, taskID := fakeService.CompleteTaskArgsForCall(0)
				Expect(token).To(Equal("signed.token"))
				Expect(taskID).To(Equal("task-1"))
			})

			When("the task is pending", func() {
				BeforeEach(func() {
					fakeService.CompleteTaskReturns(core.OutcomeUpdated, nil)
				})

				It("should report the update", func() {
					Expect(output.String()).To(ContainSubstring("Task status updated successfully."))
				})
			})

			When("the task is already completed", func() {
				BeforeEach(func() {
					fakeService.CompleteTaskReturns(core.OutcomeAlreadyDone, nil)
				})

				It("should say so", func() {
					Expect(output.String()).To(ContainSubstring("Task already marked as completed."))
				})
			})

			When("the task does not exist", func() {
				BeforeEach(func() {
					fakeService.CompleteTaskReturns(core.OutcomeNotFound, nil)
				})

				It("should report it missing", func() {
					Expect(output.String()).To(ContainSubstring("Task not found."))
				})
			})
		})

		When("a task is deleted", func() {
			BeforeEach(func() {
				fakeService.DeleteTaskReturns(core.OutcomeDeleted, nil)
				input = login("d", "task-1", "", "d", "", "", "e", "3")
			})

			It("should delete it and refuse a blank id", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(fakeService.DeleteTaskCallCount()).To(Equal(1))
				Expect(output.String()).To(ContainSubstring("Task deleted successfully."))
				Expect(output.String()).To(ContainSubstring("Task ID cannot be empty."))
			})
		})

		When("the session has expired", func() {
			BeforeEach(func() {
				fakeService.ListTasksReturns(core.TaskList{}, fmt.Errorf("%w: %w", core.ErrSessionExpired, fakeErr))
				input = login("b", "3")
			})

			It("should return to the main menu", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(output.String()).To(ContainSubstring("Your session has expired. Please log in again."))
				Expect(output.String()).To(HaveSuffix("Exiting...\n"))
			})
		})

		When("an unknown option is chosen", func() {
			BeforeEach(func() {
				input = login("z", "", "e", "3")
			})

			It("should ask again", func() {
				Expect(runErr).NotTo(HaveOccurred())
				Expect(output.String()).To(ContainSubstring("Invalid choice. Please try again."))
				Expect(strings.Count(output.String(), "Task Manager Menu:")).To(Equal(2))
			})
		})
	})

	When("screen clearing is enabled", func() {
		BeforeEach(func() {
			clearScreen = true
			input = []string{"2", "alice", "pw", "e", "3"}
		})

		It("should clear before the task menu", func() {
			Expect(runErr).NotTo(HaveOccurred())
			Expect(output.String()).To(ContainSubstring("\033[H\033[2J\nTask Manager Menu:"))
		})
	})
})
