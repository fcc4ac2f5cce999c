package core_test

import (
	"context"
	"errors"
	"time"

	"tasker/internal/core"
	"tasker/internal/core/fake"
	"tasker/internal/repository"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

// sha256 of "password"
const passwordHash = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"

var _ = Describe("Tracker", func() {
	var (
		fakeCredentials *fake.CredentialRepository
		fakeTasks       *fake.TaskRepository
		fakeSessions    *fake.SessionIssuer
		ctx             context.Context

		tracker *core.Tracker

		fakeErr error
	)

	BeforeEach(func() {
		fakeCredentials = new(fake.CredentialRepository)
		fakeTasks = new(fake.TaskRepository)
		fakeSessions = new(fake.SessionIssuer)
		ctx = context.Background()

		fakeSessions.IssueReturns("signed.token", nil)
		fakeSessions.SubjectReturns("alice", nil)

		tracker = core.NewTracker(zap.NewNop().Sugar(), fakeCredentials, fakeTasks, fakeSessions, core.SHA256Hasher{}, time.Hour)

		fakeErr = errors.New("fake error")
	})

	Describe("Register", func() {
		var (
			msg     core.AuthMessage
			session core.Session
			err     error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{Username: "alice", Password: "password"}
		})

		JustBeforeEach(func() {
			session, err = tracker.Register(ctx, msg)
		})

		When("the username is free", func() {
			It("should save the hashed password and open a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session).To(Equal(core.Session{Username: "alice", Token: "signed.token"}))

				Expect(fakeCredentials.SaveCredentialCallCount()).To(Equal(1))
				_, credential := fakeCredentials.SaveCredentialArgsForCall(0)
				Expect(credential).To(Equal(repository.Credential{Username: "alice", PasswordHash: passwordHash}))

				subject, ttl := fakeSessions.IssueArgsForCall(0)
				Expect(subject).To(Equal("alice"))
				Expect(ttl).To(Equal(time.Hour))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeCredentials.UserExistsReturns(true, nil)
			})

			It("should return ErrDuplicateUser", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUser))
				Expect(fakeCredentials.SaveCredentialCallCount()).To(Equal(0))
			})
		})

		When("the username is empty", func() {
			BeforeEach(func() {
				msg.Username = "  "
			})

			It("should return ErrEmptyField", func() {
				Expect(err).To(MatchError(core.ErrEmptyField))
				Expect(fakeCredentials.UserExistsCallCount()).To(Equal(0))
			})
		})

		When("the password is empty", func() {
			BeforeEach(func() {
				msg.Password = ""
			})

			It("should return ErrEmptyField", func() {
				Expect(err).To(MatchError(core.ErrEmptyField))
			})
		})

		DescribeTable("rejects usernames that cannot be stored",
			func(username string) {
				_, err := tracker.Register(ctx, core.AuthMessage{Username: username, Password: "pw"})
				Expect(err).To(MatchError(core.ErrInvalidUsername))
			},
			Entry("separator", "al:ice"),
			Entry("path", "../alice"),
			Entry("backslash", `al\ice`),
			Entry("dot dot", ".."),
		)

		When("the existence check fails", func() {
			BeforeEach(func() {
				fakeCredentials.UserExistsReturns(false, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("saving fails", func() {
			BeforeEach(func() {
				fakeCredentials.SaveCredentialReturns(fakeErr)
			})

			It("should return the error and no session", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(session).To(BeZero())
				Expect(fakeSessions.IssueCallCount()).To(Equal(0))
			})
		})
	})

	Describe("CheckUsername", func() {
		var (
			username string
			err      error
		)

		BeforeEach(func() {
			username = "alice"
		})

		JustBeforeEach(func() {
			err = tracker.CheckUsername(ctx, username)
		})

		When("the username is free", func() {
			It("should accept it without saving anything", func() {
				Expect(err).NotTo(HaveOccurred())
				_, checked := fakeCredentials.UserExistsArgsForCall(0)
				Expect(checked).To(Equal("alice"))
				Expect(fakeCredentials.SaveCredentialCallCount()).To(Equal(0))
			})
		})

		When("the username is taken", func() {
			BeforeEach(func() {
				fakeCredentials.UserExistsReturns(true, nil)
			})

			It("should return ErrDuplicateUser", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUser))
			})
		})

		When("the username is empty", func() {
			BeforeEach(func() {
				username = ""
			})

			It("should return ErrEmptyField before looking at the store", func() {
				Expect(err).To(MatchError(core.ErrEmptyField))
				Expect(fakeCredentials.UserExistsCallCount()).To(Equal(0))
			})
		})

		When("the username contains a separator", func() {
			BeforeEach(func() {
				username = "al:ice"
			})

			It("should return ErrInvalidUsername", func() {
				Expect(err).To(MatchError(core.ErrInvalidUsername))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg     core.AuthMessage
			session core.Session
			err     error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{Username: "alice", Password: "password"}
			fakeCredentials.FindCredentialsReturns([]repository.Credential{
				{Username: "alice", PasswordHash: passwordHash},
			}, nil)
		})

		JustBeforeEach(func() {
			session, err = tracker.Authenticate(ctx, msg)
		})

		When("the password matches", func() {
			It("should open a session", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(session.Username).To(Equal("alice"))
				Expect(session.Token).To(Equal("signed.token"))

				_, username := fakeCredentials.FindCredentialsArgsForCall(0)
				Expect(username).To(Equal("alice"))
			})
		})

		When("a later line matches", func() {
			BeforeEach(func() {
				fakeCredentials.FindCredentialsReturns([]repository.Credential{
					{Username: "alice", PasswordHash: "deadbeef"},
					{Username: "alice", PasswordHash: passwordHash},
				}, nil)
			})

			It("should still log in", func() {
				Expect(err).NotTo(HaveOccurred())
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				msg.Password = "wrong"
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(fakeSessions.IssueCallCount()).To(Equal(0))
			})
		})

		When("the user is unknown", func() {
			BeforeEach(func() {
				fakeCredentials.FindCredentialsReturns(nil, nil)
			})

			It("should return ErrInvalidCredentials", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("nobody has registered yet", func() {
			BeforeEach(func() {
				fakeCredentials.FindCredentialsReturns(nil, repository.ErrCredentialsNotFound)
			})

			It("should return ErrStoreNotFound", func() {
				Expect(err).To(MatchError(core.ErrStoreNotFound))
			})
		})

		When("reading the store fails", func() {
			BeforeEach(func() {
				fakeCredentials.FindCredentialsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddTask", func() {
		var (
			msg  core.TaskMessage
			task core.Task
			err  error
		)

		BeforeEach(func() {
			msg = core.TaskMessage{Description: "Buy milk", Date: "2024-01-01"}
		})

		JustBeforeEach(func() {
			task, err = tracker.AddTask(ctx, "signed.token", msg)
		})

		When("the input is valid", func() {
			It("should store a pending task with a fresh id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Description).To(Equal("Buy milk"))
				Expect(task.Status).To(Equal(core.StatusPending))
				Expect(task.Date).To(Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
				_, parseErr := uuid.Parse(task.ID)
				Expect(parseErr).NotTo(HaveOccurred())

				Expect(fakeSessions.SubjectArgsForCall(0)).To(Equal("signed.token"))

				_, username, stored := fakeTasks.AddTaskArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(stored.ID).To(Equal(task.ID))
				Expect(stored.Status).To(Equal(repository.StatusPending))
			})

			It("should take the id from the generator", func() {
				original := repository.NewID
				repository.NewID = func() string { return "pinned-id" }
				DeferCleanup(func() { repository.NewID = original })

				pinned, err := tracker.AddTask(ctx, "signed.token", msg)
				Expect(err).NotTo(HaveOccurred())
				Expect(pinned.ID).To(Equal("pinned-id"))

				_, _, stored := fakeTasks.AddTaskArgsForCall(1)
				Expect(stored.ID).To(Equal("pinned-id"))
			})

			It("should give every task a different id", func() {
				second, err := tracker.AddTask(ctx, "signed.token", msg)
				Expect(err).NotTo(HaveOccurred())
				Expect(second.ID).NotTo(Equal(task.ID))
			})
		})

		When("the description is empty", func() {
			BeforeEach(func() {
				msg.Description = " "
			})

			It("should return ErrEmptyField", func() {
				Expect(err).To(MatchError(core.ErrEmptyField))
				Expect(fakeTasks.AddTaskCallCount()).To(Equal(0))
			})
		})

		When("the date does not parse", func() {
			BeforeEach(func() {
				msg.Date = "01/01/2024"
			})

			It("should return ErrInvalidDate", func() {
				Expect(err).To(MatchError(core.ErrInvalidDate))
				Expect(fakeTasks.AddTaskCallCount()).To(Equal(0))
			})
		})

		When("month and day are not zero padded", func() {
			BeforeEach(func() {
				msg.Date = "2024-1-5"
			})

			It("should store the padded date", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(task.Date).To(Equal(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)))

				_, _, stored := fakeTasks.AddTaskArgsForCall(0)
				Expect(repository.EncodeTask(stored)).To(HaveSuffix(":Pending:2024-01-05"))
			})
		})

		When("the session is no longer valid", func() {
			BeforeEach(func() {
				fakeSessions.SubjectReturns("", fakeErr)
			})

			It("should return ErrSessionExpired", func() {
				Expect(err).To(MatchError(core.ErrSessionExpired))
				Expect(fakeTasks.AddTaskCallCount()).To(Equal(0))
			})
		})

		When("storing fails", func() {
			BeforeEach(func() {
				fakeTasks.AddTaskReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListTasks", func() {
		var (
			list core.TaskList
			err  error
		)

		JustBeforeEach(func() {
			list, err = tracker.ListTasks(ctx, "signed.token")
		})

		When("the user has tasks", func() {
			BeforeEach(func() {
				fakeTasks.GetTasksReturns(repository.TaskList{
					Tasks: []repository.Task{
						{ID: "id-1", Description: "Buy milk", Status: repository.StatusCompleted, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
					},
					Skipped: []repository.SkippedRecord{
						{Line: 2, Raw: "broken", Err: repository.ErrMalformedRecord},
					},
				}, nil)
			})

			It("should return tasks and skipped lines", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(list.Tasks).To(Equal([]core.Task{
					{ID: "id-1", Description: "Buy milk", Status: core.StatusCompleted, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
				}))
				Expect(list.Skipped).To(HaveLen(1))
				Expect(list.Skipped[0].Line).To(Equal(2))
				Expect(list.Skipped[0].Raw).To(Equal("broken"))
			})
		})

		When("the user has no task file", func() {
			BeforeEach(func() {
				fakeTasks.GetTasksReturns(repository.TaskList{}, repository.ErrNotFound)
			})

			It("should return ErrNoTasks", func() {
				Expect(err).To(MatchError(core.ErrNoTasks))
				Expect(err).To(MatchError(core.ErrNotFound))
			})
		})

		When("reading fails", func() {
			BeforeEach(func() {
				fakeTasks.GetTasksReturns(repository.TaskList{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CompleteTask", func() {
		DescribeTable("maps the repository outcome",
			func(repoOutcome repository.Outcome, expected core.Outcome) {
				fakeTasks.CompleteTaskReturns(repoOutcome, nil)

				outcome, err := tracker.CompleteTask(ctx, "signed.token", " id-1 ")
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(expected))

				_, username, taskID := fakeTasks.CompleteTaskArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(taskID).To(Equal("id-1"))
			},
			Entry("updated", repository.OutcomeUpdated, core.OutcomeUpdated),
			Entry("already done", repository.OutcomeAlreadyDone, core.OutcomeAlreadyDone),
			Entry("not found", repository.OutcomeNotFound, core.OutcomeNotFound),
		)

		It("should reject an empty id", func() {
			_, err := tracker.CompleteTask(ctx, "signed.token", "")
			Expect(err).To(MatchError(core.ErrEmptyField))
			Expect(fakeTasks.CompleteTaskCallCount()).To(Equal(0))
		})

		It("should return repository errors", func() {
			fakeTasks.CompleteTaskReturns(repository.OutcomeNotFound, fakeErr)

			_, err := tracker.CompleteTask(ctx, "signed.token", "id-1")
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("DeleteTask", func() {
		DescribeTable("maps the repository outcome",
			func(repoOutcome repository.Outcome, expected core.Outcome) {
				fakeTasks.DeleteTaskReturns(repoOutcome, nil)

				outcome, err := tracker.DeleteTask(ctx, "signed.token", "id-1")
				Expect(err).NotTo(HaveOccurred())
				Expect(outcome).To(Equal(expected))
			},
			Entry("deleted", repository.OutcomeDeleted, core.OutcomeDeleted),
			Entry("not found", repository.OutcomeNotFound, core.OutcomeNotFound),
		)

		It("should reject an expired session", func() {
			fakeSessions.SubjectReturns("", fakeErr)

			_, err := tracker.DeleteTask(ctx, "signed.token", "id-1")
			Expect(err).To(MatchError(core.ErrSessionExpired))
			Expect(fakeTasks.DeleteTaskCallCount()).To(Equal(0))
		})
	})
})
