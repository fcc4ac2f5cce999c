package handler

const (
	welcomeMsg = "Welcome to the Task Manager!"

	mainMenu = `
Options:
1. Register
2. Login
3. Exit`

	taskMenu = `
Task Manager Menu:
a. Add a Task
b. View Tasks
c. Mark a Task as Completed
d. Delete a Task
e. Logout`

	choicePrompt      = "Enter your choice: "
	usernamePrompt    = "Enter username: "
	passwordPrompt    = "Enter password: "
	descriptionPrompt = "Enter task description: "
	datePrompt        = "Enter date (YYYY-MM-DD): "
	completePrompt    = "Enter the ID of the task to mark as completed: "
	deletePrompt      = "Enter the ID of the task to delete: "
	continuePrompt    = "Press Enter to continue..."

	invalidChoiceMsg    = "Invalid choice. Please try again."
	exitingMsg          = "Exiting..."
	loggingOutMsg       = "Logging out..."
	registeredMsg       = "User registered successfully."
	loggedInMsg         = "Logged in successfully."
	emptyUsernameMsg    = "Username cannot be empty. Please enter a valid username"
	emptyPasswordMsg    = "Password cannot be empty. Please enter a valid password"
	invalidUsernameMsg  = "Username cannot contain ':', '/' or '\\'. Please choose a different one."
	duplicateUserMsg    = "Username already exists. Please choose a different one."
	noUsersMsg          = "No users registered yet. Please register first."
	invalidCredsMsg     = "Invalid credentials. Please try again."
	emptyDescriptionMsg = "Task description cannot be empty. Task not added."
	invalidDateMsg      = "Invalid date format. Please use YYYY-MM-DD."
	taskAddedMsg        = "Task added successfully."
	noTasksMsg          = "No tasks found."
	tasksHeader         = "\n--- Your Tasks ---"
	emptyTaskIDMsg      = "Task ID cannot be empty."
	taskUpdatedMsg      = "Task status updated successfully."
	taskAlreadyDoneMsg  = "Task already marked as completed."
	taskDeletedMsg      = "Task deleted successfully."
	taskNotFoundMsg     = "Task not found."
	sessionExpiredMsg   = "Your session has expired. Please log in again."
	clearScreenSequence = "\033[H\033[2J"
)
