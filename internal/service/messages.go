package service

// Success messages the backend returns on each operation. The message text is
// the success discriminator: callers only treat a response as successful when
// the message matches the expected literal exactly.
const (
	MsgLogin                 = "Welcome to your profile"
	MsgRegister              = "User registered successfully. Prompt to verify email."
	MsgForgotPassword        = "Password reset email sent"
	MsgResetPassword         = "Your password has successfully been reset"
	MsgUserRetrieved         = "User data successfully retrieved"
	MsgTasksRetrieved        = "Tasks successfully retrieved"
	MsgAssignmentsRetrieved  = "Assignments successfully retrieved"
	MsgUsersRetrieved        = "Users successfully retrieved"
	MsgUserTasksRetrieved    = "User tasks successfully retrieved"
	MsgPendingTasksRetrieved = "Pending user tasks successfully retrieved"
	MsgTaskCreated           = "Task successfully created"
	MsgTaskUpdated           = "Task successfully updated"
	MsgTaskDeleted           = "Task successfully deleted"
	MsgAssignmentCreated     = "Assignment has been successfully created"
	MsgAssignmentUpdated     = "Assignment successfully updated"
	MsgAssignmentDeleted     = "Assignment successfully deleted"
	MsgTaskDropped           = "Task successfully dropped"
	MsgStatusUpdated         = "Task status successfully updated"
	MsgFirstNameUpdated      = "First name updated successfully"
	MsgLastNameUpdated       = "Last name updated successfully"
	MsgAccountDeleted        = "User deleted successfully"
)

// Known error reason strings carried in the backend's error field.
// Unknown reasons fall through to a generic message at the command layer.
const (
	ReasonUnauthorized       = "Unauthorized"
	ReasonAccountDeleted     = "Account deleted"
	ReasonAssignmentExists   = "Assignment already exists"
	ReasonDoerNotFree        = "Task doer not free at this time"
	ReasonMaxParticipants    = "Maximum participants reached"
	ReasonTaskExists         = "Task has already been created"
	ReasonIncorrectPassword  = "Incorrect password"
	ReasonNoSuchAccount      = "This account owner does not exist"
	ReasonAccountNotVerified = "This account has not been verified"
	ReasonTaskNotOver        = "Task is not over yet"
	ReasonResetLinkInvalid   = "This link is either invalid or has expired"
	ReasonPasswordReused     = "Password cannot be the same as your last password"
)
